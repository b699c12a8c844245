package twitchchat

import (
	"strconv"
	"time"
)

// Command is implemented by every typed variant below plus Raw. It exists so
// the dispatcher can recover the underlying Frame regardless of which
// variant a subscriber asked for.
type Command interface {
	frame() Frame
}

// IrcReady is the numeric 001 welcome, carrying the server-assigned nickname.
type IrcReady struct {
	Frame    Frame
	Nickname string
}

func (c IrcReady) frame() Frame { return c.Frame }

// NewIrcReady validates f.Command == "001" and extracts arg0 as the nickname.
func NewIrcReady(f Frame) (IrcReady, error) {
	if f.Command != "001" {
		return IrcReady{}, &InvalidCommandError{Expected: "001", Got: f.Command}
	}
	nick := f.Arg(0)
	if nick == "" {
		return IrcReady{}, &ExpectedArgError{Pos: 0}
	}
	return IrcReady{Frame: f, Nickname: nick}, nil
}

// Ready is the numeric 376 end-of-MOTD, the handshake's completion signal.
type Ready struct {
	Frame    Frame
	Username string
}

func (c Ready) frame() Frame { return c.Frame }

func NewReady(f Frame) (Ready, error) {
	if f.Command != "376" {
		return Ready{}, &InvalidCommandError{Expected: "376", Got: f.Command}
	}
	user := f.Arg(0)
	if user == "" {
		return Ready{}, &ExpectedArgError{Pos: 0}
	}
	return Ready{Frame: f, Username: user}, nil
}

// Cap is one line of capability negotiation (CAP * ACK|NAK :name).
type Cap struct {
	Frame        Frame
	Capability   string
	Acknowledged bool
}

func (c Cap) frame() Frame { return c.Frame }

func NewCap(f Frame) (Cap, error) {
	if f.Command != "CAP" {
		return Cap{}, &InvalidCommandError{Expected: "CAP", Got: f.Command}
	}
	sub := f.Arg(1)
	if sub != "ACK" && sub != "NAK" {
		return Cap{}, &ExpectedArgError{Pos: 1}
	}
	if !f.HasTrailing {
		return Cap{}, ErrExpectedData
	}
	return Cap{Frame: f, Capability: f.Trailing, Acknowledged: sub == "ACK"}, nil
}

// ClearChat is a channel-wide or single-user chat clear.
type ClearChat struct {
	Frame   Frame
	Channel string
	Name    string
	HasName bool
}

func (c ClearChat) frame() Frame { return c.Frame }

func NewClearChat(f Frame) (ClearChat, error) {
	if f.Command != "CLEARCHAT" {
		return ClearChat{}, &InvalidCommandError{Expected: "CLEARCHAT", Got: f.Command}
	}
	ch := f.Arg(0)
	if ch == "" {
		return ClearChat{}, &ExpectedArgError{Pos: 0}
	}
	return ClearChat{Frame: f, Channel: ch, Name: f.Trailing, HasName: f.HasTrailing}, nil
}

// BanDuration returns the ban-duration tag in seconds, if the target was
// timed out rather than permanently banned.
func (c ClearChat) BanDuration() (time.Duration, bool) {
	secs, ok := c.Frame.Tags.GetInt("ban-duration")
	if !ok {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

// ClearMsg deletes a single message by its target-msg-id tag.
type ClearMsg struct {
	Frame      Frame
	Channel    string
	Message    string
	HasMessage bool
}

func (c ClearMsg) frame() Frame { return c.Frame }

func NewClearMsg(f Frame) (ClearMsg, error) {
	if f.Command != "CLEARMSG" {
		return ClearMsg{}, &InvalidCommandError{Expected: "CLEARMSG", Got: f.Command}
	}
	ch := f.Arg(0)
	if ch == "" {
		return ClearMsg{}, &ExpectedArgError{Pos: 0}
	}
	return ClearMsg{Frame: f, Channel: ch, Message: f.Trailing, HasMessage: f.HasTrailing}, nil
}

// TargetMsgID returns the target-msg-id tag identifying the deleted message.
func (c ClearMsg) TargetMsgID() string {
	return c.Frame.Tags.GetUnescaped("target-msg-id")
}

// GlobalUserState is sent once per session when the commands and tags
// capabilities are both acknowledged; it finalizes Identity::Full.
type GlobalUserState struct {
	Frame Frame
}

func (c GlobalUserState) frame() Frame { return c.Frame }

func NewGlobalUserState(f Frame) (GlobalUserState, error) {
	if f.Command != "GLOBALUSERSTATE" {
		return GlobalUserState{}, &InvalidCommandError{Expected: "GLOBALUSERSTATE", Got: f.Command}
	}
	return GlobalUserState{Frame: f}, nil
}

func (c GlobalUserState) UserID() (int64, bool) {
	return c.Frame.Tags.GetInt("user-id")
}

func (c GlobalUserState) DisplayName() (string, bool) {
	if !c.Frame.Tags.Has("display-name") {
		return "", false
	}
	return c.Frame.Tags.GetUnescaped("display-name"), true
}

func (c GlobalUserState) Color() Color {
	col, _ := ParseColor(c.Frame.Tags.GetUnescaped("color"))
	return col
}

// Badges returns the display badges tag; BadgeInfo returns the companion
// badge-info tag (e.g. subscriber month count) — Twitch sends both
// separately and this module keeps them separate rather than merging them.
func (c GlobalUserState) Badges() []Badge     { return ParseBadges(c.Frame.Tags.GetUnescaped("badges")) }
func (c GlobalUserState) BadgeInfo() []Badge  { return ParseBadges(c.Frame.Tags.GetUnescaped("badge-info")) }

func (c GlobalUserState) EmoteSets() []string {
	return splitNonEmpty(c.Frame.Tags.GetUnescaped("emote-sets"), ',')
}

// HostTargetKind distinguishes a host start from a host stop.
type HostTargetKind int

const (
	HostStart HostTargetKind = iota
	HostStop
)

// HostTarget reports a channel beginning or ending a host of another.
type HostTarget struct {
	Frame     Frame
	Source    string
	Kind      HostTargetKind
	Target    string
	Viewers   int64
	HasViewers bool
}

func (c HostTarget) frame() Frame { return c.Frame }

func NewHostTarget(f Frame) (HostTarget, error) {
	if f.Command != "HOSTTARGET" {
		return HostTarget{}, &InvalidCommandError{Expected: "HOSTTARGET", Got: f.Command}
	}
	source := f.Arg(0)
	if source == "" {
		return HostTarget{}, &ExpectedArgError{Pos: 0}
	}
	if !f.HasTrailing {
		return HostTarget{}, ErrExpectedData
	}
	fields := splitNonEmpty(f.Trailing, ' ')
	h := HostTarget{Frame: f, Source: source}
	if len(fields) == 0 {
		return HostTarget{}, ErrExpectedData
	}
	if fields[0] == "-" {
		h.Kind = HostStop
	} else {
		h.Kind = HostStart
		h.Target = fields[0]
	}
	if len(fields) > 1 {
		if n, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
			h.Viewers, h.HasViewers = n, true
		}
	}
	return h, nil
}

// Join is a user (possibly ourselves) entering a channel.
type Join struct {
	Frame   Frame
	Name    string
	Channel string
}

func (c Join) frame() Frame { return c.Frame }

func NewJoin(f Frame) (Join, error) {
	if f.Command != "JOIN" {
		return Join{}, &InvalidCommandError{Expected: "JOIN", Got: f.Command}
	}
	if f.Prefix.Nick == "" {
		return Join{}, ErrExpectedNick
	}
	ch := f.Arg(0)
	if ch == "" {
		return Join{}, &ExpectedArgError{Pos: 0}
	}
	return Join{Frame: f, Name: f.Prefix.Nick, Channel: ch}, nil
}

// Notice is a server informational message, usually carrying a msg-id tag
// that the channel state machine reacts to (see handleNotice in runner.go).
type Notice struct {
	Frame   Frame
	Channel string
	Message string
	MsgID   NoticeID
	RawID   string
}

func (c Notice) frame() Frame { return c.Frame }

func NewNotice(f Frame) (Notice, error) {
	if f.Command != "NOTICE" {
		return Notice{}, &InvalidCommandError{Expected: "NOTICE", Got: f.Command}
	}
	ch := f.Arg(0)
	if ch == "" {
		return Notice{}, &ExpectedArgError{Pos: 0}
	}
	if !f.HasTrailing {
		return Notice{}, ErrExpectedData
	}
	id, raw := ParseNoticeID(f.Tags.GetUnescaped("msg-id"))
	return Notice{Frame: f, Channel: ch, Message: f.Trailing, MsgID: id, RawID: raw}, nil
}

// Part is a user (possibly ourselves) leaving a channel.
type Part struct {
	Frame   Frame
	Name    string
	Channel string
}

func (c Part) frame() Frame { return c.Frame }

func NewPart(f Frame) (Part, error) {
	if f.Command != "PART" {
		return Part{}, &InvalidCommandError{Expected: "PART", Got: f.Command}
	}
	if f.Prefix.Nick == "" {
		return Part{}, ErrExpectedNick
	}
	ch := f.Arg(0)
	if ch == "" {
		return Part{}, &ExpectedArgError{Pos: 0}
	}
	return Part{Frame: f, Name: f.Prefix.Nick, Channel: ch}, nil
}

// Ping carries a liveness token the client must echo back via Pong.
type Ping struct {
	Frame Frame
	Token string
}

func (c Ping) frame() Frame { return c.Frame }

func NewPing(f Frame) (Ping, error) {
	if f.Command != "PING" {
		return Ping{}, &InvalidCommandError{Expected: "PING", Got: f.Command}
	}
	if !f.HasTrailing {
		return Ping{}, ErrExpectedData
	}
	return Ping{Frame: f, Token: f.Trailing}, nil
}

// Pong answers our own outbound Ping during the liveness check.
type Pong struct {
	Frame Frame
	Token string
}

func (c Pong) frame() Frame { return c.Frame }

func NewPong(f Frame) (Pong, error) {
	if f.Command != "PONG" {
		return Pong{}, &InvalidCommandError{Expected: "PONG", Got: f.Command}
	}
	if !f.HasTrailing {
		return Pong{}, ErrExpectedData
	}
	return Pong{Frame: f, Token: f.Trailing}, nil
}

// Privmsg is a chat message, possibly CTCP-wrapped (only ACTION is special).
type Privmsg struct {
	Frame    Frame
	Name     string
	Channel  string
	Data     string
	CTCP     CTCPKind
	CTCPName string
	IsAction bool
}

func (c Privmsg) frame() Frame { return c.Frame }

func NewPrivmsg(f Frame) (Privmsg, error) {
	if f.Command != "PRIVMSG" {
		return Privmsg{}, &InvalidCommandError{Expected: "PRIVMSG", Got: f.Command}
	}
	if f.Prefix.Nick == "" {
		return Privmsg{}, ErrExpectedNick
	}
	ch := f.Arg(0)
	if ch == "" {
		return Privmsg{}, &ExpectedArgError{Pos: 0}
	}
	if !f.HasTrailing {
		return Privmsg{}, ErrExpectedData
	}
	kind, name, body, ok := splitCTCP(f.Trailing)
	p := Privmsg{Frame: f, Name: f.Prefix.Nick, Channel: ch}
	if ok {
		p.CTCP, p.CTCPName, p.Data = kind, name, body
		p.IsAction = kind == CTCPAction
	} else {
		p.Data = f.Trailing
	}
	return p, nil
}

func (c Privmsg) Badges() []Badge    { return ParseBadges(c.Frame.Tags.GetUnescaped("badges")) }
func (c Privmsg) BadgeInfo() []Badge { return ParseBadges(c.Frame.Tags.GetUnescaped("badge-info")) }

func (c Privmsg) Color() Color {
	col, _ := ParseColor(c.Frame.Tags.GetUnescaped("color"))
	return col
}

func (c Privmsg) DisplayName() string { return c.Frame.Tags.GetUnescaped("display-name") }
func (c Privmsg) ID() string          { return c.Frame.Tags.GetUnescaped("id") }
func (c Privmsg) RoomID() (int64, bool) { return c.Frame.Tags.GetInt("room-id") }
func (c Privmsg) UserID() (int64, bool) { return c.Frame.Tags.GetInt("user-id") }
func (c Privmsg) Mod() bool           { return c.Frame.Tags.GetBool("mod") }
func (c Privmsg) Subscriber() bool    { return c.Frame.Tags.GetBool("subscriber") }
func (c Privmsg) Turbo() bool         { return c.Frame.Tags.GetBool("turbo") }

// Bits returns the bits tag, present only on cheer messages.
func (c Privmsg) Bits() (int64, bool) { return c.Frame.Tags.GetInt("bits") }

// Emotes parses the emotes tag into id-to-ranges pairs (see emotes.go).
func (c Privmsg) Emotes() []Emote {
	return ParseEmotes(c.Frame.Tags.GetUnescaped("emotes"))
}

// Reconnect instructs the client to disconnect and re-establish the session
// on its own schedule; the runner surfaces this as ErrShouldReconnect.
type Reconnect struct {
	Frame Frame
}

func (c Reconnect) frame() Frame { return c.Frame }

func NewReconnect(f Frame) (Reconnect, error) {
	if f.Command != "RECONNECT" {
		return Reconnect{}, &InvalidCommandError{Expected: "RECONNECT", Got: f.Command}
	}
	return Reconnect{Frame: f}, nil
}

// RoomState describes the current moderation settings of a channel; any
// subset of tags may be present depending on what changed.
type RoomState struct {
	Frame   Frame
	Channel string
}

func (c RoomState) frame() Frame { return c.Frame }

func NewRoomState(f Frame) (RoomState, error) {
	if f.Command != "ROOMSTATE" {
		return RoomState{}, &InvalidCommandError{Expected: "ROOMSTATE", Got: f.Command}
	}
	ch := f.Arg(0)
	if ch == "" {
		return RoomState{}, &ExpectedArgError{Pos: 0}
	}
	return RoomState{Frame: f, Channel: ch}, nil
}

// SlowSeconds returns the slow-mode tag in seconds; IsSlowMode reports
// whether slow mode is active at all (a zero slow tag means disabled).
func (c RoomState) SlowSeconds() (int64, bool) { return c.Frame.Tags.GetInt("slow") }

func (c RoomState) IsSlowMode() bool {
	n, ok := c.Frame.Tags.GetInt("slow")
	return ok && n > 0
}

func (c RoomState) EmoteOnly() bool     { return c.Frame.Tags.GetBool("emote-only") }
func (c RoomState) FollowersOnly() bool { return c.Frame.Tags.GetBool("followers-only") }
func (c RoomState) R9K() bool           { return c.Frame.Tags.GetBool("r9k") }
func (c RoomState) SubsOnly() bool      { return c.Frame.Tags.GetBool("subs-only") }

// UserNoticeKind is the closed set of documented USERNOTICE msg-id values,
// distinct from NOTICE's NoticeID set (see original_source's user_notice.rs).
type UserNoticeKind int

const (
	UserNoticeUnknown UserNoticeKind = iota
	UserNoticeSub
	UserNoticeResub
	UserNoticeSubgift
	UserNoticeAnonSubgift
	UserNoticeSubMysteryGift
	UserNoticeGiftPaidUpgrade
	UserNoticeRewardGift
	UserNoticeAnonGiftPaidUpgrade
	UserNoticeRaid
	UserNoticeUnraid
	UserNoticeRitual
	UserNoticeBitsBadgeTier
)

var userNoticeKindByWire = map[string]UserNoticeKind{
	"sub":                   UserNoticeSub,
	"resub":                 UserNoticeResub,
	"subgift":               UserNoticeSubgift,
	"anonsubgift":           UserNoticeAnonSubgift,
	"submysterygift":        UserNoticeSubMysteryGift,
	"giftpaidupgrade":       UserNoticeGiftPaidUpgrade,
	"rewardgift":            UserNoticeRewardGift,
	"anongiftpaidupgrade":   UserNoticeAnonGiftPaidUpgrade,
	"raid":                  UserNoticeRaid,
	"unraid":                UserNoticeUnraid,
	"ritual":                UserNoticeRitual,
	"bitsbadgetier":         UserNoticeBitsBadgeTier,
}

// ParseUserNoticeKind maps a msg-id wire value to its kind, preserving the
// raw string for kinds this module does not name.
func ParseUserNoticeKind(wire string) (kind UserNoticeKind, raw string) {
	if k, ok := userNoticeKindByWire[wire]; ok {
		return k, wire
	}
	return UserNoticeUnknown, wire
}

// SubPlan is the sub-plan tag on sub/resub/subgift USERNOTICE messages.
type SubPlan int

const (
	SubPlanUnknown SubPlan = iota
	SubPlanPrime
	SubPlanTier1
	SubPlanTier2
	SubPlanTier3
)

// ParseSubPlan maps the sub-plan tag's wire value to a SubPlan, preserving
// the raw string when it names a plan this module doesn't recognize.
func ParseSubPlan(wire string) (plan SubPlan, raw string) {
	switch wire {
	case "Prime":
		return SubPlanPrime, wire
	case "1000":
		return SubPlanTier1, wire
	case "2000":
		return SubPlanTier2, wire
	case "3000":
		return SubPlanTier3, wire
	default:
		return SubPlanUnknown, wire
	}
}

// UserNotice is a channel event announcement: subs, resubs, raids, and the
// like. Which of the ~20 tag helpers are meaningful depends on Kind.
type UserNotice struct {
	Frame      Frame
	Channel    string
	Message    string
	HasMessage bool
	Kind       UserNoticeKind
	RawKind    string
}

func (c UserNotice) frame() Frame { return c.Frame }

func NewUserNotice(f Frame) (UserNotice, error) {
	if f.Command != "USERNOTICE" {
		return UserNotice{}, &InvalidCommandError{Expected: "USERNOTICE", Got: f.Command}
	}
	ch := f.Arg(0)
	if ch == "" {
		return UserNotice{}, &ExpectedArgError{Pos: 0}
	}
	kind, raw := ParseUserNoticeKind(f.Tags.GetUnescaped("msg-id"))
	return UserNotice{
		Frame:      f,
		Channel:    ch,
		Message:    f.Trailing,
		HasMessage: f.HasTrailing,
		Kind:       kind,
		RawKind:    raw,
	}, nil
}

func (c UserNotice) Badges() []Badge    { return ParseBadges(c.Frame.Tags.GetUnescaped("badges")) }
func (c UserNotice) BadgeInfo() []Badge { return ParseBadges(c.Frame.Tags.GetUnescaped("badge-info")) }
func (c UserNotice) Color() Color {
	col, _ := ParseColor(c.Frame.Tags.GetUnescaped("color"))
	return col
}
func (c UserNotice) DisplayName() string { return c.Frame.Tags.GetUnescaped("display-name") }
func (c UserNotice) Login() string       { return c.Frame.Tags.GetUnescaped("login") }
func (c UserNotice) SystemMsg() string   { return c.Frame.Tags.GetUnescaped("system-msg") }
func (c UserNotice) ID() string          { return c.Frame.Tags.GetUnescaped("id") }
func (c UserNotice) RoomID() (int64, bool) { return c.Frame.Tags.GetInt("room-id") }
func (c UserNotice) UserID() (int64, bool) { return c.Frame.Tags.GetInt("user-id") }
func (c UserNotice) Mod() bool           { return c.Frame.Tags.GetBool("mod") }

// SubPlan returns the sub-plan tag, relevant for Kind in
// {UserNoticeSub,UserNoticeResub,UserNoticeSubgift,...}.
func (c UserNotice) SubPlan() (SubPlan, string) {
	return ParseSubPlan(c.Frame.Tags.GetUnescaped("msg-param-sub-plan"))
}

// CumulativeMonths returns msg-param-cumulative-months, relevant for resub.
func (c UserNotice) CumulativeMonths() (int64, bool) {
	return c.Frame.Tags.GetInt("msg-param-cumulative-months")
}

// RaidViewerCount returns msg-param-viewerCount, relevant for raid.
func (c UserNotice) RaidViewerCount() (int64, bool) {
	return c.Frame.Tags.GetInt("msg-param-viewerCount")
}

// RecipientDisplayName returns msg-param-recipient-display-name, relevant
// for subgift.
func (c UserNotice) RecipientDisplayName() string {
	return c.Frame.Tags.GetUnescaped("msg-param-recipient-display-name")
}

// UserState mirrors our own badges/mod status in a channel, sent on JOIN
// and whenever it changes.
type UserState struct {
	Frame   Frame
	Channel string
}

func (c UserState) frame() Frame { return c.Frame }

func NewUserState(f Frame) (UserState, error) {
	if f.Command != "USERSTATE" {
		return UserState{}, &InvalidCommandError{Expected: "USERSTATE", Got: f.Command}
	}
	ch := f.Arg(0)
	if ch == "" {
		return UserState{}, &ExpectedArgError{Pos: 0}
	}
	return UserState{Frame: f, Channel: ch}, nil
}

func (c UserState) IsModerator() bool    { return c.Frame.Tags.GetBool("mod") }
func (c UserState) Badges() []Badge      { return ParseBadges(c.Frame.Tags.GetUnescaped("badges")) }
func (c UserState) BadgeInfo() []Badge   { return ParseBadges(c.Frame.Tags.GetUnescaped("badge-info")) }
func (c UserState) Color() Color {
	col, _ := ParseColor(c.Frame.Tags.GetUnescaped("color"))
	return col
}
func (c UserState) EmoteSets() []string {
	return splitNonEmpty(c.Frame.Tags.GetUnescaped("emote-sets"), ',')
}

// Whisper is a direct message between two users, relayed by the server
// rather than targeted at a channel.
type Whisper struct {
	Frame    Frame
	Name     string
	Data     string
	CTCP     CTCPKind
	CTCPName string
	IsAction bool
}

func (c Whisper) frame() Frame { return c.Frame }

func NewWhisper(f Frame) (Whisper, error) {
	if f.Command != "WHISPER" {
		return Whisper{}, &InvalidCommandError{Expected: "WHISPER", Got: f.Command}
	}
	if f.Prefix.Nick == "" {
		return Whisper{}, ErrExpectedNick
	}
	if !f.HasTrailing {
		return Whisper{}, ErrExpectedData
	}
	kind, name, body, ok := splitCTCP(f.Trailing)
	w := Whisper{Frame: f, Name: f.Prefix.Nick}
	if ok {
		w.CTCP, w.CTCPName, w.Data = kind, name, body
		w.IsAction = kind == CTCPAction
	} else {
		w.Data = f.Trailing
	}
	return w, nil
}

func (c Whisper) DisplayName() string { return c.Frame.Tags.GetUnescaped("display-name") }

// Raw is the fallback variant for any command word this module does not
// model explicitly.
type Raw struct {
	Frame Frame
}

func (c Raw) frame() Frame { return c.Frame }

// DecodeCommand classifies f by its command word and returns the matching
// typed variant, or Raw if the word is unrecognized. A recognized command
// word whose required fields are missing still returns the construction
// error rather than silently falling back to Raw, so callers can log and
// drop the frame rather than misinterpret it.
func DecodeCommand(f Frame) (Command, error) {
	switch f.Command {
	case "001":
		return NewIrcReady(f)
	case "376":
		return NewReady(f)
	case "CAP":
		return NewCap(f)
	case "CLEARCHAT":
		return NewClearChat(f)
	case "CLEARMSG":
		return NewClearMsg(f)
	case "GLOBALUSERSTATE":
		return NewGlobalUserState(f)
	case "HOSTTARGET":
		return NewHostTarget(f)
	case "JOIN":
		return NewJoin(f)
	case "NOTICE":
		return NewNotice(f)
	case "PART":
		return NewPart(f)
	case "PING":
		return NewPing(f)
	case "PONG":
		return NewPong(f)
	case "PRIVMSG":
		return NewPrivmsg(f)
	case "RECONNECT":
		return NewReconnect(f)
	case "ROOMSTATE":
		return NewRoomState(f)
	case "USERNOTICE":
		return NewUserNotice(f)
	case "USERSTATE":
		return NewUserState(f)
	case "WHISPER":
		return NewWhisper(f)
	default:
		return Raw{Frame: f}, nil
	}
}

// splitNonEmpty splits s on sep, dropping empty fields (a tag value of ""
// means "no items", not one empty item).
func splitNonEmpty(s string, sep byte) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
