package twitchchat

import (
	"io"
	"strconv"
	"strings"
	"time"
)

// parameterLimit is the maximum number of space-delimited parameters a
// message may carry, per the protocol (RFC 2812 §2.3). Exceeding it still
// sends, but ErrTooManyParams is returned alongside so the caller can log it.
const parameterLimit = 15

// maxLineLength is the conservative 512-byte wire limit (including the
// trailing CRLF) a server is free to truncate beyond.
const maxLineLength = 512

// writeLine joins parts with a single space, appends CRLF, and writes the
// result in one call so a single short write can't interleave with another
// goroutine's line on the same connection. parts[0] is the command word;
// trailingIdx counts the parts after it (0 is parts[1]), and the part it
// names is written as the trailing component, prefixed with ':'. A negative
// trailingIdx writes no trailing component.
func writeLine(w io.Writer, trailingIdx int, parts ...string) error {
	var b strings.Builder
	b.Grow(64)
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		if trailingIdx >= 0 && i == trailingIdx+1 {
			b.WriteByte(':')
		}
		b.WriteString(p)
	}
	b.WriteString("\r\n")
	line := b.String()

	var err error
	if len(parts) > parameterLimit {
		err = ErrTooManyParams
	} else if len(line) > maxLineLength {
		err = ErrMessageTruncated
	}

	if _, werr := io.WriteString(w, line); werr != nil {
		return werr
	}
	return err
}

// normalizeChannel lowercases name and prefixes it with '#' if absent. The
// operation is idempotent: normalizing an already-normalized name returns it
// unchanged.
func normalizeChannel(name string) string {
	name = strings.ToLower(name)
	if !strings.HasPrefix(name, "#") {
		name = "#" + name
	}
	return name
}

// register writes the registration handshake: one CAP REQ per requested
// capability, then PASS, then NICK, per spec.md §4.4/§6.
func register(w io.Writer, cfg Config) error {
	for _, cap := range cfg.requestedCaps() {
		if err := writeLine(w, 1, cmdCap, "REQ", cap); err != nil {
			return err
		}
	}
	if err := writeLine(w, -1, cmdPass, cfg.Token); err != nil {
		return err
	}
	return writeLine(w, -1, cmdNick, cfg.Name)
}

func sendJoin(w io.Writer, channel string) error {
	return writeLine(w, -1, cmdJoin, normalizeChannel(channel))
}

func sendPart(w io.Writer, channel string) error {
	return writeLine(w, -1, cmdPart, normalizeChannel(channel))
}

func sendPrivmsg(w io.Writer, channel, message string) error {
	return writeLine(w, 1, cmdPrivmsg, normalizeChannel(channel), message)
}

func sendWhisper(w io.Writer, nick, message string) error {
	return writeLine(w, 1, cmdPrivmsg, jtvChannel, "/w "+nick+" "+message)
}

func sendPing(w io.Writer, token string) error {
	return writeLine(w, 0, cmdPing, token)
}

func sendPong(w io.Writer, token string) error {
	return writeLine(w, 0, cmdPong, token)
}

func sendQuit(w io.Writer) error {
	return writeLine(w, -1, cmdQuit)
}

// jtvCommand sends a "/command args..." line to the jtv pseudo-channel,
// joining args with a single space. Used by every /command helper below.
func jtvCommand(w io.Writer, cmd string, args ...string) error {
	body := "/" + cmd
	if len(args) > 0 {
		body += " " + strings.Join(args, " ")
	}
	return writeLine(w, 1, cmdPrivmsg, jtvChannel, body)
}

func ban(w io.Writer, user, reason string) error {
	if reason == "" {
		return jtvCommand(w, "ban", user)
	}
	return jtvCommand(w, "ban", user, reason)
}

func unban(w io.Writer, user string) error { return jtvCommand(w, "unban", user) }

// timeout accepts any prefix-subset of the optional trailing arguments: a
// duration alone, or a duration and a reason.
func timeout(w io.Writer, user string, dur time.Duration, reason string) error {
	args := []string{user}
	if dur > 0 {
		args = append(args, strconv.Itoa(int(dur.Seconds())))
	}
	if reason != "" {
		args = append(args, reason)
	}
	return jtvCommand(w, "timeout", args...)
}

func untimeout(w io.Writer, user string) error { return jtvCommand(w, "untimeout", user) }

func clearChat(w io.Writer) error { return jtvCommand(w, "clear") }

func setColor(w io.Writer, name string) error { return jtvCommand(w, "color", name) }

func commercial(w io.Writer, seconds int) error {
	if seconds <= 0 {
		return jtvCommand(w, "commercial")
	}
	return jtvCommand(w, "commercial", strconv.Itoa(seconds))
}

func disconnect(w io.Writer) error { return jtvCommand(w, "disconnect") }

func emoteOnly(w io.Writer, on bool) error {
	if on {
		return jtvCommand(w, "emoteonly")
	}
	return jtvCommand(w, "emoteonlyoff")
}

func followersOnly(w io.Writer, dur time.Duration) error {
	if dur <= 0 {
		return jtvCommand(w, "followersoff")
	}
	return jtvCommand(w, "followers", strconv.Itoa(int(dur.Minutes())))
}

func help(w io.Writer) error { return jtvCommand(w, "help") }

func host(w io.Writer, channel string) error { return jtvCommand(w, "host", channel) }

func unhost(w io.Writer) error { return jtvCommand(w, "unhost") }

// defaultMarkerLimit is the byte limit a marker comment is truncated to.
const defaultMarkerLimit = 140

func marker(w io.Writer, comment string) error {
	if len(comment) > defaultMarkerLimit {
		comment = comment[:defaultMarkerLimit]
	}
	if comment == "" {
		return jtvCommand(w, "marker")
	}
	return jtvCommand(w, "marker", comment)
}

func mod(w io.Writer, user string) error   { return jtvCommand(w, "mod", user) }
func unmod(w io.Writer, user string) error { return jtvCommand(w, "unmod", user) }
func mods(w io.Writer) error               { return jtvCommand(w, "mods") }

func r9kBeta(w io.Writer, on bool) error {
	if on {
		return jtvCommand(w, "r9kbeta")
	}
	return jtvCommand(w, "r9kbetaoff")
}

func raid(w io.Writer, channel string) error { return jtvCommand(w, "raid", channel) }
func unraid(w io.Writer) error                { return jtvCommand(w, "unraid") }

// defaultSlowSeconds is the duration /slow applies when the caller does not
// override it; Twitch's own client uses 120 seconds as the default.
const defaultSlowSeconds = 120 * time.Second

func slow(w io.Writer, dur time.Duration) error {
	if dur <= 0 {
		dur = defaultSlowSeconds
	}
	return jtvCommand(w, "slow", strconv.Itoa(int(dur.Seconds())))
}

func slowOff(w io.Writer) error { return jtvCommand(w, "slowoff") }

func subscribersOnly(w io.Writer, on bool) error {
	if on {
		return jtvCommand(w, "subscribers")
	}
	return jtvCommand(w, "subscribersoff")
}

func vip(w io.Writer, user string) error   { return jtvCommand(w, "vip", user) }
func unvip(w io.Writer, user string) error { return jtvCommand(w, "unvip", user) }
func vips(w io.Writer) error               { return jtvCommand(w, "vips") }

func me(w io.Writer, channel, action string) error {
	return sendPrivmsg(w, channel, "\x01ACTION "+action+"\x01")
}
