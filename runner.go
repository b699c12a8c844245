package twitchchat

import (
	"bufio"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// livenessState is the PING/PONG state machine described in spec.md §4.8.
type livenessState int

const (
	livenessActivity livenessState = iota
	livenessWaitingForPong
)

// Liveness window/timeout constants.
const (
	livenessWindow  = 45 * time.Second
	livenessTimeout = 10 * time.Second
)

// writeRequest is one line queued on the shared outbound channel. channel is
// the sniffed PRIVMSG target, if any; non-PRIVMSG writes bypass per-channel
// queueing and are written at once (see routeWrite).
type writeRequest struct {
	channel   string
	isPrivmsg bool
	line      []byte
}

// Runner drives a single Twitch IRC session: registration handshake, the
// cooperative main loop, PING/PONG liveness, and outbound rate limiting.
// It generalizes the teacher's Client.ConnectAndRun/mainLoop/startReading
// trio (client.go) from a generic RFC-1459 handler-chain model to the
// Twitch-specific typed-command dispatcher and channel queueing of
// SPEC_FULL.md §6.8.
type Runner struct {
	conn      io.ReadWriteCloser
	log       *logrus.Logger
	metrics   *Metrics
	rateClass RateClass

	cfg        Config
	dispatcher *dispatcher
	channels   *channelTable
	global     *Bucket

	writeCh    chan writeRequest
	activityCh chan struct{}
	quitCh     chan struct{}
	quitOnce   sync.Once

	identity Identity

	// hostHidden records the last displayed host reported by numeric 396
	// (RPL_HOSTHIDDEN), if any server in the session sends it.
	hostHidden string
}

// NewRunner constructs a Runner for cfg, applying opts in order. WithDialer
// must be supplied (or set after construction) before Handshake is called.
func NewRunner(cfg Config, opts ...Option) *Runner {
	r := &Runner{
		log:        logrus.StandardLogger(),
		rateClass:  RateClassRegular,
		cfg:        cfg,
		dispatcher: newDispatcher(),
		writeCh:    make(chan writeRequest, 64),
		activityCh: make(chan struct{}, 1),
		quitCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.global = NewBucketFromClass(r.rateClass)
	r.channels = newChannelTable(r.rateClass)
	return r
}

// DisplayHost returns the host last reported by RPL_HOSTHIDDEN (numeric
// 396), or "" if the server never sent one this session.
func (r *Runner) DisplayHost() string { return r.hostHidden }

// Quit signals the runner to stop. It is safe to call more than once and
// from any goroutine; only the first call has effect, matching the
// one-shot quit latch of spec.md §5.
func (r *Runner) Quit() {
	r.quitOnce.Do(func() { close(r.quitCh) })
}

// Join writes a JOIN for channel to the connection. The channel entry is
// created when the server echoes our own JOIN back. It returns
// ErrAlreadyOnChannel if the channel is already tracked rather than sending
// a redundant JOIN.
func (r *Runner) Join(channel string) error {
	if _, ok := r.channels.get(channel); ok {
		return ErrAlreadyOnChannel
	}
	return sendJoin(r.conn, channel)
}

// Part writes a PART for channel to the connection. It returns ErrNotOnChannel if the
// channel is not tracked.
func (r *Runner) Part(channel string) error {
	if _, ok := r.channels.get(channel); !ok {
		return ErrNotOnChannel
	}
	return sendPart(r.conn, channel)
}

// Say queues a PRIVMSG to channel on the shared writer channel, where it
// will be routed into that channel's FIFO and drained against the global
// rate limiter. It returns ErrNotOnChannel if the channel is not tracked.
func (r *Runner) Say(channel, message string) error {
	select {
	case <-r.quitCh:
		return ErrClientDisconnected
	default:
	}
	if _, ok := r.channels.get(channel); !ok {
		return ErrNotOnChannel
	}
	var line []byte
	line = append(line, []byte(normalizeChannel(channel)+" :"+message)...)
	select {
	case r.writeCh <- writeRequest{channel: normalizeChannel(channel), isPrivmsg: true, line: line}:
		return nil
	case <-r.quitCh:
		return ErrClientDisconnected
	}
}

// Handshake performs the registration sequence and reads frames until the
// identity resolves or a fatal handshake condition occurs, per spec.md §4.8.
// It returns the resolved Identity and any frames read during the handshake
// that were not part of it, so the caller can replay them into Run.
func (r *Runner) Handshake() (Identity, []Frame, error) {
	id, leftover, err := r.handshake()
	if err == nil {
		r.identity = id
	}
	return id, leftover, err
}

func (r *Runner) handshake() (Identity, []Frame, error) {
	if err := register(r.conn, r.cfg); err != nil {
		return Identity{}, nil, err
	}

	caps := Capabilities{}
	outstanding := len(r.cfg.requestedCaps())
	var leftover []Frame
	scanner := bufio.NewScanner(r.conn)

	for {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Identity{}, leftover, err
			}
			return Identity{}, leftover, ErrUnexpectedEOF
		}
		f, err := ParseFrame(scanner.Text())
		if err != nil {
			r.log.WithError(err).Warn("handshake: parse error")
			continue
		}

		switch f.Command {
		case rplReady:
			if r.cfg.isAnonymous() {
				id := AnonymousIdentity(caps)
				return id, leftover, nil
			}
			if outstanding == 0 && !(caps.Tags && caps.Commands) {
				id := Identity{Kind: IdentityBasic, Name: r.cfg.Name, Caps: caps}
				return id, leftover, nil
			}
			// Otherwise keep reading for GLOBALUSERSTATE/remaining ACKs.
		case cmdCap:
			cap, err := NewCap(f)
			if err != nil {
				r.log.WithError(err).Warn("handshake: malformed CAP line")
				continue
			}
			if !cap.Acknowledged {
				return Identity{}, leftover, &InvalidCapError{Name: cap.Capability}
			}
			caps.ack(cap.Capability)
			outstanding--
		case "GLOBALUSERSTATE":
			gus, err := NewGlobalUserState(f)
			if err != nil {
				continue
			}
			id := Identity{Kind: IdentityFull, Name: r.cfg.Name, Caps: caps}
			id.UserID, _ = gus.UserID()
			if dn, ok := gus.DisplayName(); ok {
				id.DisplayName = dn
			}
			id.Color = gus.Color()
			return id, leftover, nil
		case cmdPing:
			ping, err := NewPing(f)
			if err == nil {
				_ = sendPong(r.conn, ping.Token)
			}
		case "NOTICE":
			notice, err := NewNotice(f)
			if err == nil && notice.Message == "Login authentication failed" {
				return Identity{}, leftover, ErrBadPass
			}
			leftover = append(leftover, f)
		case "RECONNECT":
			return Identity{}, leftover, ErrShouldReconnect
		default:
			leftover = append(leftover, f)
		}
	}
}

// Run executes the cooperative main loop described in spec.md §4.8 until the
// quit signal is observed or a fatal runtime error occurs. replay is played
// through the dispatcher first, in order, before live frames are read.
func (r *Runner) Run(replay []Frame) error {
	for _, f := range replay {
		r.handleFrame(f)
	}

	readCh := r.startReading()
	idle := time.NewTimer(livenessWindow)
	defer idle.Stop()
	state := livenessActivity
	lastActivity := time.Now()
	waitingSince := time.Time{}

	for {
		select {
		case f, ok := <-readCh:
			if !ok {
				return ErrUnexpectedEOF
			}
			if rc, isReconnect := r.asReconnect(f); isReconnect {
				_ = rc
				return ErrShouldReconnect
			}
			r.handleFrame(f)
			state, lastActivity = livenessActivity, time.Now()

		case req := <-r.writeCh:
			r.routeWrite(req)

		case <-r.activityCh:
			state, lastActivity = livenessActivity, time.Now()

		case <-r.quitCh:
			r.drainAll()
			_ = sendQuit(r.conn)
			return nil

		case now := <-idle.C:
			switch state {
			case livenessActivity:
				if now.Sub(lastActivity) > livenessWindow {
					_ = sendPing(r.conn, now.Format(time.RFC3339Nano))
					state, waitingSince = livenessWaitingForPong, now
				}
			case livenessWaitingForPong:
				if now.Sub(waitingSince) > livenessTimeout {
					return ErrTimedOut
				}
			}
			idle.Reset(livenessWindow)
		}

		r.channels.drain(r.global, r.writeLine)
	}
}

func (r *Runner) asReconnect(f Frame) (Reconnect, bool) {
	if f.Command != "RECONNECT" {
		return Reconnect{}, false
	}
	rc, err := NewReconnect(f)
	return rc, err == nil
}

// handleFrame applies the transitions listed in spec.md §4.8's "Main loop"
// section, then forwards the frame to the dispatcher.
func (r *Runner) handleFrame(f Frame) {
	switch f.Command {
	case cmdPing:
		if ping, err := NewPing(f); err == nil {
			if err := sendPong(r.conn, ping.Token); err != nil {
				r.log.WithError(err).Warn("failed to reply to ping")
			}
			r.notifyActivity()
		}
	case cmdPong:
		r.notifyActivity()
	case "JOIN":
		if j, err := NewJoin(f); err == nil && j.Name == r.identity.Name {
			r.channels.join(j.Channel)
			r.metrics.setChannelsJoined(r.channels.len())
		}
	case "PART":
		if p, err := NewPart(f); err == nil && p.Name == r.identity.Name {
			r.channels.part(p.Channel)
			r.metrics.setChannelsJoined(r.channels.len())
		}
	case "ROOMSTATE":
		if rs, err := NewRoomState(f); err == nil {
			if cs, ok := r.channels.get(rs.Channel); ok {
				if secs, has := rs.SlowSeconds(); has {
					cs.setSlowMode(time.Duration(secs) * time.Second)
				}
			}
		}
	case "NOTICE":
		if n, err := NewNotice(f); err == nil {
			r.handleNotice(n)
		}
	case rplHostHidden:
		if host := f.Arg(1); host != "" {
			r.hostHidden = host
		}
	}

	if err := r.dispatcher.dispatch(f); err != nil {
		r.log.WithError(err).Warn("dispatch: decode error")
		return
	}
	r.metrics.incDispatched()
}

// handleNotice routes the channel-affecting msg-id values per spec.md §4.7.
func (r *Runner) handleNotice(n Notice) {
	cs, ok := r.channels.get(n.Channel)
	if !ok {
		return
	}
	switch n.MsgID {
	case NoticeSlowOn:
		d := 30 * time.Second
		if secs, has := cs.slowModeFromRoomstate(); has {
			d = secs
		}
		cs.setSlowMode(d)
	case NoticeSlowOff:
		cs.setSlowMode(0)
	case NoticeMsgRatelimit:
		cs.markRateLimited(time.Now())
		r.metrics.incRateLimitWait()
	case NoticeMsgBanned:
		r.channels.part(n.Channel)
	}
}

// notifyActivity signals the main loop without blocking if it's busy;
// losing a redundant activity ping is harmless since another frame will
// reset liveness again shortly.
func (r *Runner) notifyActivity() {
	select {
	case r.activityCh <- struct{}{}:
	default:
	}
}

// routeWrite writes a non-PRIVMSG line at once, taking a global token when
// one is available; the line is written even when the global bucket is
// empty. A PRIVMSG is enqueued into its channel's FIFO. Say already rejected any
// channel that isn't tracked, so the join here is always a lookup of an
// existing entry.
func (r *Runner) routeWrite(req writeRequest) {
	if !req.isPrivmsg {
		_, _ = r.global.Take()
		r.writeRaw(req.line)
		return
	}
	cs := r.channels.join(req.channel)
	cs.enqueue(req.line)
	r.metrics.setQueueDepth(req.channel, cs.depth())
}

func (r *Runner) writeLine(channel string, line []byte) error {
	err := r.writeRaw(append([]byte(cmdPrivmsg+" "), line...))
	if cs, ok := r.channels.get(channel); ok {
		r.metrics.setQueueDepth(channel, cs.depth())
	}
	return err
}

func (r *Runner) writeRaw(line []byte) error {
	line = append(line, '\r', '\n')
	_, err := r.conn.Write(line)
	if err != nil {
		r.log.WithError(err).Error("write failed")
		return err
	}
	r.metrics.incSent()
	return nil
}

// drainAll flushes every channel's queue against the global budget before
// QUIT is sent, per spec.md §4.8's cancellation rule.
func (r *Runner) drainAll() {
	r.channels.drain(r.global, r.writeLine)
}

func (r *Runner) startReading() <-chan Frame {
	out := make(chan Frame)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r.conn)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			f, err := ParseFrame(line)
			if err != nil {
				r.log.WithError(err).Warn("parse error")
				continue
			}
			out <- f
		}
	}()
	return out
}

// slowModeFromRoomstate reports the slow-mode duration a prior ROOMSTATE
// already recorded for this channel, if any. NOTICE msg_id=slow_on carries
// no duration of its own, so handleNotice calls this first and only falls
// back to the 30s default from spec.md §4.7 when it returns false.
func (c *channelState) slowModeFromRoomstate() (time.Duration, bool) {
	if c.slowMode > 0 {
		return c.slowMode, true
	}
	return 0, false
}
