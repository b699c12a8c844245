/*
Package twitchchat implements a Twitch IRC chat client: wire decoding,
IRCv3 tags, a typed command model, outbound rate limiting, and a
session runner.

API

The main pieces:

	// ParseFrame decodes one CRLF-stripped line into a Frame.
	func ParseFrame(line string) (Frame, error)

	// DecodeCommand classifies a Frame into a typed command variant,
	// e.g. Privmsg, Join, Notice, falling back to Raw.
	func DecodeCommand(f Frame) (Command, error)

	// Runner drives a single session: registration handshake, the
	// cooperative main loop, liveness, and rate-limited outbound queues.
	type Runner struct {
		// ...
	}

	r := NewRunner(Anonymous(), WithDialer(conn))
	identity, leftover, err := r.Handshake()
	err = r.Run(leftover)

Encoding and decoding

ParseFrame/ParseStream handle decoding; encode.go's per-command helpers
and register() handle encoding. Typed command variants in
commands_typed.go wrap a Frame with validated, pre-computed accessors.

Subscribing to events

The dispatcher (dispatcher.go) is a type-keyed pub/sub: Subscribe[T] and
SubscribeInternal[T] return a channel of every T the Runner decodes.
*/
package twitchchat
