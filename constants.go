package twitchchat

// Command words this module parses or emits. The numeric replies in scope
// are 001, 376 and 396; commands_typed.go matches 001 and 376 as bare string
// literals. The rest of RFC-1459's numeric space is out of scope (see
// SPEC_FULL.md Non-goals).
const (
	cmdCap             = "CAP"
	cmdPass            = "PASS"
	cmdNick            = "NICK"
	cmdJoin            = "JOIN"
	cmdPart            = "PART"
	cmdPrivmsg         = "PRIVMSG"
	cmdPing            = "PING"
	cmdPong            = "PONG"
	cmdQuit            = "QUIT"
	rplIrcReady        = "001"
	rplReady           = "376"

	// rplHostHidden is numeric 396, sent by some servers ("<target> <host>
	// :is now your displayed host") when the client's displayed host
	// changes, e.g. via user mode +x/-x.
	rplHostHidden = "396"
)

// jtvChannel is the pseudo-channel Twitch commands (/ban, /timeout, ...) are
// addressed to, matching the original implementation's wire behavior.
const jtvChannel = "jtv"
