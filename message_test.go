package twitchchat

import "testing"

func TestParseFramePrivmsg(t *testing.T) {
	f, err := ParseFrame(":test!test@test PRIVMSG #museun :this is a test")
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	if f.Prefix.Nick != "test" {
		t.Errorf("Prefix.Nick = %q, want %q", f.Prefix.Nick, "test")
	}
	if f.Command != "PRIVMSG" {
		t.Errorf("Command = %q, want PRIVMSG", f.Command)
	}
	if got := f.Arg(0); got != "#museun" {
		t.Errorf("Arg(0) = %q, want #museun", got)
	}
	if f.Trailing != "this is a test" {
		t.Errorf("Trailing = %q, want %q", f.Trailing, "this is a test")
	}
}

func TestParseFramePing(t *testing.T) {
	f, err := ParseFrame("PING :1234567890")
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	if f.Command != "PING" {
		t.Errorf("Command = %q, want PING", f.Command)
	}
	if f.Args != "" {
		t.Errorf("Args = %q, want empty", f.Args)
	}
	if f.Trailing != "1234567890" {
		t.Errorf("Trailing = %q, want 1234567890", f.Trailing)
	}
}

func TestParseFrameTags(t *testing.T) {
	f, err := ParseFrame("@badge-info=;badges=broadcaster/1;color=#0000FF :test!test@test PRIVMSG #museun :hi")
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	if !f.HasTags {
		t.Fatal("HasTags = false, want true")
	}
	if got := f.Tags.Get("color"); got != "#0000FF" {
		t.Errorf("Tags.Get(color) = %q, want #0000FF", got)
	}
}

func TestParseFrameServerPrefix(t *testing.T) {
	f, err := ParseFrame(":tmi.twitch.tv CAP * ACK :twitch.tv/membership")
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	if !f.Prefix.IsServer() {
		t.Errorf("Prefix.IsServer() = false, want true for host %q", f.Prefix.Host)
	}
	if f.Prefix.Host != "tmi.twitch.tv" {
		t.Errorf("Prefix.Host = %q, want tmi.twitch.tv", f.Prefix.Host)
	}
}

func TestParseFrameEmpty(t *testing.T) {
	if _, err := ParseFrame(""); err != ErrEmptyMessage {
		t.Errorf("err = %v, want ErrEmptyMessage", err)
	}
}

func TestParseStreamIncomplete(t *testing.T) {
	buf := "PING :1\r\nPING :2\r\nPING :3"
	frames, errs := ParseStream(buf)
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	ice, ok := errs[0].(*IncompleteMessageError)
	if !ok {
		t.Fatalf("errs[0] = %T, want *IncompleteMessageError", errs[0])
	}
	if ice.Pos != len("PING :1\r\nPING :2\r\n") {
		t.Errorf("Pos = %d, want %d", ice.Pos, len("PING :1\r\nPING :2\r\n"))
	}
}

// parseStability verifies spec.md §8's "parse(input).map(get_raw) == input"
// invariant for inputs that round-trip without error.
func TestParseStability(t *testing.T) {
	inputs := []string{
		"PING :1234567890",
		":test!test@test PRIVMSG #museun :this is a test",
		"@color=#0000FF;mod=0 :tmi.twitch.tv PRIVMSG #a :b",
	}
	for _, in := range inputs {
		f, err := ParseFrame(in)
		if err != nil {
			t.Fatalf("ParseFrame(%q): %v", in, err)
		}
		if f.Raw != in {
			t.Errorf("Raw = %q, want %q", f.Raw, in)
		}
	}
}

func TestSplitCTCPAction(t *testing.T) {
	kind, name, body, ok := splitCTCP("\x01ACTION waves\x01")
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if kind != CTCPAction {
		t.Errorf("kind = %v, want CTCPAction", kind)
	}
	if name != "ACTION" {
		t.Errorf("name = %q, want ACTION", name)
	}
	if body != "waves" {
		t.Errorf("body = %q, want waves", body)
	}
}

func TestSplitCTCPNotCTCP(t *testing.T) {
	_, _, body, ok := splitCTCP("just a message")
	if ok {
		t.Fatal("ok = true, want false")
	}
	if body != "just a message" {
		t.Errorf("body = %q, want unchanged input", body)
	}
}
