package twitchchat

import "testing"

func TestNewPrivmsgAction(t *testing.T) {
	f, err := ParseFrame(":test!user@host PRIVMSG #museun :\x01ACTION waves\x01")
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	p, err := NewPrivmsg(f)
	if err != nil {
		t.Fatalf("NewPrivmsg: %v", err)
	}
	if !p.IsAction {
		t.Error("IsAction = false, want true")
	}
	if p.Data != "waves" {
		t.Errorf("Data = %q, want waves", p.Data)
	}
	if p.Channel != "#museun" {
		t.Errorf("Channel = %q, want #museun", p.Channel)
	}
}

func TestNewPrivmsgPlain(t *testing.T) {
	f, _ := ParseFrame(":test!test@test PRIVMSG #museun :this is a test")
	p, err := NewPrivmsg(f)
	if err != nil {
		t.Fatalf("NewPrivmsg: %v", err)
	}
	if p.IsAction {
		t.Error("IsAction = true, want false")
	}
	if p.Name != "test" {
		t.Errorf("Name = %q, want test", p.Name)
	}
	if p.Data != "this is a test" {
		t.Errorf("Data = %q, want %q", p.Data, "this is a test")
	}
}

func TestNewPrivmsgWrongCommand(t *testing.T) {
	f, _ := ParseFrame("PING :123")
	if _, err := NewPrivmsg(f); err == nil {
		t.Fatal("expected InvalidCommandError")
	}
}

func TestNewPrivmsgMissingNick(t *testing.T) {
	f, _ := ParseFrame(":tmi.twitch.tv PRIVMSG #museun :hi")
	if _, err := NewPrivmsg(f); err != ErrExpectedNick {
		t.Errorf("err = %v, want ErrExpectedNick", err)
	}
}

func TestNewPing(t *testing.T) {
	f, _ := ParseFrame("PING :1234567890")
	p, err := NewPing(f)
	if err != nil {
		t.Fatalf("NewPing: %v", err)
	}
	if p.Token != "1234567890" {
		t.Errorf("Token = %q, want 1234567890", p.Token)
	}
}

func TestNewCap(t *testing.T) {
	f, _ := ParseFrame(":tmi.twitch.tv CAP * ACK :twitch.tv/membership")
	c, err := NewCap(f)
	if err != nil {
		t.Fatalf("NewCap: %v", err)
	}
	if !c.Acknowledged {
		t.Error("Acknowledged = false, want true")
	}
	if c.Capability != "twitch.tv/membership" {
		t.Errorf("Capability = %q, want twitch.tv/membership", c.Capability)
	}
}

func TestNewNoticeMsgID(t *testing.T) {
	f, _ := ParseFrame("@msg-id=slow_on :tmi.twitch.tv NOTICE #museun :This room is now in slow mode.")
	n, err := NewNotice(f)
	if err != nil {
		t.Fatalf("NewNotice: %v", err)
	}
	if n.MsgID != NoticeSlowOn {
		t.Errorf("MsgID = %v, want NoticeSlowOn", n.MsgID)
	}
}

func TestNewNoticeUnknownMsgID(t *testing.T) {
	f, _ := ParseFrame("@msg-id=some_future_value :tmi.twitch.tv NOTICE #museun :new feature")
	n, err := NewNotice(f)
	if err != nil {
		t.Fatalf("NewNotice: %v", err)
	}
	if n.MsgID != NoticeUnknown {
		t.Errorf("MsgID = %v, want NoticeUnknown", n.MsgID)
	}
	if n.RawID != "some_future_value" {
		t.Errorf("RawID = %q, want some_future_value", n.RawID)
	}
}

func TestDecodeCommandFallsBackToRaw(t *testing.T) {
	f, _ := ParseFrame(":tmi.twitch.tv WHATEVER x y z")
	cmd, err := DecodeCommand(f)
	if err != nil {
		t.Fatalf("DecodeCommand: %v", err)
	}
	if _, ok := cmd.(Raw); !ok {
		t.Fatalf("cmd = %T, want Raw", cmd)
	}
}

func TestDecodeCommandJoin(t *testing.T) {
	f, _ := ParseFrame(":museun!museun@museun JOIN #museun")
	cmd, err := DecodeCommand(f)
	if err != nil {
		t.Fatalf("DecodeCommand: %v", err)
	}
	j, ok := cmd.(Join)
	if !ok {
		t.Fatalf("cmd = %T, want Join", cmd)
	}
	if j.Name != "museun" || j.Channel != "#museun" {
		t.Errorf("Join = %+v, want {museun #museun}", j)
	}
}

func TestHostTargetStop(t *testing.T) {
	f, _ := ParseFrame(":tmi.twitch.tv HOSTTARGET #hosting :- 0")
	ht, err := NewHostTarget(f)
	if err != nil {
		t.Fatalf("NewHostTarget: %v", err)
	}
	if ht.Kind != HostStop {
		t.Errorf("Kind = %v, want HostStop", ht.Kind)
	}
	if !ht.HasViewers || ht.Viewers != 0 {
		t.Errorf("Viewers = (%d, %v), want (0, true)", ht.Viewers, ht.HasViewers)
	}
}

func TestHostTargetStart(t *testing.T) {
	f, _ := ParseFrame(":tmi.twitch.tv HOSTTARGET #hosting :#target 42")
	ht, err := NewHostTarget(f)
	if err != nil {
		t.Fatalf("NewHostTarget: %v", err)
	}
	if ht.Kind != HostStart {
		t.Errorf("Kind = %v, want HostStart", ht.Kind)
	}
	if ht.Target != "#target" {
		t.Errorf("Target = %q, want #target", ht.Target)
	}
	if ht.Viewers != 42 {
		t.Errorf("Viewers = %d, want 42", ht.Viewers)
	}
}
