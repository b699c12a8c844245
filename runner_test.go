package twitchchat

import (
	"strings"
	"testing"
	"time"

	"github.com/wirecrab/twitchchat/twitchtest"
)

func TestHandshakeAnonymous(t *testing.T) {
	srv := twitchtest.NewServer()
	defer srv.Close()

	r := NewRunner(Anonymous(), WithDialer(srv))

	done := make(chan struct {
		id  Identity
		err error
	}, 1)
	go func() {
		id, _, err := r.Handshake()
		done <- struct {
			id  Identity
			err error
		}{id, err}
	}()

	srv.WriteLines(
		":tmi.twitch.tv CAP * ACK :twitch.tv/membership",
		":tmi.twitch.tv CAP * ACK :twitch.tv/tags",
		":tmi.twitch.tv CAP * ACK :twitch.tv/commands",
		":tmi.twitch.tv 376 justinfan1234 :>",
	)

	select {
	case res := <-done:
		if res.err != nil {
			t.Fatalf("Handshake: %v", res.err)
		}
		if res.id.Kind != IdentityAnonymous {
			t.Errorf("Kind = %v, want IdentityAnonymous", res.id.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("Handshake did not complete in time")
	}

	sent := srv.Sent()
	if len(sent) == 0 {
		t.Fatal("no lines sent during handshake")
	}
	last := sent[len(sent)-1]
	if last != "NICK justinfan1234" {
		t.Errorf("last sent line = %q, want NICK justinfan1234", last)
	}
}

func TestHandshakeBadPass(t *testing.T) {
	srv := twitchtest.NewServer()
	defer srv.Close()

	r := NewRunner(Config{Name: "museun", Token: "oauth:bad"}, WithDialer(srv))

	errCh := make(chan error, 1)
	go func() {
		_, _, err := r.Handshake()
		errCh <- err
	}()

	srv.WriteString(":tmi.twitch.tv NOTICE * :Login authentication failed")

	select {
	case err := <-errCh:
		if err != ErrBadPass {
			t.Errorf("err = %v, want ErrBadPass", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Handshake did not complete in time")
	}
}

func TestHandshakeReconnect(t *testing.T) {
	srv := twitchtest.NewServer()
	defer srv.Close()

	r := NewRunner(Anonymous(), WithDialer(srv))

	errCh := make(chan error, 1)
	go func() {
		_, _, err := r.Handshake()
		errCh <- err
	}()

	srv.WriteString(":tmi.twitch.tv RECONNECT")

	select {
	case err := <-errCh:
		if err != ErrShouldReconnect {
			t.Errorf("err = %v, want ErrShouldReconnect", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Handshake did not complete in time")
	}
}

func TestRunRepliesToPingWithSameToken(t *testing.T) {
	srv := twitchtest.NewServer()
	defer srv.Close()

	r := NewRunner(Anonymous(), WithDialer(srv))
	r.identity = AnonymousIdentity(Capabilities{})

	runErr := make(chan error, 1)
	go func() { runErr <- r.Run(nil) }()

	srv.WriteString("PING :abc123")

	deadline := time.After(time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("never observed a PONG reply")
		default:
		}
		found := false
		for _, line := range srv.Sent() {
			if line == "PONG :abc123" {
				found = true
			}
		}
		if found {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	r.Quit()
	select {
	case err := <-runErr:
		if err != nil {
			t.Errorf("Run returned %v, want nil after Quit", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestRunSelfJoinCreatesChannel(t *testing.T) {
	srv := twitchtest.NewServer()
	defer srv.Close()

	r := NewRunner(Anonymous(), WithDialer(srv))
	r.identity = AnonymousIdentity(Capabilities{})

	go r.Run(nil)
	defer r.Quit()

	srv.WriteString(":justinfan1234!justinfan1234@justinfan1234.tmi.twitch.tv JOIN #museun")
	waitForChannel(t, r, "#museun")
}

func TestSayQueuesUnderChannel(t *testing.T) {
	srv := twitchtest.NewServer()
	defer srv.Close()

	r := NewRunner(Anonymous(), WithDialer(srv))
	r.identity = AnonymousIdentity(Capabilities{})

	go r.Run(nil)
	defer r.Quit()

	srv.WriteString(":justinfan1234!justinfan1234@justinfan1234.tmi.twitch.tv JOIN #museun")
	waitForChannel(t, r, "#museun")

	if err := r.Say("museun", "hello there"); err != nil {
		t.Fatalf("Say: %v", err)
	}

	deadline := time.After(time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("PRIVMSG was never sent")
		default:
		}
		for _, line := range srv.Sent() {
			if strings.Contains(line, "PRIVMSG #museun :hello there") {
				return
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSayRejectsUnjoinedChannel(t *testing.T) {
	srv := twitchtest.NewServer()
	defer srv.Close()

	r := NewRunner(Anonymous(), WithDialer(srv))
	r.identity = AnonymousIdentity(Capabilities{})

	if err := r.Say("museun", "hello there"); err != ErrNotOnChannel {
		t.Errorf("err = %v, want ErrNotOnChannel", err)
	}
}

func TestPartRejectsUntrackedChannel(t *testing.T) {
	srv := twitchtest.NewServer()
	defer srv.Close()

	r := NewRunner(Anonymous(), WithDialer(srv))
	if err := r.Part("museun"); err != ErrNotOnChannel {
		t.Errorf("err = %v, want ErrNotOnChannel", err)
	}
}

func TestJoinRejectsAlreadyTrackedChannel(t *testing.T) {
	srv := twitchtest.NewServer()
	defer srv.Close()

	r := NewRunner(Anonymous(), WithDialer(srv))
	r.channels.join("museun")

	if err := r.Join("museun"); err != ErrAlreadyOnChannel {
		t.Errorf("err = %v, want ErrAlreadyOnChannel", err)
	}
}

func TestRunTracksHostHidden(t *testing.T) {
	srv := twitchtest.NewServer()
	defer srv.Close()

	r := NewRunner(Anonymous(), WithDialer(srv))
	r.identity = AnonymousIdentity(Capabilities{})

	go r.Run(nil)
	defer r.Quit()

	srv.WriteString(":tmi.twitch.tv 396 justinfan1234 masked.host.example :is now your displayed host")

	deadline := time.After(time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("DisplayHost was never recorded")
		default:
		}
		if r.DisplayHost() == "masked.host.example" {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func waitForChannel(t *testing.T, r *Runner, channel string) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case <-deadline:
			t.Fatalf("channel %s was never registered", channel)
		default:
		}
		if _, ok := r.channels.get(channel); ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}
