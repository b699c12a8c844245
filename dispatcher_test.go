package twitchchat

import (
	"testing"
	"time"
)

func TestDispatchFanOut(t *testing.T) {
	d := newDispatcher()
	a := Subscribe[Ping](d, 1)
	b := Subscribe[Ping](d, 1)

	f, _ := ParseFrame("PING :token")
	if err := d.dispatch(f); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	pa := <-a
	pb := <-b
	if pa.Token != "token" || pb.Token != "token" {
		t.Errorf("got %+v / %+v, want both token=token", pa, pb)
	}
}

func TestDispatchOnlyMatchingType(t *testing.T) {
	d := newDispatcher()
	pings := Subscribe[Ping](d, 1)
	joins := Subscribe[Join](d, 1)

	f, _ := ParseFrame(":museun!museun@museun JOIN #museun")
	if err := d.dispatch(f); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	select {
	case <-pings:
		t.Error("Ping subscriber received a JOIN frame")
	default:
	}

	select {
	case j := <-joins:
		if j.Channel != "#museun" {
			t.Errorf("Channel = %q, want #museun", j.Channel)
		}
	case <-time.After(time.Second):
		t.Error("Join subscriber received nothing")
	}
}

func TestClearSubscriptionsClosesChannel(t *testing.T) {
	d := newDispatcher()
	ch := Subscribe[Ping](d, 1)

	removed := ClearSubscriptions[Ping](d)
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	if _, ok := <-ch; ok {
		t.Error("channel not closed after ClearSubscriptions")
	}
}

func TestClearSubscriptionsKeepsInternal(t *testing.T) {
	d := newDispatcher()
	internal := SubscribeInternal[Ping](d, 1)

	removed := ClearSubscriptions[Ping](d)
	if removed != 0 {
		t.Errorf("removed = %d, want 0 (internal subscriber must survive)", removed)
	}

	f, _ := ParseFrame("PING :abc")
	d.dispatch(f)

	select {
	case p := <-internal:
		if p.Token != "abc" {
			t.Errorf("Token = %q, want abc", p.Token)
		}
	case <-time.After(time.Second):
		t.Error("internal subscriber received nothing after ClearSubscriptions")
	}
}

func TestClearSubscriptionsAll(t *testing.T) {
	d := newDispatcher()
	Subscribe[Ping](d, 1)
	Subscribe[Join](d, 1)
	SubscribeInternal[Ping](d, 1)

	removed := d.ClearSubscriptionsAll()
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
}

func TestWaitForCachesResult(t *testing.T) {
	d := newDispatcher()

	done := make(chan Ping, 1)
	go func() {
		done <- WaitFor[Ping](d)
	}()

	f, _ := ParseFrame("PING :first")
	// retry dispatch until the waiter has registered, since WaitFor's
	// goroutine start is not synchronized with this call.
	for {
		d.dispatch(f)
		select {
		case p := <-done:
			if p.Token != "first" {
				t.Errorf("Token = %q, want first", p.Token)
			}
			goto cached
		default:
		}
	}
cached:
	// a second WaitFor must return the cached value without a further dispatch.
	p2 := WaitFor[Ping](d)
	if p2.Token != "first" {
		t.Errorf("cached Token = %q, want first", p2.Token)
	}
}

func TestResetClearsInternalAndCache(t *testing.T) {
	d := newDispatcher()
	internal := SubscribeInternal[Ping](d, 1)

	f, _ := ParseFrame("PING :x")
	d.dispatch(f)
	<-internal

	d.Reset()

	if _, ok := <-internal; ok {
		t.Error("internal subscriber channel not closed by Reset")
	}
}

func TestDispatchUnknownCommandIsRaw(t *testing.T) {
	d := newDispatcher()
	raws := Subscribe[Raw](d, 1)

	f, _ := ParseFrame(":tmi.twitch.tv SOMETHINGNEW a b")
	if err := d.dispatch(f); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	select {
	case <-raws:
	case <-time.After(time.Second):
		t.Error("Raw subscriber received nothing for an unrecognized command")
	}
}
