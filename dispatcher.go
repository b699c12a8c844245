package twitchchat

import (
	"reflect"
	"sync"
)

// dispatcher is an in-process pub/sub registry keyed by the runtime type of
// a typed command variant, generalizing the teacher's Handler/Router chain
// (router.go) to Go's reflect.TypeOf instead of a command-word switch, per
// SPEC_FULL.md §6.5. subscribe[T] is expressed as the free function
// Subscribe since Go methods cannot carry their own type parameter.
type dispatcher struct {
	mu   sync.Mutex
	subs map[reflect.Type][]*subscription

	waiters map[reflect.Type]chan struct{}
	cached  map[reflect.Type]any
}

type subscription struct {
	typ      reflect.Type
	ch       chan any
	internal bool
}

func newDispatcher() *dispatcher {
	return &dispatcher{
		subs:    make(map[reflect.Type][]*subscription),
		waiters: make(map[reflect.Type]chan struct{}),
		cached:  make(map[reflect.Type]any),
	}
}

// Subscribe registers a new subscriber for T and returns a channel that
// receives every future T dispatched. buf sizes the channel; 0 is unbuffered.
func Subscribe[T any](d *dispatcher, buf int) <-chan T {
	var zero T
	raw := d.subscribeTyped(reflect.TypeOf(zero), buf, false)
	out := make(chan T, buf)
	go relay(raw, out)
	return out
}

// SubscribeInternal is the same as Subscribe but flags the subscription so
// ClearSubscriptions/ClearSubscriptionsAll do not remove it; only Reset does.
func SubscribeInternal[T any](d *dispatcher, buf int) <-chan T {
	var zero T
	raw := d.subscribeTyped(reflect.TypeOf(zero), buf, true)
	out := make(chan T, buf)
	go relay(raw, out)
	return out
}

// relay forwards decoded commands from the dispatcher's untyped channel to a
// caller-facing typed channel, closing out when raw is closed.
func relay[T any](raw chan any, out chan T) {
	defer close(out)
	for v := range raw {
		out <- v.(T)
	}
}

func (d *dispatcher) subscribeTyped(t reflect.Type, buf int, internal bool) chan any {
	d.mu.Lock()
	defer d.mu.Unlock()
	ch := make(chan any, buf)
	d.subs[t] = append(d.subs[t], &subscription{typ: t, ch: ch, internal: internal})
	return ch
}

// dispatch classifies frame by its command word, decodes it into a typed
// command, and fans the result out to every subscriber registered for that
// concrete type. A subscriber whose channel is full is skipped for this send
// (backpressure on itself only, per spec.md §4.5) rather than blocking
// delivery to the others. dispatch never removes a subscriber, including one
// whose reader has gone away; subscribers are removed only by
// ClearSubscriptions, ClearSubscriptionsAll and Reset. Delivery to the
// caller-facing channel happens on the subscriber's relay goroutine, so a
// value may arrive shortly after dispatch returns.
func (d *dispatcher) dispatch(f Frame) error {
	cmd, err := DecodeCommand(f)
	if err != nil {
		return err
	}
	t := reflect.TypeOf(cmd)

	d.mu.Lock()
	subs := d.subs[t]
	live := subs[:0:0]
	for _, s := range subs {
		select {
		case s.ch <- cmd:
			live = append(live, s)
		default:
			// channel full: this value is dropped for this subscriber,
			// which stays registered.
			live = append(live, s)
		}
	}
	d.subs[t] = live

	if waiter, ok := d.waiters[t]; ok {
		if _, already := d.cached[t]; !already {
			d.cached[t] = cmd
			close(waiter)
			delete(d.waiters, t)
		}
	}
	d.mu.Unlock()
	return nil
}

// ClearSubscriptions removes every non-internal subscriber of T, returning
// the count removed.
func ClearSubscriptions[T any](d *dispatcher) int {
	var zero T
	t := reflect.TypeOf(zero)
	d.mu.Lock()
	defer d.mu.Unlock()
	subs := d.subs[t]
	kept := subs[:0:0]
	removed := 0
	for _, s := range subs {
		if s.internal {
			kept = append(kept, s)
			continue
		}
		close(s.ch)
		removed++
	}
	d.subs[t] = kept
	return removed
}

// ClearSubscriptionsAll removes every non-internal subscriber across every
// type, returning the total count removed.
func (d *dispatcher) ClearSubscriptionsAll() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	removed := 0
	for t, subs := range d.subs {
		kept := subs[:0:0]
		for _, s := range subs {
			if s.internal {
				kept = append(kept, s)
				continue
			}
			close(s.ch)
			removed++
		}
		d.subs[t] = kept
	}
	return removed
}

// WaitFor blocks until the next T is dispatched, returning it. The result is
// cached: a second WaitFor[T] call after one has already landed returns the
// same cached value immediately without waiting for another T to arrive.
func WaitFor[T any](d *dispatcher) T {
	var zero T
	t := reflect.TypeOf(zero)

	d.mu.Lock()
	if v, ok := d.cached[t]; ok {
		d.mu.Unlock()
		return v.(T)
	}
	waiter, ok := d.waiters[t]
	if !ok {
		waiter = make(chan struct{})
		d.waiters[t] = waiter
	}
	d.mu.Unlock()

	<-waiter

	d.mu.Lock()
	v := d.cached[t]
	d.mu.Unlock()
	return v.(T)
}

// Reset drops every subscription, including internal ones, and clears any
// cached WaitFor results.
func (d *dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, subs := range d.subs {
		for _, s := range subs {
			close(s.ch)
		}
	}
	d.subs = make(map[reflect.Type][]*subscription)
	d.waiters = make(map[reflect.Type]chan struct{})
	d.cached = make(map[reflect.Type]any)
}
