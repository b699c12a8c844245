package twitchchat

import (
	"fmt"
	"time"
)

// RateClass is one of Twitch's documented outbound rate presets, each
// expressed as a capacity over a fixed 30 second period.
type RateClass int

const (
	// RateClassRegular is the default class for unprivileged users: 20
	// messages per 30 seconds.
	RateClassRegular RateClass = iota
	// RateClassModerator applies to moderators in the target channel: 100
	// messages per 30 seconds.
	RateClassModerator
	// RateClassKnown applies to "known" bots Twitch has allow-listed: 50
	// messages per 30 seconds.
	RateClassKnown
	// RateClassVerified applies to verified bots: 7500 messages per 30
	// seconds.
	RateClassVerified
)

// ratePeriod is the refill period documented by Twitch for every class.
const ratePeriod = 30 * time.Second

// Capacity returns the token capacity for the class.
func (c RateClass) Capacity() int64 {
	switch c {
	case RateClassModerator:
		return 100
	case RateClassKnown:
		return 50
	case RateClassVerified:
		return 7500
	default:
		return 20
	}
}

// Period returns the refill period for the class, always 30 seconds.
func (c RateClass) Period() time.Duration { return ratePeriod }

// RateLimitError is returned by Bucket.Consume when not enough tokens are
// available. Wait is the estimated duration until enough tokens accrue; it
// is a delay signal, not a fatal condition.
type RateLimitError struct {
	Wait time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("twitchchat: rate limited, retry in %s", e.Wait)
}

// Bucket is a leaky-bucket token limiter that refills in discrete bursts
// rather than continuously: every elapsed period credits a full capacity's
// worth of tokens at once, capped at capacity. This matches how Twitch
// documents and how the original implementation accounts for its rate
// classes, and is the reason this module hand-rolls a limiter instead of
// using golang.org/x/time/rate (see DESIGN.md).
type Bucket struct {
	capacity   int64
	period     time.Duration
	tokens     int64
	lastRefill time.Time
}

// NewBucket creates a bucket starting full, as used for the global and
// per-channel limiters at session/channel creation.
func NewBucket(capacity int64, period time.Duration) *Bucket {
	return &Bucket{
		capacity:   capacity,
		period:     period,
		tokens:     capacity,
		lastRefill: time.Now(),
	}
}

// NewBucketFromClass creates a bucket using a RateClass preset.
func NewBucketFromClass(rc RateClass) *Bucket {
	return NewBucket(rc.Capacity(), rc.Period())
}

// Consume attempts to deduct n tokens, refilling first. On success it
// returns the remaining token count. On failure it returns a *RateLimitError
// carrying the estimated wait until n tokens would be available.
func (b *Bucket) Consume(n int64) (int64, error) {
	now := time.Now()
	b.refill(now)

	if b.tokens >= n {
		b.tokens -= n
		return b.tokens, nil
	}

	return 0, &RateLimitError{Wait: b.estimate(n, now)}
}

// refill credits whole elapsed periods of tokens, capped at capacity. Time
// must be monotonic (time.Now()'s monotonic reading) so that wall-clock
// adjustments never leak tokens, per spec's design notes.
func (b *Bucket) refill(now time.Time) {
	elapsed := now.Sub(b.lastRefill)
	if elapsed < b.period {
		return
	}
	periods := int64(elapsed / b.period)
	b.lastRefill = b.lastRefill.Add(time.Duration(periods) * b.period)
	b.tokens += periods * b.capacity
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
}

// estimate computes the wait until n tokens are available, assuming the
// caller just observed a refill at now.
func (b *Bucket) estimate(n int64, now time.Time) time.Duration {
	nextRefill := b.lastRefill.Add(b.period)
	until := nextRefill.Sub(now)
	deficit := n - b.tokens
	periods := (deficit + b.capacity - 1) / b.capacity
	return until + time.Duration(periods-1)*b.period
}

// Take consumes a single token, convenience for the common outbound-message
// case.
func (b *Bucket) Take() (int64, error) {
	return b.Consume(1)
}

// Sleeper is a caller-supplied blocking primitive, typically time.Sleep.
// Runner does not use Throttle or Sleeper; its drain calls the non-blocking
// Take. Sleeper exists for callers that want Bucket without the full Runner.
type Sleeper func(time.Duration)

// Throttle repeatedly consumes n tokens, calling sleep between attempts,
// until it succeeds. It returns the remaining token count.
func (b *Bucket) Throttle(n int64, sleep Sleeper) int64 {
	for {
		remaining, err := b.Consume(n)
		if err == nil {
			return remaining
		}
		sleep(err.(*RateLimitError).Wait)
	}
}
