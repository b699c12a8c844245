package twitchchat

import "time"

// channelState tracks per-channel outbound queueing and moderation state,
// grounded on the rate-limit window/slow-mode bookkeeping described in
// spec.md §4.7. One exists per joined channel, created on the self-JOIN echo
// and destroyed on self-PART or a msg_banned NOTICE.
type channelState struct {
	name string

	queue [][]byte

	// bucket is the channel's own token bucket, seeded from the channel's
	// known rate class at creation (spec.md §4.7: "a per-channel token
	// bucket (initially equal to the channel's known rate class)"). It is
	// consumed alongside the global bucket during drain, so one
	// fast-sending channel cannot exhaust another's share of the session's
	// overall budget.
	bucket *Bucket

	slowMode      time.Duration
	lastSentAt    time.Time
	rateLimitedAt time.Time
}

func newChannelState(name string, rc RateClass) *channelState {
	return &channelState{name: name, bucket: NewBucketFromClass(rc)}
}

// enqueue appends a pending outbound line for this channel.
func (c *channelState) enqueue(line []byte) {
	c.queue = append(c.queue, line)
}

// dequeue pops the oldest queued line, if any.
func (c *channelState) dequeue() ([]byte, bool) {
	if len(c.queue) == 0 {
		return nil, false
	}
	line := c.queue[0]
	c.queue = c.queue[1:]
	return line, true
}

func (c *channelState) depth() int { return len(c.queue) }

// setSlowMode records a slow-mode duration, 0 clearing it.
func (c *channelState) setSlowMode(d time.Duration) { c.slowMode = d }

func (c *channelState) isSlowMode() bool { return c.slowMode > 0 }

// markRateLimited records that the server just throttled this channel.
func (c *channelState) markRateLimited(now time.Time) { c.rateLimitedAt = now }

// clearStaleRateLimit clears the rate-limited mark once the 30s window has
// elapsed, per spec.md §4.7 step 1.
func (c *channelState) clearStaleRateLimit(now time.Time) {
	if c.rateLimitedAt.IsZero() {
		return
	}
	if now.Sub(c.rateLimitedAt) >= ratePeriod {
		c.rateLimitedAt = time.Time{}
	}
}

// channelTable owns every tracked channel, keyed by its normalized name.
type channelTable struct {
	channels  map[string]*channelState
	rateClass RateClass
}

func newChannelTable(rc RateClass) *channelTable {
	return &channelTable{channels: make(map[string]*channelState), rateClass: rc}
}

func (t *channelTable) join(name string) *channelState {
	name = normalizeChannel(name)
	if cs, ok := t.channels[name]; ok {
		return cs
	}
	cs := newChannelState(name, t.rateClass)
	t.channels[name] = cs
	return cs
}

func (t *channelTable) part(name string) {
	delete(t.channels, normalizeChannel(name))
}

func (t *channelTable) get(name string) (*channelState, bool) {
	cs, ok := t.channels[normalizeChannel(name)]
	return cs, ok
}

func (t *channelTable) len() int { return len(t.channels) }

// drain writes as many queued lines as the global bucket and each channel's
// own bucket allow, stopping at the first channel that empties the global
// budget. Iteration order over the map is unspecified, matching spec.md
// §4.7's "while the channel has queued items and the global budget has
// tokens" loop, which does not mandate fairness across channels.
//
// Per spec.md §4.7 step 1, the rate-limit mark is cleared once it is older
// than the rate-limit window, on every drain attempt, before anything else
// is considered for that channel. While the mark is still set the channel is
// skipped entirely: a msg_ratelimit NOTICE means the server just throttled
// it, and resuming sends immediately would just trip the limit again. Slow
// mode is enforced the same way a human would be bound by it: no more than
// one send per slow-mode interval, tracked via lastSentAt.
func (t *channelTable) drain(global *Bucket, write func(channel string, line []byte) error) {
	now := time.Now()
	for _, cs := range t.channels {
		cs.clearStaleRateLimit(now)
		if !cs.rateLimitedAt.IsZero() {
			continue
		}
		for cs.depth() > 0 {
			if cs.isSlowMode() && !cs.lastSentAt.IsZero() && now.Sub(cs.lastSentAt) < cs.slowMode {
				break
			}
			if _, err := cs.bucket.Take(); err != nil {
				break
			}
			if _, err := global.Take(); err != nil {
				return
			}
			line, ok := cs.dequeue()
			if !ok {
				break
			}
			if err := write(cs.name, line); err != nil {
				return
			}
			cs.lastSentAt = now
		}
	}
}
