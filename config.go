package twitchchat

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Config is the user-facing configuration for a connection: the identity to
// register with and the capabilities to request. It follows the teacher's
// convention of exported struct fields defaulted by the caller rather than a
// builder, matching Travis-Britz/irc.Client.
type Config struct {
	Name  string
	Token string

	RequestMembership bool
	RequestTags       bool
	RequestCommands   bool
}

// Anonymous returns the fixed justinfan1234 configuration with every
// capability requested.
func Anonymous() Config {
	return Config{
		Name:               "justinfan1234",
		Token:              "justinfan1234",
		RequestMembership:  true,
		RequestTags:        true,
		RequestCommands:    true,
	}
}

func (c Config) isAnonymous() bool {
	return c.Name == "justinfan1234"
}

// requestedCaps returns the wire capability strings this config will ask
// for, in the fixed order membership, tags, commands (order does not matter
// to the server per spec §3, but a stable order keeps logs and tests
// deterministic).
func (c Config) requestedCaps() []string {
	var caps []string
	if c.RequestMembership {
		caps = append(caps, capMembership)
	}
	if c.RequestTags {
		caps = append(caps, capTags)
	}
	if c.RequestCommands {
		caps = append(caps, capCommands)
	}
	return caps
}

// Option configures a Runner at construction time.
type Option func(*Runner)

// WithDialer sets the transport the Runner will read and write. The
// transport must already be connected; the Runner does not dial.
func WithDialer(conn io.ReadWriteCloser) Option {
	return func(r *Runner) { r.conn = conn }
}

// WithLogger overrides the *logrus.Logger used for structured logging.
// The default is logrus.StandardLogger().
func WithLogger(log *logrus.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// WithMetrics attaches a Metrics collector. A nil Metrics (the default)
// disables collection.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithRateClass overrides the default global rate class (RateClassRegular).
func WithRateClass(rc RateClass) Option {
	return func(r *Runner) { r.rateClass = rc }
}
