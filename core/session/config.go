package session

import "log/slog"

// RestorePolicy controls how Initialize treats credentials found in durable
// storage at boot.
type RestorePolicy int

const (
	// TrustStored restores a parseable stored session immediately without
	// contacting the backend. A stale token is then invalidated globally on
	// its first use by the gateway's 401 handling.
	TrustStored RestorePolicy = iota

	// ValidateStored additionally confirms the stored token against the
	// backend before restoring. Storage is discarded and the process stays
	// logged out if validation fails or the backend is unreachable.
	ValidateStored
)

type settings struct {
	policy       RestorePolicy
	log          *slog.Logger
	onInvalidate func()
}

// Option is a functional option for configuring the session store.
type Option func(*settings)

// WithRestorePolicy selects the boot-time restore policy. Default is TrustStored.
func WithRestorePolicy(policy RestorePolicy) Option {
	return func(s *settings) {
		s.policy = policy
	}
}

// WithLogger sets the structured logger for session lifecycle events.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithOnInvalidate registers the callback fired when the session is torn
// down by an authentication rejection. The hosting application wires this to
// its navigation mechanism (redirect to the public entry point). Fires at
// most once per established session, even under concurrent rejections.
func WithOnInvalidate(fn func()) Option {
	return func(s *settings) {
		s.onInvalidate = fn
	}
}
