package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/wisdom2788/youthguard-go/core/gateway"
	"github.com/wisdom2788/youthguard-go/core/keyring"
	"github.com/wisdom2788/youthguard-go/core/logger"
)

// Identifiable is the constraint on the user record type: the store needs a
// stable identifier to persist alongside the credentials.
type Identifiable interface {
	Identity() string
}

// Credentials pairs an authenticated user record with its bearer token.
// Both are always committed and cleared together; collaborators never
// observe a token without a user or vice versa.
type Credentials[U Identifiable] struct {
	User  U
	Token string
}

// Authenticator performs the backend authentication calls on behalf of the
// store. Implemented by api.AuthService.
type Authenticator[U Identifiable] interface {
	Login(ctx context.Context, email, password string) (Credentials[U], error)
	Register(ctx context.Context, reg Registration) error
	// Validate confirms the currently stored token against the backend.
	Validate(ctx context.Context) error
}

// Registration is a structured registration payload. It validates itself at
// the boundary, before anything reaches the network layer, and exposes the
// credentials used for the chained login after successful registration.
type Registration interface {
	Validate() error
	LoginCredentials() (email, password string)
}

// State is a point-in-time snapshot of the session, the surface collaborator
// pages read and render.
type State[U Identifiable] struct {
	User  *U
	Token string
	// Loading reports an in-flight login/register attempt. Callers are
	// expected to disable re-submission while it is true; concurrent
	// attempts are not coalesced.
	Loading bool
	// Err is the user-facing failure message of the last attempt, empty
	// when the attempt succeeded or none was made.
	Err string
	// AuthCheckComplete flips to true exactly once, after the initial
	// restore-from-storage attempt finishes, and never reverts.
	AuthCheckComplete bool
}

// Store is the single source of truth for "who is logged in". All session
// state transitions go through its operations; collaborators never write to
// durable storage directly. Safe for concurrent use.
type Store[U Identifiable] struct {
	auth Authenticator[U]
	ring keyring.Storage

	policy       RestorePolicy
	log          *slog.Logger
	onInvalidate func()

	mu          sync.RWMutex
	user        *U
	token       string
	loading     bool
	lastErr     string
	authChecked bool
	invalidated bool

	initOnce  sync.Once
	checkOnce sync.Once
}

// New creates a session store over the given authenticator and durable
// credential storage. The store starts empty; call Initialize once at boot
// to attempt a restore.
func New[U Identifiable](auth Authenticator[U], ring keyring.Storage, opts ...Option) (*Store[U], error) {
	if auth == nil {
		return nil, ErrNilAuthenticator
	}
	if ring == nil {
		return nil, ErrNilStorage
	}

	cfg := settings{
		policy: TrustStored,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store[U]{
		auth:         auth,
		ring:         ring,
		policy:       cfg.policy,
		log:          cfg.log,
		onInvalidate: cfg.onInvalidate,
	}, nil
}

// Initialize attempts to restore a session from durable storage. It runs at
// most once per store; later calls are no-ops. Whatever the outcome —
// restored, nothing stored, corrupt data, failed validation — the auth check
// is marked complete so route guards can stop withholding rendering.
func (s *Store[U]) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		defer func() {
			s.markChecked()
			s.log.InfoContext(ctx, "auth check completed",
				logger.Component("session"),
				logger.Event("auth_check_complete"),
			)
		}()
		s.restore(ctx)
	})
}

// Login authenticates with the backend and, on success, commits the new
// credentials to memory and durable storage. It reports success or failure
// instead of returning an error; failures land in the state's Err field.
func (s *Store[U]) Login(ctx context.Context, email, password string) bool {
	s.beginAttempt()
	defer s.endAttempt()

	creds, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.failAttempt(gateway.Message(err, loginFailedMessage))
		return false
	}

	if err := s.commit(ctx, creds); err != nil {
		s.log.ErrorContext(ctx, "failed to persist session",
			logger.Component("session"),
			logger.Error(err),
		)
		s.failAttempt(loginFailedMessage)
		return false
	}

	s.log.InfoContext(ctx, "session established",
		logger.Component("session"),
		logger.Event("login"),
		logger.UserID(creds.User.Identity()),
	)
	return true
}

// Register submits a registration and, on success, chains into Login with
// the same credentials: registration alone does not yield a session. The
// payload is validated before anything reaches the network layer.
func (s *Store[U]) Register(ctx context.Context, reg Registration) bool {
	s.beginAttempt()

	if err := reg.Validate(); err != nil {
		s.failAttempt(err.Error())
		s.endAttempt()
		return false
	}

	if err := s.auth.Register(ctx, reg); err != nil {
		s.failAttempt(gateway.Message(err, registerFailedMessage))
		s.endAttempt()
		return false
	}
	s.endAttempt()

	email, password := reg.LoginCredentials()
	return s.Login(ctx, email, password)
}

// Logout clears the session from memory and durable storage. Idempotent.
// The auth check is left (or marked) complete so guards never regress to the
// loading state after an explicit logout.
func (s *Store[U]) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.lastErr = ""
	s.invalidated = true
	s.mu.Unlock()

	s.purge(ctx)
	s.markChecked()

	s.log.InfoContext(ctx, "session cleared",
		logger.Component("session"),
		logger.Event("logout"),
	)
}

// Invalidate is the sink for the gateway's 401 handling: it tears the
// session down and fires the session-invalidated callback at most once per
// established session, so concurrent rejections produce a single redirect.
func (s *Store[U]) Invalidate(ctx context.Context) {
	s.mu.Lock()
	fire := !s.invalidated
	s.invalidated = true
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	s.purge(ctx)

	if fire {
		s.log.WarnContext(ctx, "session invalidated by server",
			logger.Component("session"),
			logger.Event("invalidated"),
		)
		if s.onInvalidate != nil {
			s.onInvalidate()
		}
	}
}

// IsAuthenticated reports whether a session is currently established.
func (s *Store[U]) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// AuthCheckComplete reports whether the initial restore attempt has finished.
func (s *Store[U]) AuthCheckComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authChecked
}

// CurrentUser returns the authenticated user record, if any.
func (s *Store[U]) CurrentUser() (U, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		var zero U
		return zero, false
	}
	return *s.user, true
}

// State returns a snapshot of the session for rendering.
func (s *Store[U]) State() State[U] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := State[U]{
		Token:             s.token,
		Loading:           s.loading,
		Err:               s.lastErr,
		AuthCheckComplete: s.authChecked,
	}
	if s.user != nil {
		user := *s.user
		state.User = &user
	}
	return state
}

// restore loads persisted credentials and, depending on policy, confirms
// them against the backend before committing them to memory.
func (s *Store[U]) restore(ctx context.Context) {
	token, err := s.ring.Get(ctx, keyring.KeyToken)
	if err != nil {
		s.discardStored(ctx, err)
		return
	}

	rawUser, err := s.ring.Get(ctx, keyring.KeyUser)
	if err != nil {
		s.discardStored(ctx, err)
		return
	}

	var user U
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.log.WarnContext(ctx, "discarding unreadable stored session",
			logger.Component("session"),
			logger.Error(err),
		)
		s.purge(ctx)
		return
	}

	if s.policy == ValidateStored {
		if err := s.auth.Validate(ctx); err != nil {
			s.log.WarnContext(ctx, "stored session failed validation",
				logger.Component("session"),
				logger.Outcome(gateway.Classify(err).String()),
				logger.Error(err),
			)
			s.purge(ctx)
			return
		}
	}

	// Older clients persisted token and user without the derived id entry.
	if _, err := s.ring.Get(ctx, keyring.KeyUserID); errors.Is(err, keyring.ErrKeyNotFound) {
		_ = s.ring.Set(ctx, keyring.KeyUserID, user.Identity())
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.invalidated = false
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session restored",
		logger.Component("session"),
		logger.Event("restore"),
		logger.UserID(user.Identity()),
	)
}

// discardStored handles a failed storage read during restore: missing keys
// mean no stored session, corrupt storage is purged, anything else is logged
// and treated as logged-out.
func (s *Store[U]) discardStored(ctx context.Context, err error) {
	switch {
	case errors.Is(err, keyring.ErrKeyNotFound):
		// No stored session.
	case errors.Is(err, keyring.ErrCorruptStorage):
		s.log.WarnContext(ctx, "discarding corrupt credential storage",
			logger.Component("session"),
			logger.Error(err),
		)
		s.purge(ctx)
	default:
		s.log.ErrorContext(ctx, "failed to read credential storage",
			logger.Component("session"),
			logger.Error(err),
		)
	}
}

// commit persists credentials durably and publishes them to memory.
// The three storage entries are always written together.
func (s *Store[U]) commit(ctx context.Context, creds Credentials[U]) error {
	rawUser, err := json.Marshal(creds.User)
	if err != nil {
		return err
	}

	if err := s.ring.Set(ctx, keyring.KeyToken, creds.Token); err != nil {
		return err
	}
	if err := s.ring.Set(ctx, keyring.KeyUser, string(rawUser)); err != nil {
		return err
	}
	if err := s.ring.Set(ctx, keyring.KeyUserID, creds.User.Identity()); err != nil {
		return err
	}

	s.mu.Lock()
	user := creds.User
	s.user = &user
	s.token = creds.Token
	s.invalidated = false
	s.mu.Unlock()
	return nil
}

// purge removes every credential entry from durable storage. Best-effort:
// a failing backend must not block logout.
func (s *Store[U]) purge(ctx context.Context) {
	if err := s.ring.Clear(ctx); err != nil {
		s.log.ErrorContext(ctx, "failed to clear credential storage",
			logger.Component("session"),
			logger.Error(err),
		)
	}
}

func (s *Store[U]) beginAttempt() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store[U]) failAttempt(message string) {
	s.mu.Lock()
	s.lastErr = message
	s.mu.Unlock()
}

func (s *Store[U]) endAttempt() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// markChecked flips the auth-check flag. Guarded by a Once so the flag
// transitions false to true exactly once per process lifetime.
func (s *Store[U]) markChecked() {
	s.checkOnce.Do(func() {
		s.mu.Lock()
		s.authChecked = true
		s.mu.Unlock()
	})
}
