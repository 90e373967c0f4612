package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wisdom2788/youthguard-go/core/gateway"
	"github.com/wisdom2788/youthguard-go/core/keyring"
	"github.com/wisdom2788/youthguard-go/core/session"
)

type testUser struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

func (u testUser) Identity() string { return u.ID }

// mockAuthenticator implements session.Authenticator for testing.
type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Login(ctx context.Context, email, password string) (session.Credentials[testUser], error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return session.Credentials[testUser]{}, args.Error(1)
	}
	return args.Get(0).(session.Credentials[testUser]), args.Error(1)
}

func (m *mockAuthenticator) Register(ctx context.Context, reg session.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *mockAuthenticator) Validate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type testRegistration struct {
	Email    string
	Password string
	missing  bool
}

func (r testRegistration) Validate() error {
	if r.missing {
		return errors.New("email is required")
	}
	return nil
}

func (r testRegistration) LoginCredentials() (string, string) {
	return r.Email, r.Password
}

// seedStoredSession writes a complete persisted session into the keyring.
func seedStoredSession(t *testing.T, ring keyring.Storage) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, ring.Set(ctx, keyring.KeyToken, "stored-token"))
	require.NoError(t, ring.Set(ctx, keyring.KeyUser, `{"_id":"u-1","email":"user@test.com"}`))
	require.NoError(t, ring.Set(ctx, keyring.KeyUserID, "u-1"))
}

func assertSessionInvariant(t *testing.T, state session.State[testUser]) {
	t.Helper()
	assert.Equal(t, state.User == nil, state.Token == "",
		"user and token must be set together or absent together")
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires an authenticator", func(t *testing.T) {
		t.Parallel()

		_, err := session.New[testUser](nil, keyring.NewMemory())
		require.ErrorIs(t, err, session.ErrNilAuthenticator)
	})

	t.Run("requires credential storage", func(t *testing.T) {
		t.Parallel()

		_, err := session.New[testUser](&mockAuthenticator{}, nil)
		require.ErrorIs(t, err, session.ErrNilStorage)
	})

	t.Run("starts empty with auth check pending", func(t *testing.T) {
		t.Parallel()

		store, err := session.New[testUser](&mockAuthenticator{}, keyring.NewMemory())
		require.NoError(t, err)

		state := store.State()
		assert.Nil(t, state.User)
		assert.Empty(t, state.Token)
		assert.False(t, state.AuthCheckComplete)
		assert.False(t, store.IsAuthenticated())
		assertSessionInvariant(t, state)
	})
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	t.Run("restores a stored session under trust policy", func(t *testing.T) {
		t.Parallel()

		ring := keyring.NewMemory()
		seedStoredSession(t, ring)

		store, err := session.New[testUser](&mockAuthenticator{}, ring)
		require.NoError(t, err)
		store.Initialize(context.Background())

		state := store.State()
		require.NotNil(t, state.User)
		assert.Equal(t, "u-1", state.User.ID)
		assert.Equal(t, "stored-token", state.Token)
		assert.True(t, state.AuthCheckComplete)
		assertSessionInvariant(t, state)
	})

	t.Run("completes with no stored session", func(t *testing.T) {
		t.Parallel()

		store, err := session.New[testUser](&mockAuthenticator{}, keyring.NewMemory())
		require.NoError(t, err)
		store.Initialize(context.Background())

		assert.False(t, store.IsAuthenticated())
		assert.True(t, store.AuthCheckComplete())
	})

	t.Run("purges corrupt stored user and stays logged out", func(t *testing.T) {
		t.Parallel()

		ring := keyring.NewMemory()
		ctx := context.Background()
		require.NoError(t, ring.Set(ctx, keyring.KeyToken, "stored-token"))
		require.NoError(t, ring.Set(ctx, keyring.KeyUser, `{broken json`))

		store, err := session.New[testUser](&mockAuthenticator{}, ring)
		require.NoError(t, err)
		store.Initialize(ctx)

		assert.False(t, store.IsAuthenticated())
		assert.True(t, store.AuthCheckComplete())

		_, err = ring.Get(ctx, keyring.KeyToken)
		assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
	})

	t.Run("backfills missing userId entry", func(t *testing.T) {
		t.Parallel()

		ring := keyring.NewMemory()
		ctx := context.Background()
		require.NoError(t, ring.Set(ctx, keyring.KeyToken, "stored-token"))
		require.NoError(t, ring.Set(ctx, keyring.KeyUser, `{"_id":"u-9"}`))

		store, err := session.New[testUser](&mockAuthenticator{}, ring)
		require.NoError(t, err)
		store.Initialize(ctx)

		userID, err := ring.Get(ctx, keyring.KeyUserID)
		require.NoError(t, err)
		assert.Equal(t, "u-9", userID)
	})

	t.Run("runs at most once", func(t *testing.T) {
		t.Parallel()

		ring := keyring.NewMemory()
		store, err := session.New[testUser](&mockAuthenticator{}, ring)
		require.NoError(t, err)

		ctx := context.Background()
		store.Initialize(ctx)
		require.False(t, store.IsAuthenticated())

		// Credentials appearing later must not be picked up by a second call.
		seedStoredSession(t, ring)
		store.Initialize(ctx)
		assert.False(t, store.IsAuthenticated())
	})

	t.Run("validate policy restores when backend accepts the token", func(t *testing.T) {
		t.Parallel()

		ring := keyring.NewMemory()
		seedStoredSession(t, ring)

		auth := &mockAuthenticator{}
		auth.On("Validate", mock.Anything).Return(nil)

		store, err := session.New[testUser](auth, ring, session.WithRestorePolicy(session.ValidateStored))
		require.NoError(t, err)
		store.Initialize(context.Background())

		assert.True(t, store.IsAuthenticated())
		auth.AssertExpectations(t)
	})

	t.Run("validate policy discards storage when backend rejects the token", func(t *testing.T) {
		t.Parallel()

		ring := keyring.NewMemory()
		seedStoredSession(t, ring)
		ctx := context.Background()

		auth := &mockAuthenticator{}
		auth.On("Validate", mock.Anything).Return(gateway.ErrUnauthorized)

		store, err := session.New[testUser](auth, ring, session.WithRestorePolicy(session.ValidateStored))
		require.NoError(t, err)
		store.Initialize(ctx)

		assert.False(t, store.IsAuthenticated())
		assert.True(t, store.AuthCheckComplete())
		_, err = ring.Get(ctx, keyring.KeyToken)
		assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
	})

	t.Run("validate policy discards storage when backend is unreachable", func(t *testing.T) {
		t.Parallel()

		ring := keyring.NewMemory()
		seedStoredSession(t, ring)

		auth := &mockAuthenticator{}
		auth.On("Validate", mock.Anything).Return(gateway.ErrNetworkUnreachable)

		store, err := session.New[testUser](auth, ring, session.WithRestorePolicy(session.ValidateStored))
		require.NoError(t, err)
		store.Initialize(context.Background())

		assert.False(t, store.IsAuthenticated())
		assert.True(t, store.AuthCheckComplete())
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("commits credentials to memory and storage", func(t *testing.T) {
		t.Parallel()

		ring := keyring.NewMemory()
		ctx := context.Background()

		auth := &mockAuthenticator{}
		auth.On("Login", mock.Anything, "user@test.com", "secret").Return(session.Credentials[testUser]{
			User:  testUser{ID: "u-1", Email: "user@test.com"},
			Token: "fresh-token",
		}, nil)

		store, err := session.New[testUser](auth, ring)
		require.NoError(t, err)

		ok := store.Login(ctx, "user@test.com", "secret")
		require.True(t, ok)

		state := store.State()
		require.NotNil(t, state.User)
		assert.Equal(t, "u-1", state.User.ID)
		assert.Equal(t, "fresh-token", state.Token)
		assert.Empty(t, state.Err)
		assert.False(t, state.Loading)
		assertSessionInvariant(t, state)

		token, err := ring.Get(ctx, keyring.KeyToken)
		require.NoError(t, err)
		assert.Equal(t, "fresh-token", token)
		userID, err := ring.Get(ctx, keyring.KeyUserID)
		require.NoError(t, err)
		assert.Equal(t, "u-1", userID)
		_, err = ring.Get(ctx, keyring.KeyUser)
		require.NoError(t, err)
	})

	t.Run("surfaces server rejection message without returning an error", func(t *testing.T) {
		t.Parallel()

		auth := &mockAuthenticator{}
		auth.On("Login", mock.Anything, "user@test.com", "wrongpass").Return(nil,
			&gateway.Error{Status: 400, Message: "Invalid credentials"})

		store, err := session.New[testUser](auth, keyring.NewMemory())
		require.NoError(t, err)

		ok := store.Login(context.Background(), "user@test.com", "wrongpass")
		require.False(t, ok)

		state := store.State()
		assert.Equal(t, "Invalid credentials", state.Err)
		assert.Nil(t, state.User)
		assert.False(t, store.IsAuthenticated())
		assertSessionInvariant(t, state)
	})

	t.Run("maps network failure to a connectivity message", func(t *testing.T) {
		t.Parallel()

		auth := &mockAuthenticator{}
		auth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, gateway.ErrNetworkUnreachable)

		store, err := session.New[testUser](auth, keyring.NewMemory())
		require.NoError(t, err)

		require.False(t, store.Login(context.Background(), "user@test.com", "secret"))
		assert.Contains(t, store.State().Err, "connection")
	})

	t.Run("clears previous error at the start of a new attempt", func(t *testing.T) {
		t.Parallel()

		auth := &mockAuthenticator{}
		auth.On("Login", mock.Anything, "user@test.com", "wrongpass").Return(nil,
			&gateway.Error{Status: 400, Message: "Invalid credentials"}).Once()
		auth.On("Login", mock.Anything, "user@test.com", "secret").Return(session.Credentials[testUser]{
			User:  testUser{ID: "u-1"},
			Token: "tok",
		}, nil).Once()

		store, err := session.New[testUser](auth, keyring.NewMemory())
		require.NoError(t, err)

		ctx := context.Background()
		require.False(t, store.Login(ctx, "user@test.com", "wrongpass"))
		require.True(t, store.Login(ctx, "user@test.com", "secret"))
		assert.Empty(t, store.State().Err)
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("chains into login with the same credentials", func(t *testing.T) {
		t.Parallel()

		reg := testRegistration{Email: "new@test.com", Password: "secret123"}

		auth := &mockAuthenticator{}
		auth.On("Register", mock.Anything, reg).Return(nil)
		auth.On("Login", mock.Anything, "new@test.com", "secret123").Return(session.Credentials[testUser]{
			User:  testUser{ID: "u-2", Email: "new@test.com"},
			Token: "tok-2",
		}, nil)

		store, err := session.New[testUser](auth, keyring.NewMemory())
		require.NoError(t, err)

		require.True(t, store.Register(context.Background(), reg))
		assert.True(t, store.IsAuthenticated())
		auth.AssertExpectations(t)
	})

	t.Run("rejects an invalid payload before it reaches the network", func(t *testing.T) {
		t.Parallel()

		auth := &mockAuthenticator{}
		store, err := session.New[testUser](auth, keyring.NewMemory())
		require.NoError(t, err)

		ok := store.Register(context.Background(), testRegistration{missing: true})
		require.False(t, ok)
		assert.Equal(t, "email is required", store.State().Err)
		auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("surfaces registration rejection without logging in", func(t *testing.T) {
		t.Parallel()

		reg := testRegistration{Email: "dup@test.com", Password: "secret123"}

		auth := &mockAuthenticator{}
		auth.On("Register", mock.Anything, reg).Return(&gateway.Error{Status: 409, Message: "Email already registered"})

		store, err := session.New[testUser](auth, keyring.NewMemory())
		require.NoError(t, err)

		require.False(t, store.Register(context.Background(), reg))
		assert.Equal(t, "Email already registered", store.State().Err)
		assert.False(t, store.IsAuthenticated())
		auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("is idempotent and leaves auth check complete", func(t *testing.T) {
		t.Parallel()

		ring := keyring.NewMemory()
		seedStoredSession(t, ring)
		ctx := context.Background()

		store, err := session.New[testUser](&mockAuthenticator{}, ring)
		require.NoError(t, err)
		store.Initialize(ctx)
		require.True(t, store.IsAuthenticated())

		store.Logout(ctx)
		first := store.State()
		store.Logout(ctx)
		second := store.State()

		assert.Equal(t, first, second)
		assert.False(t, store.IsAuthenticated())
		assert.True(t, store.AuthCheckComplete())
		assertSessionInvariant(t, second)

		for _, key := range []string{keyring.KeyToken, keyring.KeyUser, keyring.KeyUserID} {
			_, err := ring.Get(ctx, key)
			assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
		}
	})

	t.Run("marks auth check complete even before initialize", func(t *testing.T) {
		t.Parallel()

		store, err := session.New[testUser](&mockAuthenticator{}, keyring.NewMemory())
		require.NoError(t, err)

		store.Logout(context.Background())
		assert.True(t, store.AuthCheckComplete())
	})
}

func TestInvalidate(t *testing.T) {
	t.Parallel()

	t.Run("tears down the session and fires the callback once", func(t *testing.T) {
		t.Parallel()

		ring := keyring.NewMemory()
		seedStoredSession(t, ring)
		ctx := context.Background()

		var mu sync.Mutex
		fired := 0

		store, err := session.New[testUser](&mockAuthenticator{}, ring,
			session.WithOnInvalidate(func() {
				mu.Lock()
				fired++
				mu.Unlock()
			}),
		)
		require.NoError(t, err)
		store.Initialize(ctx)
		require.True(t, store.IsAuthenticated())

		// Concurrent 401s all funnel into Invalidate; only one may redirect.
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Invalidate(ctx)
			}()
		}
		wg.Wait()

		mu.Lock()
		assert.Equal(t, 1, fired)
		mu.Unlock()
		assert.False(t, store.IsAuthenticated())
		assertSessionInvariant(t, store.State())

		_, err = ring.Get(ctx, keyring.KeyToken)
		assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
	})

	t.Run("fires again for a newly established session", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		var mu sync.Mutex
		fired := 0

		auth := &mockAuthenticator{}
		auth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(session.Credentials[testUser]{
			User:  testUser{ID: "u-1"},
			Token: "tok",
		}, nil)

		store, err := session.New[testUser](auth, keyring.NewMemory(),
			session.WithOnInvalidate(func() {
				mu.Lock()
				fired++
				mu.Unlock()
			}),
		)
		require.NoError(t, err)

		require.True(t, store.Login(ctx, "user@test.com", "secret"))
		store.Invalidate(ctx)
		store.Invalidate(ctx)

		require.True(t, store.Login(ctx, "user@test.com", "secret"))
		store.Invalidate(ctx)

		mu.Lock()
		assert.Equal(t, 2, fired)
		mu.Unlock()
	})
}
