package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/cart"
	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/session"
)

type mockAuth struct {
	mock.Mock
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func setup(t *testing.T) (*session.Holder, *mockAuth, *cart.Cart, *kv.MemoryStore) {
	t.Helper()

	store := kv.NewMemoryStore()
	auth := &mockAuth{}
	c := cart.New(store)
	h := session.NewHolder(store, auth, session.WithCart(c))
	t.Cleanup(func() { auth.AssertExpectations(t) })
	return h, auth, c, store
}

func TestHolder_LoginPersistsSession(t *testing.T) {
	t.Parallel()

	h, auth, _, store := setup(t)
	ctx := context.Background()
	auth.On("Login", mock.Anything, "mor_2314", "83r5^_").Return("abc", nil).Once()

	sess, err := h.Login(ctx, "mor_2314", "83r5^_")
	require.NoError(t, err)
	assert.Equal(t, session.New("mor_2314", "abc"), sess)
	assert.True(t, h.IsLoggedIn())
	assert.Equal(t, sess, h.Current())

	raw, err := store.Get(ctx, session.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"mor_2314","username":"mor_2314","token":"abc","isLoggedIn":true}`, raw)
}

func TestHolder_LoginFailures(t *testing.T) {
	t.Parallel()

	t.Run("missing token leaves state unchanged", func(t *testing.T) {
		t.Parallel()

		h, auth, _, store := setup(t)
		auth.On("Login", mock.Anything, "mor_2314", "wrong").Return("", nil).Once()

		_, err := h.Login(context.Background(), "mor_2314", "wrong")
		require.ErrorIs(t, err, session.ErrMissingToken)
		assert.False(t, h.IsLoggedIn())
		assert.Zero(t, store.Len())
	})

	t.Run("remote error is wrapped", func(t *testing.T) {
		t.Parallel()

		h, auth, _, store := setup(t)
		remote := errors.New("connection refused")
		auth.On("Login", mock.Anything, "mor_2314", "pw").Return("", remote).Once()

		_, err := h.Login(context.Background(), "mor_2314", "pw")
		require.ErrorIs(t, err, session.ErrNotAuthenticated)
		require.ErrorIs(t, err, remote)
		assert.False(t, h.IsLoggedIn())
		assert.Zero(t, store.Len())
	})

	t.Run("blank credentials skip the remote call", func(t *testing.T) {
		t.Parallel()

		h, _, _, _ := setup(t)

		_, err := h.Login(context.Background(), "  ", "pw")
		require.ErrorIs(t, err, session.ErrInvalidCredentials)
		_, err = h.Login(context.Background(), "mor_2314", "")
		require.ErrorIs(t, err, session.ErrInvalidCredentials)
	})

	t.Run("failed login keeps previous session", func(t *testing.T) {
		t.Parallel()

		h, auth, _, _ := setup(t)
		ctx := context.Background()
		auth.On("Login", mock.Anything, "mor_2314", "good").Return("abc", nil).Once()
		auth.On("Login", mock.Anything, "kevinryan", "bad").Return("", nil).Once()

		_, err := h.Login(ctx, "mor_2314", "good")
		require.NoError(t, err)
		_, err = h.Login(ctx, "kevinryan", "bad")
		require.Error(t, err)

		assert.Equal(t, "mor_2314", h.Current().Username)
	})
}

type failingSetStore struct {
	*kv.MemoryStore
}

func (failingSetStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestHolder_LoginSaveFailureDoesNotAdopt(t *testing.T) {
	t.Parallel()

	auth := &mockAuth{}
	auth.On("Login", mock.Anything, "mor_2314", "pw").Return("abc", nil).Once()
	h := session.NewHolder(failingSetStore{kv.NewMemoryStore()}, auth)

	_, err := h.Login(context.Background(), "mor_2314", "pw")
	require.ErrorIs(t, err, session.ErrSaveSession)
	assert.False(t, h.IsLoggedIn())
	auth.AssertExpectations(t)
}

func TestHolder_Logout(t *testing.T) {
	t.Parallel()

	h, auth, c, store := setup(t)
	ctx := context.Background()
	auth.On("Login", mock.Anything, "mor_2314", "pw").Return("abc", nil).Once()

	_, err := h.Login(ctx, "mor_2314", "pw")
	require.NoError(t, err)
	c.AddItem(ctx, "5")
	c.AddItem(ctx, "5")
	require.Equal(t, 2, c.TotalItems())

	h.Logout(ctx)

	assert.False(t, h.IsLoggedIn())
	assert.Equal(t, session.Session{}, h.Current())
	assert.Zero(t, c.TotalItems())
	_, err = store.Get(ctx, session.StorageKey)
	assert.ErrorIs(t, err, kv.ErrNotFound)
	_, err = store.Get(ctx, cart.StorageKey)
	assert.ErrorIs(t, err, kv.ErrNotFound)

	t.Run("is idempotent", func(t *testing.T) {
		h.Logout(ctx)
		assert.False(t, h.IsLoggedIn())
		assert.Zero(t, store.Len())
	})
}

func TestHolder_LogoutWithoutCartDeletesCartRecord(t *testing.T) {
	t.Parallel()

	store := kv.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, cart.StorageKey, `{"1":1}`))

	h := session.NewHolder(store, &mockAuth{})
	h.Logout(ctx)

	_, err := store.Get(ctx, cart.StorageKey)
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestHolder_Hydrate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		loggedIn bool
	}{
		{name: "logged in with token", raw: `{"name":"mor_2314","username":"mor_2314","token":"abc","isLoggedIn":true}`, loggedIn: true},
		{name: "logged out record", raw: `{"name":"","token":"","isLoggedIn":false}`},
		{name: "logged in without token", raw: `{"name":"x","token":"","isLoggedIn":true}`},
		{name: "not json", raw: `not json`},
		{name: "wrong shape", raw: `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := kv.NewMemoryStore()
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, session.StorageKey, tt.raw))

			h := session.NewHolder(store, &mockAuth{})
			sess := h.Hydrate(ctx)

			assert.Equal(t, tt.loggedIn, sess.IsLoggedIn)
			assert.Equal(t, tt.loggedIn, h.IsLoggedIn())
			if !tt.loggedIn {
				assert.Equal(t, session.Session{}, sess)
			}
		})
	}

	t.Run("absent record", func(t *testing.T) {
		t.Parallel()

		h := session.NewHolder(kv.NewMemoryStore(), &mockAuth{})
		assert.Equal(t, session.Session{}, h.Hydrate(context.Background()))
	})
}

func TestHolder_HydrateAfterLoginRoundTrip(t *testing.T) {
	t.Parallel()

	h, auth, _, store := setup(t)
	ctx := context.Background()
	auth.On("Login", mock.Anything, "mor_2314", "pw").Return("abc", nil).Once()

	want, err := h.Login(ctx, "mor_2314", "pw")
	require.NoError(t, err)

	restarted := session.NewHolder(store, &mockAuth{})
	assert.Equal(t, want, restarted.Hydrate(ctx))
}

// blockingAuth holds every login until release is closed.
type blockingAuth struct {
	started chan string
	release chan struct{}
}

func (a *blockingAuth) Login(_ context.Context, username, _ string) (string, error) {
	a.started <- username
	<-a.release
	return "token-" + username, nil
}

func TestHolder_StaleLoginIsDiscarded(t *testing.T) {
	t.Parallel()

	t.Run("logout during login", func(t *testing.T) {
		t.Parallel()

		auth := &blockingAuth{started: make(chan string, 1), release: make(chan struct{})}
		store := kv.NewMemoryStore()
		h := session.NewHolder(store, auth)
		ctx := context.Background()

		errc := make(chan error, 1)
		go func() {
			_, err := h.Login(ctx, "mor_2314", "pw")
			errc <- err
		}()

		<-auth.started
		h.Logout(ctx)
		close(auth.release)

		require.ErrorIs(t, <-errc, session.ErrSuperseded)
		assert.False(t, h.IsLoggedIn())
		assert.Zero(t, store.Len())
	})

	t.Run("newer login wins", func(t *testing.T) {
		t.Parallel()

		auth := &blockingAuth{started: make(chan string, 2), release: make(chan struct{})}
		h := session.NewHolder(kv.NewMemoryStore(), auth)
		ctx := context.Background()

		var wg sync.WaitGroup
		firstErr := make(chan error, 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.Login(ctx, "first", "pw")
			firstErr <- err
		}()
		<-auth.started

		secondErr := make(chan error, 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.Login(ctx, "second", "pw")
			secondErr <- err
		}()
		<-auth.started

		close(auth.release)
		wg.Wait()

		require.ErrorIs(t, <-firstErr, session.ErrSuperseded)
		require.NoError(t, <-secondErr)
		assert.Equal(t, "second", h.Current().Username)
		assert.Equal(t, "token-second", h.Current().Token)
	})
}

func TestHolder_ConcurrentReads(t *testing.T) {
	t.Parallel()

	h := session.NewHolder(kv.NewMemoryStore(), session.AuthenticatorFunc(
		func(_ context.Context, username, _ string) (string, error) {
			return "tok-" + username, nil
		}))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%4 == 0 {
				h.Logout(ctx)
				return
			}
			_, _ = h.Login(ctx, "user", "pw")
			_ = h.Current()
			_ = h.IsLoggedIn()
		}()
	}
	wg.Wait()

	cur := h.Current()
	assert.NoError(t, cur.Validate())
}
