package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tabaccounts/internal/accounts/domain"
	"github.com/aussiebroadwan/tabaccounts/internal/accounts/service"
	"github.com/aussiebroadwan/tabaccounts/internal/accounts/store"
	"github.com/aussiebroadwan/tabaccounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/tabaccounts/pkg/accountsdk"
	"github.com/aussiebroadwan/tabaccounts/pkg/idx"
	"github.com/aussiebroadwan/tabaccounts/pkg/jwtx"
)

func newTestRouter(t *testing.T, st store.Store) (*Router, *jwtx.HS256) {
	t.Helper()

	codec, err := jwtx.NewHS256([]byte("test-secret"))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := NewRouter(codec, "test", st, logger)
	r.UserService = &service.UserService{Store: st}
	r.TokenService = &service.TokenService{Signer: codec}
	r.ApplyRoutes()
	return r, codec
}

func newSQLiteStore(t *testing.T) store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL",
		filepath.Join(t.TempDir(), "accounts.db"))

	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRegisterLoginMeFlow(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, newSQLiteStore(t))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := accountsdk.NewClient(srv.URL)
	ctx := context.Background()

	user, err := client.Register(ctx, "a@x.com", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "a@x.com", user.Email)
	require.False(t, user.CreatedAt.IsZero())

	token, err := client.Login(ctx, "a@x.com", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	me, err := client.Me(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, me.ID, "me must return the id the token was signed for")
	require.Equal(t, "a@x.com", me.Email)
	require.False(t, me.UpdatedAt.IsZero())
}

func TestRegisterNeverLeaksPasswordHash(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, newSQLiteStore(t))

	rec := doJSON(t, router, http.MethodPost, "/register",
		accountsdk.RegisterRequest{Email: "a@x.com", Password: "password1"}, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotContains(t, rec.Body.String(), "passwordHash")
	require.NotContains(t, rec.Body.String(), "password_hash")
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	st := newSQLiteStore(t)
	router, _ := newTestRouter(t, st)

	t.Run("short password", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/register",
			accountsdk.RegisterRequest{Email: "a@x.com", Password: "1234567"}, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body accountsdk.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, accountsdk.MessageInvalidBody, body.Message)
		require.Len(t, body.Errors, 1)
		require.Equal(t, "password", body.Errors[0].Field)

		// No user record may exist after a rejected registration.
		_, err := st.Users().GetUserByEmail(context.Background(), "a@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("invalid email", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/register",
			accountsdk.RegisterRequest{Email: "not-an-email", Password: "password1"}, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body accountsdk.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Errors, 1)
		require.Equal(t, "email", body.Errors[0].Field)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	st := newSQLiteStore(t)
	router, _ := newTestRouter(t, st)

	first := doJSON(t, router, http.MethodPost, "/register",
		accountsdk.RegisterRequest{Email: "a@x.com", Password: "password1"}, "")
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, router, http.MethodPost, "/register",
		accountsdk.RegisterRequest{Email: "a@x.com", Password: "password2"}, "")
	require.Equal(t, http.StatusConflict, second.Code)

	var body accountsdk.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	require.Equal(t, accountsdk.MessageEmailTaken, body.Message)

	// First registration still logs in.
	login := doJSON(t, router, http.MethodPost, "/login",
		accountsdk.LoginRequest{Email: "a@x.com", Password: "password1"}, "")
	require.Equal(t, http.StatusOK, login.Code)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, newSQLiteStore(t))

	rec := doJSON(t, router, http.MethodPost, "/register",
		accountsdk.RegisterRequest{Email: "a@x.com", Password: "password1"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPassword := doJSON(t, router, http.MethodPost, "/login",
		accountsdk.LoginRequest{Email: "a@x.com", Password: "wrongpassword"}, "")
	unknownEmail := doJSON(t, router, http.MethodPost, "/login",
		accountsdk.LoginRequest{Email: "nobody@x.com", Password: "password1"}, "")

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
		"both failure modes must produce byte-identical responses")
}

func TestMeRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, newSQLiteStore(t))

	rec := doJSON(t, router, http.MethodPost, "/register",
		accountsdk.RegisterRequest{Email: "a@x.com", Password: "password1"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	login := doJSON(t, router, http.MethodPost, "/login",
		accountsdk.LoginRequest{Email: "a@x.com", Password: "password1"}, "")
	require.Equal(t, http.StatusOK, login.Code)

	var body accountsdk.LoginResponse
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &body))

	// Flip a single byte in the signature segment.
	parts := strings.Split(body.Token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	me := doJSON(t, router, http.MethodGet, "/me", nil, tampered)
	require.Equal(t, http.StatusUnauthorized, me.Code)
}

func TestMeUnknownSubject(t *testing.T) {
	t.Parallel()

	router, codec := newTestRouter(t, newSQLiteStore(t))

	// A structurally valid token whose subject no longer resolves, e.g. a
	// user deleted out of band.
	raw, err := codec.Sign(jwtx.NewClaims(idx.New().String(), "gone@x.com", time.Hour, time.Now()))
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/me", nil, raw)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body accountsdk.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, accountsdk.MessageUserNotFound, body.Message)
}

func TestMeWithoutTokenNeverTouchesStore(t *testing.T) {
	t.Parallel()

	spy := &spyStore{}
	router, _ := newTestRouter(t, spy)

	rec := doJSON(t, router, http.MethodGet, "/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, spy.users.calls, "auth gate must short-circuit before any store access")
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, newSQLiteStore(t))

	livez := doJSON(t, router, http.MethodGet, "/livez", nil, "")
	require.Equal(t, http.StatusOK, livez.Code)

	readyz := doJSON(t, router, http.MethodGet, "/readyz", nil, "")
	require.Equal(t, http.StatusOK, readyz.Code)

	var body accountsdk.HealthResponse
	require.NoError(t, json.Unmarshal(readyz.Body.Bytes(), &body))
	require.Equal(t, "ok", body.Status)
	require.Equal(t, "ok", body.Checks.Database)
}

// spyStore counts store accesses to prove the auth gate short-circuits.
type spyStore struct {
	users spyUsers
}

func (s *spyStore) Users() store.Users         { return &s.users }
func (s *spyStore) ApplyMigrations() error     { return nil }
func (s *spyStore) Ping(context.Context) error { return nil }
func (s *spyStore) Close() error               { return nil }

type spyUsers struct {
	calls int
}

func (u *spyUsers) GetUserByID(context.Context, string) (domain.User, error) {
	u.calls++
	return domain.User{}, store.ErrNotFound
}

func (u *spyUsers) GetUserByEmail(context.Context, string) (domain.User, error) {
	u.calls++
	return domain.User{}, store.ErrNotFound
}

func (u *spyUsers) CreateUser(context.Context, domain.User) (domain.User, error) {
	u.calls++
	return domain.User{}, store.ErrAlreadyExists
}
