package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/service"
	"github.com/aussiebroadwan/forumhub/internal/forum/session"
	"github.com/aussiebroadwan/forumhub/internal/forum/store/drivers/sqlite"
	"github.com/aussiebroadwan/forumhub/pkg/cryptox"
	"github.com/aussiebroadwan/forumhub/pkg/forumsdk"
	"github.com/aussiebroadwan/forumhub/pkg/idx"
	"github.com/aussiebroadwan/forumhub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testBootstrapToken = "bootstrap-secret"

type testServer struct {
	router   *Router
	srv      *httptest.Server
	sessions *session.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hasher, err := cryptox.NewPasswordHasher("pepper")
	require.NoError(t, err)

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("k1", pemKey)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	sessions := session.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := &service.UserService{Store: st, Hasher: hasher}
	r := NewRouter(keys, "test", st, sessions, logger)
	r.UserService = users
	r.SessionService = &service.SessionService{
		Users:    users,
		Store:    st,
		Sessions: sessions,
		Signer:   signer,
		Verifier: jwtx.NewVerifierEdDSA(keys, "forumhub-test"),
		Issuer:   "forumhub-test",
	}
	r.ThreadService = &service.ThreadService{Store: st}
	r.PostService = &service.PostService{Store: st}
	r.ModerationService = &service.ModerationService{Store: st}
	r.BootstrapService = &service.BootstrapService{Store: st, Hasher: hasher, Token: testBootstrapToken}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &testServer{router: r, srv: srv, sessions: sessions}
}

func (ts *testServer) client() *forumsdk.SDKClient {
	return forumsdk.NewSDKClient(ts.srv.URL)
}

// login registers username and returns a session with the given role.
func (ts *testServer) login(t *testing.T, username string, role domain.Role) *forumsdk.Session {
	t.Helper()
	ctx := context.Background()

	u, err := ts.client().Register(ctx, username, "password123")
	require.NoError(t, err)
	if role != domain.RoleMember {
		_, err := ts.router.store.Users().UpdateRole(ctx, u.ID, role, u.CreatedAt)
		require.NoError(t, err)
	}

	s, err := ts.client().Login(ctx, username, "password123")
	require.NoError(t, err)
	return s
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, rd)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	live, err := ts.client().GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := ts.client().GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Sessions)
	require.Equal(t, "ok", ready.Checks.Signer)

	jwks, err := ts.client().GetJWKS(ctx)
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "k1", jwks.Keys[0].Kid)

	resp := ts.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.do(t, http.MethodGet, "/livez", "", nil)
	require.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestIdentityFlow(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	u, err := ts.client().Register(ctx, " Alice ", "password123")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, "member", u.Role)

	_, err = ts.client().Register(ctx, "ALICE", "password123")
	require.True(t, forumsdk.IsConflict(err))

	_, err = ts.client().Register(ctx, "al", "password123")
	require.True(t, forumsdk.IsValidation(err))

	_, err = ts.client().Login(ctx, "alice", "wrong-password")
	require.True(t, forumsdk.IsUnauthorized(err))

	s, err := ts.client().Login(ctx, "alice", "password123")
	require.NoError(t, err)

	me, err := s.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, u.ID, me.ID)

	require.NoError(t, s.Logout(ctx))
	_, err = s.Me(ctx)
	require.True(t, forumsdk.IsUnauthorized(err))
}

func TestUnauthenticatedRequests(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/v1/threads", "", forumsdk.CreateThreadRequest{Title: "Hello", Body: "World"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")

	var body forumsdk.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, forumsdk.ErrorCodeUnauthenticated, body.Error)

	resp = ts.do(t, http.MethodGet, "/v1/moderation/flags", "garbage", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestThreadEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	alice := ts.login(t, "alice", domain.RoleMember)

	th, err := alice.CreateThread(ctx, forumsdk.CreateThreadRequest{
		Title: "Hello world",
		Body:  "an opening post that is long enough",
		Tags:  forumsdk.TagList{"go", "sql"},
	})
	require.NoError(t, err)
	require.Equal(t, "General", th.Category)
	require.Equal(t, 1, th.PostCount)
	require.Equal(t, []string{"go", "sql"}, th.Tags)

	// Tags as comma separated text
	resp := ts.do(t, http.MethodPost, "/v1/threads", alice.Token(), map[string]any{
		"title":    "Second thread",
		"body":     "an opening post that is long enough",
		"category": "Go",
		"tags":     "a, b,,a",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var second forumsdk.ThreadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))
	require.Equal(t, []string{"a", "b"}, second.Tags)

	list, err := ts.client().ListThreads(ctx)
	require.NoError(t, err)
	require.Len(t, list.Categories, 2)

	_, err = alice.CreatePost(ctx, th.ID, "a reply")
	require.NoError(t, err)

	detail, err := ts.client().GetThread(ctx, th.ID)
	require.NoError(t, err)
	require.Len(t, detail.Posts, 2)
	require.Equal(t, "alice", detail.Posts[1].Author.Username)

	t.Run("malformed id", func(t *testing.T) {
		_, err := ts.client().GetThread(ctx, "not-an-id")
		require.True(t, forumsdk.IsValidation(err))
	})

	t.Run("missing thread", func(t *testing.T) {
		_, err := ts.client().GetThread(ctx, idx.New().String())
		require.True(t, forumsdk.IsNotFound(err))

		_, err = alice.CreatePost(ctx, idx.New().String(), "a reply")
		require.True(t, forumsdk.IsValidation(err))
	})

	t.Run("bad body", func(t *testing.T) {
		resp := ts.do(t, http.MethodPost, "/v1/threads/"+th.ID+"/posts", alice.Token(), nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestModerationEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	member := ts.login(t, "member", domain.RoleMember)
	mod := ts.login(t, "moderator", domain.RoleModerator)
	super := ts.login(t, "super", domain.RoleSuper)

	th, err := member.CreateThread(ctx, forumsdk.CreateThreadRequest{Title: "Hello world", Body: "an opening post that is long enough"})
	require.NoError(t, err)
	post, err := member.CreatePost(ctx, th.ID, "rude words")
	require.NoError(t, err)

	_, err = member.FlagPost(ctx, th.ID, post.ID)
	require.NoError(t, err)

	t.Run("members are refused", func(t *testing.T) {
		_, err := member.ListFlagged(ctx)
		require.True(t, forumsdk.IsForbidden(err))
		_, err = member.ToggleThreadLock(ctx, th.ID)
		require.True(t, forumsdk.IsForbidden(err))
		_, err = mod.ListUsers(ctx)
		require.True(t, forumsdk.IsForbidden(err))
	})

	queue, err := mod.ListFlagged(ctx)
	require.NoError(t, err)
	require.Len(t, queue.Posts, 1)
	require.Equal(t, th.Title, queue.Posts[0].Thread.Title)

	lock, err := mod.ToggleThreadLock(ctx, th.ID)
	require.NoError(t, err)
	require.True(t, lock.Locked)
	require.Equal(t, "Thread locked", lock.Message)

	_, err = super.CreatePost(ctx, th.ID, "even supers")
	require.True(t, forumsdk.IsValidation(err))

	res, err := mod.ResolvePost(ctx, post.ID, forumsdk.ResolveRequest{Action: "remove"})
	require.NoError(t, err)
	require.Equal(t, "remove", res.Action)

	_, err = mod.ResolvePost(ctx, post.ID, forumsdk.ResolveRequest{Action: "approve"})
	require.True(t, forumsdk.IsNotFound(err))

	users, err := super.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users.Users, 3)

	me, err := member.Me(ctx)
	require.NoError(t, err)
	change, err := super.UpdateRole(ctx, me.ID, "moderator")
	require.NoError(t, err)
	require.True(t, change.Changed)
	require.Equal(t, "member is now a moderator", change.Message)

	// The promotion applies to the existing session.
	_, err = member.ListFlagged(ctx)
	require.NoError(t, err)

	superMe, err := super.Me(ctx)
	require.NoError(t, err)
	_, err = super.UpdateRole(ctx, superMe.ID, "member")
	require.True(t, forumsdk.IsForbidden(err))

	_, err = super.UpdateRole(ctx, me.ID, "admin")
	require.True(t, forumsdk.IsValidation(err))
}

func TestBootstrapEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	req := forumsdk.BootstrapRequest{Username: "root", Password: "password123"}

	_, err := ts.client().Bootstrap(ctx, "", req)
	require.True(t, forumsdk.IsUnauthorized(err))

	u, err := ts.client().Bootstrap(ctx, testBootstrapToken, req)
	require.NoError(t, err)
	require.Equal(t, "super", u.Role)

	_, err = ts.client().Bootstrap(ctx, testBootstrapToken, forumsdk.BootstrapRequest{Username: "root2", Password: "password123"})
	require.True(t, forumsdk.IsConflict(err))

	ts.router.BootstrapService.Token = ""
	_, err = ts.client().Bootstrap(ctx, testBootstrapToken, req)
	require.True(t, forumsdk.IsNotFound(err))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		desc   string
	}{
		{domain.ErrTitleTooShort, http.StatusBadRequest, "title must be at least 5 characters"},
		{domain.ErrInvalidSession, http.StatusUnauthorized, "session is invalid or expired"},
		{domain.ErrSelfDemotion, http.StatusForbidden, "you cannot remove your own super role"},
		{domain.ErrPostNotFound, http.StatusNotFound, "post does not exist"},
		{domain.ErrUsernameTaken, http.StatusConflict, "username is already taken"},
		{domain.Dependency("ping", errors.New("db down")), http.StatusServiceUnavailable, "A backing service is unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "An internal error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, _, desc := classify(tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.desc, desc)
		})
	}
}
