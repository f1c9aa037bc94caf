package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/authz"
	"github.com/aussiebroadwan/forumhub/internal/forum/metrics"
	"github.com/aussiebroadwan/forumhub/internal/forum/service"
	"github.com/aussiebroadwan/forumhub/internal/forum/session"
	"github.com/aussiebroadwan/forumhub/internal/forum/store"
	"github.com/aussiebroadwan/forumhub/pkg/httpx"
	"github.com/aussiebroadwan/forumhub/pkg/jwtx"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"

	_ "github.com/aussiebroadwan/forumhub/api/forum" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate swag init -g router.go -d .,../../../pkg/forumsdk -o ../../../api/forum --packageName forum --outputTypes go

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	sessions session.Store

	UserService       *service.UserService
	SessionService    *service.SessionService
	ThreadService     *service.ThreadService
	PostService       *service.PostService
	ModerationService *service.ModerationService
	BootstrapService  *service.BootstrapService
}

func NewRouter(
	keys *jwtx.KeySet,
	buildVersion string,
	st store.Store,
	sessions session.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		sessions:     sessions,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metrics.HTTPMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerIdentity()
	r.registerThreads()
	r.registerModeration()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ForumHub API
//	@version		0.1.0
//	@description	Discussion forum with threads, replies and a moderation workflow.
//	@description
//	@description				Members post and flag, moderators resolve flags and lock threads, super users manage roles.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/forumhub
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from /v1/auth/login. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authenticated(h http.HandlerFunc, mws ...httpx.Middleware) http.Handler {
	return httpx.Chain(h, append([]httpx.Middleware{authnMiddleware(r.SessionService)}, mws...)...)
}

func (r *Router) registerIdentity() {
	h := &IdentityHandler{
		UserService:    r.UserService,
		SessionService: r.SessionService,
	}

	r.Mux.HandleFunc("POST /v1/auth/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /v1/auth/login", h.HandleLogin)
	r.Mux.Handle("POST /v1/auth/logout", r.authenticated(h.HandleLogout))
	r.Mux.Handle("GET /v1/auth/me", r.authenticated(h.HandleMe))
}

func (r *Router) registerThreads() {
	threads := &ThreadsHandler{ThreadService: r.ThreadService}
	posts := &PostsHandler{PostService: r.PostService}

	// Reading is public
	r.Mux.HandleFunc("GET /v1/threads", threads.HandleList)
	r.Mux.HandleFunc("GET /v1/threads/{threadID}", threads.HandleGet)

	r.Mux.Handle("POST /v1/threads", r.authenticated(threads.HandleCreate))
	r.Mux.Handle("POST /v1/threads/{threadID}/posts", r.authenticated(posts.HandleCreate))
	r.Mux.Handle("POST /v1/threads/{threadID}/posts/{postID}/flag", r.authenticated(posts.HandleFlag))
}

func (r *Router) registerModeration() {
	h := &ModerationHandler{ModerationService: r.ModerationService}

	moderator := requireRole(authz.Moderator)
	super := requireRole(authz.Super)

	r.Mux.Handle("GET /v1/moderation/flags", r.authenticated(h.HandleListFlagged, moderator))
	r.Mux.Handle("POST /v1/moderation/posts/{postID}/resolve", r.authenticated(h.HandleResolve, moderator))
	r.Mux.Handle("POST /v1/moderation/threads/{threadID}/toggle-lock", r.authenticated(h.HandleToggleLock, moderator))

	r.Mux.Handle("GET /v1/moderation/users", r.authenticated(h.HandleListUsers, super))
	r.Mux.Handle("PUT /v1/moderation/users/{userID}/role", r.authenticated(h.HandleUpdateRole, super))
}

func (r *Router) registerBootstrap() {
	r.Mux.Handle("POST /v1/bootstrap", &BootstrapHandler{BootstrapService: r.BootstrapService})
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.sessions, r.keys))
	r.Mux.Handle("GET /metrics", metrics.Handler())
	r.Mux.Handle("GET /.well-known/jwks.json", JWKSHandler(r.keys))
}
