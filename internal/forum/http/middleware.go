package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/forumhub/internal/forum/authz"
	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/metrics"
	"github.com/aussiebroadwan/forumhub/internal/forum/service"
	"github.com/aussiebroadwan/forumhub/pkg/httpx"
	"github.com/aussiebroadwan/forumhub/pkg/idx"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"
)

type principalKey struct{}

// PrincipalFromContext returns the caller resolved by the authn middleware.
func PrincipalFromContext(ctx context.Context) (service.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(service.Principal)
	return p, ok
}

// actorFrom returns the authenticated actor, or the anonymous actor on
// public routes.
func actorFrom(r *http.Request) domain.Actor {
	p, _ := PrincipalFromContext(r.Context())
	return p.Actor
}

// authnMiddleware resolves the bearer token into a Principal. Requests
// without a valid session are rejected with 401.
func authnMiddleware(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := sessions.Resolve(r.Context(), httpx.BearerToken(r))
			if err != nil {
				writeError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey{}, p)
			ctx = slogx.With(ctx,
				slog.String("user_id", p.Actor.ID),
				slog.String("role", p.Actor.Role.String()),
			)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireRole enforces a role tier on the resolved principal. It must run
// after authnMiddleware.
func requireRole(req authz.Requirement) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := actorFrom(r)
			if err := authz.Check(actor.Role, req); err != nil {
				slogx.FromContext(r.Context()).Warn("route refused",
					slog.String("required", req.String()),
				)
				metrics.AuthorizationDenials.WithLabelValues(req.String()).Inc()
				writeError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// pathID reads a ULID path parameter.
func pathID(r *http.Request, name string) (string, error) {
	id, err := idx.Parse(r.PathValue(name))
	if err != nil {
		return "", domain.ErrInvalidID
	}
	return id.String(), nil
}
