// Package service implements the forum's use cases on top of store.Store:
// identity and sessions, threads and posts, and the moderation workflow.
// Every operation that acts on behalf of a user takes a domain.Actor and
// checks it with the authz guard before touching the store.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/authz"
	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/metrics"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"
)

// Clock returns the current time. Services default to time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

// guard checks actor against req, logging and counting refusals.
func guard(ctx context.Context, actor domain.Actor, req authz.Requirement, action string) error {
	if err := authz.Check(actor.Role, req); err != nil {
		slogx.FromContext(ctx).Warn("authorization refused",
			slog.String("action", action),
			slog.String("required", req.String()),
			slog.String("actor_id", actor.ID),
			slog.String("actor_role", actor.Role.String()),
		)
		metrics.AuthorizationDenials.WithLabelValues(req.String()).Inc()
		return err
	}
	return nil
}

// dependency logs a store failure and wraps it as a dependency error.
func dependency(ctx context.Context, op string, err error) error {
	slogx.FromContext(ctx).Error("store operation failed",
		slog.String("op", op),
		slog.Any("error", err),
	)
	return domain.Dependency(op, err)
}
