package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/session"
	"github.com/aussiebroadwan/forumhub/internal/forum/store"
	"github.com/aussiebroadwan/forumhub/pkg/cryptox"
	"github.com/aussiebroadwan/forumhub/pkg/jwtx"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"
)

// Principal is the resolved caller behind a session token.
type Principal struct {
	Actor     domain.Actor
	SessionID string
	ExpiresAt time.Time
}

// LoginResult is handed back to the client after a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Actor     domain.Actor
}

// SessionService issues and resolves session tokens. Tokens are signed
// JWTs carrying a session id; the session itself lives in Sessions so it
// can be revoked before the token expires. The role is never read from the
// token, it is reloaded on every Resolve.
type SessionService struct {
	Users    *UserService
	Store    store.Store
	Sessions session.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration
	Now      Clock
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return s.TTL
}

// Login authenticates the credentials and opens a new session.
func (s *SessionService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	// 1. Authenticate
	u, err := s.Users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			l.Info("login rejected", slog.String("username", domain.NormalizeUsername(username)))
		}
		return LoginResult{}, err
	}

	// 2. Mint the session id
	sid, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		l.Error("failed to generate session id", slog.Any("error", err))
		return LoginResult{}, err
	}

	// 3. Sign
	now := s.Now.now()
	claims := jwtx.NewSessionClaims(u.ID, sid, u.Username, s.Issuer, s.ttl(), now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		l.Error("failed to sign session token", slog.Any("error", err))
		return LoginResult{}, err
	}

	// 4. Persist the session under its fingerprint
	rec := session.Record{UserID: u.ID, CreatedAt: now, ExpiresAt: claims.Expiry()}
	if err := s.Sessions.Save(ctx, cryptox.FingerprintToken(sid), rec); err != nil {
		l.Error("failed to save session", slog.Any("error", err))
		return LoginResult{}, domain.Dependency("save session", err)
	}

	l.Info("session opened", slog.String("user_id", u.ID))
	return LoginResult{Token: token, ExpiresAt: rec.ExpiresAt, Actor: u.Actor()}, nil
}

// Resolve turns a bearer token into the current principal.
func (s *SessionService) Resolve(ctx context.Context, token string) (Principal, error) {
	if token == "" {
		return Principal{}, domain.ErrUnauthenticated
	}

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		slogx.FromContext(ctx).Debug("token rejected", slog.Any("error", err))
		return Principal{}, domain.ErrInvalidSession
	}

	rec, err := s.Sessions.Lookup(ctx, cryptox.FingerprintToken(claims.SID))
	switch {
	case errors.Is(err, session.ErrNotFound):
		return Principal{}, domain.ErrInvalidSession
	case err != nil:
		slogx.FromContext(ctx).Error("session lookup failed", slog.Any("error", err))
		return Principal{}, domain.Dependency("lookup session", err)
	}
	if rec.UserID != claims.Subject {
		return Principal{}, domain.ErrInvalidSession
	}

	u, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return Principal{}, domain.ErrInvalidSession
	case err != nil:
		return Principal{}, dependency(ctx, "get session user", err)
	}

	return Principal{
		Actor:     u.Actor(),
		SessionID: claims.SID,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

// Logout revokes the principal's session.
func (s *SessionService) Logout(ctx context.Context, p Principal) error {
	if p.SessionID == "" {
		return domain.ErrUnauthenticated
	}
	if err := s.Sessions.Revoke(ctx, cryptox.FingerprintToken(p.SessionID)); err != nil {
		slogx.FromContext(ctx).Error("failed to revoke session", slog.Any("error", err))
		return domain.Dependency("revoke session", err)
	}
	slogx.FromContext(ctx).Info("session closed", slog.String("user_id", p.Actor.ID))
	return nil
}
