package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/forumhub/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "forumhub"}}

	require.NoError(t, c.ValidateIssuer("forumhub"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("elsewhere"), jwtx.ErrIssuer)
}

func TestValidateExpiryAt(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := jwtx.NewSessionClaims("u", "s", "alice", "forumhub", time.Hour, now)

	require.NoError(t, c.ValidateExpiryAt(now))
	require.NoError(t, c.ValidateExpiryAt(now.Add(59*time.Minute)))
	require.ErrorIs(t, c.ValidateExpiryAt(now.Add(time.Hour)), jwtx.ErrExpired)
	require.ErrorIs(t, c.ValidateExpiryAt(now.Add(-time.Second)), jwtx.ErrNotYetValid)
}

func TestNewSessionClaims_DefaultTTL(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := jwtx.NewSessionClaims("u", "s", "alice", "forumhub", 0, now)

	require.True(t, now.Add(jwtx.DefaultSessionTTL).Equal(c.Expiry()))
	require.Equal(t, "s", c.ID)
}
