package app

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/forumhub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestInitSessionKeysStableAcrossRestarts(t *testing.T) {
	cfg := Config{
		Issuer:         "forumhub-test",
		SigningKeyFile: filepath.Join(t.TempDir(), "keys", "signing.pem"),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first, err := InitSessionKeys(cfg, logger)
	require.NoError(t, err)
	require.True(t, first.KeySet.IsReady())

	token, err := first.Signer.Sign(jwtx.NewSessionClaims("user-1", "sid-1", "alice", cfg.Issuer, time.Hour, time.Now()))
	require.NoError(t, err)

	second, err := InitSessionKeys(cfg, logger)
	require.NoError(t, err)
	require.Equal(t, first.Signer.KID(), second.Signer.KID())

	claims, err := second.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
}
