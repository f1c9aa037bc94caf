package app

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/forumhub/pkg/cryptox"
	"github.com/aussiebroadwan/forumhub/pkg/jwtx"
)

// SessionKeys bundles the signing key with the key set and verifier built
// from it.
type SessionKeys struct {
	Signer   *jwtx.EdDSASigner
	KeySet   *jwtx.KeySet
	Verifier *jwtx.EdDSAVerifier
}

// InitSessionKeys loads the Ed25519 key at cfg.SigningKeyFile, creating it on
// first start. The key id is derived from the key material, so restarts with
// the same file keep issued sessions valid.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*SessionKeys, error) {
	pemKey, err := cryptox.LoadOrCreateEd25519Key(cfg.SigningKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing key: %w", err)
	}

	sum := sha256.Sum256(pemKey)
	kid := hex.EncodeToString(sum[:8])

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing key: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("failed to register signing key: %w", err)
	}

	logger.Info("session signing key loaded", "kid", kid, "alg", signer.Alg(), "issuer", cfg.Issuer)

	return &SessionKeys{
		Signer:   signer,
		KeySet:   keys,
		Verifier: jwtx.NewVerifierEdDSA(keys, cfg.Issuer),
	}, nil
}
