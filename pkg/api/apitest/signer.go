// Package apitest provides test fixtures and helpers for exercising
// api.Signer implementations without depending on a specific signer.
package apitest

import (
	"crypto/ed25519"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/selesy/x402-svm-buyer/internal/solana/base58"
	"github.com/selesy/x402-svm-buyer/pkg/api"
)

// KeypairEnvVar is the environment variable Keypair reads a
// Base58-encoded 64-byte expanded secret key from.
const KeypairEnvVar = "X402_BUYER_TEST_KEYPAIR"

// TestSigner exercises an api.Signer by signing a known message and
// verifying the signature against the wallet's advertised public key.
func TestSigner(t *testing.T, signer api.SVMSigner, message []byte) {
	t.Helper()

	sig, err := signer.Sign(message)
	require.NoError(t, err)
	require.Len(t, sig, ed25519.SignatureSize)
	require.True(t, ed25519.Verify(signer.PublicKey(), message, sig))
}

// Keypair returns a deterministic 64-byte expanded Ed25519 secret for
// use in tests: loaded from KeypairEnvVar when that variable is set
// (e.g. to pin a Base58 address in a golden test), otherwise expanded
// from the fixed seed 1, 2, ..., 32.
func Keypair(t *testing.T) ed25519.PrivateKey {
	t.Helper()

	if encoded, ok := os.LookupEnv(KeypairEnvVar); ok {
		raw, err := base58.Decode(encoded)
		require.NoError(t, err)
		require.Len(t, raw, ed25519.PrivateKeySize)

		return ed25519.PrivateKey(raw)
	}

	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}

	return ed25519.NewKeyFromSeed(seed)
}
