package wallet_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selesy/x402-svm-buyer/internal/solana/wallet"
)

func TestFromKeypairPublicKeyMatchesTrailingBytes(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	w, err := wallet.FromKeypair(priv)
	require.NoError(t, err)

	assert.Equal(t, []byte(pub), w.PublicKey())
}

func TestFromKeypairRejectsWrongLength(t *testing.T) {
	_, err := wallet.FromKeypair(make([]byte, 32))
	require.ErrorIs(t, err, wallet.ErrInvalidKeypairLength)
}

func TestSignIsVerifiable(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	w, err := wallet.FromKeypair(priv)
	require.NoError(t, err)

	msg := []byte("transaction message bytes")
	sig := w.Sign(msg)

	assert.True(t, ed25519.Verify(pub, msg, sig))
}

func TestFromSeedExpandsToMatchingPublicKey(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}

	w, err := wallet.FromSeed(seed)
	require.NoError(t, err)

	priv := ed25519.NewKeyFromSeed(seed)
	assert.Equal(t, []byte(priv.Public().(ed25519.PublicKey)), w.PublicKey())
}

func TestDestroyClearsPublicKey(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	w, err := wallet.FromKeypair(priv)
	require.NoError(t, err)

	w.Destroy()
	assert.Nil(t, w.PublicKey())
}
