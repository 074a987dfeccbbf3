// Package wallet owns the device's expanded Ed25519 secret key and
// exposes the minimal surface the payment path needs: its public
// address and a detached signing operation.
package wallet

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/selesy/x402-svm-buyer/internal/solana/base58"
)

// ErrInvalidKeypairLength is returned when the supplied key material is
// not the expected 64-byte expanded secret (32-byte seed/scalar plus
// 32-byte public key).
var ErrInvalidKeypairLength = errors.New("wallet: keypair must be exactly 64 bytes")

// Wallet owns a 64-byte expanded Ed25519 secret for the lifetime of a
// payment session. The trailing 32 bytes of the secret equal the
// public key returned by PublicKey.
type Wallet struct {
	secret ed25519.PrivateKey // len 64; secret[32:] == public key
	public ed25519.PublicKey  // copy of secret[32:]
}

// FromKeypair constructs a Wallet from an externally supplied 64-byte
// expanded secret key, such as one loaded from a Solana CLI id.json
// file or a hardware keystore. The returned Wallet copies b; the
// caller remains responsible for zeroizing its own copy if it no
// longer needs it.
func FromKeypair(b []byte) (*Wallet, error) {
	if len(b) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeypairLength, len(b))
	}

	secret := make([]byte, ed25519.PrivateKeySize)
	copy(secret, b)

	w := &Wallet{secret: ed25519.PrivateKey(secret)}
	w.public = w.secret.Public().(ed25519.PublicKey)

	return w, nil
}

// FromSeed constructs a Wallet from a 32-byte Ed25519 seed, expanding
// it into the full 64-byte secret. This is the path used when key
// material is generated rather than loaded (the random source is the
// caller's responsibility - a hardware RNG on the device).
func FromSeed(seed []byte) (*Wallet, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("wallet: seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}

	secret := ed25519.NewKeyFromSeed(seed)

	return FromKeypair(secret)
}

// PublicKey returns the wallet's raw 32-byte public key. The returned
// slice aliases the wallet's internal storage and must not be
// modified.
func (w *Wallet) PublicKey() []byte {
	return w.public
}

// Address returns the Base58 encoding of the wallet's public key, the
// form Solana tooling and wire payloads use.
func (w *Wallet) Address() string {
	return base58.Encode(w.public)
}

// Sign produces a detached 64-byte Ed25519 signature over message. It
// does not modify the secret and is safe to call re-entrantly so long
// as the wallet is not concurrently being destroyed.
func (w *Wallet) Sign(message []byte) []byte {
	return ed25519.Sign(w.secret, message)
}

// Destroy zeroizes the wallet's secret key material. The wallet must
// not be used after Destroy returns.
func (w *Wallet) Destroy() {
	for i := range w.secret {
		w.secret[i] = 0
	}
	w.public = nil
}
