// Package signer adapts external Solana key material - raw bytes, a
// Base58 string, an environment variable, or a CLI-style keypair file -
// into the api.SVMSigner the payment path signs with.
package signer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/selesy/x402-svm-buyer/internal/solana/base58"
	"github.com/selesy/x402-svm-buyer/internal/solana/wallet"
	"github.com/selesy/x402-svm-buyer/pkg/api"
)

var _ api.SVMSigner = (*WalletSigner)(nil)

// WalletSigner is an api.SVMSigner backed by an in-memory Solana
// wallet.Wallet.
type WalletSigner struct {
	wal *wallet.Wallet
}

// NewWalletSigner wraps an already-constructed wallet.Wallet.
func NewWalletSigner(wal *wallet.Wallet) *WalletSigner {
	return &WalletSigner{wal: wal}
}

// NewWalletSignerFromKeypair constructs a WalletSigner from a raw
// 64-byte expanded Ed25519 secret key.
func NewWalletSignerFromKeypair(b []byte) (*WalletSigner, error) {
	wal, err := wallet.FromKeypair(b)
	if err != nil {
		return nil, err
	}

	return NewWalletSigner(wal), nil
}

// NewWalletSignerFromBase58 constructs a WalletSigner from a
// Base58-encoded 64-byte expanded secret key, the form the Solana CLI
// prints for a keypair and the form most wallet exports use.
func NewWalletSignerFromBase58(s string) (*WalletSigner, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("signer: decode base58 keypair: %w", err)
	}

	return NewWalletSignerFromKeypair(raw)
}

// NewWalletSignerFromEnv reads a Base58-encoded keypair from the named
// environment variable.
func NewWalletSignerFromEnv(name string) (*WalletSigner, error) {
	encoded := os.Getenv(name)
	if encoded == "" {
		return nil, fmt.Errorf("%w: %s", ErrEnvVarNotFound, name)
	}

	return NewWalletSignerFromBase58(encoded)
}

// NewWalletSignerFromKeypairFile loads a Solana CLI-style id.json
// keypair file: a JSON array of 64 integers, each in [0, 255],
// representing the expanded secret key.
func NewWalletSignerFromKeypairFile(path string) (*WalletSigner, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("signer: read keypair file: %w", err)
	}

	var values []int
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeypairFile, err)
	}
	if len(values) != 64 {
		return nil, fmt.Errorf("%w: got %d entries", ErrInvalidKeypairFile, len(values))
	}

	secret := make([]byte, 64)
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: entry %d out of byte range: %d", ErrInvalidKeypairFile, i, v)
		}
		secret[i] = byte(v)
	}

	return NewWalletSignerFromKeypair(secret)
}

// Address returns the Base58 Solana address of the underlying wallet.
func (s *WalletSigner) Address() string {
	return s.wal.Address()
}

// PublicKey returns the raw 32-byte public key of the underlying
// wallet.
func (s *WalletSigner) PublicKey() []byte {
	return s.wal.PublicKey()
}

// Sign produces a detached Ed25519 signature over message.
func (s *WalletSigner) Sign(message []byte) ([]byte, error) {
	return s.wal.Sign(message), nil
}

// Destroy zeroizes the underlying wallet's secret key material.
func (s *WalletSigner) Destroy() {
	s.wal.Destroy()
}
