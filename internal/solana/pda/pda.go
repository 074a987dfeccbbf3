// Package pda derives Solana Program Derived Addresses and, from them,
// Associated Token Accounts (ATAs). A PDA is found by iterating a bump
// seed from 255 down to 0 until the resulting hash is not a valid
// Ed25519 curve point.
package pda

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/selesy/x402-svm-buyer/internal/solana/curve"
)

const maxSeeds = 16
const maxSeedLen = 32

// ErrNoViableAddress is returned when every bump from 255 down to 0
// produces an on-curve hash. This is vanishingly improbable for real
// seed sets and indicates corrupted input rather than a retryable
// condition.
var ErrNoViableAddress = errors.New("pda: no off-curve address found for any bump seed")

// AssociatedTokenProgramID is the well-known Associated Token Account
// program. It is a constant of the Solana runtime, not a value the
// caller configures.
var AssociatedTokenProgramID = [32]byte{
	140, 151, 37, 143, 78, 36, 137, 241, 187, 61, 16, 41, 20, 142, 13, 131,
	11, 90, 19, 153, 218, 255, 16, 132, 4, 142, 123, 216, 219, 233, 248, 89,
}

// Find runs the canonical PDA search: the greatest bump in [0, 255]
// such that SHA-256(concat(seeds) || bump || programID ||
// "ProgramDerivedAddress") is not a valid Ed25519 point. It returns the
// derived 32-byte address and the winning bump.
func Find(seeds [][]byte, programID [32]byte) ([32]byte, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		candidate := createProgramAddress(seeds, byte(bump), programID)
		if !curve.IsOnCurve(candidate[:]) {
			return candidate, uint8(bump), nil
		}
		if bump == 0 {
			break
		}
	}

	return [32]byte{}, 0, ErrNoViableAddress
}

func createProgramAddress(seeds [][]byte, bump byte, programID [32]byte) [32]byte {
	h := sha256.New()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write([]byte{bump})
	h.Write(programID[:])
	h.Write([]byte("ProgramDerivedAddress"))

	var out [32]byte
	copy(out[:], h.Sum(nil))

	return out
}

// validateSeeds enforces Solana's seed-count and seed-length limits
// before a derivation is attempted, per the runtime's own constraints.
func validateSeeds(seeds [][]byte) error {
	if len(seeds) > maxSeeds {
		return fmt.Errorf("pda: too many seeds: %d > %d", len(seeds), maxSeeds)
	}
	for i, s := range seeds {
		if len(s) > maxSeedLen {
			return fmt.Errorf("pda: seed %d too long: %d > %d", i, len(s), maxSeedLen)
		}
	}
	return nil
}

// DeriveATA derives the Associated Token Account for (wallet, mint,
// tokenProgram): the PDA of the Associated Token Account program over
// the three 32-byte seeds in the order wallet, tokenProgram, mint (the
// seed order the Associated Token Account program uses). Using the wrong
// tokenProgram (classic SPL Token vs. Token-2022) produces a different
// address, which is why the caller must resolve the mint's owning
// program before calling this.
func DeriveATA(wallet, mint, tokenProgram [32]byte) ([32]byte, uint8, error) {
	seeds := [][]byte{wallet[:], tokenProgram[:], mint[:]}
	if err := validateSeeds(seeds); err != nil {
		return [32]byte{}, 0, err
	}

	return Find(seeds, AssociatedTokenProgramID)
}
