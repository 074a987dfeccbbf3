package signer

import "errors"

// ErrEnvVarNotFound is returned when the environment variable that's
// supposed to contain the key material is not present.
var ErrEnvVarNotFound = errors.New("environment variable not found")

// ErrInvalidKeypairFile is returned when a Solana CLI-style keypair
// file does not contain a JSON array of exactly 64 byte values.
var ErrInvalidKeypairFile = errors.New("keypair file must contain a JSON array of 64 byte values")
