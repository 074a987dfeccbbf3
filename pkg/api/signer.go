package api

// A Signer is implemented by types that can produce a detached
// Ed25519 signature over the provided message.
type Signer interface {
	Sign(message []byte) ([]byte, error)
}

// An SVMSigner is a Signer that operates on behalf of a Solana account
// and therefore has a Base58 address and a raw 32-byte public key.
type SVMSigner interface {
	Signer

	Address() string
	PublicKey() []byte
}
