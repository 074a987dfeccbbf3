package buyer

import (
	"fmt"
	"net/http"
	"os"

	"github.com/selesy/x402-svm-buyer/internal/exact/svm"
	"github.com/selesy/x402-svm-buyer/internal/signer"
	"github.com/selesy/x402-svm-buyer/pkg/api"
)

// ClientForSigner builds an *http.Client whose transport pays x402
// challenges using signer for the device-resident key. This is the
// most general constructor - callers who already hold an api.SVMSigner
// (from a hardware key, an HSM, or a custom wallet) should use it
// directly.
func ClientForSigner(s api.SVMSigner, opts ...Option) (*http.Client, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	exact, err := svm.NewExactSvm(s, cfg.rpc, cfg.log)
	if err != nil {
		return nil, err
	}

	transport, err := NewX402BuyerTransport(cfg.client.Transport, exact, opts...)
	if err != nil {
		return nil, err
	}

	return &http.Client{Transport: transport}, nil
}

// ClientForKeypair builds an *http.Client from a raw 64-byte Ed25519
// keypair (the Solana CLI's in-memory representation: 32-byte seed
// followed by 32-byte public key).
func ClientForKeypair(keypair []byte, opts ...Option) (*http.Client, error) {
	s, err := signer.NewWalletSignerFromKeypair(keypair)
	if err != nil {
		return nil, err
	}

	return ClientForSigner(s, opts...)
}

// ClientForKeypairFile builds an *http.Client from a Solana CLI
// id.json keypair file (a JSON array of 64 ints).
func ClientForKeypairFile(path string, opts ...Option) (*http.Client, error) {
	s, err := signer.NewWalletSignerFromKeypairFile(path)
	if err != nil {
		return nil, err
	}

	return ClientForSigner(s, opts...)
}

// ClientForKeypairFilePathFromEnv builds an *http.Client using a
// keypair file whose path is named by the environment variable name.
func ClientForKeypairFilePathFromEnv(name string, opts ...Option) (*http.Client, error) {
	path := os.Getenv(name)
	if path == "" {
		return nil, fmt.Errorf("buyer: environment variable %s not set", name)
	}

	return ClientForKeypairFile(path, opts...)
}

// ClientForBase58KeypairFromEnv builds an *http.Client using a
// base58-encoded 64-byte keypair held directly in the environment
// variable named name, rather than a file path.
func ClientForBase58KeypairFromEnv(name string, opts ...Option) (*http.Client, error) {
	s, err := signer.NewWalletSignerFromEnv(name)
	if err != nil {
		return nil, err
	}

	return ClientForSigner(s, opts...)
}
