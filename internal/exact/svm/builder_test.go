package svm_test

import (
	"context"
	"crypto/ed25519"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selesy/x402-svm-buyer/internal/exact/svm"
	"github.com/selesy/x402-svm-buyer/internal/solana/base58"
	"github.com/selesy/x402-svm-buyer/internal/solana/tokenprogram"
	"github.com/selesy/x402-svm-buyer/pkg/types"
)

type fakeSigner struct {
	pub  ed25519.PublicKey
	priv ed25519.PrivateKey
}

func newFakeSigner(t *testing.T) *fakeSigner {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return &fakeSigner{pub: pub, priv: priv}
}

func (s *fakeSigner) Sign(message []byte) ([]byte, error) { return ed25519.Sign(s.priv, message), nil }
func (s *fakeSigner) Address() string                     { return base58.Encode(s.pub) }
func (s *fakeSigner) PublicKey() []byte                    { return s.pub }

type fakeRPC struct {
	owner     [32]byte
	blockhash [32]byte
	err       error
}

func (r *fakeRPC) LatestBlockhash(_ context.Context) ([32]byte, error) {
	if r.err != nil {
		return [32]byte{}, r.err
	}
	return r.blockhash, nil
}

func (r *fakeRPC) MintProgramOwner(_ context.Context, _ [32]byte) ([32]byte, error) {
	if r.err != nil {
		return [32]byte{}, r.err
	}
	return r.owner, nil
}

func testRequirements() types.PaymentRequirements {
	return types.PaymentRequirements{
		Recipient:         "HVnsW7xz1VkXEySxvXuMj6jUa3aewQbbCUkYis1DEh6Q",
		Asset:             "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU",
		MaxAmountRequired: "100",
		Network:           "solana-devnet",
	}
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPayHappyPath(t *testing.T) {
	signer := newFakeSigner(t)
	rpc := &fakeRPC{owner: tokenprogram.Classic, blockhash: [32]byte{9, 9, 9}}

	p, err := svm.NewExactSvm(signer, rpc, noopLogger())
	require.NoError(t, err)

	payload, err := p.Pay(context.Background(), testRequirements(), "11111111111111111111111111111111")
	require.NoError(t, err)
	assert.Equal(t, types.SchemeExact, payload.Scheme)
	assert.Equal(t, "solana-devnet", payload.Network)
	assert.NotEmpty(t, payload.Payload.Transaction)
}

func TestPayRejectsUnsupportedMintOwner(t *testing.T) {
	signer := newFakeSigner(t)
	rpc := &fakeRPC{owner: [32]byte{1, 2, 3}, blockhash: [32]byte{9, 9, 9}}

	p, err := svm.NewExactSvm(signer, rpc, noopLogger())
	require.NoError(t, err)

	_, err = p.Pay(context.Background(), testRequirements(), "HVnsW7xz1VkXEySxvXuMj6jUa3aewQbbCUkYis1DEh6Q")
	require.Error(t, err)
}

func TestPayRejectsZeroAmount(t *testing.T) {
	signer := newFakeSigner(t)
	rpc := &fakeRPC{owner: tokenprogram.Classic}

	p, err := svm.NewExactSvm(signer, rpc, noopLogger())
	require.NoError(t, err)

	reqs := testRequirements()
	reqs.MaxAmountRequired = "0"

	_, err = p.Pay(context.Background(), reqs, "HVnsW7xz1VkXEySxvXuMj6jUa3aewQbbCUkYis1DEh6Q")
	require.Error(t, err)
}
