package buyer_test

import (
	"context"
	"crypto/ed25519"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	buyer "github.com/selesy/x402-svm-buyer"
	"github.com/selesy/x402-svm-buyer/internal/exact/svm"
	"github.com/selesy/x402-svm-buyer/internal/solana/base58"
	"github.com/selesy/x402-svm-buyer/internal/solana/tokenprogram"
)

const payReq = `{"accepts":[{"scheme":"exact","network":"solana-devnet","maxAmountRequired":"100","resource":"https://example.com","description":"A premium programming joke","payTo":"HVnsW7xz1VkXEySxvXuMj6jUa3aewQbbCUkYis1DEh6Q","asset":"4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU","maxTimeoutSeconds":60,"extra":{"feePayer":"11111111111111111111111111111111"}}],"error":"X-PAYMENT header is required","x402Version":1}`

func newTestSigner(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return priv
}

type svmSigner struct {
	pub  ed25519.PublicKey
	priv ed25519.PrivateKey
}

func (s *svmSigner) Sign(message []byte) ([]byte, error) { return ed25519.Sign(s.priv, message), nil }
func (s *svmSigner) Address() string                     { return base58.Encode(s.pub) }
func (s *svmSigner) PublicKey() []byte                    { return s.pub }

type fakeRPC struct {
	owner     [32]byte
	blockhash [32]byte
}

func (r *fakeRPC) LatestBlockhash(_ context.Context) ([32]byte, error) { return r.blockhash, nil }
func (r *fakeRPC) MintProgramOwner(_ context.Context, _ [32]byte) ([32]byte, error) {
	return r.owner, nil
}

func newTestTransport(t *testing.T, next http.RoundTripper) *buyer.X402BuyerTransport {
	t.Helper()

	priv := newTestSigner(t)
	s := &svmSigner{pub: priv.Public().(ed25519.PublicKey), priv: priv}
	rpc := &fakeRPC{owner: tokenprogram.Classic, blockhash: [32]byte{7, 7, 7}}

	exact, err := svm.NewExactSvm(s, rpc, noopLogger())
	require.NoError(t, err)

	trans, err := buyer.NewX402BuyerTransport(next, exact, buyer.WithRPCClient(rpc))
	require.NoError(t, err)

	return trans
}

func TestTransportPassesWhenNoPaymentRequired(t *testing.T) {
	t.Parallel()

	respIn1 := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("Response body")),
	}

	next := newMockTransport(t, respIn1)
	trans := newTestTransport(t, next)

	req, err := http.NewRequest(http.MethodGet, "https://example.com", strings.NewReader("Request body"))
	require.NoError(t, err)

	respOut, err := trans.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, respIn1, respOut)
	assert.Equal(t, "false", respOut.Header.Get(buyer.HeaderPaymentMade))

	t.Cleanup(func() {
		require.NoError(t, respOut.Body.Close())
	})
}

func TestTransportPaysOnChallenge(t *testing.T) {
	t.Parallel()

	respIn1 := &http.Response{
		StatusCode: http.StatusPaymentRequired,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(payReq)),
	}

	respIn2 := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("Response body")),
	}

	next := newMockTransport(t, respIn1, respIn2)
	trans := newTestTransport(t, next)

	req, err := http.NewRequest(http.MethodGet, "https://example.com", strings.NewReader("Request body"))
	require.NoError(t, err)

	respOut, err := trans.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, respIn2, respOut)
	assert.Equal(t, "true", respOut.Header.Get(buyer.HeaderPaymentMade))
	assert.Equal(t, "false", respOut.Header.Get(buyer.HeaderPaymentVerified))

	t.Cleanup(func() {
		require.NoError(t, respOut.Body.Close())
	})
}

func TestTransportFailsWhenPaidRetryRejected(t *testing.T) {
	t.Parallel()

	respIn1 := &http.Response{
		StatusCode: http.StatusPaymentRequired,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(payReq)),
	}

	respIn2 := &http.Response{
		StatusCode: http.StatusPaymentRequired,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(payReq)),
	}

	next := newMockTransport(t, respIn1, respIn2)
	trans := newTestTransport(t, next)

	req, err := http.NewRequest(http.MethodGet, "https://example.com", strings.NewReader("Request body"))
	require.NoError(t, err)

	_, err = trans.RoundTrip(req)
	require.Error(t, err)
}

var _ http.RoundTripper = (*mockTransport)(nil)

type mockTransport struct {
	t     *testing.T
	resps []*http.Response
	idx   int
}

func newMockTransport(t *testing.T, resps ...*http.Response) *mockTransport {
	t.Helper()

	return &mockTransport{
		t:     t,
		resps: resps,
		idx:   0,
	}
}

func (t *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	defer func() {
		require.NoError(t.t, req.Body.Close())
	}()

	body, err := io.ReadAll(req.Body)
	require.NoError(t.t, err)
	require.Equal(t.t, "Request body", string(body))

	require.False(t.t, t.idx >= len(t.resps), "Why?")

	out := t.resps[t.idx]
	t.idx++

	return out, nil
}
