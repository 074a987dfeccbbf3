package buyer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/selesy/x402-svm-buyer/internal/exact/svm"
	"github.com/selesy/x402-svm-buyer/pkg/api"
)

// Header names for the x402 payment envelope and settlement receipt.
const (
	HeaderPayment         = "X-Payment"
	HeaderPaymentResponse = "X-Payment-Response"

	// HeaderPaymentMade is a synthetic response header this transport
	// adds so callers can tell, from the *http.Response alone, whether
	// a payment was attempted - "true" once a paid retry was issued,
	// "false" if the initial response was not a 402 and was returned
	// unpaid.
	HeaderPaymentMade = "X-Payment-Made"
	// HeaderPaymentVerified mirrors spec.md's "unverified" flag: once a
	// settlement receipt decodes, it carries the receipt's success
	// field ("true" or "false"); it is "false" when the receipt header
	// was absent or undecodable on a paid retry that was not a 402.
	HeaderPaymentVerified = "X-Payment-Verified"
)

var _ http.RoundTripper = (*X402BuyerTransport)(nil)

// X402BuyerTransport is the x402 protocol driver (C12): it wraps an
// inner http.RoundTripper and, on a 402 response, builds and attaches
// a signed SPL token transfer before retrying exactly once.
type X402BuyerTransport struct {
	config

	next  http.RoundTripper
	payer api.Payer
}

// NewX402BuyerTransport constructs the driver directly from a Payer,
// for callers that want full control over how payments are produced
// (e.g. a custom signer or scheme). Most callers should use one of the
// Client* constructors in client.go instead.
func NewX402BuyerTransport(next http.RoundTripper, p api.Payer, opts ...Option) (*X402BuyerTransport, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &X402BuyerTransport{
		config: *cfg,
		next:   next,
		payer:  p,
	}, nil
}

// RoundTrip implements the x402 driver state machine: it issues the
// request unpaid; if the response is not 402, it is returned as-is
// (DONE_UNPAID). Otherwise it parses the challenge, resolves a fee
// payer, builds and signs a payment, and retries exactly once
// (RETRY_WITH_PAYMENT). No automatic retries are performed beyond
// this single paid retry.
func (t *X402BuyerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var (
		body []byte
		err  error
	)

	if req.Body != nil {
		defer req.Body.Close()

		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, api.NewError(api.KindTransport, "failed to buffer request body", err)
		}

		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, api.NewError(api.KindTransport, "initial request failed", err)
	}

	if resp.StatusCode != http.StatusPaymentRequired {
		resp.Header.Set(HeaderPaymentMade, "false")
		return resp, nil
	}

	if req.Body != nil {
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	return t.handlePaymentRequired(req, resp)
}

func (t *X402BuyerTransport) handlePaymentRequired(req *http.Request, resp *http.Response) (*http.Response, error) {
	defer resp.Body.Close()

	challengeBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, api.NewError(api.KindTransport, "failed to read 402 response body", err)
	}

	t.log.Debug("402 challenge body", slog.String("json", string(challengeBody)))

	requirements, err := svm.ParseRequirements(challengeBody, t.log)
	if err != nil {
		return nil, err
	}

	ctx := req.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	feePayer, err := svm.ResolveFeePayer(ctx, t.client, t.facilitatorURL, requirements)
	if err != nil {
		return nil, err
	}

	payload, err := t.payer.Pay(ctx, requirements, feePayer)
	if err != nil {
		return nil, err
	}

	envelope, err := svm.EncodeEnvelope(payload)
	if err != nil {
		return nil, err
	}

	t.log.Debug("payment envelope encoded", slog.Int("bytes", len(envelope)))

	req.Header.Set(HeaderPayment, envelope)

	paidResp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, api.NewError(api.KindTransport, "paid retry failed", err)
	}

	if paidResp.StatusCode == http.StatusPaymentRequired {
		return nil, api.NewError(api.KindPaymentRejected, "paid retry was rejected with another 402", nil)
	}

	paidResp.Header.Set(HeaderPaymentMade, "true")

	receiptHeader := paidResp.Header.Get(HeaderPaymentResponse)
	if receiptHeader == "" {
		paidResp.Header.Set(HeaderPaymentVerified, "false")
		return paidResp, nil
	}

	receipt, err := svm.DecodeReceipt(receiptHeader)
	if err != nil {
		// Decode failures are reported but must not mask a non-2xx
		// status (or a 2xx one) on the final response - the HTTP
		// exchange itself already succeeded.
		t.log.Warn("settlement receipt present but undecodable", slog.Any("error", err))
		paidResp.Header.Set(HeaderPaymentVerified, "false")
		return paidResp, nil
	}

	paidResp.Header.Set(HeaderPaymentVerified, fmt.Sprintf("%t", receipt.Success))

	return paidResp, nil
}
