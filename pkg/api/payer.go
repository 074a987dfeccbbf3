package api

import (
	"context"
	"time"

	"github.com/selesy/x402-svm-buyer/pkg/types"
)

// Scheme identifies an x402 payment scheme.
type Scheme string

// SchemeExact is the only scheme this client implements.
const SchemeExact Scheme = Scheme(types.SchemeExact)

// Payer represents types that can turn a set of resolved payment
// requirements into a signed, envelope-ready PaymentPayload.
type Payer interface {
	// Pay builds and signs a payment for the given requirements using
	// the fee payer the driver already resolved, and returns the
	// ready-to-transmit PaymentPayload.
	Pay(ctx context.Context, requirements types.PaymentRequirements, feePayer string) (*types.PaymentPayload, error)
	// Scheme returns the constant Scheme this Payer produces, used to
	// route a payment request to the right implementation.
	Scheme() Scheme
}

// PaymentRequest represents the body of a 402 Payment Required
// response.
type PaymentRequest = types.PaymentRequest

// NowFunc supplies the current time, overridable in tests.
type NowFunc func() time.Time

// DefaultNow returns time.Now as the default NowFunc.
func DefaultNow() NowFunc {
	return time.Now
}
