package payer

import (
	"errors"
	"fmt"
)

// ErrFailedPayloadCreate is the umbrella sentinel for any failure
// while turning resolved payment requirements into a signed
// PaymentPayload. Callers that only care "did building the payment
// fail" can errors.Is against this; callers that need the specific
// kind from spec.md §7 should use errors.Is against the more specific
// sentinels in internal/exact/svm.
var ErrFailedPayloadCreate = errors.New("failed to create PaymentPayload")

// FailedPaymentPayloadCreation wraps err with ErrFailedPayloadCreate,
// preserving err in the causal chain.
func FailedPaymentPayloadCreation(err error) error {
	return fmt.Errorf("%w: %w", ErrFailedPayloadCreate, err)
}
