package api

import (
	"errors"
	"fmt"
)

// Kind identifies one of the error categories the x402 driver can
// surface to callers, per spec.md's error handling design.
type Kind string

const (
	// KindTransport covers HTTP or RPC collaborator failures.
	KindTransport Kind = "transport"
	// KindChallengeParse covers a 402 body missing required fields or
	// not valid JSON.
	KindChallengeParse Kind = "challenge_parse"
	// KindFacilitatorUnsupported covers a /supported response lacking
	// the required network tuple.
	KindFacilitatorUnsupported Kind = "facilitator_unsupported"
	// KindMintUnsupported covers a mint owner that is neither the
	// classic nor the 2022 token program.
	KindMintUnsupported Kind = "mint_unsupported"
	// KindBuildOverflow covers an output buffer too small at any
	// serialization step.
	KindBuildOverflow Kind = "build_overflow"
	// KindAmountInvalid covers a maxAmountRequired that fails to parse
	// as a non-zero u64.
	KindAmountInvalid Kind = "amount_invalid"
	// KindCrypto covers signing or curve-test failure.
	KindCrypto Kind = "crypto"
	// KindPaymentRejected covers a paid retry that is answered with
	// another 402. Any other status on the paid retry is returned to the
	// caller as a response, not as this error.
	KindPaymentRejected Kind = "payment_rejected"
	// KindReceiptDecode covers a settlement header present but
	// undecodable.
	KindReceiptDecode Kind = "receipt_decode"
)

// Error is the typed error every driver failure surfaces as: a kind
// from spec.md §7, free-text context, and the underlying cause.
type Error struct {
	Kind    Kind
	Context string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Context)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a typed Error, wrapping cause (which may be nil) in
// the causal chain.
func NewError(kind Kind, context string, cause error) *Error {
	return &Error{Kind: kind, Context: context, Err: cause}
}

// Is reports whether err is an *Error of the given kind, looking
// through any wrapping.
func Is(err error, kind Kind) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Kind == kind
}
