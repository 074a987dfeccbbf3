// Package types defines the JSON shapes that cross the wire in the
// x402 Solana payment flow: the 402 challenge body, the facilitator
// capability list, the payment envelope, and the settlement receipt.
//
// The payment envelope is deliberately flat (no nesting under "kind"):
// downstream facilitators reject the nested form, so this is a wire
// contract, not a stylistic choice.
package types

import (
	"fmt"
	"strconv"
)

// X402Version is the protocol version this client speaks.
const X402Version = 1

// SchemeExact is the only payment scheme this client implements: the
// device pays a precise stated amount, as opposed to streaming or
// subscription modes.
const SchemeExact = "exact"

// PaymentRequirements is parsed from the first element of a 402
// response body's "accepts" array.
type PaymentRequirements struct {
	Recipient         string         `json:"payTo" validate:"required"`
	Asset             string         `json:"asset" validate:"required"`
	MaxAmountRequired string         `json:"maxAmountRequired" validate:"required"`
	Network           string         `json:"network"`
	Extra             map[string]any `json:"extra,omitempty"`
}

// FeePayer extracts the facilitator's fee-payer address from Extra, if
// present. An empty string and false mean the 402 body did not name a
// fee payer and the facilitator capability probe must be consulted.
func (r PaymentRequirements) FeePayer() (string, bool) {
	if r.Extra == nil {
		return "", false
	}
	v, ok := r.Extra["feePayer"].(string)
	return v, ok && v != ""
}

// AmountBaseUnits parses MaxAmountRequired as a non-zero unsigned
// 64-bit integer in the token's smallest denomination. A zero value or
// non-digit content is rejected - the caller must treat this as a
// fatal parse error before any RPC is issued.
func (r PaymentRequirements) AmountBaseUnits() (uint64, error) {
	amount, err := strconv.ParseUint(r.MaxAmountRequired, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid maxAmountRequired %q: %w", r.MaxAmountRequired, err)
	}
	if amount == 0 {
		return 0, fmt.Errorf("maxAmountRequired must be non-zero")
	}

	return amount, nil
}

// PaymentRequest is the body of a 402 Payment Required response.
type PaymentRequest struct {
	X402Version int                   `json:"x402Version"`
	Error       string                `json:"error,omitempty"`
	Accepts     []PaymentRequirements `json:"accepts"`
}

// FacilitatorKind is one entry in a facilitator's /supported response.
type FacilitatorKind struct {
	X402Version int            `json:"x402Version"`
	Scheme      string         `json:"scheme"`
	Network     string         `json:"network"`
	Extra       map[string]any `json:"extra,omitempty"`
}

// FeePayer extracts the fee-payer address this facilitator kind
// advertises for its network.
func (k FacilitatorKind) FeePayer() (string, bool) {
	if k.Extra == nil {
		return "", false
	}
	v, ok := k.Extra["feePayer"].(string)
	return v, ok && v != ""
}

// FacilitatorCapability is the decoded body of a facilitator's
// GET /supported response.
type FacilitatorCapability struct {
	Kinds []FacilitatorKind `json:"kinds"`
}

// ForNetwork returns the first kind whose Network matches network.
func (c FacilitatorCapability) ForNetwork(network string) (FacilitatorKind, bool) {
	for _, k := range c.Kinds {
		if k.Network == network {
			return k, true
		}
	}
	return FacilitatorKind{}, false
}

// PaymentPayloadData is the inner "payload" object of a PaymentPayload:
// the Base64-encoded transaction bytes.
type PaymentPayloadData struct {
	Transaction string `json:"transaction"`
}

// PaymentPayload is the canonical JSON envelope transmitted, Base64
// encoded, in the X-PAYMENT request header. The struct's field order
// and json tags define the exact on-the-wire shape: x402Version,
// scheme, network, payload - no other top-level keys.
type PaymentPayload struct {
	X402Version int                `json:"x402Version"`
	Scheme      string             `json:"scheme"`
	Network     string             `json:"network"`
	Payload     PaymentPayloadData `json:"payload"`
}

// SettlementReceipt is decoded from the Base64 X-PAYMENT-RESPONSE
// header on a successful paid retry.
type SettlementReceipt struct {
	Transaction string `json:"transaction"`
	Success     bool   `json:"success"`
	Network     string `json:"network"`
}
