package svm

import (
	"encoding/base64"
	"encoding/json"

	"github.com/selesy/x402-svm-buyer/pkg/api"
	"github.com/selesy/x402-svm-buyer/pkg/types"
)

// EncodeEnvelope serializes the flat payment envelope to compact JSON
// and Base64-encodes it (standard alphabet, with padding), producing
// the X-PAYMENT header value.
func EncodeEnvelope(payload *types.PaymentPayload) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", api.NewError(api.KindBuildOverflow, "failed to marshal payment envelope", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeReceipt Base64-decodes the X-PAYMENT-RESPONSE header value and
// parses the resulting JSON into a SettlementReceipt. A missing header
// is not an error at this layer - the caller distinguishes "absent"
// from "present but undecodable". The decoded receipt is trusted as
// delivered: nothing here checks the settlement on chain.
func DecodeReceipt(header string) (types.SettlementReceipt, error) {
	raw, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return types.SettlementReceipt{}, api.NewError(api.KindReceiptDecode, "X-PAYMENT-RESPONSE is not valid base64", err)
	}

	var receipt types.SettlementReceipt
	if err := json.Unmarshal(raw, &receipt); err != nil {
		return types.SettlementReceipt{}, api.NewError(api.KindReceiptDecode, "X-PAYMENT-RESPONSE is not valid JSON", err)
	}

	return receipt, nil
}

// NewPaymentPayload builds the flat envelope: x402Version, scheme,
// network, payload{transaction}. No other top-level keys are ever
// emitted - the nested "kind" form some facilitators historically
// accepted is a wire-incompatibility bug this client must not
// reproduce.
func NewPaymentPayload(network string, txBase64 string) *types.PaymentPayload {
	return &types.PaymentPayload{
		X402Version: types.X402Version,
		Scheme:      types.SchemeExact,
		Network:     network,
		Payload: types.PaymentPayloadData{
			Transaction: txBase64,
		},
	}
}
