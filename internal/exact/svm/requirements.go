package svm

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/selesy/x402-svm-buyer/pkg/api"
	"github.com/selesy/x402-svm-buyer/pkg/types"
)

// DefaultNetwork is used when a 402 challenge's first requirement
// omits "network"; spec.md §4.9 requires this default with a warning,
// not a parse failure.
const DefaultNetwork = "solana-devnet"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseRequirements decodes a 402 response body and returns the first
// element of its "accepts" array, defaulting a missing network and
// validating the remaining required fields. Later entries in
// "accepts" are never considered, per spec.md §4.12's tie-break rule.
func ParseRequirements(body []byte, log *slog.Logger) (types.PaymentRequirements, error) {
	var req types.PaymentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return types.PaymentRequirements{}, api.NewError(api.KindChallengeParse, "402 body is not valid JSON", err)
	}

	if len(req.Accepts) == 0 {
		return types.PaymentRequirements{}, api.NewError(api.KindChallengeParse, "402 body has no accepts entries", nil)
	}

	reqs := req.Accepts[0]

	if reqs.Network == "" {
		log.Warn("402 challenge omitted network, defaulting", slog.String("default", DefaultNetwork))
		reqs.Network = DefaultNetwork
	}

	if err := validate.Struct(reqs); err != nil {
		return types.PaymentRequirements{}, api.NewError(api.KindChallengeParse, "missing required requirement field", err)
	}

	if _, err := reqs.AmountBaseUnits(); err != nil {
		return types.PaymentRequirements{}, api.NewError(api.KindAmountInvalid, fmt.Sprintf("maxAmountRequired=%q", reqs.MaxAmountRequired), err)
	}

	return reqs, nil
}
