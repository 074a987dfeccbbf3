package svm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/selesy/x402-svm-buyer/pkg/api"
	"github.com/selesy/x402-svm-buyer/pkg/types"
)

// ResolveFeePayer returns the fee payer to use for requirements: the
// value already present in the 402 body, if any; otherwise the result
// of probing facilitatorURL's /supported endpoint for an entry
// matching requirements.Network. An unmatched or failed probe is
// fatal - there is no further fallback.
func ResolveFeePayer(ctx context.Context, client *http.Client, facilitatorURL string, requirements types.PaymentRequirements) (string, error) {
	if feePayer, ok := requirements.FeePayer(); ok {
		return feePayer, nil
	}

	caps, err := probeSupported(ctx, client, facilitatorURL)
	if err != nil {
		return "", api.NewError(api.KindFacilitatorUnsupported, "failed to query /supported", err)
	}

	kind, ok := caps.ForNetwork(requirements.Network)
	if !ok {
		return "", api.NewError(api.KindFacilitatorUnsupported, fmt.Sprintf("no supported kind for network %q", requirements.Network), nil)
	}

	feePayer, ok := kind.FeePayer()
	if !ok {
		return "", api.NewError(api.KindFacilitatorUnsupported, fmt.Sprintf("facilitator kind for network %q has no feePayer", requirements.Network), nil)
	}

	return feePayer, nil
}

func probeSupported(ctx context.Context, client *http.Client, facilitatorURL string) (types.FacilitatorCapability, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, facilitatorURL+"/supported", nil)
	if err != nil {
		return types.FacilitatorCapability{}, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return types.FacilitatorCapability{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.FacilitatorCapability{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return types.FacilitatorCapability{}, fmt.Errorf("unexpected status %d from /supported", resp.StatusCode)
	}

	var caps types.FacilitatorCapability
	if err := json.Unmarshal(body, &caps); err != nil {
		return types.FacilitatorCapability{}, fmt.Errorf("decode /supported body: %w", err)
	}

	return caps, nil
}
