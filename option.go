package buyer

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/selesy/x402-svm-buyer/internal/observability"
	"github.com/selesy/x402-svm-buyer/internal/solana/rpcclient"
)

type config struct {
	client         *http.Client
	log            *slog.Logger
	rpc            rpcclient.Client
	facilitatorURL string
}

// ErrRPCClientRequired is returned by newConfig when no RPC
// collaborator was configured - the mint program probe (C7) and
// blockhash fetch (C8) have no other source.
var ErrRPCClientRequired = errors.New("buyer: an RPC client is required; use WithRPCClient or WithRPCEndpoint")

// Option represents a means of altering the default configuration of the
// buyer's http.RoundTripper.
type Option func(*config) error

func newConfig(opts ...Option) (*config, error) {
	var errs error

	cfg := &config{
		client: &http.Client{
			Transport: http.DefaultTransport,
		},
		log: slog.New(observability.NewNoopHandler()),
	}

	for _, opt := range opts {
		errs = errors.Join(errs, opt(cfg))
	}

	if errs != nil {
		return nil, errs
	}

	if cfg.rpc == nil {
		return nil, ErrRPCClientRequired
	}

	return cfg, nil
}

// WithClient is an Option that allows the user to provide a custom http.Client
// whose http.RoundTripper will be wrapped to allow x402 payments.
//
// If not provided, a new http.Client using http.DefaultTransport is used and
// that transport is wrapped with the payment middleware.  When provided as an
// argument to NewX402BuyerTransport, the client's transport is not wrapped
// (the next argument is), but the client still issues the facilitator's
// /supported probe.
func WithClient(client *http.Client) Option {
	return func(c *config) error {
		c.client = client

		return nil
	}
}

// WithLogger is an Option that allows the user to provide an slog.Logger that
// can be used to observe the internal operation of the buyer's http.RoundTripper.
//
// If not provided, a No-Op logger is used.  This library writes no INFO-level
// records; Debug-level logging provides records for the steps of the payment
// process, and a WARN record is written when a settlement receipt is present
// but cannot be decoded.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) error {
		c.log = log

		return nil
	}
}

// WithRPCClient installs the JSON-RPC collaborator (C7 mint program
// probe, C8 blockhash fetcher) the payer will use. One of WithRPCClient
// or WithRPCEndpoint is required; if both are given, the last one
// applied wins.
func WithRPCClient(rpc rpcclient.Client) Option {
	return func(c *config) error {
		c.rpc = rpc

		return nil
	}
}

// WithRPCEndpoint is a convenience over WithRPCClient that builds the
// production rpcclient.JSONRPCClient against the given JSON-RPC HTTP
// endpoint.
func WithRPCEndpoint(endpoint string) Option {
	return func(c *config) error {
		c.rpc = rpcclient.New(endpoint)

		return nil
	}
}

// WithFacilitatorURL sets the base URL of the facilitator's
// /supported endpoint (C10), consulted only when a 402 challenge's
// body omits extra.feePayer.
func WithFacilitatorURL(url string) Option {
	return func(c *config) error {
		c.facilitatorURL = url

		return nil
	}
}
