package payer

import "time"

// NowFunc supplies the current time, overridable in tests.
type NowFunc func() time.Time

// Options configures a Payer's non-cryptographic behavior: the clock
// it reads for logging/observability, and the commitment level it
// reports in its debug log.
type Options struct {
	nowFunc    NowFunc
	commitment string
}

// DefaultCommitment is the commitment level spec.md requires for
// blockhash freshness.
const DefaultCommitment = "finalized"

func NewOptions(opts ...Option) (*Options, error) {
	options := &Options{
		nowFunc:    time.Now,
		commitment: DefaultCommitment,
	}

	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	return options, nil
}

// Now returns the configured clock.
func (o *Options) Now() time.Time {
	return o.nowFunc()
}

// Commitment returns the configured commitment level.
func (o *Options) Commitment() string {
	return o.commitment
}

type Option func(*Options) error

func WithNowFunc(nowFunc NowFunc) Option {
	return func(o *Options) error {
		o.nowFunc = nowFunc

		return nil
	}
}

// WithCommitment overrides the commitment level the payer reports in
// its debug log. It does not change the RPC queries themselves:
// rpcclient.JSONRPCClient always fetches the blockhash and mint owner
// at "finalized".
func WithCommitment(commitment string) Option {
	return func(o *Options) error {
		o.commitment = commitment

		return nil
	}
}
