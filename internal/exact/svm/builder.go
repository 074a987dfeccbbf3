// Package svm implements the Solana "exact" x402 payment scheme: it
// composes the mint program probe, PDA/ATA derivation, blockhash
// fetch, transaction assembly, and signing (spec.md §4.6-§4.8, C5-C8)
// behind the api.Payer interface the transport drives.
package svm

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/selesy/x402-svm-buyer/internal/solana/base58"
	"github.com/selesy/x402-svm-buyer/internal/solana/pda"
	"github.com/selesy/x402-svm-buyer/internal/solana/rpcclient"
	"github.com/selesy/x402-svm-buyer/internal/solana/tokenprogram"
	"github.com/selesy/x402-svm-buyer/internal/solana/txbuild"
	"github.com/selesy/x402-svm-buyer/pkg/api"
	"github.com/selesy/x402-svm-buyer/pkg/payer"
	"github.com/selesy/x402-svm-buyer/pkg/types"
)

var _ api.Payer = (*ExactSvm)(nil)

// ExactSvm is the api.Payer for the "exact" scheme over Solana SPL
// token transfers.
type ExactSvm struct {
	signer api.SVMSigner
	rpc    rpcclient.Client
	opts   *payer.Options
	log    *slog.Logger
}

// NewExactSvm constructs an ExactSvm. signer holds the device's
// identity and the private half of every transaction; rpc supplies
// the mint-owner and blockhash queries; log receives DEBUG records for
// the resolved amount, the RPC queries, and the assembled transaction.
func NewExactSvm(signer api.SVMSigner, rpc rpcclient.Client, log *slog.Logger, opts ...payer.Option) (*ExactSvm, error) {
	options, err := payer.NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &ExactSvm{
		signer: signer,
		rpc:    rpc,
		opts:   options,
		log:    log,
	}, nil
}

// Scheme returns api.SchemeExact.
func (p *ExactSvm) Scheme() api.Scheme {
	return api.SchemeExact
}

// Pay builds, signs, and envelopes a payment for requirements using
// feePayer as the facilitator that will co-sign and cover fees. It
// performs, in order: C7 mint program probe, C5 ATA derivation for
// both the payer and the recipient, C8 blockhash fetch, C6 transaction
// assembly, and the device's C4 signature - exactly the BUILD_TX
// sequence of spec.md §4.12.
func (p *ExactSvm) Pay(ctx context.Context, requirements types.PaymentRequirements, feePayer string) (*types.PaymentPayload, error) {
	payload, err := p.pay(ctx, requirements, feePayer)
	if err != nil {
		return nil, payer.FailedPaymentPayloadCreation(err)
	}

	return payload, nil
}

func (p *ExactSvm) pay(ctx context.Context, requirements types.PaymentRequirements, feePayer string) (*types.PaymentPayload, error) {
	amount, err := requirements.AmountBaseUnits()
	if err != nil {
		return nil, api.NewError(api.KindAmountInvalid, requirements.MaxAmountRequired, err)
	}

	recipient, err := decodeKey(requirements.Recipient, "payTo")
	if err != nil {
		return nil, err
	}

	mint, err := decodeKey(requirements.Asset, "asset")
	if err != nil {
		return nil, err
	}

	feePayerKey, err := decodeKey(feePayer, "feePayer")
	if err != nil {
		return nil, err
	}

	var payerKey [32]byte
	copy(payerKey[:], p.signer.PublicKey())

	p.logAmount(requirements, amount)
	p.log.Debug("querying RPC collaborator", slog.String("commitment", p.opts.Commitment()))

	tokenProgram, err := p.rpc.MintProgramOwner(ctx, mint)
	if err != nil {
		return nil, api.NewError(api.KindTransport, "mint program probe failed", err)
	}
	if err := tokenprogram.Validate(tokenProgram); err != nil {
		return nil, api.NewError(api.KindMintUnsupported, requirements.Asset, err)
	}

	sourceATA, _, err := pda.DeriveATA(payerKey, mint, tokenProgram)
	if err != nil {
		return nil, api.NewError(api.KindCrypto, "source ATA derivation failed", err)
	}

	destATA, _, err := pda.DeriveATA(recipient, mint, tokenProgram)
	if err != nil {
		return nil, api.NewError(api.KindCrypto, "destination ATA derivation failed", err)
	}

	blockhash, err := p.rpc.LatestBlockhash(ctx)
	if err != nil {
		return nil, api.NewError(api.KindTransport, "blockhash fetch failed", err)
	}

	tx, err := txbuild.Build(txbuild.Params{
		FeePayer:     feePayerKey,
		Payer:        payerKey,
		SourceATA:    sourceATA,
		DestATA:      destATA,
		TokenProgram: tokenProgram,
		Amount:       amount,
		Blockhash:    blockhash,
	})
	if err != nil {
		return nil, api.NewError(api.KindBuildOverflow, "transaction assembly failed", err)
	}

	sig, err := p.signer.Sign(tx.Message())
	if err != nil {
		return nil, api.NewError(api.KindCrypto, "signing failed", err)
	}
	if err := tx.SetDeviceSignature(sig); err != nil {
		return nil, api.NewError(api.KindCrypto, "writing device signature failed", err)
	}

	p.log.Debug("assembled solana transaction",
		slog.String("source_ata", base58.Encode(sourceATA[:])),
		slog.String("dest_ata", base58.Encode(destATA[:])),
		slog.String("token_program", base58.Encode(tokenProgram[:])),
		slog.Time("built_at", p.opts.Now()),
	)

	txBase64 := base64.StdEncoding.EncodeToString(tx.Bytes())

	return NewPaymentPayload(requirements.Network, txBase64), nil
}

func decodeKey(b58 string, field string) ([32]byte, error) {
	raw, err := base58.Decode(b58)
	if err != nil {
		return [32]byte{}, api.NewError(api.KindChallengeParse, fmt.Sprintf("%s is not valid base58", field), err)
	}
	if len(raw) != 32 {
		return [32]byte{}, api.NewError(api.KindChallengeParse, fmt.Sprintf("%s must decode to 32 bytes, got %d", field, len(raw)), nil)
	}

	var out [32]byte
	copy(out[:], raw)

	return out, nil
}

// logAmount emits the raw base-unit amount alongside a decimal
// approximation (assuming 6 decimals, the common case for stablecoin
// mints) purely for operator visibility. The decimal value is never
// used on the signing path - the builder only ever moves the raw
// base-unit amount.
func (p *ExactSvm) logAmount(requirements types.PaymentRequirements, amount uint64) {
	approx := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0).Shift(-6)

	p.log.Debug("resolved payment amount",
		slog.String("raw", requirements.MaxAmountRequired),
		slog.String("approx_decimal", approx.String()),
		slog.String("network", requirements.Network),
	)
}
