// Package rpcclient defines the JSON-RPC collaborator the payment
// path depends on (C7 mint program probe, C8 blockhash fetcher) as a
// small interface, and provides a concrete implementation on top of
// github.com/gagliardetto/solana-go/rpc.
//
// The transaction-assembly path never reaches into this package's
// concrete type directly - everything downstream of the driver talks
// to the Client interface, so tests can substitute a fixture without
// a live RPC endpoint.
package rpcclient

import (
	"context"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Client is the minimal JSON-RPC surface the payment path requires.
type Client interface {
	// LatestBlockhash retrieves a recent, finalized blockhash for
	// transaction freshness.
	LatestBlockhash(ctx context.Context) ([32]byte, error)

	// MintProgramOwner resolves the token program (classic SPL Token
	// or Token-2022) that owns the given mint account.
	MintProgramOwner(ctx context.Context, mint [32]byte) ([32]byte, error)
}

var _ Client = (*JSONRPCClient)(nil)

// JSONRPCClient is the production Client, backed by solana-go's RPC
// transport. It is intentionally not used for transaction assembly or
// signing - only for the two read-only queries the payment path needs.
type JSONRPCClient struct {
	rpc *rpc.Client
}

// New constructs a JSONRPCClient against the given JSON-RPC HTTP
// endpoint (e.g. a devnet or mainnet-beta cluster URL).
func New(endpoint string) *JSONRPCClient {
	return &JSONRPCClient{rpc: rpc.New(endpoint)}
}

// LatestBlockhash issues getLatestBlockhash at commitment=finalized.
func (c *JSONRPCClient) LatestBlockhash(ctx context.Context) ([32]byte, error) {
	out, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return [32]byte{}, fmt.Errorf("rpcclient: getLatestBlockhash: %w", err)
	}
	if out == nil || out.Value == nil {
		return [32]byte{}, fmt.Errorf("rpcclient: getLatestBlockhash: empty response")
	}

	return [32]byte(out.Value.Blockhash), nil
}

// MintProgramOwner issues getAccountInfo with jsonParsed encoding
// against mint and returns the owner program's public key, which must
// be either the classic SPL Token program or the Token-2022 program
// for this protocol to proceed.
func (c *JSONRPCClient) MintProgramOwner(ctx context.Context, mint [32]byte) ([32]byte, error) {
	pk := solanago.PublicKeyFromBytes(mint[:])

	out, err := c.rpc.GetAccountInfoWithOpts(ctx, pk, &rpc.GetAccountInfoOpts{
		Encoding:   solanago.EncodingJSONParsed,
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return [32]byte{}, fmt.Errorf("rpcclient: getAccountInfo: %w", err)
	}
	if out == nil || out.Value == nil {
		return [32]byte{}, fmt.Errorf("rpcclient: getAccountInfo: mint account not found")
	}

	return [32]byte(out.Value.Owner), nil
}
