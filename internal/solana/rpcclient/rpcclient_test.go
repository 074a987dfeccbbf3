package rpcclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/selesy/x402-svm-buyer/internal/solana/rpcclient"
)

func jsonRPCHandler(t *testing.T, result any) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      1,
			"result":  result,
		}))
	}
}

func TestLatestBlockhash(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(jsonRPCHandler(t, map[string]any{
		"context": map[string]any{"slot": 1},
		"value": map[string]any{
			"blockhash":            "HVnsW7xz1VkXEySxvXuMj6jUa3aewQbbCUkYis1DEh6Q",
			"lastValidBlockHeight": 100,
		},
	}))
	defer srv.Close()

	client := rpcclient.New(srv.URL)

	_, err := client.LatestBlockhash(context.Background())
	require.NoError(t, err)
}

func TestMintProgramOwnerPropagatesTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := rpcclient.New(srv.URL)

	_, err := client.MintProgramOwner(context.Background(), [32]byte{1})
	require.Error(t, err)
}
