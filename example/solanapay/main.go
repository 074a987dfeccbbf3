package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	buyer "github.com/selesy/x402-svm-buyer"
)

func main() {
	const (
		keypairPathEnvVar = "X402_SVM_BUYER_KEYPAIR_PATH"
		rpcEndpointEnvVar = "X402_SVM_RPC_ENDPOINT"
		facilitatorURL    = "https://x402.smoyer.dev/facilitator"
		url               = "https://x402.smoyer.dev/premium-joke"
	)

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelDebug,
	}))

	path, ok := os.LookupEnv(keypairPathEnvVar)
	if !ok {
		log.Error("failed to look up keypair path environment variable", slog.String("var", keypairPathEnvVar))
		os.Exit(1)
	}

	rpcEndpoint, ok := os.LookupEnv(rpcEndpointEnvVar)
	if !ok {
		rpcEndpoint = "https://api.devnet.solana.com"
	}

	client, err := buyer.ClientForKeypairFile(
		path,
		buyer.WithLogger(log),
		buyer.WithRPCEndpoint(rpcEndpoint),
		buyer.WithFacilitatorURL(facilitatorURL),
	)
	if err != nil {
		log.Error("failed to create client", tint.Err(err))
		os.Exit(1)
	}

	resp, err := client.Get(url)
	if err != nil {
		log.Error("failed to make HTTP request", tint.Err(err))
		os.Exit(1)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Error("failed to close response body", tint.Err(err))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}

	log.Info("HTTP response", slog.String("body", string(body)), slog.Int("code", resp.StatusCode))

	for k, vs := range resp.Header {
		for _, v := range vs {
			log.Debug("HTTP response header", slog.String("key", k), slog.String("value", v))
		}
	}
}
