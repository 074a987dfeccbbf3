// Package buyer provides a library of code that allows the standard
// library's http.Client to pay for HTTP content and services using the
// x402 protocol, settling payment as an SPL token transfer on a
// Solana-family network and signing with a device-resident Ed25519
// key.
//
// It is anticipated that this software will commonly be used to allow
// constrained devices and AI agents to pay for the services they
// need. When allowing automated payments on your behalf, care should
// be taken to limit your financial exposure.
//
// Defaults
//
//   - If the WithClient option is not specified, a new http.Client
//     using the http.DefaultTransport is used.
//   - If the WithLogger Option is not specified, a No-Op logger is used.
//   - An RPC collaborator is required: supply one with WithRPCClient
//     or WithRPCEndpoint.
package buyer
