package svm

// Known mint addresses for the stablecoins this client has been
// tested against, by network. Requirements never need to reference
// this table directly - asset is always taken from the 402 challenge -
// but it's useful when wiring a facilitator or test fixture by hand.
//
// devnet USDC: https://spl.solana.com/token#example-creating-your-own-fungible-token
// mainnet-beta USDC: https://circle.com/multi-chain-usdc/solana
var knownMints = map[string]map[string]string{
	"solana-devnet": {
		"usdc": "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU",
	},
	"solana-mainnet-beta": {
		"usdc": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
	},
}
