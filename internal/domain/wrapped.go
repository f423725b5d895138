package domain

import (
	"strings"

	"github.com/samber/lo"
)

// WrappedToken marks a wrapped-native-token contract (WETH and friends).
// Native wrap/unwrap calls against these contracts omit the token-side leg in
// explorer exports; the grouper synthesizes it back.
type WrappedToken struct {
	Network  string
	Contract string // lowercase
	Symbol   string
}

// WrappedTokenTable is the per-network allowlist of wrapped-native contracts.
type WrappedTokenTable []WrappedToken

// Find looks up a wrapped token by contract address (case-insensitive).
func (t WrappedTokenTable) Find(contract string) (WrappedToken, bool) {
	contract = strings.ToLower(contract)
	return lo.Find(t, func(w WrappedToken) bool { return w.Contract == contract })
}

// DefaultWrappedTokens lists the known wrapped-native contracts.
var DefaultWrappedTokens = WrappedTokenTable{
	{Network: "ethereum", Contract: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", Symbol: "WETH"},
	{Network: "optimism", Contract: "0x4200000000000000000000000000000000000006", Symbol: "WETH"},
	{Network: "arbitrum", Contract: "0x82af49447d8a07e3bd95bd0d56f35241523fbab1", Symbol: "WETH"},
	{Network: "zkevm", Contract: "0x4f9a0e7fd2bf6067db6994cf12e4495df938e6e9", Symbol: "WETH"},
	{Network: "zksync2", Contract: "0x5aea5775959fbc2557cc8789bc1bf90a239d9a91", Symbol: "WETH"},
	{Network: "polygon", Contract: "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270", Symbol: "WMATIC"},
	{Network: "bsc", Contract: "0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c", Symbol: "WBNB"},
	{Network: "fantom", Contract: "0x21be370d5312f44cb42ce377bc9b8a0cef1a4c83", Symbol: "WFTM"},
	{Network: "avalanche", Contract: "0xb31f66aa3c1e785363f0875a1b74e27b85fd66c7", Symbol: "WAVAX"},
}
