package domain

import "github.com/samber/lo"

// Network identifies an EVM-compatible chain and the symbol of its native coin.
type Network struct {
	Name   string
	Symbol string
}

// Networks is the static registry of supported chains. Explorer exports are
// collected per network under a directory carrying the network name.
var Networks = []Network{
	{Name: "bitcoin", Symbol: "BTC"},
	{Name: "ethereum", Symbol: "ETH"},
	{Name: "polygon", Symbol: "MATIC"},
	{Name: "zkevm", Symbol: "ETH"},
	{Name: "optimism", Symbol: "ETH"},
	{Name: "arbitrum", Symbol: "ETH"},
	{Name: "oasys", Symbol: "OAS"},
	{Name: "mchverse", Symbol: "OAS"},
	{Name: "zksync1", Symbol: "ETH"},
	{Name: "zksync2", Symbol: "ETH"},
	{Name: "base", Symbol: "ETH"},
	{Name: "scroll", Symbol: "ETH"},
	{Name: "avalanche", Symbol: "AVAX"},
	{Name: "bsc", Symbol: "BNB"},
	{Name: "solana", Symbol: "SOL"},
	{Name: "fantom", Symbol: "FTM"},
	{Name: "defiverse", Symbol: "OAS"},
}

// BaseSymbols are always seeded into per-network symbol summaries even when no
// token transfer referenced them.
var BaseSymbols = []string{"OAS"}

// FindNetwork looks up a network by name.
func FindNetwork(name string) (Network, bool) {
	return lo.Find(Networks, func(n Network) bool { return n.Name == name })
}
