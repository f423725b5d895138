package grouping

import (
	"sort"

	"github.com/samber/lo"

	"github.com/sahokun/txhistory/internal/domain"
)

// UsedSymbols lists the base symbols followed by every fungible-token symbol
// seen across the groups, deduplicated and sorted.
func UsedSymbols(groups []*Group) []string {
	var seen []string
	for _, g := range groups {
		for _, r := range g.Erc20 {
			if r.TokenSymbol != "" {
				seen = append(seen, r.TokenSymbol)
			}
		}
	}
	seen = lo.Uniq(seen)
	sort.Strings(seen)

	symbols := make([]string, 0, len(domain.BaseSymbols)+len(seen))
	symbols = append(symbols, domain.BaseSymbols...)
	return append(symbols, seen...)
}
