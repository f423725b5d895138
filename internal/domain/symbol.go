package domain

import "github.com/samber/lo"

// SymbolOverride remaps a token symbol keyed by contract address and on-chain
// token name. Some tokens export misleading or duplicate symbols; the override
// table pins them to the symbol used by the rate workbook.
type SymbolOverride struct {
	FromContract string // lowercase contract address
	FromName     string
	ToSymbol     string
}

// SymbolTable is the ordered list of overrides; first match wins.
type SymbolTable []SymbolOverride

// Resolve returns the canonical symbol for a token, falling back to the
// exported symbol when no override matches.
func (t SymbolTable) Resolve(contract, name, symbol string) string {
	m, ok := lo.Find(t, func(o SymbolOverride) bool {
		return o.FromContract == contract && o.FromName == name
	})
	if ok {
		return m.ToSymbol
	}
	return symbol
}

// DefaultSymbolTable is empty; overrides are added as mislabeled tokens show
// up in real exports.
var DefaultSymbolTable = SymbolTable{}
