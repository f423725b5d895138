package domain

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// TradeAttribute is a derived semantic tag summarizing the directional nature
// of a record or a whole transaction group.
type TradeAttribute string

const (
	AttrExecute TradeAttribute = "EXECUTE"
	AttrIncome  TradeAttribute = "INCOME"
	AttrOutcome TradeAttribute = "OUTCOME"
	AttrInNFT   TradeAttribute = "IN_NFT"  // reserved, not produced by any rule
	AttrOutNFT  TradeAttribute = "OUT_NFT" // reserved, not produced by any rule
	AttrCreate  TradeAttribute = "CREATE"
	AttrSelf    TradeAttribute = "SELF"
)

// AttributeSet is an ordered set of trade attributes. Insertion order of first
// appearance is preserved; duplicates are ignored.
type AttributeSet struct {
	attrs []TradeAttribute
}

// NewAttributeSet builds a set from the given attributes in order.
func NewAttributeSet(attrs ...TradeAttribute) AttributeSet {
	var s AttributeSet
	for _, a := range attrs {
		s.Add(a)
	}
	return s
}

// Add inserts an attribute unless already present.
func (s *AttributeSet) Add(a TradeAttribute) {
	if !s.Has(a) {
		s.attrs = append(s.attrs, a)
	}
}

// Union merges another set into this one, preserving existing order.
func (s *AttributeSet) Union(o AttributeSet) {
	for _, a := range o.attrs {
		s.Add(a)
	}
}

// Has reports whether the attribute is in the set.
func (s AttributeSet) Has(a TradeAttribute) bool {
	return lo.Contains(s.attrs, a)
}

// Values returns the attributes in insertion order.
func (s AttributeSet) Values() []TradeAttribute {
	return slices.Clone(s.attrs)
}

// Len returns the number of attributes in the set.
func (s AttributeSet) Len() int {
	return len(s.attrs)
}

func (s AttributeSet) String() string {
	parts := lo.Map(s.attrs, func(a TradeAttribute, _ int) string { return string(a) })
	return strings.Join(parts, ",")
}
