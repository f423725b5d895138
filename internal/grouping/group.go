// Package grouping assembles per-transaction groups out of parsed records,
// synthesizes the rows explorers omit, and drives trade classification.
package grouping

import (
	"fmt"

	"github.com/sahokun/txhistory/internal/classify"
	"github.com/sahokun/txhistory/internal/domain"
	"github.com/sahokun/txhistory/internal/ledger"
)

// Group collects every record that shares one transaction hash. Fields such
// as Method and Status are lifted from the member records while adding.
type Group struct {
	Network     domain.Network
	Wallet      string
	TxHash      string
	Timestamp   int64
	DateTime    string
	Method      string
	Status      string
	Application string
	Note        string
	Attrs       domain.AttributeSet

	Native   *ledger.Native
	Internal []*ledger.Internal
	Erc20    []*ledger.Erc20
	Erc721   []*ledger.Erc721
	Erc1155  []*ledger.Erc1155
}

func (g *Group) add(rec ledger.Record) error {
	b := rec.Common()
	g.Network = b.Network
	g.Wallet = b.Wallet
	g.TxHash = b.TxHash
	g.Timestamp = b.Timestamp
	g.DateTime = b.DateTime()
	g.Note += b.Note
	g.Attrs.Union(b.Attrs)

	switch r := rec.(type) {
	case *ledger.Native:
		if g.Native != nil {
			return &GroupConsistencyError{TxHash: b.TxHash, Reason: "duplicate native transaction"}
		}
		g.Native = r
		g.Method = r.Method
		g.Status = r.GroupStatus()
	case *ledger.Internal:
		g.Internal = append(g.Internal, r)
		g.Status = r.GroupStatus()
	case *ledger.Erc20:
		g.Erc20 = append(g.Erc20, r)
	case *ledger.Erc721:
		g.Erc721 = append(g.Erc721, r)
		g.Application = fmt.Sprintf("%s#%s", r.TokenName, r.TokenID)
	case *ledger.Erc1155:
		g.Erc1155 = append(g.Erc1155, r)
		g.Application = fmt.Sprintf("%s#%s", r.TokenName, r.TokenID)
	default:
		return fmt.Errorf("unexpected record kind %q", rec.Kind())
	}
	return nil
}

// Records returns every member in projection order.
func (g *Group) Records() []ledger.Record {
	var records []ledger.Record
	if g.Native != nil {
		records = append(records, g.Native)
	}
	for _, r := range g.Internal {
		records = append(records, r)
	}
	for _, r := range g.Erc20 {
		records = append(records, r)
	}
	for _, r := range g.Erc721 {
		records = append(records, r)
	}
	for _, r := range g.Erc1155 {
		records = append(records, r)
	}
	return records
}

func (g *Group) classifyAll() error {
	for _, rec := range g.Records() {
		trade, err := classify.Trade(g.Attrs, rec)
		if err != nil {
			return err
		}
		rec.Common().Trade = trade
	}
	return nil
}

// validate checks that every member except internal transfers carries the
// group's hash. Internal rows are keyed by the parent hash upstream and are
// exempt.
func (g *Group) validate() error {
	members := make([]ledger.Record, 0, 1+len(g.Erc20)+len(g.Erc721)+len(g.Erc1155))
	if g.Native != nil {
		members = append(members, g.Native)
	}
	for _, r := range g.Erc20 {
		members = append(members, r)
	}
	for _, r := range g.Erc721 {
		members = append(members, r)
	}
	for _, r := range g.Erc1155 {
		members = append(members, r)
	}

	hash := ""
	for _, rec := range members {
		h := rec.Common().TxHash
		if hash != "" && h != hash {
			return &GroupConsistencyError{TxHash: g.TxHash, Reason: "mixed transaction hashes"}
		}
		hash = h
	}
	return nil
}

// IsMultiTrade reports whether the value flow splits into more than one trade:
// two or more inbound legs, or two or more outbound legs, counted over coin
// and fungible-token records.
func (g *Group) IsMultiTrade() bool {
	income, outcome := 0, 0
	count := func(attrs domain.AttributeSet) {
		if attrs.Has(domain.AttrIncome) {
			income++
		}
		if attrs.Has(domain.AttrOutcome) {
			outcome++
		}
	}

	if g.Native != nil {
		count(g.Native.Attrs)
	}
	for _, r := range g.Internal {
		count(r.Attrs)
	}
	for _, r := range g.Erc20 {
		count(r.Attrs)
	}
	return income >= 2 || outcome >= 2
}
