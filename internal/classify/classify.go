// Package classify assigns a trade label to each record from the combined
// attributes of its transaction group.
package classify

import (
	"fmt"

	"github.com/sahokun/txhistory/internal/domain"
	"github.com/sahokun/txhistory/internal/ledger"
)

// Trade labels for coin and token records.
const (
	TradePurchase    = "Purchase"
	TradeSale        = "Sale"
	TradeTransferIn  = "Transfer-in"
	TradeTransferOut = "Transfer-out"
	TradeExecution   = "Execution"
	TradeDeleted     = "Deleted"
)

// Trade labels for NFT records.
const (
	ItemPurchase    = "Item-Purchase"
	ItemSale        = "Item-Sale"
	ItemTransferIn  = "Item-Transfer-in"
	ItemTransferOut = "Item-Transfer-out"
)

// UnclassifiableTradeError reports a record whose attribute combination does
// not match any decision rule.
type UnclassifiableTradeError struct {
	RecordKind ledger.Kind
	TxHash     string
	GroupAttrs domain.AttributeSet
	Attrs      domain.AttributeSet
}

func (e *UnclassifiableTradeError) Error() string {
	return fmt.Sprintf("cannot classify %s record in tx %s (group attrs %s, record attrs %s)",
		e.RecordKind, e.TxHash, e.GroupAttrs.String(), e.Attrs.String())
}

// Trade decides the label for one record given the union of attributes over
// its whole transaction group. Every record kind has its own decision table.
func Trade(groupAttrs domain.AttributeSet, rec ledger.Record) (string, error) {
	switch r := rec.(type) {
	case *ledger.Native:
		return coinTrade(groupAttrs, r.Common()), nil
	case *ledger.Internal:
		return coinTrade(groupAttrs, r.Common()), nil
	case *ledger.Erc20:
		return erc20Trade(groupAttrs, r)
	case *ledger.Erc721:
		return erc721Trade(groupAttrs, r)
	case *ledger.Erc1155:
		return erc1155Trade(groupAttrs, r)
	default:
		return "", fmt.Errorf("unknown record kind %q", rec.Kind())
	}
}

// directionalTrade applies the shared exchange-vs-transfer rule: a record that
// moves value against the opposite flow elsewhere in the group is an exchange
// leg, otherwise a plain transfer.
func directionalTrade(groupAttrs, attrs domain.AttributeSet, purchase, sale, in, out string) string {
	switch {
	case attrs.Has(domain.AttrIncome) && groupAttrs.Has(domain.AttrOutcome):
		return purchase
	case attrs.Has(domain.AttrOutcome) && groupAttrs.Has(domain.AttrIncome):
		return sale
	case attrs.Has(domain.AttrIncome):
		return in
	case attrs.Has(domain.AttrOutcome):
		return out
	default:
		return ""
	}
}

func coinTrade(groupAttrs domain.AttributeSet, b *ledger.Base) string {
	if trade := directionalTrade(groupAttrs, b.Attrs,
		TradePurchase, TradeSale, TradeTransferIn, TradeTransferOut); trade != "" {
		return trade
	}
	return TradeExecution
}

func erc20Trade(groupAttrs domain.AttributeSet, r *ledger.Erc20) (string, error) {
	b := r.Common()
	if r.From != b.Wallet && r.To != b.Wallet {
		// scam airdrop addressed to somebody else entirely
		return TradeDeleted, nil
	}
	if b.Attrs.Has(domain.AttrOutcome) && b.Attrs.Has(domain.AttrSelf) {
		return TradeTransferOut, nil
	}
	if b.Attrs.Has(domain.AttrIncome) && b.Attrs.Has(domain.AttrSelf) {
		return TradeTransferIn, nil
	}
	if trade := directionalTrade(groupAttrs, b.Attrs,
		TradePurchase, TradeSale, TradeTransferIn, TradeTransferOut); trade != "" {
		return trade, nil
	}
	return "", &UnclassifiableTradeError{
		RecordKind: r.Kind(), TxHash: b.TxHash, GroupAttrs: groupAttrs, Attrs: b.Attrs,
	}
}

func erc721Trade(groupAttrs domain.AttributeSet, r *ledger.Erc721) (string, error) {
	b := r.Common()
	if r.From != b.Wallet && r.To != b.Wallet {
		return TradeDeleted, nil
	}
	if trade := directionalTrade(groupAttrs, b.Attrs,
		ItemPurchase, ItemSale, ItemTransferIn, ItemTransferOut); trade != "" {
		return trade, nil
	}
	if groupAttrs.Has(domain.AttrOutcome) && b.Attrs.Has(domain.AttrSelf) {
		return ItemTransferOut, nil
	}
	return "", &UnclassifiableTradeError{
		RecordKind: r.Kind(), TxHash: b.TxHash, GroupAttrs: groupAttrs, Attrs: b.Attrs,
	}
}

func erc1155Trade(groupAttrs domain.AttributeSet, r *ledger.Erc1155) (string, error) {
	b := r.Common()
	if r.From != b.Wallet && r.To != b.Wallet {
		return TradeDeleted, nil
	}
	if trade := directionalTrade(groupAttrs, b.Attrs,
		ItemPurchase, ItemSale, ItemTransferIn, ItemTransferOut); trade != "" {
		return trade, nil
	}
	return "", &UnclassifiableTradeError{
		RecordKind: r.Kind(), TxHash: b.TxHash, GroupAttrs: groupAttrs, Attrs: b.Attrs,
	}
}
