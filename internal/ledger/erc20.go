package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sahokun/txhistory/internal/domain"
)

// SelfSentinel marks the synthesized leg of a self-transfer; it is never a
// real address and only appears on records manufactured by the grouper.
const SelfSentinel = "self"

// zksyncGasRelay is the zksync2 bootloader address; token rows touching it are
// gas accounting noise, not transfers.
const zksyncGasRelay = "0x0000000000000000000000000000000000008001"

// Erc20 is a fungible token transfer.
type Erc20 struct {
	Base
	Value               decimal.Decimal
	HistoricalValueUSD  string // informational explorer column, carried verbatim
	TokenName           string
	TokenSymbol         string
	UnitPrice           string
	Quantity            decimal.Decimal // negative when the wallet is the sender
	FiatQuantity        string
	AdjustmentUnitPrice string // manual override placeholder, empty by default
}

func (*Erc20) Kind() Kind { return KindErc20 }

func (t *Erc20) evaluateAttributes() {
	if t.To == t.Wallet {
		t.Attrs.Add(domain.AttrIncome)
	}
	if t.From == t.Wallet {
		t.Attrs.Add(domain.AttrOutcome)
	}
	if t.From == SelfSentinel || t.To == SelfSentinel {
		t.Attrs.Add(domain.AttrSelf)
	}
}

func (t *Erc20) calc(p *Parser) error {
	t.Attrs = domain.AttributeSet{}
	t.evaluateAttributes()
	t.Trade = ""
	t.UnitPrice = p.lookupRate(t.TokenSymbol, t.TradingDate())
	t.Quantity = t.quantity()
	// scam tokens frequently have no rate; leave the cell empty rather than N/A
	t.FiatQuantity = fiatQuantity(t.UnitPrice, t.Quantity, "")

	// Scam airdrops addressed to neither endpoint are tolerated here and
	// surfaced as "Deleted" by the classifier.
	return nil
}

func (t *Erc20) quantity() decimal.Decimal {
	if t.From == t.Wallet {
		return t.Value.Neg()
	}
	return t.Value
}
