package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/sahokun/txhistory/internal/domain"
	"github.com/sahokun/txhistory/internal/rates"
)

// Accepted values for the status and error-code columns of native rows. Any
// other value is a hard parse error so new explorer vocabulary is reviewed
// before it silently flows into a report.
var (
	nativeStatusWhitelist  = []string{"", "error(0)", "error(1)"}
	nativeErrCodeWhitelist = []string{
		"",
		"!unknown!",
		"revert",
		"reverted",
		"out of gas",
		"execution reverted",
		"invalid opcode: opcode 0xa9 not defined",
	}
)

// Native is a top-level native-coin transaction.
type Native struct {
	Base
	Method          string
	Status          string
	ErrCode         string
	ValueIn         decimal.Decimal
	ValueOut        decimal.Decimal
	Fee             decimal.Decimal
	HistoricalPrice string // informational explorer column, carried verbatim
	UnitPrice       string // decimal string or rates.NotAvailable
	Quantity        decimal.Decimal
	FiatQuantity    string
}

func (*Native) Kind() Kind { return KindNative }

func (n *Native) evaluateAttributes() {
	n.Attrs.Add(domain.AttrExecute)
	if !n.ValueIn.IsZero() {
		n.Attrs.Add(domain.AttrIncome)
	}
	if !n.ValueOut.IsZero() {
		n.Attrs.Add(domain.AttrOutcome)
	}
	if n.To == "" && n.Contract == n.Wallet {
		n.Attrs.Add(domain.AttrCreate)
	}
}

func (n *Native) calc(p *Parser) error {
	n.Attrs = domain.AttributeSet{}
	n.evaluateAttributes()
	n.Trade = ""
	n.UnitPrice = p.lookupRate(n.Network.Symbol, n.TradingDate())

	// In/out are normally exclusive. A same-magnitude pair is either a bridge
	// (relay pays the gas, fee == 0; keep the inbound leg) or a self-send
	// (net zero, fee still charged once).
	if n.ValueIn.IsPositive() && n.ValueOut.IsPositive() && n.ValueIn.Equal(n.ValueOut) {
		if n.Fee.IsZero() {
			n.ValueOut = decimal.Zero
		} else {
			n.ValueIn = decimal.Zero
			n.ValueOut = decimal.Zero
		}
	}

	n.Quantity = n.quantity()
	n.FiatQuantity = fiatQuantity(n.UnitPrice, n.Quantity, rates.NotAvailable)

	return n.validate()
}

func (n *Native) quantity() decimal.Decimal {
	if !n.ValueIn.IsZero() {
		return n.ValueIn
	}
	return n.ValueOut.Neg()
}

func (n *Native) validate() error {
	if !n.ValueIn.IsZero() && !n.ValueOut.IsZero() {
		return errors.New("value in and value out must be mutually exclusive")
	}
	if n.From != n.Wallet && n.To != n.Wallet && !n.Attrs.Has(domain.AttrCreate) {
		// contract creation legitimately has an empty to and a foreign from
		return errors.New("neither from nor to matches the wallet")
	}
	if n.From == "" && n.To == "" && n.Contract == "" {
		return errors.New("counterparty unknown")
	}
	if !lo.Contains(nativeStatusWhitelist, strings.ToLower(n.Status)) {
		return fmt.Errorf("unknown status %q", n.Status)
	}
	if !lo.Contains(nativeErrCodeWhitelist, strings.ToLower(n.ErrCode)) {
		return fmt.Errorf("unknown error code %q", n.ErrCode)
	}
	return nil
}

// FeeQuantity is the fee charged to the wallet: nonzero only when the wallet
// sent the transaction.
func (n *Native) FeeQuantity() decimal.Decimal {
	if n.From == n.Wallet {
		return n.Fee
	}
	return decimal.Zero
}

// GroupStatus surfaces the error code for failed transactions.
func (n *Native) GroupStatus() string {
	if strings.ToLower(n.Status) == "error(0)" {
		return n.ErrCode
	}
	return ""
}

// ZeroTransfer clears the transfer legs and derived quantities while keeping
// previously evaluated attributes, for networks whose native rows model gas
// relaying rather than a real transfer.
func (n *Native) ZeroTransfer() {
	n.ValueIn = decimal.Zero
	n.ValueOut = decimal.Zero
	n.Quantity = decimal.Zero
	n.FiatQuantity = fiatQuantity(n.UnitPrice, n.Quantity, rates.NotAvailable)
}
