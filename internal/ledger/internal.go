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

var (
	internalStatusWhitelist  = []string{"", "0"}
	internalErrCodeWhitelist = []string{""}
)

// Internal is a message-level native transfer executed inside a parent
// transaction (contract calls, contract creation).
type Internal struct {
	Base
	ParentFrom   string
	ParentTo     string
	ParentValue  string // informational, never summed
	ValueIn      decimal.Decimal
	ValueOut     decimal.Decimal
	TransferType string // "create" marks contract creation
	Status       string
	ErrCode      string
	UnitPrice    string
	Quantity     decimal.Decimal
	FiatQuantity string
}

func (*Internal) Kind() Kind { return KindInternal }

func (t *Internal) evaluateAttributes() {
	if t.TransferType == "create" {
		t.Attrs.Add(domain.AttrCreate)
	}
	if !t.ValueIn.IsZero() {
		t.Attrs.Add(domain.AttrIncome)
	}
	if !t.ValueOut.IsZero() {
		t.Attrs.Add(domain.AttrOutcome)
	}
}

func (t *Internal) calc(p *Parser) error {
	t.Attrs = domain.AttributeSet{}
	t.evaluateAttributes()
	t.Trade = ""
	t.UnitPrice = p.lookupRate(t.Network.Symbol, t.TradingDate())
	t.Quantity = t.quantity()
	t.FiatQuantity = fiatQuantity(t.UnitPrice, t.Quantity, rates.NotAvailable)

	return t.validate()
}

// quantity is always positive for internal transfers; direction is carried by
// the attributes, not the sign.
func (t *Internal) quantity() decimal.Decimal {
	if !t.ValueIn.IsZero() {
		return t.ValueIn
	}
	return t.ValueOut
}

func (t *Internal) validate() error {
	if t.From == t.Wallet && t.To == t.Wallet {
		return errors.New("internal self transfer with value is not supported")
	}
	if t.From != t.Wallet && t.To != t.Wallet && t.Contract != t.Wallet {
		// contract wallets show up as the contract address
		return errors.New("neither from nor to matches the wallet")
	}
	if !lo.Contains(internalStatusWhitelist, strings.ToLower(t.Status)) {
		return fmt.Errorf("unknown status %q", t.Status)
	}
	if !lo.Contains(internalErrCodeWhitelist, strings.ToLower(t.ErrCode)) {
		return fmt.Errorf("unknown error code %q", t.ErrCode)
	}
	return nil
}

// GroupStatus surfaces the error code for non-success statuses.
func (t *Internal) GroupStatus() string {
	if strings.ToLower(t.Status) != "0" {
		return t.ErrCode
	}
	return ""
}
