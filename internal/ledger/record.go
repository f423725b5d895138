package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sahokun/txhistory/internal/domain"
	"github.com/sahokun/txhistory/internal/rates"
)

// Kind discriminates the closed set of explorer record types.
type Kind string

const (
	KindNative   Kind = "native"
	KindInternal Kind = "internal"
	KindErc20    Kind = "erc20"
	KindErc721   Kind = "erc721"
	KindErc1155  Kind = "erc1155"
)

// Record is the closed set of parsed explorer rows. Concrete types are
// *Native, *Internal, *Erc20, *Erc721 and *Erc1155; consumers type-switch
// exhaustively over them.
type Record interface {
	Common() *Base
	Kind() Kind
}

// Base holds the fields shared by all record kinds.
type Base struct {
	Network   domain.Network
	Wallet    string // lowercase owning wallet address
	TxHash    string
	Timestamp int64
	From      string
	To        string
	Contract  string
	Note      string
	Attrs     domain.AttributeSet
	Trade     string // assigned once by the classifier
	IsSkip    bool   // excluded from grouping and output

	loc *time.Location
}

// Common exposes the shared fields to other packages.
func (b *Base) Common() *Base { return b }

func (b *Base) location() *time.Location {
	if b.loc == nil {
		return time.UTC
	}
	return b.loc
}

// DateTime renders the record instant in the wallet's local time.
func (b *Base) DateTime() string {
	return domain.FormatDateTime(b.Timestamp, b.location())
}

// TradingDate returns the accounting date keying rate lookups.
func (b *Base) TradingDate() string {
	return domain.TradingDate(b.Timestamp, b.location())
}

// Counterparty is the other endpoint of the transfer: the far address, or the
// contract address when the far address is empty.
func (b *Base) Counterparty() string {
	counterparty := b.From
	if b.From == b.Wallet {
		counterparty = b.To
	}
	if counterparty == "" {
		counterparty = b.Contract
	}
	return counterparty
}

// fiatQuantity multiplies a unit price string by a quantity, degrading to the
// given fallback when the price is missing.
func fiatQuantity(unitPrice string, qty decimal.Decimal, fallback string) string {
	if unitPrice == "" || unitPrice == rates.NotAvailable {
		return fallback
	}
	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return fallback
	}
	return price.Mul(qty).String()
}
