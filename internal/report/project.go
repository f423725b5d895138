package report

import (
	"fmt"

	"github.com/sahokun/txhistory/internal/grouping"
	"github.com/sahokun/txhistory/internal/ledger"
	"github.com/sahokun/txhistory/internal/rates"
)

// Project flattens classified groups into spreadsheet rows. One member record
// becomes one row; rows keep the group order.
func Project(groups []*grouping.Group, resolver rates.Resolver) []Row {
	var rows []Row
	for _, g := range groups {
		if g.Native != nil {
			rows = append(rows, nativeRow(g, g.Native, resolver))
		}
		for _, r := range g.Internal {
			rows = append(rows, internalRow(g, r, resolver))
		}
		for _, r := range g.Erc20 {
			rows = append(rows, erc20Row(g, r, resolver))
		}
		for _, r := range g.Erc721 {
			rows = append(rows, erc721Row(g, r, resolver))
		}
		for _, r := range g.Erc1155 {
			rows = append(rows, erc1155Row(g, r, resolver))
		}
	}
	return rows
}

func baseRow(g *grouping.Group, rec ledger.Record, resolver rates.Resolver) Row {
	b := rec.Common()
	return Row{
		Network:         g.Network.Name,
		MyAddress:       g.Wallet,
		TxHash:          g.TxHash,
		DateTime:        g.DateTime,
		Method:          g.Method,
		Counterparty:    b.Counterparty(),
		Trade:           b.Trade,
		Status:          g.Status,
		FiatCurrency:    "USD",
		FeeCurrency:     g.Network.Symbol,
		FeeFiatCurrency: "USD",
		UsdJpy:          crossRate(resolver, b.TradingDate()),
		PrivateNote:     g.Note,
	}
}

func nativeRow(g *grouping.Group, r *ledger.Native, resolver rates.Resolver) Row {
	row := baseRow(g, r, resolver)
	row.Method = r.Method
	row.Quantity = r.Quantity.String()
	row.Currency = g.Network.Symbol
	row.CurrencyRate = r.UnitPrice
	row.FiatQuantity = r.FiatQuantity
	row.FeeQuantity = r.FeeQuantity().String()
	row.FeeCurrencyRate = r.UnitPrice
	return row
}

func internalRow(g *grouping.Group, r *ledger.Internal, resolver rates.Resolver) Row {
	row := baseRow(g, r, resolver)
	row.Quantity = r.Quantity.String()
	row.Currency = g.Network.Symbol
	row.CurrencyRate = r.UnitPrice
	row.FiatQuantity = r.FiatQuantity
	return row
}

func erc20Row(g *grouping.Group, r *ledger.Erc20, resolver rates.Resolver) Row {
	row := baseRow(g, r, resolver)
	row.ManualCurrencyRate = r.AdjustmentUnitPrice
	row.Quantity = r.Quantity.String()
	row.Currency = r.TokenSymbol
	row.CurrencyRate = r.UnitPrice
	row.FiatQuantity = r.FiatQuantity
	return row
}

func erc721Row(g *grouping.Group, r *ledger.Erc721, resolver rates.Resolver) Row {
	row := baseRow(g, r, resolver)
	row.Application = r.TokenID
	row.Currency = fmt.Sprintf("%s(%s)#%s(ERC721)", r.TokenName, r.TokenSymbol, r.TokenID)
	row.PrivateNote = fmt.Sprintf("%s, %s", r.TokenID, g.Note)
	return row
}

func erc1155Row(g *grouping.Group, r *ledger.Erc1155, resolver rates.Resolver) Row {
	row := baseRow(g, r, resolver)
	if r.Quantity != 1 {
		row.Quantity = fmt.Sprintf("%d", r.Quantity)
	}
	row.Currency = fmt.Sprintf("%s(%s)#%s(ERC1155)", r.TokenName, r.TokenSymbol, r.TokenID)
	return row
}

func crossRate(resolver rates.Resolver, date string) string {
	rate, err := resolver.Rate(rates.CrossRateSymbol, date)
	if err != nil {
		return rates.NotAvailable
	}
	return rate.String()
}
