package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sahokun/txhistory/internal/domain"
	"github.com/sahokun/txhistory/internal/rates"
)

type rateFunc func(symbol, date string) (decimal.Decimal, error)

func (f rateFunc) Rate(symbol, date string) (decimal.Decimal, error) {
	return f(symbol, date)
}

func fixedRate(v string) rateFunc {
	price := decimal.RequireFromString(v)
	return func(string, string) (decimal.Decimal, error) {
		return price, nil
	}
}

func noRate() rateFunc {
	return func(string, string) (decimal.Decimal, error) {
		return decimal.Decimal{}, rates.ErrUnavailable
	}
}

func testParser(rate rateFunc) *Parser {
	return &Parser{
		Symbols: domain.DefaultSymbolTable,
		Rates:   rate,
	}
}

func testNetwork() domain.Network {
	n, _ := domain.FindNetwork("ethereum")
	return n
}

// testTimestamp is 2023-01-01 10:00:00 UTC; past the trading day cutoff, so
// the trading date equals the calendar date.
const testTimestamp = "1672567200"

var nativeHeader = []string{
	"Txhash", "Blockno", "UnixTimestamp", "DateTime", "From", "To",
	"ContractAddress", "Value_IN(ETH)", "Value_OUT(ETH)", "CurrentValue",
	"TxnFee(ETH)", "TxnFee(USD)", "Historical_Price", "Status", "ErrCode",
	"Method", "PrivateNote",
}

func nativeTestRow(hash, from, to, contract, valueIn, valueOut, fee, status, errCode, method string) []string {
	return []string{
		hash, "1000", testTimestamp, "2023/01/01 10:00:00", from, to,
		contract, valueIn, valueOut, "", fee, "", "", status, errCode,
		method, "",
	}
}

var erc20Header = []string{
	"Txhash", "Blockno", "UnixTimestamp", "DateTime", "From", "To",
	"Value", "Historical_Value_USD", "ContractAddress", "TokenName",
	"TokenSymbol", "PrivateNote",
}

func erc20TestRow(hash, from, to, value, contract, name, symbol string) []string {
	return []string{
		hash, "1000", testTimestamp, "2023/01/01 10:00:00", from, to,
		value, "", contract, name, symbol, "",
	}
}
