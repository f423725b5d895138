// Package report projects classified transaction groups into the flat
// spreadsheet layout accountants work from.
package report

// Row is one spreadsheet line. Manual_* columns stay empty for the
// accountant to fill in; Result_* columns hold spreadsheet formulas added
// downstream.
type Row struct {
	Network              string
	MyAddress            string
	TxHash               string
	DateTime             string
	Method               string
	Counterparty         string
	CounterpartyName     string
	Trade                string
	Application          string
	Status               string
	ManualSellingPrice   string
	ManualSellingCost    string
	ManualCurrencyRate   string
	Quantity             string
	Currency             string
	CurrencyRate         string
	FiatQuantity         string
	FiatCurrency         string
	FeeQuantity          string
	FeeCurrency          string
	FeeCurrencyRate      string
	FeeFiatQuantity      string
	FeeFiatCurrency      string
	UsdJpy               string
	ResultSellingPrice   string
	ResultSellingCost    string
	ResultFeeFiatQty     string
	PrivateNote          string
}

// Header returns the column names in output order.
func Header() []string {
	return []string{
		"network",
		"my_address",
		"txhash",
		"date_time",
		"method",
		"counterparty",
		"counterparty_name",
		"trade",
		"application",
		"status",
		"manual_selling_price",
		"manual_selling_cost",
		"manual_currency_rate",
		"quantity",
		"currency",
		"currency_rate",
		"fiat_quantity",
		"fiat_currency",
		"fee_quantity",
		"fee_currency",
		"fee_currency_rate",
		"fee_fiat_quantity",
		"fee_fiat_currency",
		"usd_jpy",
		"result_selling_price",
		"result_selling_cost",
		"result_fee_fiat_quantity",
		"private_note",
	}
}

// Values returns the cell values in the same order as Header.
func (r Row) Values() []string {
	return []string{
		r.Network,
		r.MyAddress,
		r.TxHash,
		r.DateTime,
		r.Method,
		r.Counterparty,
		r.CounterpartyName,
		r.Trade,
		r.Application,
		r.Status,
		r.ManualSellingPrice,
		r.ManualSellingCost,
		r.ManualCurrencyRate,
		r.Quantity,
		r.Currency,
		r.CurrencyRate,
		r.FiatQuantity,
		r.FiatCurrency,
		r.FeeQuantity,
		r.FeeCurrency,
		r.FeeCurrencyRate,
		r.FeeFiatQuantity,
		r.FeeFiatCurrency,
		r.UsdJpy,
		r.ResultSellingPrice,
		r.ResultSellingCost,
		r.ResultFeeFiatQty,
		r.PrivateNote,
	}
}
