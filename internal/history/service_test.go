package history

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sahokun/txhistory/internal/domain"
	"github.com/sahokun/txhistory/internal/ingest"
	"github.com/sahokun/txhistory/internal/ledger"
	"github.com/sahokun/txhistory/internal/report"
)

const (
	wallet = "0x1111111111111111111111111111111111111111"
	other  = "0x2222222222222222222222222222222222222222"
)

type rateFunc func(symbol, date string) (decimal.Decimal, error)

func (f rateFunc) Rate(symbol, date string) (decimal.Decimal, error) {
	return f(symbol, date)
}

type fakeSource struct {
	addresses []string
	networks  map[string][]ingest.File
}

func (s *fakeSource) Addresses() ([]string, error) {
	return s.addresses, nil
}

func (s *fakeSource) HasNetwork(_, network string) bool {
	_, ok := s.networks[network]
	return ok
}

func (s *fakeSource) Collect(_, network string) ([]ingest.File, error) {
	return s.networks[network], nil
}

type writtenSheet struct {
	name    string
	rows    []report.Row
	symbols []string
}

type fakeWriter struct {
	sheets    []writtenSheet
	flushName string
}

func (w *fakeWriter) Write(_ context.Context, sheet string, rows []report.Row, symbols []string) error {
	w.sheets = append(w.sheets, writtenSheet{name: sheet, rows: rows, symbols: symbols})
	return nil
}

func (w *fakeWriter) Flush(_ context.Context, name string) error {
	w.flushName = name
	return nil
}

var nativeHeader = []string{
	"Txhash", "Blockno", "UnixTimestamp", "DateTime", "From", "To",
	"ContractAddress", "Value_IN(ETH)", "Value_OUT(ETH)", "CurrentValue",
	"TxnFee(ETH)", "TxnFee(USD)", "Historical_Price", "Status", "ErrCode",
	"Method", "PrivateNote",
}

func nativeFile(hash, from, to string) ingest.File {
	return ingest.File{
		Name:        "transactions.csv",
		RecordKinds: []ledger.Kind{ledger.KindNative},
		Header:      nativeHeader,
		Rows: [][]string{{
			hash, "1000", "1672567200", "2023/01/01 10:00:00", from, to,
			"", "1", "0", "", "0", "", "", "", "", "Transfer", "",
		}},
	}
}

func testService(source Source, writer *fakeWriter) *Service {
	rate := rateFunc(func(string, string) (decimal.Decimal, error) {
		return decimal.NewFromInt(2), nil
	})
	parser := &ledger.Parser{Symbols: domain.DefaultSymbolTable, Rates: rate}

	svc := NewService(source, parser, domain.DefaultWrappedTokens, rate,
		func(context.Context) (report.Writer, error) { return writer, nil })
	svc.now = func() time.Time {
		return time.Date(2023, 1, 5, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestProcessAddress(t *testing.T) {
	source := &fakeSource{
		networks: map[string][]ingest.File{
			"ethereum": {nativeFile("0xabc", other, wallet)},
		},
	}
	writer := &fakeWriter{}
	svc := testService(source, writer)

	if err := svc.ProcessAddress(context.Background(), wallet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(writer.sheets) != 1 {
		t.Fatalf("sheet count = %d, want 1", len(writer.sheets))
	}
	sheet := writer.sheets[0]
	if sheet.name != "ethereum" {
		t.Errorf("sheet name = %q, want ethereum", sheet.name)
	}
	if len(sheet.rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(sheet.rows))
	}
	if sheet.rows[0].Trade != "Transfer-in" {
		t.Errorf("trade = %q, want Transfer-in", sheet.rows[0].Trade)
	}

	if writer.flushName != "20230105120000-"+wallet {
		t.Errorf("flush name = %q, want run stamp and address", writer.flushName)
	}
}

func TestProcessAddressSkipsMarkedRecords(t *testing.T) {
	file := ingest.File{
		Name:        "nfts.csv",
		RecordKinds: []ledger.Kind{ledger.KindErc721, ledger.KindErc1155},
		Header: []string{
			"Txhash", "UnixTimestamp", "DateTime", "From", "To",
			"ContractAddress", "TokenName", "TokenSymbol", "TokenId", "Type",
			"Quantity", "PrivateNote",
		},
		Rows: [][]string{{
			"0xabc", "1672567200", "2023/01/01 10:00:00", other, wallet,
			"0xdead", "CryptoCats", "CAT", "42", "721", "1", "",
		}},
	}
	source := &fakeSource{networks: map[string][]ingest.File{"oasys": {file}}}
	writer := &fakeWriter{}
	svc := testService(source, writer)

	if err := svc.ProcessAddress(context.Background(), wallet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// one row from the 721 pass; the 1155 pass skip-marks the same row
	if len(writer.sheets[0].rows) != 1 {
		t.Errorf("row count = %d, want 1", len(writer.sheets[0].rows))
	}
}

func TestProcessAddressParseFailureIsFatal(t *testing.T) {
	bad := nativeFile("0xabc", other, wallet)
	bad.Rows[0][2] = "not-a-timestamp"
	source := &fakeSource{networks: map[string][]ingest.File{"ethereum": {bad}}}
	svc := testService(source, &fakeWriter{})

	err := svc.ProcessAddress(context.Background(), wallet)
	if err == nil {
		t.Fatal("expected parse error to abort the run")
	}
	if !strings.Contains(err.Error(), "transactions.csv") {
		t.Errorf("error = %v, want file name in message", err)
	}
}

func TestProcessAll(t *testing.T) {
	source := &fakeSource{
		addresses: []string{wallet},
		networks: map[string][]ingest.File{
			"ethereum": {nativeFile("0xabc", other, wallet)},
		},
	}
	writer := &fakeWriter{}
	svc := testService(source, writer)

	if err := svc.ProcessAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.flushName == "" {
		t.Error("report was never flushed")
	}
}
