package ledger

import (
	"errors"
	"testing"

	"github.com/sahokun/txhistory/internal/domain"
)

var internalHeader = []string{
	"Txhash", "Blockno", "UnixTimestamp", "DateTime",
	"ParentTxFrom", "ParentTxTo", "ParentTxETH_Value",
	"From", "TxTo", "ContractAddress",
	"Value_IN(ETH)", "Value_OUT(ETH)", "CurrentValue",
	"Historical_Price", "Status", "ErrCode", "Type", "PrivateNote",
}

func internalTestRow(hash, from, to, contract, valueIn, valueOut, status, transferType string) []string {
	return []string{
		hash, "1000", testTimestamp, "2023/01/01 10:00:00",
		other, wallet, "1", from, to, contract,
		valueIn, valueOut, "", "", status, "", transferType, "",
	}
}

func parseInternalRecord(t *testing.T, p *Parser, row []string) *Internal {
	t.Helper()
	rec, err := p.Parse(KindInternal, testNetwork(), wallet, internalHeader, row)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return rec.(*Internal)
}

func TestParseInternalIncoming(t *testing.T) {
	row := internalTestRow("0xabc", other, wallet, "", "0.5", "0", "0", "call")

	rec := parseInternalRecord(t, testParser(fixedRate("2")), row)

	if !rec.Attrs.Has(domain.AttrIncome) {
		t.Errorf("attrs = %s, want INCOME", rec.Attrs.String())
	}
	if rec.Quantity.String() != "0.5" {
		t.Errorf("quantity = %s, want 0.5", rec.Quantity)
	}
	if rec.FiatQuantity != "1" {
		t.Errorf("fiat quantity = %q, want 1", rec.FiatQuantity)
	}
}

func TestParseInternalOutgoingQuantityStaysPositive(t *testing.T) {
	row := internalTestRow("0xabc", wallet, other, "", "0", "0.5", "0", "call")

	rec := parseInternalRecord(t, testParser(fixedRate("2")), row)

	if !rec.Attrs.Has(domain.AttrOutcome) {
		t.Errorf("attrs = %s, want OUTCOME", rec.Attrs.String())
	}
	if rec.Quantity.String() != "0.5" {
		t.Errorf("quantity = %s, direction is carried by attributes not sign", rec.Quantity)
	}
}

func TestParseInternalCreate(t *testing.T) {
	row := internalTestRow("0xabc", wallet, other, "", "0", "0.5", "0", "create")

	rec := parseInternalRecord(t, testParser(fixedRate("2")), row)

	if !rec.Attrs.Has(domain.AttrCreate) {
		t.Errorf("attrs = %s, want CREATE", rec.Attrs.String())
	}
}

func TestParseInternalSelfTransferRejected(t *testing.T) {
	row := internalTestRow("0xabc", wallet, wallet, "", "0", "0.5", "0", "call")

	_, err := testParser(fixedRate("2")).Parse(KindInternal, testNetwork(), wallet, internalHeader, row)
	if err == nil {
		t.Fatal("expected error for internal self transfer with value")
	}
}

func TestParseInternalContractWallet(t *testing.T) {
	// contract wallets show up under ContractAddress instead of From/To
	row := internalTestRow("0xabc", other, other, wallet, "0.5", "0", "0", "call")

	rec := parseInternalRecord(t, testParser(fixedRate("2")), row)

	if rec.Contract != wallet {
		t.Errorf("contract = %q, want wallet address", rec.Contract)
	}
}

func TestParseInternalUnknownStatus(t *testing.T) {
	row := internalTestRow("0xabc", other, wallet, "", "0.5", "0", "pending", "call")

	_, err := testParser(fixedRate("2")).Parse(KindInternal, testNetwork(), wallet, internalHeader, row)

	var malformedErr *MalformedRecordError
	if !errors.As(err, &malformedErr) {
		t.Fatalf("error = %v, want *MalformedRecordError", err)
	}
}

func TestInternalGroupStatus(t *testing.T) {
	row := internalTestRow("0xabc", other, wallet, "", "0.5", "0", "0", "call")
	rec := parseInternalRecord(t, testParser(fixedRate("2")), row)

	if rec.GroupStatus() != "" {
		t.Errorf("group status = %q, want empty for success", rec.GroupStatus())
	}
}
