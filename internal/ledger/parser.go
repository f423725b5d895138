package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sahokun/txhistory/internal/domain"
	"github.com/sahokun/txhistory/internal/rates"
)

// Parser converts raw CSV rows into typed records. It is stateless; the same
// instance serves every network and address.
type Parser struct {
	Symbols  domain.SymbolTable
	Rates    rates.Resolver
	Location *time.Location
}

// Parse converts one raw row into a record of the given kind. Records that
// must be excluded (standard mismatch in a combined NFT export, gas-relay
// noise) come back skip-marked, not as errors.
func (p *Parser) Parse(kind Kind, network domain.Network, wallet string, header, row []string) (Record, error) {
	switch kind {
	case KindNative:
		return p.parseNative(network, wallet, header, row)
	case KindInternal:
		return p.parseInternal(network, wallet, header, row)
	case KindErc20:
		return p.parseErc20(network, wallet, header, row)
	case KindErc721:
		return p.parseErc721(network, wallet, header, row)
	case KindErc1155:
		return p.parseErc1155(network, wallet, header, row)
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}

// Reevaluate re-derives a token record's attributes, rate and quantities
// after a field mutation (used by self-send netting).
func (p *Parser) Reevaluate(r *Erc20) error {
	return r.calc(p)
}

func (p *Parser) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

func (p *Parser) newBase(network domain.Network, wallet string) Base {
	return Base{
		Network: network,
		Wallet:  strings.ToLower(wallet),
		loc:     p.location(),
	}
}

func (p *Parser) lookupRate(symbol, date string) string {
	price, err := p.Rates.Rate(symbol, date)
	if err != nil {
		return rates.NotAvailable
	}
	return price.String()
}

func malformed(kind Kind, header, row []string, err error) error {
	return &MalformedRecordError{RecordKind: kind, Header: header, Row: row, Err: err}
}

func parseTimestamp(s string) (int64, error) {
	ts, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad unix timestamp %q", s)
	}
	return ts, nil
}

func (p *Parser) parseNative(network domain.Network, wallet string, header, row []string) (Record, error) {
	l := nativeOffsets(analyzeHeader(header, "From_PrivateTag"))
	r := newRowReader(row)

	n := &Native{Base: p.newBase(network, wallet)}
	n.TxHash = r.required(l.txHash, "txhash")
	ts := r.required(l.timestamp, "unix timestamp")
	n.From = strings.ToLower(r.required(l.from, "from"))
	n.To = strings.ToLower(r.required(l.to, "to"))
	n.Contract = strings.ToLower(r.required(l.contract, "contract address"))
	valueIn := r.required(l.valueIn, "value in")
	valueOut := r.required(l.valueOut, "value out")
	fee := r.required(l.fee, "txn fee")
	n.HistoricalPrice = r.optional(l.histPrice)
	n.Status = r.required(l.status, "status")
	n.ErrCode = r.required(l.errCode, "errcode")
	n.Method = r.required(l.method, "method")
	n.Note = r.optional(l.note)
	if r.err != nil {
		return nil, malformed(KindNative, header, row, r.err)
	}

	var err error
	if n.Timestamp, err = parseTimestamp(ts); err != nil {
		return nil, malformed(KindNative, header, row, err)
	}
	if n.ValueIn, err = domain.ParseDecimal(valueIn); err != nil {
		return nil, malformed(KindNative, header, row, fmt.Errorf("bad value in %q: %w", valueIn, err))
	}
	if n.ValueOut, err = domain.ParseDecimal(valueOut); err != nil {
		return nil, malformed(KindNative, header, row, fmt.Errorf("bad value out %q: %w", valueOut, err))
	}
	if n.Fee, err = domain.ParseDecimal(fee); err != nil {
		return nil, malformed(KindNative, header, row, fmt.Errorf("bad txn fee %q: %w", fee, err))
	}

	if err := n.calc(p); err != nil {
		return nil, malformed(KindNative, header, row, err)
	}
	return n, nil
}

func (p *Parser) parseInternal(network domain.Network, wallet string, header, row []string) (Record, error) {
	l := internalOffsets(analyzeHeader(header, "ParentTxFrom_PrivateTag"))
	r := newRowReader(row)

	t := &Internal{Base: p.newBase(network, wallet)}
	t.TxHash = r.required(l.txHash, "txhash")
	ts := r.required(l.timestamp, "unix timestamp")
	t.ParentFrom = strings.ToLower(r.required(l.parentFrom, "parent from"))
	t.ParentTo = strings.ToLower(r.required(l.parentTo, "parent to"))
	t.ParentValue = r.required(l.parentValue, "parent value")
	t.From = strings.ToLower(r.required(l.from, "from"))
	t.To = strings.ToLower(r.required(l.to, "to"))
	t.Contract = strings.ToLower(r.required(l.contract, "contract address"))
	valueIn := r.required(l.valueIn, "value in")
	valueOut := r.required(l.valueOut, "value out")
	t.Status = r.required(l.status, "status")
	t.ErrCode = r.required(l.errCode, "errcode")
	t.TransferType = r.required(l.transferType, "type")
	t.Note = r.optional(l.note)
	if r.err != nil {
		return nil, malformed(KindInternal, header, row, r.err)
	}

	var err error
	if t.Timestamp, err = parseTimestamp(ts); err != nil {
		return nil, malformed(KindInternal, header, row, err)
	}
	if t.ValueIn, err = domain.ParseDecimal(valueIn); err != nil {
		return nil, malformed(KindInternal, header, row, fmt.Errorf("bad value in %q: %w", valueIn, err))
	}
	if t.ValueOut, err = domain.ParseDecimal(valueOut); err != nil {
		return nil, malformed(KindInternal, header, row, fmt.Errorf("bad value out %q: %w", valueOut, err))
	}

	if err := t.calc(p); err != nil {
		return nil, malformed(KindInternal, header, row, err)
	}
	return t, nil
}

func (p *Parser) parseErc20(network domain.Network, wallet string, header, row []string) (Record, error) {
	l := erc20Offsets(analyzeHeader(header, "From_PrivateTag"))
	r := newRowReader(row)

	t := &Erc20{Base: p.newBase(network, wallet)}
	t.TxHash = r.required(l.txHash, "txhash")
	ts := r.required(l.timestamp, "unix timestamp")
	t.From = strings.ToLower(r.required(l.from, "from"))
	t.To = strings.ToLower(r.required(l.to, "to"))
	value := r.required(l.value, "value")
	t.HistoricalValueUSD = r.optional(l.histValueUSD)
	t.Contract = strings.ToLower(r.required(l.contract, "contract address"))
	t.TokenName = r.required(l.tokenName, "token name")
	symbol := r.required(l.tokenSymbol, "token symbol")
	t.Note = r.optional(l.note)
	if r.err != nil {
		return nil, malformed(KindErc20, header, row, r.err)
	}
	t.TokenSymbol = p.Symbols.Resolve(t.Contract, t.TokenName, symbol)

	var err error
	if t.Timestamp, err = parseTimestamp(ts); err != nil {
		return nil, malformed(KindErc20, header, row, err)
	}
	if t.Value, err = domain.ParseDecimal(value); err != nil {
		return nil, malformed(KindErc20, header, row, fmt.Errorf("bad value %q: %w", value, err))
	}

	// zksync2 token rows against the bootloader are gas accounting, not trades
	if network.Name == "zksync2" && (t.From == zksyncGasRelay || t.To == zksyncGasRelay) {
		t.IsSkip = true
		return t, nil
	}

	if err := t.calc(p); err != nil {
		return nil, malformed(KindErc20, header, row, err)
	}
	return t, nil
}

func (p *Parser) parseErc721(network domain.Network, wallet string, header, row []string) (Record, error) {
	info := analyzeHeader(header, "From_PrivateTag")
	if info.typeIndex >= 0 && nftType(row, info) != "721" {
		t := &Erc721{Base: p.newBase(network, wallet)}
		t.IsSkip = true
		return t, nil
	}
	l := nftOffsets(info, KindErc721)
	r := newRowReader(row)

	t := &Erc721{Base: p.newBase(network, wallet), Quantity: 1}
	t.TxHash = r.required(l.txHash, "txhash")
	ts := r.required(l.timestamp, "unix timestamp")
	t.From = strings.ToLower(r.required(l.from, "from"))
	t.To = strings.ToLower(r.required(l.to, "to"))
	t.Contract = strings.ToLower(r.required(l.contract, "contract address"))
	t.TokenID = r.required(l.tokenID, "token id")
	t.TokenName = r.required(l.tokenName, "token name")
	t.TokenSymbol = r.required(l.tokenSymbol, "token symbol")
	quantity := r.optional(l.quantity)
	t.Note = r.optional(l.note)
	if r.err != nil {
		return nil, malformed(KindErc721, header, row, r.err)
	}

	var err error
	if t.Timestamp, err = parseTimestamp(ts); err != nil {
		return nil, malformed(KindErc721, header, row, err)
	}
	if l.quantity >= 0 {
		if t.Quantity, err = parseNFTQuantity(quantity); err != nil {
			return nil, malformed(KindErc721, header, row, err)
		}
	}

	t.calc()
	return t, nil
}

func (p *Parser) parseErc1155(network domain.Network, wallet string, header, row []string) (Record, error) {
	info := analyzeHeader(header, "From_PrivateTag")
	if info.typeIndex >= 0 && nftType(row, info) != "1155" {
		t := &Erc1155{Base: p.newBase(network, wallet)}
		t.IsSkip = true
		return t, nil
	}
	l := nftOffsets(info, KindErc1155)
	r := newRowReader(row)

	t := &Erc1155{Base: p.newBase(network, wallet)}
	t.TxHash = r.required(l.txHash, "txhash")
	ts := r.required(l.timestamp, "unix timestamp")
	t.From = strings.ToLower(r.required(l.from, "from"))
	t.To = strings.ToLower(r.required(l.to, "to"))
	t.Contract = strings.ToLower(r.required(l.contract, "contract address"))
	t.TokenID = r.required(l.tokenID, "token id")
	t.TokenName = r.required(l.tokenName, "token name")
	t.TokenSymbol = r.required(l.tokenSymbol, "token symbol")
	quantity := r.required(l.quantity, "quantity")
	t.Note = r.optional(l.note)
	if r.err != nil {
		return nil, malformed(KindErc1155, header, row, r.err)
	}

	var err error
	if t.Timestamp, err = parseTimestamp(ts); err != nil {
		return nil, malformed(KindErc1155, header, row, err)
	}
	if t.Quantity, err = parseNFTQuantity(quantity); err != nil {
		return nil, malformed(KindErc1155, header, row, err)
	}

	t.calc()
	return t, nil
}

func nftType(row []string, info headerInfo) string {
	if info.typeIndex >= len(row) {
		return ""
	}
	return row[info.typeIndex]
}

func parseNFTQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad quantity %q", s)
	}
	return n, nil
}
