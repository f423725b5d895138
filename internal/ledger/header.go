package ledger

import (
	"fmt"

	"github.com/samber/lo"
)

// headerInfo captures the optional columns detected in an export header.
// Explorers add private-tag columns next to each address, sometimes omit the
// block number, and tag combined NFT exports with a Type column; all three
// shift the positions of every following field.
type headerInfo struct {
	hasPrivateTag bool
	hasBlockNo    bool
	typeIndex     int // -1 when the header has no Type column
}

func analyzeHeader(header []string, tagColumn string) headerInfo {
	return headerInfo{
		hasPrivateTag: lo.Contains(header, tagColumn),
		hasBlockNo:    lo.Contains(header, "Blockno"),
		typeIndex:     lo.IndexOf(header, "Type"),
	}
}

// offsetBuilder assigns consecutive column indexes, skipping the optional
// columns the header analysis detected.
type offsetBuilder struct {
	info headerInfo
	next int
}

func (b *offsetBuilder) col() int {
	v := b.next
	b.next++
	return v
}

func (b *offsetBuilder) tagged() int {
	v := b.col()
	if b.info.hasPrivateTag {
		b.next++ // private-tag column follows the address
	}
	return v
}

func (b *offsetBuilder) blockNo() int {
	if !b.info.hasBlockNo {
		return -1
	}
	return b.col()
}

// nativeLayout names every column position of a native-transaction row.
type nativeLayout struct {
	txHash, blockNo, timestamp, dateTime         int
	from, to, contract                           int
	valueIn, valueOut, currentValue, fee, feeUSD int
	histPrice, status, errCode, method, note     int
}

func nativeOffsets(info headerInfo) nativeLayout {
	b := offsetBuilder{info: info}
	return nativeLayout{
		txHash:       b.col(),
		blockNo:      b.col(),
		timestamp:    b.col(),
		dateTime:     b.col(),
		from:         b.tagged(),
		to:           b.tagged(),
		contract:     b.col(),
		valueIn:      b.col(),
		valueOut:     b.col(),
		currentValue: b.col(),
		fee:          b.col(),
		feeUSD:       b.col(),
		histPrice:    b.col(),
		status:       b.col(),
		errCode:      b.col(),
		method:       b.col(),
		note:         b.col(),
	}
}

// internalLayout names every column position of an internal-transfer row.
type internalLayout struct {
	txHash, blockNo, timestamp, dateTime      int
	parentFrom, parentTo, parentValue         int
	from, to, contract                        int
	valueIn, valueOut, currentValue           int
	histPrice, status, errCode, transferType  int
	note                                      int
}

func internalOffsets(info headerInfo) internalLayout {
	b := offsetBuilder{info: info}
	return internalLayout{
		txHash:       b.col(),
		blockNo:      b.col(),
		timestamp:    b.col(),
		dateTime:     b.col(),
		parentFrom:   b.tagged(),
		parentTo:     b.tagged(),
		parentValue:  b.col(),
		from:         b.tagged(),
		to:           b.tagged(),
		contract:     b.col(),
		valueIn:      b.col(),
		valueOut:     b.col(),
		currentValue: b.col(),
		histPrice:    b.col(),
		status:       b.col(),
		errCode:      b.col(),
		transferType: b.col(),
		note:         b.col(),
	}
}

// erc20Layout names every column position of an ERC-20 transfer row.
type erc20Layout struct {
	txHash, blockNo, timestamp, dateTime int
	from, to                             int
	value, histValueUSD                  int
	contract, tokenName, tokenSymbol     int
	note                                 int
}

func erc20Offsets(info headerInfo) erc20Layout {
	b := offsetBuilder{info: info}
	return erc20Layout{
		txHash:       b.col(),
		blockNo:      b.blockNo(),
		timestamp:    b.col(),
		dateTime:     b.col(),
		from:         b.tagged(),
		to:           b.tagged(),
		value:        b.col(),
		histValueUSD: b.col(),
		contract:     b.col(),
		tokenName:    b.col(),
		tokenSymbol:  b.col(),
		note:         b.col(),
	}
}

// nftLayout names the column positions of ERC-721/1155 transfer rows. The new
// layout (Type column present) puts name/symbol before the token id and adds
// an explicit quantity; the old layout leads with the token id.
type nftLayout struct {
	txHash, blockNo, timestamp, dateTime int
	from, to, contract                   int
	tokenID, tokenName, tokenSymbol      int
	tokenType, quantity                  int // -1 in layouts without them
	note                                 int
}

func nftOffsets(info headerInfo, kind Kind) nftLayout {
	b := offsetBuilder{info: info}
	l := nftLayout{
		txHash:    b.col(),
		blockNo:   b.blockNo(),
		timestamp: b.col(),
		dateTime:  b.col(),
		from:      b.tagged(),
		to:        b.tagged(),
		contract:  b.col(),
		tokenType: -1,
		quantity:  -1,
	}

	if info.typeIndex >= 0 {
		l.tokenName = b.col()
		l.tokenSymbol = b.col()
		l.tokenID = b.col()
		l.tokenType = b.col()
		l.quantity = b.col()
	} else if kind == KindErc1155 {
		l.tokenID = b.col()
		l.quantity = b.col()
		l.tokenName = b.col()
		l.tokenSymbol = b.col()
	} else {
		l.tokenID = b.col()
		l.tokenName = b.col()
		l.tokenSymbol = b.col()
	}
	l.note = b.col()
	return l
}

// rowReader extracts fields by column index, accumulating the first error.
type rowReader struct {
	row []string
	err error
}

func newRowReader(row []string) *rowReader {
	return &rowReader{row: row}
}

// required returns the field at idx; a missing column is an error even when
// the value itself may legitimately be empty.
func (r *rowReader) required(idx int, name string) string {
	if r.err != nil {
		return ""
	}
	if idx < 0 || idx >= len(r.row) {
		r.err = fmt.Errorf("missing required column %q", name)
		return ""
	}
	return r.row[idx]
}

// optional returns the field at idx or "" when the column is absent.
func (r *rowReader) optional(idx int) string {
	if r.err != nil || idx < 0 || idx >= len(r.row) {
		return ""
	}
	return r.row[idx]
}
