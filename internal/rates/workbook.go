package rates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sahokun/txhistory/internal/domain"
)

// dateColumn names the workbook column holding trading dates.
const dateColumn = "datetime"

// WorkbookSource resolves rates from a spreadsheet with one row per trading
// date and one lowercase column per symbol.
type WorkbookSource struct {
	// date -> lowercase symbol -> price
	prices map[string]map[string]decimal.Decimal
}

// LoadWorkbook reads the rate workbook's first sheet into memory.
func LoadWorkbook(path string) (*WorkbookSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening rate workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading rate sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("rate workbook %s has no header row", path)
	}

	header := rows[0]
	dateIdx := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), dateColumn) {
			dateIdx = i
			break
		}
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("rate workbook %s has no %q column", path, dateColumn)
	}

	src := &WorkbookSource{prices: make(map[string]map[string]decimal.Decimal, len(rows)-1)}
	for _, row := range rows[1:] {
		if dateIdx >= len(row) || row[dateIdx] == "" {
			continue
		}
		date := row[dateIdx]
		bySymbol := make(map[string]decimal.Decimal)
		for i, name := range header {
			if i == dateIdx || i >= len(row) {
				continue
			}
			symbol := strings.ToLower(strings.TrimSpace(name))
			if symbol == "" {
				continue
			}
			cell := strings.TrimSpace(row[i])
			if cell == "" || strings.EqualFold(cell, NotAvailable) || strings.EqualFold(cell, "nan") {
				continue
			}
			price, err := domain.ParseDecimal(cell)
			if err != nil {
				return nil, fmt.Errorf("rate workbook %s: bad price %q for %s on %s: %w", path, cell, symbol, date, err)
			}
			bySymbol[symbol] = price
		}
		src.prices[date] = bySymbol
	}

	return src, nil
}

// Dates lists every trading date the workbook covers.
func (s *WorkbookSource) Dates() []string {
	dates := make([]string, 0, len(s.prices))
	for date := range s.prices {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Symbols lists every symbol with at least one price.
func (s *WorkbookSource) Symbols() []string {
	var symbols []string
	for _, bySymbol := range s.prices {
		for symbol := range bySymbol {
			symbols = append(symbols, symbol)
		}
	}
	symbols = lo.Uniq(symbols)
	sort.Strings(symbols)
	return symbols
}

// Rate implements Resolver.
func (s *WorkbookSource) Rate(symbol, date string) (decimal.Decimal, error) {
	bySymbol, ok := s.prices[date]
	if !ok {
		return decimal.Decimal{}, ErrUnavailable
	}
	price, ok := bySymbol[strings.ToLower(symbol)]
	if !ok {
		return decimal.Decimal{}, ErrUnavailable
	}
	return price, nil
}
