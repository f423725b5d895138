package rates

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Service resolves rates from a primary source (the rate workbook), falling
// back to quotes preloaded from a persistent store. All lookups after startup
// are pure in-memory reads, so classification never blocks on I/O.
type Service struct {
	source Resolver
	stored map[string]decimal.Decimal // "symbol@date", symbol lowercase
}

// NewService creates a rate service over a primary source.
func NewService(source Resolver) *Service {
	return &Service{
		source: source,
		stored: make(map[string]decimal.Decimal),
	}
}

// LoadStored preloads all persisted quotes as the fallback tier.
func (s *Service) LoadStored(ctx context.Context, store Store) error {
	quotes, err := store.GetAllQuotes(ctx)
	if err != nil {
		return fmt.Errorf("loading stored quotes: %w", err)
	}
	for _, q := range quotes {
		s.stored[quoteKey(q.Symbol, q.Date)] = q.Price
	}
	return nil
}

// Persist writes every stored-tier quote resolvable through the service back
// into the store. Used to mirror freshly imported workbook rates.
func (s *Service) Persist(ctx context.Context, store Store, symbols []string, dates []string) error {
	for _, symbol := range symbols {
		for _, date := range dates {
			price, err := s.Rate(symbol, date)
			if err != nil {
				continue
			}
			if err := store.SaveQuote(ctx, symbol, date, price); err != nil {
				return fmt.Errorf("persisting %s@%s: %w", symbol, date, err)
			}
		}
	}
	return nil
}

// Rate implements Resolver: primary source first, then preloaded quotes.
func (s *Service) Rate(symbol, date string) (decimal.Decimal, error) {
	if price, err := s.source.Rate(symbol, date); err == nil {
		return price, nil
	}
	if price, ok := s.stored[quoteKey(symbol, date)]; ok {
		return price, nil
	}
	return decimal.Decimal{}, ErrUnavailable
}

func quoteKey(symbol, date string) string {
	return strings.ToLower(symbol) + "@" + date
}
