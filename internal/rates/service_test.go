package rates

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

type rateFunc func(symbol, date string) (decimal.Decimal, error)

func (f rateFunc) Rate(symbol, date string) (decimal.Decimal, error) {
	return f(symbol, date)
}

func noRate() rateFunc {
	return func(string, string) (decimal.Decimal, error) {
		return decimal.Decimal{}, ErrUnavailable
	}
}

type memStore struct {
	quotes map[string]Quote
}

func newMemStore() *memStore {
	return &memStore{quotes: make(map[string]Quote)}
}

func (s *memStore) SaveQuote(_ context.Context, symbol, date string, price decimal.Decimal) error {
	s.quotes[symbol+"@"+date] = Quote{Symbol: symbol, Date: date, Price: price}
	return nil
}

func (s *memStore) GetQuote(_ context.Context, symbol, date string) (Quote, error) {
	q, ok := s.quotes[symbol+"@"+date]
	if !ok {
		return Quote{}, ErrUnavailable
	}
	return q, nil
}

func (s *memStore) GetAllQuotes(_ context.Context) ([]Quote, error) {
	var quotes []Quote
	for _, q := range s.quotes {
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func TestServicePrefersSource(t *testing.T) {
	source := rateFunc(func(symbol, date string) (decimal.Decimal, error) {
		return decimal.NewFromInt(10), nil
	})
	svc := NewService(source)

	price, err := svc.Rate("eth", "2023/01/01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price.String() != "10" {
		t.Errorf("price = %s, want 10", price)
	}
}

func TestServiceFallsBackToStored(t *testing.T) {
	store := newMemStore()
	if err := store.SaveQuote(context.Background(), "ETH", "2023/01/01", decimal.NewFromInt(7)); err != nil {
		t.Fatal(err)
	}

	svc := NewService(noRate())
	if err := svc.LoadStored(context.Background(), store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// symbol lookup is case-insensitive
	price, err := svc.Rate("eth", "2023/01/01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price.String() != "7" {
		t.Errorf("price = %s, want 7", price)
	}
}

func TestServiceUnavailable(t *testing.T) {
	svc := NewService(noRate())

	_, err := svc.Rate("eth", "2023/01/01")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}

func TestServicePersistSkipsGaps(t *testing.T) {
	source := rateFunc(func(symbol, date string) (decimal.Decimal, error) {
		if symbol == "eth" && date == "2023/01/01" {
			return decimal.NewFromInt(10), nil
		}
		return decimal.Decimal{}, ErrUnavailable
	})
	svc := NewService(source)
	store := newMemStore()

	err := svc.Persist(context.Background(), store, []string{"eth", "btc"}, []string{"2023/01/01", "2023/01/02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.quotes) != 1 {
		t.Errorf("persisted %d quotes, want 1 (gaps skipped)", len(store.quotes))
	}
}

func TestCachingResolverMemoizesMisses(t *testing.T) {
	calls := 0
	source := rateFunc(func(string, string) (decimal.Decimal, error) {
		calls++
		return decimal.Decimal{}, ErrUnavailable
	})
	c := NewCachingResolver(source)

	for range 3 {
		if _, err := c.Rate("eth", "2023/01/01"); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("error = %v, want ErrUnavailable", err)
		}
	}
	if calls != 1 {
		t.Errorf("source called %d times, want 1", calls)
	}
}

func TestCachingResolverMemoizesHits(t *testing.T) {
	calls := 0
	source := rateFunc(func(string, string) (decimal.Decimal, error) {
		calls++
		return decimal.NewFromInt(5), nil
	})
	c := NewCachingResolver(source)

	for range 3 {
		price, err := c.Rate("eth", "2023/01/01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if price.String() != "5" {
			t.Errorf("price = %s, want 5", price)
		}
	}
	if calls != 1 {
		t.Errorf("source called %d times, want 1", calls)
	}
}
