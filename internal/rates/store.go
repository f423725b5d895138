package rates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Quote is a persisted rate for one symbol on one trading date.
type Quote struct {
	Symbol    string
	Date      string
	Price     decimal.Decimal
	UpdatedAt time.Time
}

// Store defines persistent storage for rate quotes.
type Store interface {
	SaveQuote(ctx context.Context, symbol, date string, price decimal.Decimal) error
	GetQuote(ctx context.Context, symbol, date string) (Quote, error)
	GetAllQuotes(ctx context.Context) ([]Quote, error)
}

// PgStore implements Store with PostgreSQL.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore creates a PostgreSQL rate quote store.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

func (s *PgStore) SaveQuote(ctx context.Context, symbol, date string, price decimal.Decimal) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO rate_quotes (symbol, quote_date, price, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (symbol, quote_date) DO UPDATE SET price = $3, updated_at = NOW()`,
		symbol, date, price)
	if err != nil {
		return fmt.Errorf("saving quote %s@%s: %w", symbol, date, err)
	}
	return nil
}

func (s *PgStore) GetQuote(ctx context.Context, symbol, date string) (Quote, error) {
	var q Quote
	err := s.pool.QueryRow(ctx,
		`SELECT symbol, quote_date, price, updated_at FROM rate_quotes
		 WHERE symbol = $1 AND quote_date = $2`,
		symbol, date).Scan(&q.Symbol, &q.Date, &q.Price, &q.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Quote{}, ErrUnavailable
	}
	if err != nil {
		return Quote{}, fmt.Errorf("getting quote %s@%s: %w", symbol, date, err)
	}
	return q, nil
}

func (s *PgStore) GetAllQuotes(ctx context.Context) ([]Quote, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT symbol, quote_date, price, updated_at FROM rate_quotes ORDER BY symbol, quote_date`)
	if err != nil {
		return nil, fmt.Errorf("getting all quotes: %w", err)
	}
	defer rows.Close()

	var quotes []Quote
	for rows.Next() {
		var q Quote
		if err := rows.Scan(&q.Symbol, &q.Date, &q.Price, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}
