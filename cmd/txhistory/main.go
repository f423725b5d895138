package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/sahokun/txhistory/internal/config"
	"github.com/sahokun/txhistory/internal/database"
	"github.com/sahokun/txhistory/internal/domain"
	"github.com/sahokun/txhistory/internal/history"
	"github.com/sahokun/txhistory/internal/ingest"
	"github.com/sahokun/txhistory/internal/ledger"
	"github.com/sahokun/txhistory/internal/rates"
	"github.com/sahokun/txhistory/internal/report"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	app := &cli.App{
		Name:  "txhistory",
		Usage: "build tax-ready transaction reports from blockchain explorer CSV exports",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data-dir", Usage: "root of the per-address export tree"},
			&cli.StringFlag{Name: "output-dir", Usage: "directory for generated workbooks"},
			&cli.StringFlag{Name: "rate-file", Usage: "historical rate workbook"},
			&cli.StringFlag{Name: "timezone", Usage: "timezone for trading date cutoffs"},
			&cli.StringFlag{Name: "address", Usage: "process a single wallet address"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	if v := c.String("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if v := c.String("output-dir"); v != "" {
		cfg.OutputDir = v
	}
	if v := c.String("rate-file"); v != "" {
		cfg.RateFile = v
	}
	if v := c.String("timezone"); v != "" {
		cfg.Timezone = v
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %s: %w", cfg.Timezone, err)
	}

	source, err := rates.LoadWorkbook(cfg.RateFile)
	if err != nil {
		return err
	}

	rateSvc := rates.NewService(source)
	if cfg.DatabaseURL != "" {
		store, err := setupStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		if err := rateSvc.LoadStored(ctx, store); err != nil {
			return err
		}
		if err := rateSvc.Persist(ctx, store, source.Symbols(), source.Dates()); err != nil {
			return err
		}
	}
	resolver := rates.NewCachingResolver(rateSvc)

	parser := &ledger.Parser{
		Symbols:  domain.DefaultSymbolTable,
		Rates:    resolver,
		Location: loc,
	}

	newWriter := func(ctx context.Context) (report.Writer, error) {
		if cfg.SpreadsheetID != "" {
			return report.NewSheetsWriter(ctx, cfg.SpreadsheetID, cfg.GoogleCredentialsJSON)
		}
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
		return report.NewExcelWriter(cfg.OutputDir), nil
	}

	files := &ingest.FileSource{Root: cfg.DataDir}
	svc := history.NewService(files, parser, domain.DefaultWrappedTokens, resolver, newWriter)

	if address := c.String("address"); address != "" {
		return svc.ProcessAddress(ctx, address)
	}
	return svc.ProcessAll(ctx)
}

// setupStore connects to the quote database, applies migrations and returns
// the store. The pool lives for the whole process.
func setupStore(ctx context.Context, databaseURL string) (rates.Store, error) {
	pool, err := database.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("creating migrations sub-fs: %w", err)
	}
	if err := database.Migrate(ctx, pool, migrations); err != nil {
		return nil, err
	}

	slog.Info("quote store ready")
	return rates.NewPgStore(pool), nil
}
