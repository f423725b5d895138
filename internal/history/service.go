// Package history orchestrates a full report run: collect exports, parse,
// group, classify and write one workbook per wallet address.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sahokun/txhistory/internal/domain"
	"github.com/sahokun/txhistory/internal/grouping"
	"github.com/sahokun/txhistory/internal/ingest"
	"github.com/sahokun/txhistory/internal/ledger"
	"github.com/sahokun/txhistory/internal/rates"
	"github.com/sahokun/txhistory/internal/report"
)

// Source yields the wallet addresses to process and their export files.
type Source interface {
	Addresses() ([]string, error)
	HasNetwork(address, network string) bool
	Collect(address, network string) ([]ingest.File, error)
}

// WriterFactory builds a fresh report writer for one address run.
type WriterFactory func(ctx context.Context) (report.Writer, error)

// Service runs the pipeline end to end.
type Service struct {
	source    Source
	parser    *ledger.Parser
	wrapped   domain.WrappedTokenTable
	resolver  rates.Resolver
	newWriter WriterFactory
	now       func() time.Time
}

// NewService creates a history Service. The clock defaults to time.Now and
// exists as a field for tests.
func NewService(source Source, parser *ledger.Parser, wrapped domain.WrappedTokenTable, resolver rates.Resolver, newWriter WriterFactory) *Service {
	return &Service{
		source:    source,
		parser:    parser,
		wrapped:   wrapped,
		resolver:  resolver,
		newWriter: newWriter,
		now:       time.Now,
	}
}

// ProcessAll runs every discovered address.
func (s *Service) ProcessAll(ctx context.Context) error {
	addresses, err := s.source.Addresses()
	if err != nil {
		return fmt.Errorf("discovering addresses: %w", err)
	}

	for _, address := range addresses {
		if err := s.ProcessAddress(ctx, address); err != nil {
			return fmt.Errorf("processing address %s: %w", address, err)
		}
	}
	return nil
}

// ProcessAddress builds one report for a wallet: a sheet per network that
// has exports, flushed under a timestamped run name.
func (s *Service) ProcessAddress(ctx context.Context, address string) error {
	writer, err := s.newWriter(ctx)
	if err != nil {
		return fmt.Errorf("creating report writer: %w", err)
	}

	stamp := s.now().Format("20060102150405")
	slog.Info("processing address", "address", address)

	for _, network := range domain.Networks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.source.HasNetwork(address, network.Name) {
			continue
		}
		slog.Info("processing network", "network", network.Name, "address", address)

		records, err := s.collectRecords(network, address)
		if err != nil {
			return err
		}

		groups, err := grouping.Bundle(records, grouping.Deps{
			Parser:  s.parser,
			Wrapped: s.wrapped,
		})
		if err != nil {
			return fmt.Errorf("grouping %s records: %w", network.Name, err)
		}

		symbols := grouping.UsedSymbols(groups)
		rows := report.Project(groups, s.resolver)

		if err := writer.Write(ctx, network.Name, rows, symbols); err != nil {
			return fmt.Errorf("writing %s sheet: %w", network.Name, err)
		}
		slog.Info("network done", "network", network.Name, "groups", len(groups), "rows", len(rows))
	}

	if err := writer.Flush(ctx, stamp+"-"+address); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return nil
}

func (s *Service) collectRecords(network domain.Network, address string) ([]ledger.Record, error) {
	files, err := s.source.Collect(address, network.Name)
	if err != nil {
		return nil, err
	}

	var records []ledger.Record
	for _, file := range files {
		for _, kind := range file.RecordKinds {
			for _, row := range file.Rows {
				rec, err := s.parser.Parse(kind, network, address, file.Header, row)
				if err != nil {
					return nil, fmt.Errorf("parsing %s: %w", file.Name, err)
				}
				if rec.Common().IsSkip {
					slog.Debug("skipping record", "file", file.Name, "kind", kind, "txhash", rec.Common().TxHash)
					continue
				}
				records = append(records, rec)
			}
		}
	}
	return records, nil
}
