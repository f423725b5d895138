// Package ingest locates and reads the per-network explorer CSV exports laid
// out as <root>/<address>/<network>/<file>.csv.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahokun/txhistory/internal/ledger"
)

// File is one loaded CSV export. Combined NFT exports carry two record
// kinds; each row is parsed once per kind and standard mismatches are
// skip-marked by the parser.
type File struct {
	Name        string
	RecordKinds []ledger.Kind
	Header      []string
	Rows        [][]string
}

type targetFile struct {
	name  string
	kinds []ledger.Kind
}

var targetFiles = []targetFile{
	{name: "transactions.csv", kinds: []ledger.Kind{ledger.KindNative}},
	{name: "internals.csv", kinds: []ledger.Kind{ledger.KindInternal}},
	{name: "erc20.csv", kinds: []ledger.Kind{ledger.KindErc20}},
	{name: "erc721.csv", kinds: []ledger.Kind{ledger.KindErc721}},
	{name: "erc1155.csv", kinds: []ledger.Kind{ledger.KindErc1155}},
	{name: "nfts.csv", kinds: []ledger.Kind{ledger.KindErc721, ledger.KindErc1155}},
}

// FileSource reads exports from a local directory tree.
type FileSource struct {
	Root string
}

// Addresses lists the wallet directories under the root. Backup copies
// (suffixed .bak) are ignored.
func (s *FileSource) Addresses() ([]string, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("reading data root %s: %w", s.Root, err)
	}

	var addresses []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasSuffix(entry.Name(), ".bak") {
			continue
		}
		addresses = append(addresses, entry.Name())
	}
	return addresses, nil
}

// HasNetwork reports whether the address has exports for the network.
func (s *FileSource) HasNetwork(address, network string) bool {
	info, err := os.Stat(filepath.Join(s.Root, address, network))
	return err == nil && info.IsDir()
}

// Collect loads every known export file for one address and network. A
// missing file is normal (not every wallet touches every standard) and is
// only logged.
func (s *FileSource) Collect(address, network string) ([]File, error) {
	var files []File
	for _, target := range targetFiles {
		path := filepath.Join(s.Root, address, network, target.name)
		header, rows, err := readCSV(path)
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("export file not found", "file", target.name, "network", network, "address", address)
			continue
		}
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Name:        target.name,
			RecordKinds: target.kinds,
			Header:      header,
			Rows:        rows,
		})
	}
	return files, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}
