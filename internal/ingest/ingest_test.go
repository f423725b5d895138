package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sahokun/txhistory/internal/ledger"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "0xwallet", "ethereum")
	writeFile(t, filepath.Join(dir, "transactions.csv"),
		"Txhash,Blockno,UnixTimestamp\n0xabc,100,1672567200\n")
	writeFile(t, filepath.Join(dir, "erc20.csv"),
		"Txhash,UnixTimestamp\n0xdef,1672567200\n0xghi,1672567300\n")

	src := &FileSource{Root: root}
	files, err := src.Collect("0xwallet", "ethereum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("file count = %d, want 2 (missing files are skipped)", len(files))
	}
	if files[0].Name != "transactions.csv" || files[0].RecordKinds[0] != ledger.KindNative {
		t.Errorf("first file = %s/%v", files[0].Name, files[0].RecordKinds)
	}
	if len(files[0].Rows) != 1 || files[0].Rows[0][0] != "0xabc" {
		t.Errorf("rows = %v, header must be split off", files[0].Rows)
	}
	if len(files[1].Rows) != 2 {
		t.Errorf("erc20 rows = %d, want 2", len(files[1].Rows))
	}
}

func TestCollectCombinedNFTFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "0xwallet", "oasys", "nfts.csv"),
		"Txhash,UnixTimestamp,Type\n0xabc,1672567200,721\n")

	src := &FileSource{Root: root}
	files, err := src.Collect("0xwallet", "oasys")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("file count = %d, want 1", len(files))
	}

	kinds := files[0].RecordKinds
	if len(kinds) != 2 || kinds[0] != ledger.KindErc721 || kinds[1] != ledger.KindErc1155 {
		t.Errorf("kinds = %v, combined exports parse once per standard", kinds)
	}
}

func TestCollectRaggedRows(t *testing.T) {
	root := t.TempDir()
	// optional trailing note column dropped on some rows
	writeFile(t, filepath.Join(root, "0xwallet", "ethereum", "erc20.csv"),
		"Txhash,UnixTimestamp,PrivateNote\n0xabc,1672567200,hello\n0xdef,1672567300\n")

	src := &FileSource{Root: root}
	files, err := src.Collect("0xwallet", "ethereum")
	if err != nil {
		t.Fatalf("ragged rows must not fail: %v", err)
	}
	if len(files[0].Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(files[0].Rows))
	}
}

func TestAddresses(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"0xaaa", "0xbbb", "0xccc.bak"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, filepath.Join(root, "stray.txt"), "not a wallet")

	src := &FileSource{Root: root}
	addresses, err := src.Addresses()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(addresses) != 2 {
		t.Fatalf("addresses = %v, want backups and files skipped", addresses)
	}
	if addresses[0] != "0xaaa" || addresses[1] != "0xbbb" {
		t.Errorf("addresses = %v", addresses)
	}
}

func TestHasNetwork(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "0xaaa", "polygon"), 0o755); err != nil {
		t.Fatal(err)
	}

	src := &FileSource{Root: root}
	if !src.HasNetwork("0xaaa", "polygon") {
		t.Error("polygon directory should be detected")
	}
	if src.HasNetwork("0xaaa", "ethereum") {
		t.Error("missing network directory should not be detected")
	}
}
