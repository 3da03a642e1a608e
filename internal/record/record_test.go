package record_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"safenum/internal/record"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.msgpack")
	entries := []record.Entry{
		{Expr: "100 + 27", ResultType: "int8", Value: "127"},
		{Expr: "100 + 28", ResultType: "int8", Failed: true, Kind: 2, Message: "addition overflow"},
		{Expr: "2 + 2 == 4", ResultType: "int32", IsBool: true, Value: "true"},
	}
	if err := record.Write(path, entries); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := record.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Entries) != len(entries) {
		t.Fatalf("entries = %d, want %d", len(got.Entries), len(entries))
	}
	for i := range entries {
		if got.Entries[i] != entries[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got.Entries[i], entries[i])
		}
	}
}

func TestReadRejectsSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.msgpack")
	data, err := msgpack.Marshal(&record.Session{Schema: 999})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err = record.Read(path)
	if err == nil || !strings.Contains(err.Error(), "schema") {
		t.Fatalf("Read error = %v, want schema mismatch", err)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.msgpack")
	if err := os.WriteFile(path, []byte("not msgpack at all"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := record.Read(path); err == nil {
		t.Fatalf("Read succeeded on garbage")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := record.Read(filepath.Join(t.TempDir(), "absent.msgpack")); err == nil {
		t.Fatalf("Read succeeded on missing file")
	}
}
