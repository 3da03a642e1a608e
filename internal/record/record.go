// Package record persists evaluation sessions as msgpack payloads so a run
// can be replayed later and verified to produce bit-identical outcomes.
package record

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// Entry is one recorded evaluation.
type Entry struct {
	Expr       string
	ResultType string

	// Outcome: either Value (and Bool for comparisons) or the failure pair.
	Failed  bool
	Kind    uint8
	Message string
	IsBool  bool
	Value   string
}

// Session is the on-disk payload.
type Session struct {
	// Schema version for safe invalidation when the format changes
	Schema  uint16
	Entries []Entry
}

// Write marshals the session to path, stamping the current schema version.
func Write(path string, entries []Entry) error {
	payload := Session{Schema: schemaVersion, Entries: entries}
	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Read unmarshals a session and rejects schema mismatches.
func Read(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}
	var payload Session
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	if payload.Schema != schemaVersion {
		return Session{}, fmt.Errorf("session schema %d, tool supports %d", payload.Schema, schemaVersion)
	}
	return payload, nil
}
