package store

import (
	"os"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()

	// Test Append and Recent
	if err := s.Append("CQ", "- . - .   - - . -"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append("SOS", ". . .   - - -   . . ."); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	// Newest first
	if got[0].Text != "SOS" || got[1].Text != "CQ" {
		t.Errorf("unexpected order: %q then %q", got[0].Text, got[1].Text)
	}
	if got[1].Morse != "- . - .   - - . -" {
		t.Errorf("expected CQ pattern, got %q", got[1].Morse)
	}

	// Limit caps the result
	got, err = s.Recent(1)
	if err != nil {
		t.Fatalf("Recent(1) failed: %v", err)
	}
	if len(got) != 1 || got[0].Text != "SOS" {
		t.Errorf("Recent(1) = %v, want just SOS", got)
	}

	// Test Clear
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	got, err = s.Recent(10)
	if err != nil {
		t.Fatalf("Recent after clear failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no entries after clear, got %d", len(got))
	}
}

func TestSQLiteStore(t *testing.T) {
	// Create temp file
	f, err := os.CreateTemp("", "morse-test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}

	// Test Append and Recent
	if err := s.Append("DE K", "- . .   .       - . -"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := s.Recent(5)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Text != "DE K" || got[0].Morse != "- . .   .       - . -" {
		t.Errorf("unexpected entry: %+v", got[0])
	}
	if got[0].Ts == "" {
		t.Error("expected timestamp to be set")
	}

	// Close and reopen to verify persistence
	s.Close()

	s2, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to reopen SQLite store: %v", err)
	}
	defer s2.Close()

	got, err = s2.Recent(5)
	if err != nil {
		t.Fatalf("Recent after reopen failed: %v", err)
	}
	if len(got) != 1 || got[0].Text != "DE K" {
		t.Errorf("expected entry to persist, got %v", got)
	}

	// Test Clear
	if err := s2.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	got, err = s2.Recent(5)
	if err != nil {
		t.Fatalf("Recent after clear failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no entries after clear, got %d", len(got))
	}
}

func TestSQLiteSchemaVersionMismatch(t *testing.T) {
	f, err := os.CreateTemp("", "morse-test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}
	if err := s.SetMetadata("schema_version", "99"); err != nil {
		t.Fatalf("SetMetadata failed: %v", err)
	}
	s.Close()

	if _, err := NewSQLite(path); err == nil {
		t.Fatal("expected error opening store with unknown schema version")
	}
}
