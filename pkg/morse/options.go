// Package morse provides the public API for the Morse code translator.
package morse

import (
	"nickandperla.net/morse/internal/store"
)

// Option configures a Translator.
type Option func(*Translator)

// WithSQLiteStore configures SQLite history persistence at the given path.
func WithSQLiteStore(path string) Option {
	return func(t *Translator) {
		s, err := store.NewSQLite(path)
		if err == nil {
			t.store = s
		}
	}
}

// WithMemoryStore configures an in-memory history store (for testing).
func WithMemoryStore() Option {
	return func(t *Translator) {
		t.store = store.NewMemory()
	}
}

// WithStore configures a custom history store.
func WithStore(s Store) Option {
	return func(t *Translator) {
		t.store = s
	}
}

// WithoutHistory disables history recording.
func WithoutHistory() Option {
	return func(t *Translator) {
		t.store = nil
	}
}
