// Package store provides persistence for translation history.
package store

// Entry is one recorded translation.
type Entry struct {
	ID    int64
	Text  string
	Morse string
	Ts    string
}

// Store is the interface for translation history persistence.
type Store interface {
	// Append records a translation.
	Append(text, morse string) error
	// Recent returns up to limit entries, newest first.
	Recent(limit int) ([]Entry, error)
	// Clear removes all entries.
	Clear() error
	// Close releases resources.
	Close() error
}
