package morse

import (
	"nickandperla.net/morse/internal/store"
	"nickandperla.net/morse/internal/symbol"
	"nickandperla.net/morse/internal/translate"
)

// EOM is the sentinel returned by Next once every word has been consumed.
const EOM = symbol.EOM

// UnsupportedCharError reports a character with no Morse pattern.
type UnsupportedCharError = translate.UnsupportedCharError

// Entry is one recorded translation in the history store.
type Entry = store.Entry

// Store is the interface for custom history stores.
type Store = store.Store

// Translator translates text to Morse code, optionally recording successful
// full translations in a history store.
type Translator struct {
	engine *translate.Translator
	store  store.Store
}

// New creates a new Translator with the given options.
func New(opts ...Option) *Translator {
	t := &Translator{
		engine: translate.New(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// SetMessage replaces the current message and resets incremental consumption.
func (t *Translator) SetMessage(text string) {
	t.engine.SetMessage(text)
}

// ClearMessage resets the translator to its initial empty state.
func (t *Translator) ClearMessage() {
	t.engine.ClearMessage()
}

// Message returns the full Morse encoding of the current message. When a
// history store is configured, the successful translation is recorded; a
// store failure does not fail the translation.
func (t *Translator) Message() (string, error) {
	result, err := t.engine.Message()
	if err != nil {
		return "", err
	}

	if t.store != nil && result != "" {
		// Logged best-effort; the translation itself already succeeded.
		_ = t.store.Append(t.engine.Text(), result)
	}

	return result, nil
}

// Next returns the Morse encoding of the next unconsumed word, or EOM once
// the message is exhausted. A word whose encoding fails is still consumed.
func (t *Translator) Next() (string, error) {
	return t.engine.Next()
}

// Remaining returns how many words Next has not yet consumed.
func (t *Translator) Remaining() int {
	return t.engine.Remaining()
}

// History returns up to limit recorded translations, newest first. Returns
// nil when no history store is configured.
func (t *Translator) History(limit int) ([]Entry, error) {
	if t.store == nil {
		return nil, nil
	}
	return t.store.Recent(limit)
}

// ClearHistory removes all recorded translations. No-op without a store.
func (t *Translator) ClearHistory() error {
	if t.store == nil {
		return nil
	}
	return t.store.Clear()
}

// Close releases resources.
func (t *Translator) Close() error {
	if t.store != nil {
		return t.store.Close()
	}
	return nil
}
