// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package translate implements the text-to-Morse translation engine.
package translate

import (
	"fmt"
	"strings"

	"nickandperla.net/morse/internal/symbol"
)

// UnsupportedCharError reports a character with no Morse pattern.
// Char is the uppercased offending character.
type UnsupportedCharError struct {
	Char rune
}

func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("unsupported character: %c", e.Char)
}

// Translator converts a message to Morse code, either whole or word by word.
// Not safe for concurrent mutation; callers serialize SetMessage/Next/
// ClearMessage externally if the instance is shared.
type Translator struct {
	message string
	words   []string
	cursor  int
}

// New creates an empty Translator.
func New() *Translator {
	return &Translator{}
}

// SetMessage replaces the current message, retokenizes it, and resets the
// word cursor. Unsupported characters are not detected here; they surface
// during encoding.
func (t *Translator) SetMessage(text string) {
	t.message = text
	t.words = tokenize(text)
	t.cursor = 0
}

// ClearMessage resets the translator to its initial empty state.
func (t *Translator) ClearMessage() {
	t.message = ""
	t.words = nil
	t.cursor = 0
}

// Text returns the raw message as last set.
func (t *Translator) Text() string {
	return t.message
}

// Message returns the full Morse encoding of the current message. Letters
// within a word are separated by symbol.LetterSep, words by symbol.WordSep.
// Prosign words (AR, SK, BT) expand to their pre-composed patterns. The
// cursor is untouched, so Message and Next can be interleaved freely.
//
// On an unsupported character the whole call fails with
// *UnsupportedCharError and no partial output.
func (t *Translator) Message() (string, error) {
	var sb strings.Builder
	for i, word := range t.words {
		if i > 0 {
			sb.WriteString(symbol.WordSep)
		}
		pattern, err := encodeWord(word)
		if err != nil {
			return "", err
		}
		sb.WriteString(pattern)
	}
	return sb.String(), nil
}

// Next returns the Morse encoding of the next unconsumed word, advancing the
// cursor. Once every word is consumed it returns symbol.EOM indefinitely.
//
// The cursor advances before encoding, so a word that fails with
// *UnsupportedCharError is still consumed: the following call moves on to
// the next word rather than retrying.
func (t *Translator) Next() (string, error) {
	if t.cursor >= len(t.words) {
		return symbol.EOM, nil
	}
	word := t.words[t.cursor]
	t.cursor++
	return encodeWord(word)
}

// Remaining returns how many words have not yet been consumed by Next.
func (t *Translator) Remaining() int {
	return len(t.words) - t.cursor
}

// tokenize splits a message into uppercased whitespace-delimited words.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	for i, w := range fields {
		fields[i] = strings.ToUpper(w)
	}
	return fields
}

// encodeWord encodes one uppercased word: prosign table first, then letter
// by letter with symbol.LetterSep between patterns.
func encodeWord(word string) (string, error) {
	if pattern, ok := symbol.Prosign(word); ok {
		return pattern, nil
	}

	var sb strings.Builder
	for i, r := range word {
		pattern, ok := symbol.Pattern(r)
		if !ok {
			return "", &UnsupportedCharError{Char: r}
		}
		if i > 0 {
			sb.WriteString(symbol.LetterSep)
		}
		sb.WriteString(pattern)
	}
	return sb.String(), nil
}
