// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package symbol defines the Morse symbol and prosign tables per ITU-R M.1677-1.
package symbol

// Spacing constants for composed Morse output. Within a single character's
// pattern, dots and dashes are separated by one space; see Pattern.
const (
	// LetterSep separates characters within a word.
	LetterSep = "   " // 3 spaces
	// WordSep separates words in a full message.
	WordSep = "       " // 7 spaces
)

// EOM is the end-of-message sentinel emitted by incremental consumption.
const EOM = "<EOM>"

// Pattern returns the Morse pattern for an uppercase character.
// The second return value is false for characters outside the supported set
// (A-Z, 0-9, and the ITU punctuation subset).
func Pattern(r rune) (string, bool) {
	switch r {
	case 'A':
		return ". -", true
	case 'B':
		return "- . . .", true
	case 'C':
		return "- . - .", true
	case 'D':
		return "- . .", true
	case 'E':
		return ".", true
	case 'F':
		return ". . - .", true
	case 'G':
		return "- - .", true
	case 'H':
		return ". . . .", true
	case 'I':
		return ". .", true
	case 'J':
		return ". - - -", true
	case 'K':
		return "- . -", true
	case 'L':
		return ". - . .", true
	case 'M':
		return "- -", true
	case 'N':
		return "- .", true
	case 'O':
		return "- - -", true
	case 'P':
		return ". - - .", true
	case 'Q':
		return "- - . -", true
	case 'R':
		return ". - .", true
	case 'S':
		return ". . .", true
	case 'T':
		return "-", true
	case 'U':
		return ". . -", true
	case 'V':
		return ". . . -", true
	case 'W':
		return ". - -", true
	case 'X':
		return "- . . -", true
	case 'Y':
		return "- . - -", true
	case 'Z':
		return "- - . .", true
	case '0':
		return "- - - - -", true
	case '1':
		return ". - - - -", true
	case '2':
		return ". . - - -", true
	case '3':
		return ". . . - -", true
	case '4':
		return ". . . . -", true
	case '5':
		return ". . . . .", true
	case '6':
		return "- . . . .", true
	case '7':
		return "- - . . .", true
	case '8':
		return "- - - . .", true
	case '9':
		return "- - - - .", true
	case '.':
		return ". - . - . -", true
	case ',':
		return "- - . . - -", true
	case ':':
		return "- - - . . .", true
	case '?':
		return ". . - - . .", true
	case '/':
		return "- . . - .", true
	case '-':
		return "- . . . . -", true
	case '(', ')':
		// ITU assigns parentheses a single shared pattern.
		return "- . - - . -", true
	case '=':
		return "- . . . -", true
	case '+':
		return ". - . - .", true
	case '&':
		return ". - . . .", true
	case '\'':
		return ". - - - - .", true
	case '!':
		return "- . - . - -", true
	case '_':
		return ". . - - . -", true
	case '"':
		return ". - . . - .", true
	case '$':
		return ". . . - . . -", true
	case '@':
		return ". - - . - .", true
	}
	return "", false
}

// Supported returns true if the uppercase character has a Morse pattern.
func Supported(r rune) bool {
	_, ok := Pattern(r)
	return ok
}

// Prosign returns the pre-composed pattern for a procedural signal.
// Only the exact uppercase words AR, SK, and BT match; anything else,
// including words that merely contain a prosign, encodes letter by letter.
func Prosign(word string) (string, bool) {
	switch word {
	case "AR":
		return ". - . - .", true
	case "SK":
		return ". . . - . -", true
	case "BT":
		return "- . . . -", true
	}
	return "", false
}

// All returns every supported character, in table order.
func All() []rune {
	return []rune{
		'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
		'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
		'.', ',', ':', '?', '/', '-', '(', ')', '=', '+', '&', '\'', '!',
		'_', '"', '$', '@',
	}
}
