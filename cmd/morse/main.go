// Command morse is the text-to-Morse translator CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"nickandperla.net/morse/pkg/morse"
)

func main() {
	var (
		evalStr = flag.String("e", "", "Translate the given text")
		file    = flag.String("f", "", "Translate the contents of a file")
		next    = flag.Bool("next", false, "Print the translation word by word")
		dbPath  = flag.String("db", "morse.db", "SQLite history database path")
		noLog   = flag.Bool("no-log", false, "Disable translation history")
		history = flag.Int("history", 0, "Print the last N history entries and exit")
	)

	flag.Parse()

	// Build options
	opts := []morse.Option{}
	if !*noLog {
		opts = append(opts, morse.WithSQLiteStore(*dbPath))
	}

	translator := morse.New(opts...)
	defer translator.Close()

	if *history > 0 {
		printHistory(translator, *history)
		return
	}

	switch {
	case *evalStr != "":
		translate(translator, *evalStr, *next)

	case *file != "":
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		translate(translator, string(data), *next)

	case !isTerminal(os.Stdin):
		// Piped input
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		translate(translator, string(input), *next)

	default:
		runREPL(translator)
	}
}

// translate prints the Morse encoding of text, either as one joined string
// or word by word when wordByWord is set. In word-by-word mode a word that
// fails to encode is reported and skipped; the engine has already consumed it.
func translate(t *morse.Translator, text string, wordByWord bool) {
	t.SetMessage(text)

	if wordByWord {
		for {
			word, err := t.Next()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			if word == morse.EOM {
				return
			}
			fmt.Println(word)
		}
	}

	result, err := t.Message()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if result != "" {
		fmt.Println(result)
	}
}

func printHistory(t *morse.Translator, limit int) {
	entries, err := t.History(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}
	if entries == nil {
		fmt.Fprintln(os.Stderr, "No history store configured (remove -no-log)")
		os.Exit(1)
	}
	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.Ts, e.Text)
		fmt.Printf("    %s\n", e.Morse)
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
