package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
	"nickandperla.net/morse/pkg/morse"
)

func printBanner() {
	fmt.Println("morse REPL (Ctrl+D to exit)")
	fmt.Println()
	fmt.Println("Each line is translated to Morse code. Supported characters:")
	fmt.Println("  A-Z 0-9 . , : ? / - ( ) = + & ' ! _ \" $ @")
	fmt.Println("Prosigns AR, SK, and BT translate as single patterns.")
	fmt.Println()
}

func runREPL(translator *morse.Translator) {
	printBanner()

	// Check if stdin is a terminal
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Not a TTY, no prompt
		runLoop(translator, false)
		return
	}

	runLoop(translator, true)
}

func runLoop(translator *morse.Translator, prompt bool) {
	reader := bufio.NewReader(os.Stdin)

	for {
		if prompt {
			fmt.Print(">>> ")
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}

		input := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(input) == "" {
			continue
		}

		translator.SetMessage(input)
		result, err := translator.Message()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		if result != "" {
			fmt.Println(result)
		}
	}
}
