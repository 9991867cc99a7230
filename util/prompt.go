package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	input            = bufio.NewReader(os.Stdin)
	output io.Writer = os.Stdout
)

// SetPromptIO redirects prompts, mostly for tests.
func SetPromptIO(r io.Reader, w io.Writer) {
	input = bufio.NewReader(r)
	output = w
}

// readAnswer returns the trimmed reply. A closed input counts as an empty
// reply so the default is taken.
func readAnswer() string {
	response, err := input.ReadString('\n')
	if err != nil && response == "" {
		return ""
	}
	return strings.TrimSpace(response)
}

func PromptString(prompt string, def string) string {
	fmt.Fprintf(output, "%s (%s): ", prompt, def)

	response := readAnswer()
	if response == "" {
		return def
	}

	return response
}

func PromptYN(prompt string, def bool) bool {
	if def {
		fmt.Fprintf(output, "%s (Y/n): ", prompt)
	} else {
		fmt.Fprintf(output, "%s (y/N): ", prompt)
	}

	response := readAnswer()
	if response == "" {
		return def
	}

	response = strings.ToLower(response)
	return response == "y" || response == "yes" || response == "d" || response == "da"
}
