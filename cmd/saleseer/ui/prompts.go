package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads lines from an input stream.
type Prompter struct {
	reader *bufio.Reader
}

// NewPrompter creates a Prompter over r.
func NewPrompter(r io.Reader) *Prompter {
	return &Prompter{reader: bufio.NewReader(r)}
}

// Prompt asks the user for input. It returns io.EOF when input ends.
func (p *Prompter) Prompt(message string) (string, error) {
	fmt.Fprintf(out, "%s: ", message)
	input, err := p.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
