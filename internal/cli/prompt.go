package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt reads validated primitive values from the terminal. Parse
// failures are reported and re-prompted here; the services only ever
// see well-formed values.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt wraps the given reader/writer pair.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Line reads a single trimmed line.
func (p *Prompt) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Choice re-prompts until one of the listed options is entered.
func (p *Prompt) Choice(label string, options ...string) (string, error) {
	for {
		value, err := p.Line(label)
		if err != nil {
			return "", err
		}
		for _, opt := range options {
			if value == opt {
				return value, nil
			}
		}
		fmt.Fprintf(p.out, "Invalid input. Options: %s\n", strings.Join(options, ", "))
	}
}

// Float re-prompts until a parseable number is entered.
func (p *Prompt) Float(label string) (float64, error) {
	for {
		value, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid number. Try again.")
			continue
		}
		return f, nil
	}
}
