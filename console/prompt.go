// Package console implements the numbered-menu shells for the trading
// simulator and the grade registry.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type prompter struct {
	w io.Writer
	r *bufio.Reader
}

func newPrompter(w io.Writer, r io.Reader) prompter {
	return prompter{w: w, r: bufio.NewReader(r)}
}

// ask prints label and reads one trimmed line. A final line without a
// newline is returned normally; io.EOF is returned once input is exhausted.
func (p prompter) ask(label string) (string, error) {
	fmt.Fprint(p.w, label)
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p prompter) println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p prompter) printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}
