package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input stream ends before an answer is read.
var ErrNoInput = errors.New("no input")

// Prompter asks a question and returns the raw answer without its line ending.
type Prompter interface {
	Ask(question string) (string, error)
}

// Line is a Prompter that writes questions to w and reads answers from r.
type Line struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLine creates a line-based Prompter.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{reader: bufio.NewReader(r), w: w}
}

// Ask prints the question and reads one line. A final line without a trailing
// newline is accepted; an empty stream yields ErrNoInput.
func (l *Line) Ask(question string) (string, error) {
	fmt.Fprint(l.w, question)

	line, err := l.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		if line == "" {
			return "", fmt.Errorf("reading answer to %q: %w", strings.TrimSpace(question), ErrNoInput)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Required asks until the trimmed answer is non-empty.
func Required(p Prompter, question string) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			return answer, nil
		}
	}
}

// WithDefault asks once and returns fallback when the trimmed answer is empty.
func WithDefault(p Prompter, question, fallback string) (string, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return "", err
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return fallback, nil
	}
	return answer, nil
}
