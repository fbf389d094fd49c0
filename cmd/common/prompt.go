package common

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/pocket-ledger/internal/ledger"
)

// Prompter asks yes/no questions on a terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm prints question and reports whether the answer was yes.
// End of input counts as no.
func (p *Prompter) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "%s [y/N]: ", question); err != nil {
		return false, err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read input: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true, nil
	default:
		return false, nil
	}
}

// ReportPersistError prints a warning when the last write to storage failed.
// The change stays in effect for the current process only.
func ReportPersistError(w io.Writer, l *ledger.Ledger) {
	err := l.LastPersistError()
	if err == nil {
		return
	}
	_, _ = fmt.Fprintln(w, WarningStyle.Render(fmt.Sprintf("Warning: changes could not be saved: %v", err)))
}
