// Package prompt implements the interactive question surface of the tool.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/miteshhc/aurders/internal/metadata"
)

// Prompter asks questions on out and reads answers from in. Read failures
// are returned to the caller; the top-level run decides whether they are
// fatal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading answers from r and writing prompts to out.
func New(r io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: out}
}

func (p *Prompter) read() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		// A final unterminated line is still an answer.
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// String asks for one line of input. Empty input accepts def.
func (p *Prompter) String(label, def string) (string, error) {
	fmt.Fprintf(p.out, "\n%s\n> ", label)
	input, err := p.read()
	if err != nil {
		return "", err
	}
	if input == "" {
		return def, nil
	}
	return input, nil
}

// StringStrict re-asks until the answer is non-empty.
func (p *Prompter) StringStrict(label string) (string, error) {
	for {
		input, err := p.String(label, "")
		if err != nil {
			return "", err
		}
		if input != "" {
			return input, nil
		}
		fmt.Fprintln(p.out, "This field is not optional. Try again.")
	}
}

// Bool treats y, Y, yes and definitely as affirmative and anything else as
// negative.
func (p *Prompter) Bool(label string) (bool, error) {
	input, err := p.String(label, "")
	if err != nil {
		return false, err
	}
	switch input {
	case "y", "Y", "yes", "definitely":
		return true, nil
	}
	return false, nil
}

// SelectArch presents the architecture menu. Empty or unparsable input
// selects the x86_64 default; out-of-range selections re-prompt. Manual
// entries are normalized for the quoted template slot.
func (p *Prompter) SelectArch() (string, error) {
	fmt.Fprintln(p.out, "\nSelect the target architecture for your package:")
	for {
		fmt.Fprint(p.out, "  [1] x86_64(Default)    [2] i686    [3] any    [4] Enter manually\n> ")
		input, err := p.read()
		if err != nil {
			return "", err
		}
		choice, err := strconv.Atoi(input)
		if err != nil {
			choice = 1
		}
		switch choice {
		case 1:
			return "x86_64", nil
		case 2:
			return "i686", nil
		case 3:
			return "any", nil
		case 4:
			manual, err := p.StringStrict("Enter target architecture:")
			if err != nil {
				return "", err
			}
			return metadata.NormalizeArch(manual), nil
		default:
			fmt.Fprintln(p.out, "Invalid input. Try again.")
		}
	}
}
