// Package prompt asks the user for secrets on the terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

//go:generate mockgen -source=prompt.go -destination=../mock/prompt_mock.go -package=mock

// ErrCanceled is returned when the user leaves the prompt with esc or ctrl+c.
var ErrCanceled = errors.New("prompt canceled")

// PasswordPrompter reads a password without echoing it.
type PasswordPrompter interface {
	PromptPassword(ctx context.Context, label string) (string, error)
}

// Terminal is a PasswordPrompter running a small Bubble Tea program.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal returns a prompter reading from in and drawing on out. Nil
// values default to stdin and stderr.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &Terminal{in: in, out: out}
}

func (t *Terminal) PromptPassword(ctx context.Context, label string) (string, error) {
	p := tea.NewProgram(newPasswordModel(label),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("password prompt: %w", err)
	}

	m, ok := final.(*passwordModel)
	if !ok {
		return "", fmt.Errorf("password prompt: unexpected model %T", final)
	}
	if m.canceled {
		return "", ErrCanceled
	}
	return m.Value(), nil
}
