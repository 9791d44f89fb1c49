// Package prompt wraps the interactive terminal prompts used by the CLI.
package prompt

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt: aborted")

// InputConfig configures a single line text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// SelectConfig configures a single choice prompt.
type SelectConfig struct {
	Message  string
	Options  []string
	Help     string
	PageSize int
}

// Driver abstracts the terminal so callers can be tested without one.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}
