// Package cli implements the passgen command line: argument parsing, password
// generation and the printed report.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vaultpass/passgen/internal/generator"
)

const (
	ExitOK    = 0
	ExitUsage = 1
)

const usage = `
Usage: passgen [options]

Options:
  --help           Show this help message.
  --length <num>   Set password length (default is 8).
  --lowercase      Include lowercase letters.
  --uppercase      Include uppercase letters.
  --numbers        Include numbers.
  --symbols        Include symbols.

Lowercase letters are used when no character class is selected.
`

// App runs the password generator against the given output streams.
type App struct {
	stdout io.Writer
	stderr io.Writer
	source generator.Source
}

// Option configures an App.
type Option func(*App)

// WithSource overrides the random source. Nil keeps the default.
func WithSource(src generator.Source) Option {
	return func(a *App) {
		a.source = src
	}
}

// New creates an App writing results to stdout and errors to stderr.
func New(stdout, stderr io.Writer, opts ...Option) *App {
	a := &App{stdout: stdout, stderr: stderr}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes one invocation and returns the process exit status.
func (a *App) Run(args []string) int {
	parsed, err := Parse(args)
	if err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return ExitUsage
	}

	if parsed.Help {
		fmt.Fprint(a.stdout, usage)
		return ExitOK
	}

	result := generator.Generate(parsed.Options, a.source)
	slog.Debug("password generated",
		"length", result.Options.Length,
		"charset_size", result.CharsetSize,
		"strength", result.Strength,
	)

	fmt.Fprintf(a.stdout, "Generated password: %s\n", result.Password)
	fmt.Fprintf(a.stdout, "Strength: %s\n", result.Strength)
	fmt.Fprintf(a.stdout, "Entropy: %s bits\n", generator.FormatEntropy(result.Entropy))

	return ExitOK
}
