package cli

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen/internal/generator"
)

var (
	ErrInvalidLength = errors.New("--length must be followed by a number")
	ErrUnknownFlag   = errors.New("unknown flag")
)

var leadingInt = regexp.MustCompile(`^[+-]?[0-9]+`)

// Args is the validated result of parsing the command line.
type Args struct {
	Options generator.Options
	Help    bool
}

// Parse scans args left to right. --help anywhere wins over everything else.
// When no character class flag is given, lowercase is enabled.
func Parse(args []string) (Args, error) {
	if slices.Contains(args, "--help") {
		return Args{Help: true}, nil
	}

	opts := generator.DefaultOptions()

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--length":
			if i+1 >= len(args) {
				return Args{}, ErrInvalidLength
			}
			n, err := parseLength(args[i+1])
			if err != nil {
				return Args{}, err
			}
			opts.Length = n
			i++
		case "--lowercase":
			opts.Lowercase = true
		case "--uppercase":
			opts.Uppercase = true
		case "--numbers":
			opts.Numbers = true
		case "--symbols":
			opts.Symbols = true
		default:
			return Args{}, fmt.Errorf("%w: %s", ErrUnknownFlag, arg)
		}
	}

	if !opts.HasClass() {
		opts.Lowercase = true
	}

	return Args{Options: opts}, nil
}

// parseLength accepts any finite decimal number and truncates it to its
// leading integer, so "12.9" and "12e3" both give 12. Values whose leading
// integer is negative are rejected; numbers without one (".5") give 0.
func parseLength(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidLength, value)
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidLength, value)
	}

	digits := leadingInt.FindString(trimmed)
	if digits == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidLength, value)
	}

	return n, nil
}
