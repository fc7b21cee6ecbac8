package generator

import (
	"math/rand/v2"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{}|;:,.<>?"

	// DefaultLength is used when no length is requested.
	DefaultLength = 8
)

// Options configures the password generator.
type Options struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns the options used when nothing is requested:
// 8 characters with no class selected, which falls back to lowercase.
func DefaultOptions() Options {
	return Options{Length: DefaultLength}
}

// HasClass reports whether at least one character class is enabled.
func (o Options) HasClass() bool {
	return o.Lowercase || o.Uppercase || o.Numbers || o.Symbols
}

// Source yields independent uniform values in [0, 1).
//
// It is deliberately not a cryptographic source. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Result is a generated password together with its derived metrics.
type Result struct {
	Password    string
	Strength    Strength
	Entropy     float64
	CharsetSize int
	// Options are the effective options, after the lowercase fallback.
	Options Options
}

// Pool builds the character pool for opts by concatenating the enabled
// alphabets in the order lowercase, uppercase, numbers, symbols.
// If no class is enabled the pool is the lowercase alphabet and the returned
// options have Lowercase set.
func Pool(opts Options) (string, Options) {
	if !opts.HasClass() {
		opts.Lowercase = true
	}

	var pool strings.Builder
	if opts.Lowercase {
		pool.WriteString(lowercaseChars)
	}
	if opts.Uppercase {
		pool.WriteString(uppercaseChars)
	}
	if opts.Numbers {
		pool.WriteString(numberChars)
	}
	if opts.Symbols {
		pool.WriteString(symbolChars)
	}

	return pool.String(), opts
}

// Sample draws length characters from pool, uniformly and with replacement.
// A nil src uses the process-wide math/rand/v2 generator.
// A non-positive length or an empty pool yields the empty string.
func Sample(length int, pool string, src Source) string {
	if length <= 0 || len(pool) == 0 {
		return ""
	}
	if src == nil {
		src = globalSource{}
	}

	result := make([]byte, length)
	for i := range result {
		result[i] = pool[randIndex(src, len(pool))]
	}

	return string(result)
}

// randIndex maps a uniform [0,1) value to an index in [0, n).
func randIndex(src Source, n int) int {
	idx := int(src.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Generate creates a random password from opts and scores it.
// Negative lengths are treated as zero.
func Generate(opts Options, src Source) Result {
	pool, effective := Pool(opts)
	if effective.Length < 0 {
		effective.Length = 0
	}

	password := Sample(effective.Length, pool, src)
	size := CharsetSize(effective)

	return Result{
		Password:    password,
		Strength:    StrengthOf(password),
		Entropy:     Entropy(effective.Length, size),
		CharsetSize: size,
		Options:     effective,
	}
}
