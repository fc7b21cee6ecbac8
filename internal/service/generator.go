package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen/internal/generator"
	"github.com/vaultpass/passgen/internal/model"
)

var (
	ErrInvalidLength = errors.New("password length must not be negative")
	ErrLengthTooLong = errors.New("password length exceeds the maximum")
)

// DefaultMaxLength caps the length accepted over the API.
const DefaultMaxLength = 128

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	maxLength int
	source    generator.Source
}

// NewGeneratorService creates a new GeneratorService. A non-positive
// maxLength uses DefaultMaxLength; a nil source uses the default generator.
func NewGeneratorService(maxLength int, source generator.Source) *GeneratorService {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &GeneratorService{maxLength: maxLength, source: source}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := generator.Options{
		Length:    intOrDefault(req.Length, generator.DefaultLength),
		Lowercase: boolOrDefault(req.Lowercase, false),
		Uppercase: boolOrDefault(req.Uppercase, false),
		Numbers:   boolOrDefault(req.Numbers, false),
		Symbols:   boolOrDefault(req.Symbols, false),
	}

	if opts.Length < 0 {
		return model.GenerateResponse{}, ErrInvalidLength
	}
	if opts.Length > s.maxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w of %d", ErrLengthTooLong, s.maxLength)
	}

	result := generator.Generate(opts, s.source)

	return model.GenerateResponse{
		Password:    result.Password,
		Length:      len(result.Password),
		Strength:    string(result.Strength),
		Entropy:     result.Entropy,
		CharsetSize: result.CharsetSize,
	}, nil
}

// IsValidationError reports whether err was caused by a bad request.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidLength) || errors.Is(err, ErrLengthTooLong)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
