package generator

import (
	"math"
	"strconv"
)

// Nominal class sizes used for entropy. The symbol alphabet has 26 distinct
// characters but counts as 32 here; the value is kept for output parity with
// earlier releases.
const (
	lowercaseSize = 26
	uppercaseSize = 26
	numberSize    = 10
	symbolSize    = 32
)

// CharsetSize returns the nominal charset size for the enabled classes.
func CharsetSize(opts Options) int {
	size := 0
	if opts.Lowercase {
		size += lowercaseSize
	}
	if opts.Uppercase {
		size += uppercaseSize
	}
	if opts.Numbers {
		size += numberSize
	}
	if opts.Symbols {
		size += symbolSize
	}
	return size
}

// Entropy returns length * log2(charsetSize) bits, rounded to two decimals.
// An empty charset or a non-positive length has zero entropy.
func Entropy(length, charsetSize int) float64 {
	if length <= 0 || charsetSize <= 0 {
		return 0
	}
	bits := float64(length) * math.Log2(float64(charsetSize))
	return math.Round(bits*100) / 100
}

// FormatEntropy renders bits with exactly two decimals.
func FormatEntropy(bits float64) string {
	return strconv.FormatFloat(bits, 'f', 2, 64)
}
