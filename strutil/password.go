package strutil

import "math/rand/v2"

// passwordCharset is ASCII letters, digits, and punctuation (94 runes).
const passwordCharset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Source yields uniformly distributed integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it; wrap crypto/rand if unpredictability matters.
type Source interface {
	IntN(n int) int
}

// PasswordGenerator draws random passwords from the letters+digits+punctuation
// charset.
//
// The default source is math/rand/v2, which is NOT cryptographically secure.
// Callers generating secrets must inject a source backed by crypto/rand via
// NewPasswordGenerator.
type PasswordGenerator struct {
	src Source
}

// NewPasswordGenerator creates a generator drawing from src. A nil src falls
// back to the shared math/rand/v2 generator.
func NewPasswordGenerator(src Source) *PasswordGenerator {
	if src == nil {
		src = globalSource{}
	}
	return &PasswordGenerator{src: src}
}

// Generate returns a random password of the given length. A length of zero
// or less yields the empty string.
func (g *PasswordGenerator) Generate(length int) string {
	if length <= 0 {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = passwordCharset[g.src.IntN(len(passwordCharset))]
	}
	return string(out)
}

// GeneratePassword returns a random password of the given length using the
// shared math/rand/v2 source. See PasswordGenerator for the security caveat.
func GeneratePassword(length int) string {
	return NewPasswordGenerator(nil).Generate(length)
}

// globalSource adapts the math/rand/v2 package-level generator to Source.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }
