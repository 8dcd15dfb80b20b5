package conformance

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"
)

const (
	minArgRunes = 1
	maxArgRunes = 16
)

// Runes are drawn from printable ASCII, a few flag-like prefixes and some
// non-ASCII letters.
var argAlphabet = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_=./ !?#$%&*+,:;@~éßдλ中")

var flagPrefixes = []string{"", "", "-", "--"}

func isAccepted(arg string) bool {
	return arg == "--version" || arg == "-V"
}

// GenerateArg returns one argument of 1 to 16 runes that is neither
// --version nor -V and contains no NUL byte.
func GenerateArg(rng *rand.Rand) string {
	for {
		var b strings.Builder
		prefix := flagPrefixes[rng.Intn(len(flagPrefixes))]
		b.WriteString(prefix)
		n := minArgRunes + rng.Intn(maxArgRunes-minArgRunes+1) - utf8.RuneCountInString(prefix)
		if n < 0 {
			n = 0
		}
		for i := 0; i < n; i++ {
			b.WriteRune(argAlphabet[rng.Intn(len(argAlphabet))])
		}
		s := b.String()
		if c := utf8.RuneCountInString(s); c < minArgRunes || c > maxArgRunes {
			continue
		}
		if isAccepted(s) || strings.ContainsRune(s, 0) {
			continue
		}
		return s
	}
}

// Generate returns n single unknown-argument cases. The same seed always
// yields the same cases.
func Generate(seed int64, n int) []Case {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Case, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, usageCase(fmt.Sprintf("unknown-argument-%03d", i), GenerateArg(rng)))
	}
	return out
}
