package pattern_test

import (
	"testing"

	"github.com/mgm-tp/jfunk-sub000/alphabet"
	"github.com/mgm-tp/jfunk-sub000/pattern"
)

func benchAlphabet(b *testing.B) *alphabet.Alphabet {
	b.Helper()
	a, err := alphabet.New("ISO-8859-1", `[\p{L}\p{Nd} -]`, `[^\p{L}\p{Nd} -]`)
	if err != nil {
		b.Fatal(err)
	}

	return a
}

// BenchmarkCompile measures parsing plus pool partitioning over latin1.
func BenchmarkCompile(b *testing.B) {
	a := benchAlphabet(b)
	src := pattern.NewSource(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pattern.Compile(`(Herr|Frau) [A-Z][a-z]{2,20}-[0-9]{5}`, a, src, quiet)
	}
}

// BenchmarkGenerateLength measures length-targeted generation of 64 characters.
func BenchmarkGenerateLength(b *testing.B) {
	p := pattern.MustCompile(`[A-Z][a-z]{2,40} [0-9]{1,30}`, benchAlphabet(b), pattern.NewSource(2), quiet)

	b.ReportAllocs()
	b.SetBytes(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.GenerateLength(64, pattern.BadnessNone)
	}
}

// BenchmarkNegate measures partial negation of a fixed input.
func BenchmarkNegate(b *testing.B) {
	p := pattern.MustCompile(`[a-z]{8,64}`, benchAlphabet(b), pattern.NewSource(3), quiet)
	in, err := p.GenerateLength(32, pattern.BadnessNone)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Negate(in, pattern.BadnessRandom)
	}
}
