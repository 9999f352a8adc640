// Package scoring assigns an SEO score to an optimization result.
package scoring

import "math/rand"

// Strategy scores an optimized text against its original. Implementations must
// return values in [70,100).
type Strategy interface {
	Score(originalText, optimizedText string) int
}

// Placeholder returns a pseudo-random score in [70,100). It does not analyze
// the content; it stands in until a real scoring model is plugged in.
type Placeholder struct{}

func (Placeholder) Score(originalText, optimizedText string) int {
	return rand.Intn(30) + 70
}
