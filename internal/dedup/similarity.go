package dedup

import (
	"math"

	"github.com/Adrianenache82/local-vibe/internal/venue"
)

// LengthCutoff is the relative length difference above which two strings
// are scored as dissimilar without computing an edit distance.
const LengthCutoff = 0.3

// Similarity returns a normalized edit-distance similarity in [0,1].
// It compares runes and is case-sensitive; normalize inputs first.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	longest := max(len(ra), len(rb))
	diff := len(ra) - len(rb)
	if diff < 0 {
		diff = -diff
	}
	if float64(diff)/float64(longest) > LengthCutoff {
		return 0
	}
	score := 1 - float64(levenshtein(ra, rb))/float64(longest)
	return math.Max(0, score)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// DefaultEpsilon is the coordinate tolerance in degrees (roughly 11 m of latitude).
const DefaultEpsilon = 1e-4

// SamePlace reports whether two points are within epsilon degrees on both axes.
func SamePlace(p1, p2 venue.Coordinates, epsilon float64) bool {
	return math.Abs(p1.Latitude-p2.Latitude) < epsilon &&
		math.Abs(p1.Longitude-p2.Longitude) < epsilon
}
