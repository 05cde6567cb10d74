package dedup

import (
	"strings"

	"github.com/Adrianenache82/local-vibe/internal/venue"
)

type Thresholds struct {
	Name              float64
	Address           float64
	CoordinateEpsilon float64
}

var DefaultThresholds = Thresholds{
	Name:              0.9,
	Address:           0.9,
	CoordinateEpsilon: DefaultEpsilon,
}

type Classifier struct {
	Thresholds Thresholds
}

func NewClassifier(t Thresholds) Classifier {
	if t.Name <= 0 {
		t.Name = DefaultThresholds.Name
	}
	if t.Address <= 0 {
		t.Address = DefaultThresholds.Address
	}
	if t.CoordinateEpsilon <= 0 {
		t.CoordinateEpsilon = DefaultThresholds.CoordinateEpsilon
	}
	return Classifier{Thresholds: t}
}

// IsDuplicate is the strict pairwise check. Venues of different categories
// are never duplicates.
func (c Classifier) IsDuplicate(a, b venue.Venue) bool {
	if a.Category != b.Category {
		return false
	}
	if Similarity(normalize(a.Name), normalize(b.Name)) > c.Thresholds.Name {
		return true
	}
	if a.Address != "" && b.Address != "" &&
		Similarity(normalize(a.Address), normalize(b.Address)) > c.Thresholds.Address {
		return true
	}
	return SamePlace(a.Coordinates, b.Coordinates, c.Thresholds.CoordinateEpsilon)
}

// DuplicateOf returns the index of the first venue in accepted that v duplicates, or -1.
func (c Classifier) DuplicateOf(v venue.Venue, accepted []venue.Venue) int {
	for i, other := range accepted {
		if c.IsDuplicate(v, other) {
			return i
		}
	}
	return -1
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
