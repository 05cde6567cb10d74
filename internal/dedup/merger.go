package dedup

import (
	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/rs/zerolog"
)

const DefaultQuota = 50

type Merger struct {
	classifier Classifier
	logger     zerolog.Logger
}

func NewMerger(classifier Classifier, logger zerolog.Logger) *Merger {
	return &Merger{classifier: classifier, logger: logger}
}

// Merge concatenates candidate lists in priority order and fills each
// category up to quota. Below quota every venue is accepted; once a category
// is full, further venues are kept only if they duplicate nothing already
// accepted in that category. Repeated ids are always dropped.
func (m *Merger) Merge(lists [][]venue.Venue, quota int) []venue.Venue {
	if quota <= 0 {
		quota = DefaultQuota
	}

	var out []venue.Venue
	seen := map[string]struct{}{}
	byCategory := map[venue.Category][]venue.Venue{}

	for _, list := range lists {
		for _, v := range list {
			if _, dup := seen[v.ID]; dup {
				continue
			}
			accepted := byCategory[v.Category]
			if len(accepted) >= quota && m.classifier.DuplicateOf(v, accepted) >= 0 {
				continue
			}
			seen[v.ID] = struct{}{}
			byCategory[v.Category] = append(accepted, v)
			out = append(out, v)
		}
	}

	if e := m.logger.Debug(); e.Enabled() {
		counts := zerolog.Dict()
		for c, vs := range byCategory {
			counts.Int(string(c), len(vs))
		}
		e.Dict("counts", counts).Int("total", len(out)).Msg("merged venue candidates")
	}
	return out
}
