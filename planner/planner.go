// Package planner computes the set of tags a run should (re)work.
package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wc26data/go-scrape-collect/models"
	"github.com/wc26data/go-scrape-collect/store"
)

// Mode selects how the tag set is derived.
type Mode string

const (
	// ModeAll plans every tag m1..m104.
	ModeAll Mode = "all"
	// ModeExplicit plans a caller-supplied list.
	ModeExplicit Mode = "explicit"
	// ModeFailedOrEmpty plans every tag whose stored result is absent,
	// failed, or succeeded with zero listings. Re-running in this mode
	// converges on a complete dataset without re-fetching good tags.
	ModeFailedOrEmpty Mode = "failed"
)

// Planner derives tag sets from the store's current state.
type Planner struct {
	store *store.Store
}

// New returns a planner over st.
func New(st *store.Store) *Planner {
	return &Planner{store: st}
}

// Plan returns the deduplicated tag set for mode, ascending by tag number.
// explicit is only consulted for ModeExplicit.
func (p *Planner) Plan(mode Mode, explicit []models.Tag) ([]models.Tag, error) {
	switch mode {
	case ModeAll:
		return models.AllTags(), nil

	case ModeExplicit:
		if len(explicit) == 0 {
			return nil, fmt.Errorf("explicit mode needs at least one tag")
		}
		return dedupSort(explicit), nil

	case ModeFailedOrEmpty:
		stored, err := p.store.LoadAll()
		if err != nil {
			return nil, fmt.Errorf("plan failed-or-empty: %w", err)
		}
		var tags []models.Tag
		for _, tag := range models.AllTags() {
			if stored[tag].FailedOrEmpty() {
				tags = append(tags, tag)
			}
		}
		return tags, nil

	default:
		return nil, fmt.Errorf("unknown plan mode %q", mode)
	}
}

// Describe renders a human-readable tag-set description for the run summary.
func Describe(mode Mode, tags []models.Tag) string {
	switch mode {
	case ModeAll:
		return fmt.Sprintf("all tags m1..m%d", models.TagCount)
	case ModeFailedOrEmpty:
		return fmt.Sprintf("failed-or-empty (%d tags)", len(tags))
	default:
		names := make([]string, len(tags))
		for i, tag := range tags {
			names[i] = tag.String()
		}
		return "explicit: " + strings.Join(names, ",")
	}
}

func dedupSort(tags []models.Tag) []models.Tag {
	seen := make(map[models.Tag]struct{}, len(tags))
	out := make([]models.Tag, 0, len(tags))
	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number() < out[j].Number()
	})
	return out
}
