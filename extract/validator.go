package extract

import "github.com/wc26data/go-scrape-collect/models"

// Filter returns the valid subset of candidates, preserving order. A
// candidate is valid when it carries a non-empty price and no
// withdrawn-listing marker. Pure: the input slice is never mutated, so
// filtering an already-filtered sequence returns an equal sequence.
func Filter(candidates []*models.Listing) []*models.Listing {
	valid := make([]*models.Listing, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Valid() {
			valid = append(valid, candidate)
		}
	}
	return valid
}
