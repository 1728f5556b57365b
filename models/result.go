package models

import (
	"time"
	"unicode/utf8"
)

// maxErrorLen bounds the human-readable cause stored on a failed result.
const maxErrorLen = 200

// TagResult is the persisted outcome for one tag. Exactly one of the two
// shapes exists on disk: a success carries listings and their count, a
// failure carries only the error string. Use NewSuccess/NewFailure rather
// than constructing literals so the shape stays consistent.
type TagResult struct {
	Tag           Tag        `json:"tag"`
	URL           string     `json:"url"`
	ListingsCount int        `json:"listings_count,omitempty"`
	Listings      []*Listing `json:"listings,omitempty"`
	Success       bool       `json:"success"`
	Error         string     `json:"error,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
}

// NewSuccess builds a successful result. The caller guarantees listings is
// the validated, non-empty extraction output in extraction order.
func NewSuccess(tag Tag, url string, listings []*Listing) *TagResult {
	return &TagResult{
		Tag:           tag,
		URL:           url,
		ListingsCount: len(listings),
		Listings:      listings,
		Success:       true,
		Timestamp:     time.Now(),
	}
}

// NewFailure builds a failed result carrying a truncated cause.
func NewFailure(tag Tag, url string, err error) *TagResult {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if len(msg) > maxErrorLen {
		cut := maxErrorLen
		// Back off to a rune boundary so the stored string stays valid UTF-8.
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	return &TagResult{
		Tag:       tag,
		URL:       url,
		Success:   false,
		Error:     msg,
		Timestamp: time.Now(),
	}
}

// FailedOrEmpty reports whether the result should be planned for a re-run:
// either the fetch failed or it succeeded with zero listings (legacy data
// written before the empty-success guard existed).
func (r *TagResult) FailedOrEmpty() bool {
	return r == nil || !r.Success || r.ListingsCount == 0
}

// RunSummary aggregates one pipeline invocation. Built once at the end of a
// run and written as a single artifact; never mutated afterwards.
type RunSummary struct {
	TagSet             string    `json:"tag_set"`
	Attempted          int       `json:"attempted"`
	Successful         int       `json:"successful"`
	Failed             int       `json:"failed"`
	TotalListingsAdded int       `json:"total_listings_added"`
	PersistErrors      int       `json:"persist_errors,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}
