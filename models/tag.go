// Package models defines data structures shared across the pipeline.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TagCount is the number of match tags on the marketplace (m1..m104).
const TagCount = 104

// Tag identifies one match on the marketplace. It is the unit of work and
// the persistence key, formatted "m" + match number.
type Tag string

// TagFor builds the tag for a match number. It does not range-check; use
// ParseTag for untrusted input.
func TagFor(n int) Tag {
	return Tag("m" + strconv.Itoa(n))
}

// ParseTag accepts "m7" or "7" and validates the match number.
func ParseTag(s string) (Tag, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "m")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("invalid tag %q: %w", s, err)
	}
	if n < 1 || n > TagCount {
		return "", fmt.Errorf("tag %q out of range 1..%d", s, TagCount)
	}
	return TagFor(n), nil
}

// Number returns the match number, or 0 for a malformed tag.
func (t Tag) Number() int {
	n, err := strconv.Atoi(strings.TrimPrefix(string(t), "m"))
	if err != nil {
		return 0
	}
	return n
}

func (t Tag) String() string {
	return string(t)
}

// AllTags returns every tag m1..m104 in ascending order.
func AllTags() []Tag {
	tags := make([]Tag, 0, TagCount)
	for n := 1; n <= TagCount; n++ {
		tags = append(tags, TagFor(n))
	}
	return tags
}
