package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// InvalidMarker flags listings the marketplace has withdrawn. The check is
// case-insensitive.
const InvalidMarker = "NO LONGER VALID"

// ListingKind is the marketplace collectible tier of a listing.
type ListingKind int

const (
	KindUnknown ListingKind = iota
	KindIconic
	KindRare
	KindEpic
)

func (k ListingKind) String() string {
	switch k {
	case KindIconic:
		return "Iconic"
	case KindRare:
		return "Rare"
	case KindEpic:
		return "Epic"
	default:
		return ""
	}
}

// MarshalJSON writes the tier name, or an empty string for KindUnknown,
// matching the persisted schema.
func (k ListingKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts the tier name or an empty string.
func (k *ListingKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Iconic":
		*k = KindIconic
	case "Rare":
		*k = KindRare
	case "Epic":
		*k = KindEpic
	case "":
		*k = KindUnknown
	default:
		return fmt.Errorf("unknown listing kind %q", s)
	}
	return nil
}

// Listing is one extracted marketplace offer.
type Listing struct {
	Tag   Tag         `json:"tag"`
	Price string      `json:"price"` // raw currency string as found, e.g. "US$6,999.00"
	Text  string      `json:"text"`  // full trimmed inner text of the extraction container
	Title string      `json:"title,omitempty"`
	Kind  ListingKind `json:"type"`
}

// Valid reports whether the listing satisfies the validity invariant: a
// non-empty price and no withdrawn-listing marker anywhere in the text.
func (l *Listing) Valid() bool {
	if l == nil || l.Price == "" {
		return false
	}
	return !strings.Contains(strings.ToUpper(l.Text), InvalidMarker)
}

// PriceValue derives the numeric amount from the raw price string. The raw
// field is never mutated; unparsable prices yield 0.
func (l *Listing) PriceValue() float64 {
	var b strings.Builder
	for _, r := range l.Price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
