package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestListingValid(t *testing.T) {
	tests := []struct {
		name    string
		listing *Listing
		want    bool
	}{
		{
			name:    "price and clean text",
			listing: &Listing{Price: "US$120.00", Text: "Group A Ticket\nUS$120.00"},
			want:    true,
		},
		{
			name:    "empty price",
			listing: &Listing{Price: "", Text: "Group A Ticket"},
			want:    false,
		},
		{
			name:    "withdrawn marker",
			listing: &Listing{Price: "US$120.00", Text: "THIS LISTING IS NO LONGER VALID"},
			want:    false,
		},
		{
			name:    "withdrawn marker mixed case",
			listing: &Listing{Price: "US$120.00", Text: "this listing is no longer valid"},
			want:    false,
		},
		{
			name:    "nil listing",
			listing: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.listing.Valid(); got != tt.want {
				t.Fatalf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriceValue(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  float64
	}{
		{name: "thousands and cents", price: "US$6,999.00", want: 6999.00},
		{name: "no cents", price: "US$85", want: 85},
		{name: "empty", price: "", want: 0},
		{name: "garbage", price: "call for price", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Listing{Price: tt.price}
			if got := l.PriceValue(); got != tt.want {
				t.Fatalf("PriceValue(%q) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}

func TestListingKindJSON(t *testing.T) {
	data, err := json.Marshal(&Listing{Tag: "m1", Price: "US$5", Text: "x", Kind: KindRare})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"type":"Rare"`) {
		t.Fatalf("marshalled listing missing kind: %s", data)
	}

	// Unknown serializes to an empty string, matching the stored schema.
	data, err = json.Marshal(KindUnknown)
	if err != nil {
		t.Fatalf("marshal unknown: %v", err)
	}
	if string(data) != `""` {
		t.Fatalf("KindUnknown marshals to %s, want \"\"", data)
	}

	var kind ListingKind
	if err := json.Unmarshal([]byte(`"Iconic"`), &kind); err != nil || kind != KindIconic {
		t.Fatalf("unmarshal Iconic = %v, %v", kind, err)
	}
	if err := json.Unmarshal([]byte(`"Mythic"`), &kind); err == nil {
		t.Fatalf("expected error for unknown kind name")
	}
}

func TestNewFailureTruncatesError(t *testing.T) {
	long := errors.New(strings.Repeat("x", 500))
	result := NewFailure("m9", "http://example.test", long)
	if len(result.Error) != 200 {
		t.Fatalf("error length = %d, want 200", len(result.Error))
	}
	if result.Success || result.Listings != nil || result.ListingsCount != 0 {
		t.Fatalf("failure envelope carries listings fields: %+v", result)
	}
}

func TestNewFailureTruncatesOnRuneBoundary(t *testing.T) {
	// 100 three-byte runes: the 200-byte cap falls mid-rune, so the cut
	// must back off rather than persist invalid UTF-8.
	long := errors.New(strings.Repeat("€", 100))
	result := NewFailure("m9", "u", long)
	if len(result.Error) != 198 {
		t.Fatalf("error length = %d, want 198", len(result.Error))
	}
	if !utf8.ValidString(result.Error) {
		t.Fatalf("truncated error is not valid UTF-8: %q", result.Error)
	}
}

func TestFailedOrEmpty(t *testing.T) {
	var absent *TagResult
	if !absent.FailedOrEmpty() {
		t.Fatalf("absent result should be planned")
	}
	failure := NewFailure("m1", "u", errors.New("boom"))
	if !failure.FailedOrEmpty() {
		t.Fatalf("failed result should be planned")
	}
	emptySuccess := &TagResult{Tag: "m1", Success: true, ListingsCount: 0}
	if !emptySuccess.FailedOrEmpty() {
		t.Fatalf("zero-listing success should be planned")
	}
	good := NewSuccess("m1", "u", []*Listing{{Tag: "m1", Price: "US$5", Text: "ok"}})
	if good.FailedOrEmpty() {
		t.Fatalf("good result should not be planned")
	}
}
