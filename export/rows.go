// Package export flattens stored tag results into tabular listing rows for
// downstream reporting.
package export

import (
	"sort"
	"time"

	"github.com/wc26data/go-scrape-collect/models"
	"github.com/wc26data/go-scrape-collect/schedule"
	"github.com/wc26data/go-scrape-collect/store"
)

// Row is one listing joined with its fixture. Price stays the raw string as
// extracted; PriceValue is derived and never written back.
type Row struct {
	Tag         string    `csv:"tag" json:"tag"`
	MatchNumber int       `csv:"match_number" json:"match_number"`
	Date        string    `csv:"date" json:"date"`
	Venue       string    `csv:"venue" json:"venue"`
	Stadium     string    `csv:"stadium" json:"stadium"`
	Stage       string    `csv:"stage" json:"stage"`
	Country     string    `csv:"country" json:"country"`
	Title       string    `csv:"title" json:"title"`
	Price       string    `csv:"price" json:"price"`
	PriceValue  float64   `csv:"price_value" json:"price_value"`
	Kind        string    `csv:"type" json:"type"`
	ScrapedAt   time.Time `csv:"scraped_at" json:"scraped_at"`
}

// Rows loads every stored result and flattens the successful ones into
// listing rows, ascending by match number, listings in extraction order.
func Rows(st *store.Store) ([]*Row, error) {
	stored, err := st.LoadAll()
	if err != nil {
		return nil, err
	}

	tags := make([]models.Tag, 0, len(stored))
	for tag := range stored {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Number() < tags[j].Number()
	})

	var rows []*Row
	for _, tag := range tags {
		result := stored[tag]
		if !result.Success {
			continue
		}
		for _, listing := range result.Listings {
			rows = append(rows, newRow(result, listing))
		}
	}
	return rows, nil
}

func newRow(result *models.TagResult, listing *models.Listing) *Row {
	number := result.Tag.Number()
	row := &Row{
		Tag:         result.Tag.String(),
		MatchNumber: number,
		Title:       listing.Title,
		Price:       listing.Price,
		PriceValue:  listing.PriceValue(),
		Kind:        listing.Kind.String(),
		ScrapedAt:   result.Timestamp,
	}
	if match, ok := schedule.Lookup(number); ok {
		row.Date = match.Date
		row.Venue = match.Venue
		row.Stadium = match.Stadium
		row.Stage = match.Stage
		row.Country = schedule.Country(match.Venue)
	}
	return row
}
