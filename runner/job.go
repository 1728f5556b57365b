package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wc26data/go-scrape-collect/config"
	"github.com/wc26data/go-scrape-collect/extract"
	"github.com/wc26data/go-scrape-collect/models"
	"github.com/wc26data/go-scrape-collect/render"
)

// errNoListings is the failure cause for a clean render with zero valid
// listings. An empty page is indistinguishable from a half-rendered one, so
// it must not count as success and overwrite good data.
var errNoListings = errors.New("no listings found")

// job fetches one tag: render, extract, validate, envelope. It never
// propagates a raw error; every outcome is a TagResult.
type job struct {
	cfg       *config.Config
	renderer  render.PageRenderer
	extractor *extract.Extractor
}

func newJob(cfg *config.Config, renderer render.PageRenderer) *job {
	return &job{
		cfg:       cfg,
		renderer:  renderer,
		extractor: extract.NewExtractor(cfg.MaxCandidates, cfg.MaxAncestorHops),
	}
}

// marketURL builds the canonical marketplace URL for a tag.
func (j *job) marketURL(tag models.Tag) string {
	return fmt.Sprintf("%s/marketplace?tags=%s", strings.TrimSuffix(j.cfg.BaseURL, "/"), tag)
}

// run executes the fetch for one tag. The returned error mirrors the
// failure recorded in the envelope and exists only for metrics labeling;
// callers decide everything off the TagResult.
func (j *job) run(ctx context.Context, tag models.Tag) (result *models.TagResult, runErr error) {
	url := j.marketURL(tag)

	defer func() {
		if r := recover(); r != nil {
			runErr = fmt.Errorf("panic during fetch: %v", r)
			result = models.NewFailure(tag, url, runErr)
		}
	}()

	html, err := j.renderer.Render(ctx, url)
	if err != nil {
		return models.NewFailure(tag, url, err), err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		err = fmt.Errorf("parse rendered page: %w", err)
		return models.NewFailure(tag, url, err), err
	}

	valid := extract.Filter(j.extractor.Extract(tag, doc))
	if len(valid) == 0 {
		return models.NewFailure(tag, url, errNoListings), errNoListings
	}
	return models.NewSuccess(tag, url, valid), nil
}
