// Package runner drives the fetch loop over a planned tag set and owns the
// per-run aggregate summary.
package runner

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/wc26data/go-scrape-collect/config"
	"github.com/wc26data/go-scrape-collect/models"
	"github.com/wc26data/go-scrape-collect/render"
	"github.com/wc26data/go-scrape-collect/store"
)

// sleep is swapped out by tests to keep pacing instant.
var sleep = time.Sleep

// Runner processes tags strictly sequentially. One tag at a time with a
// randomized inter-tag delay is the backpressure policy toward the remote
// source, not an implementation shortcut.
type Runner struct {
	cfg     *config.Config
	store   *store.Store
	job     *job
	Metrics *Metrics

	rng *rand.Rand
}

// New builds a runner over the given renderer and store.
func New(cfg *config.Config, renderer render.PageRenderer, st *store.Store) *Runner {
	return &Runner{
		cfg:     cfg,
		store:   st,
		job:     newJob(cfg, renderer),
		Metrics: NewMetrics(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run processes the tag set and returns the aggregate summary, which is
// also written to the store as the run's final artifact. Each tag moves
// pending -> fetching -> persisted on success, or -> skipped-on-failure
// with the previously stored data retained. Cancellation is honored between
// tags: the loop stops cleanly and the summary covers what was attempted.
// Per-tag failures never abort the loop.
func (r *Runner) Run(ctx context.Context, tags []models.Tag, tagSetDesc string) (*models.RunSummary, error) {
	attempted, successful, failed, persistErrors, totalListings := 0, 0, 0, 0, 0

	for i, tag := range tags {
		if ctx.Err() != nil {
			slog.Info("run cancelled, flushing summary",
				slog.Int("completed", i),
				slog.Int("planned", len(tags)),
			)
			break
		}

		start := time.Now()
		result, fetchErr := r.job.run(ctx, tag)
		r.Metrics.ObserveFetch(time.Since(start))
		attempted++

		if result.Success {
			if _, err := r.store.Persist(result); err != nil {
				// The fetch was good but the envelope never hit disk;
				// count it separately and move on.
				persistErrors++
				failed++
				r.Metrics.IncPersistError()
				slog.Error("persist failed",
					slog.String("tag", tag.String()),
					slog.Any("error", err),
				)
			} else {
				successful++
				totalListings += result.ListingsCount
				r.Metrics.IncTag("success")
				r.Metrics.AddListings(result.ListingsCount)
				slog.Info("tag updated",
					slog.String("tag", tag.String()),
					slog.Int("listings", result.ListingsCount),
				)
			}
		} else {
			failed++
			r.Metrics.IncTag("failure")
			r.Metrics.IncError(errorLabel(fetchErr))
			slog.Warn("tag failed, keeping old data",
				slog.String("tag", tag.String()),
				slog.String("error", result.Error),
			)
		}

		if (i+1)%r.cfg.ProgressEvery == 0 {
			slog.Info("progress",
				slog.Int("completed", i+1),
				slog.Int("planned", len(tags)),
				slog.Int("successful", successful),
				slog.Int("listings", totalListings),
			)
		}

		// Fixed pacing after every tag regardless of outcome.
		sleep(r.pacingDelay())
	}

	summary := &models.RunSummary{
		TagSet:             tagSetDesc,
		Attempted:          attempted,
		Successful:         successful,
		Failed:             failed,
		TotalListingsAdded: totalListings,
		PersistErrors:      persistErrors,
		Timestamp:          time.Now(),
	}

	if err := r.store.WriteSummary(summary); err != nil {
		return summary, err
	}
	return summary, nil
}

// pacingDelay draws the inter-tag delay from [TagDelayMin, TagDelayMax].
func (r *Runner) pacingDelay() time.Duration {
	min, max := r.cfg.TagDelayMin, r.cfg.TagDelayMax
	if max <= min {
		return min
	}
	return min + time.Duration(r.rng.Int63n(int64(max-min)))
}

// errorLabel maps a fetch failure to its metrics label.
func errorLabel(err error) string {
	if errors.Is(err, errNoListings) {
		return "no_listings"
	}
	return render.ErrorTypeLabel(err)
}
