package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wc26data/go-scrape-collect/config"
	"github.com/wc26data/go-scrape-collect/export"
	"github.com/wc26data/go-scrape-collect/models"
	"github.com/wc26data/go-scrape-collect/planner"
	"github.com/wc26data/go-scrape-collect/render"
	"github.com/wc26data/go-scrape-collect/runner"
	"github.com/wc26data/go-scrape-collect/store"
)

func main() {
	defaultCfg := config.DefaultConfig()
	dataDirDefault := defaultCfg.DataDir
	if value, ok := config.EnvString("SCRAPER_DATA_DIR"); ok {
		dataDirDefault = value
	}
	baseURLDefault := defaultCfg.BaseURL
	if value, ok := config.EnvString("SCRAPER_BASE_URL"); ok {
		baseURLDefault = value
	}
	rendererDefault := defaultCfg.Renderer
	if value, ok := config.EnvString("SCRAPER_RENDERER"); ok {
		rendererDefault = value
	}
	metricsDefault := defaultCfg.MetricsAddr
	if value, ok := config.EnvString("SCRAPER_METRICS_ADDR"); ok {
		metricsDefault = value
	}
	candidatesDefault := defaultCfg.MaxCandidates
	if value, ok, err := config.EnvInt("SCRAPER_MAX_CANDIDATES"); err != nil {
		fmt.Fprintf(os.Stderr, "invalid SCRAPER_MAX_CANDIDATES: %v\n", err)
		os.Exit(1)
	} else if ok {
		candidatesDefault = value
	}

	tagSet := flag.String("tags", "all", `Tag set: "all", "failed", or a comma list like "m1,m24,m104"`)
	dataDir := flag.String("data-dir", dataDirDefault, "Directory holding per-tag JSON results")
	baseURL := flag.String("base-url", baseURLDefault, "Marketplace base URL")
	rendererName := flag.String("renderer", rendererDefault, "Page renderer: chrome or static")
	maxCandidates := flag.Int("max-candidates", candidatesDefault, "Price matches examined per page")
	gentle := flag.Bool("gentle", false, "Stretch timeouts and pacing for flaky tags")
	exportPath := flag.String("export", "", "After the run, flatten stored listings to this file")
	exportFormat := flag.String("export-format", "csv", "Export format: csv, json, or dual")
	metricsAddr := flag.String("metrics-addr", metricsDefault, "Prometheus metrics listen address (e.g. :9090)")
	verbose := flag.Bool("v", false, "Enable verbose logging")

	flag.Parse()

	logger, level := newLogger(*verbose)
	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(level.Level())

	cfg := config.DefaultConfig()
	cfg.DataDir = *dataDir
	cfg.BaseURL = *baseURL
	cfg.Renderer = *rendererName
	cfg.MaxCandidates = *maxCandidates
	cfg.MetricsAddr = *metricsAddr
	cfg.Verbose = *verbose
	if *gentle {
		cfg.ApplyGentle()
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		slog.Error("opening store", slog.Any("error", err))
		os.Exit(1)
	}

	mode, explicit, err := parseTagSet(*tagSet)
	if err != nil {
		slog.Error("invalid tag set", slog.Any("error", err))
		os.Exit(1)
	}
	tags, err := planner.New(st).Plan(mode, explicit)
	if err != nil {
		slog.Error("planning tag set", slog.Any("error", err))
		os.Exit(1)
	}

	// The renderer is the one capability whose absence aborts the run
	// before any tag is touched.
	renderer, err := render.New(cfg)
	if err != nil {
		slog.Error("acquiring renderer", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			slog.Error("close renderer", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received, finishing current tag")
	}()

	run := runner.New(cfg, renderer, st)

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: promhttp.HandlerFor(run.Metrics.Registry, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", slog.Any("error", err))
			}
		}()
		slog.Info("metrics server enabled", slog.String("addr", cfg.MetricsAddr))
	}

	slog.Info("starting run",
		slog.String("tag_set", planner.Describe(mode, tags)),
		slog.Int("tags", len(tags)),
		slog.String("renderer", cfg.Renderer),
		slog.String("data_dir", cfg.DataDir),
	)

	startTime := time.Now()
	summary, err := run.Run(ctx, tags, planner.Describe(mode, tags))
	if err != nil {
		slog.Error("writing run summary", slog.Any("error", err))
	}

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("metrics server shutdown failed", slog.Any("error", err))
		}
		cancel()
	}

	printSummary(summary, time.Since(startTime))

	if *exportPath != "" {
		if err := runExport(st, *exportFormat, *exportPath); err != nil {
			slog.Error("export failed", slog.Any("error", err))
			os.Exit(1)
		}
	}
}

// parseTagSet maps the -tags flag to a planner mode.
func parseTagSet(raw string) (planner.Mode, []models.Tag, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "all":
		return planner.ModeAll, nil, nil
	case "failed":
		return planner.ModeFailedOrEmpty, nil, nil
	}

	var tags []models.Tag
	for _, part := range strings.Split(raw, ",") {
		tag, err := models.ParseTag(part)
		if err != nil {
			return "", nil, err
		}
		tags = append(tags, tag)
	}
	return planner.ModeExplicit, tags, nil
}

func runExport(st *store.Store, format, path string) error {
	rows, err := export.Rows(st)
	if err != nil {
		return err
	}
	writer, err := export.NewWriter(format, path)
	if err != nil {
		return err
	}
	if err := writer.Write(rows); err != nil {
		writer.Close()
		return err
	}
	if err := writer.Validate(); err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	slog.Info("export complete", slog.Int("rows", len(rows)), slog.String("path", path))
	return nil
}

func printSummary(summary *models.RunSummary, duration time.Duration) {
	separator := "--------------------------------------------------"
	fmt.Println("\n" + separator)
	fmt.Println("Run complete")
	fmt.Printf("  Tag set:         %s\n", summary.TagSet)
	fmt.Printf("  Attempted:       %d\n", summary.Attempted)
	fmt.Printf("  Successful:      %d\n", summary.Successful)
	fmt.Printf("  Failed/skipped:  %d\n", summary.Failed)
	fmt.Printf("  Listings added:  %d\n", summary.TotalListingsAdded)
	if summary.PersistErrors > 0 {
		fmt.Printf("  Persist errors:  %d\n", summary.PersistErrors)
	}
	fmt.Printf("  Duration:        %v\n", duration)
	fmt.Println(separator)
}

func newLogger(verbose bool) (*slog.Logger, *slog.LevelVar) {
	level := &slog.LevelVar{}
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if isTerminal(os.Stdout) {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler), level
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
