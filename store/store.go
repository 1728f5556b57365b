// Package store owns the on-disk mapping from tag to its latest result.
// Layout: one <tag>.json per tag plus a summary.json per run, all inside a
// single data directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/wc26data/go-scrape-collect/models"
)

// SummaryFile is the per-run aggregate artifact written next to the tag files.
const SummaryFile = "summary.json"

// cacheSize covers the whole tag space, so repeated Load/LoadAll calls from
// the planner and the export step hit disk at most once per tag.
const cacheSize = models.TagCount + 8

// Store persists TagResults. The central invariant: a failed result is
// never written, so a bad run can never regress previously good data. A new
// success always replaces the old one, whatever their listing counts.
type Store struct {
	dir string

	mu    sync.Mutex
	cache *lru.Cache[models.Tag, *models.TagResult]
}

// Open ensures the data directory exists and returns a store over it.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("store: empty data dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	cache, err := lru.New[models.Tag, *models.TagResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("store cache: %w", err)
	}
	return &Store{dir: dir, cache: cache}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Persist writes result under its tag and reports whether a write happened.
// Failed results are skipped without touching disk, keeping whatever was
// stored before authoritative. The write is atomic: a crash mid-write never
// leaves a partial file under the tag's name.
func (s *Store) Persist(result *models.TagResult) (bool, error) {
	if result == nil || !result.Success {
		return false, nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return false, fmt.Errorf("marshal %s: %w", result.Tag, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeAtomic(s.tagPath(result.Tag), data); err != nil {
		return false, err
	}
	s.cache.Add(result.Tag, result)
	return true, nil
}

// Load returns the stored result for tag, or nil when absent.
func (s *Store) Load(tag models.Tag) (*models.TagResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(tag)
}

// LoadAll returns every stored result keyed by tag.
func (s *Store) LoadAll() (map[models.Tag]*models.TagResult, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := make(map[models.Tag]*models.TagResult)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || name == SummaryFile {
			continue
		}
		tag, err := models.ParseTag(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue // unrelated file, not ours to interpret
		}
		result, err := s.loadLocked(tag)
		if err != nil {
			return nil, err
		}
		if result != nil {
			results[tag] = result
		}
	}
	return results, nil
}

// WriteSummary writes the run summary artifact, replacing any prior one.
func (s *Store) WriteSummary(summary *models.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeAtomic(filepath.Join(s.dir, SummaryFile), data)
}

func (s *Store) loadLocked(tag models.Tag) (*models.TagResult, error) {
	if cached, ok := s.cache.Get(tag); ok {
		return cached, nil
	}

	data, err := os.ReadFile(s.tagPath(tag))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", tag, err)
	}

	var result models.TagResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode %s: %w", tag, err)
	}
	s.cache.Add(tag, &result)
	return &result, nil
}

func (s *Store) tagPath(tag models.Tag) string {
	return filepath.Join(s.dir, tag.String()+".json")
}

// writeAtomic writes via a temp file in the same directory plus rename.
func (s *Store) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
