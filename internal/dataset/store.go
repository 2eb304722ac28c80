package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Store provides thread-safe persistence for imported datasets, keyed by ID.
// Datasets are cached as JSON files so a restarted server can resume analysis
// without re-importing.
type Store struct {
	mu       sync.RWMutex
	cacheDir string
	sets     map[string]*Dataset
}

// NewStore creates a store rooted at cacheDir and loads any cached datasets.
func NewStore(cacheDir string) *Store {
	s := &Store{
		cacheDir: cacheDir,
		sets:     make(map[string]*Dataset),
	}
	s.loadAll()
	return s
}

// Put registers a dataset, assigning an ID when it has none, and persists it.
func (s *Store) Put(ds *Dataset) (*Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ds.ID == "" {
		ds.ID = fmt.Sprintf("ds-%d", time.Now().UnixNano())
	}
	if ds.ImportedAt.IsZero() {
		ds.ImportedAt = time.Now().UTC()
	}
	s.sets[ds.ID] = ds

	if err := s.persist(ds); err != nil {
		return ds, err
	}
	return ds, nil
}

// Get returns the dataset for the given ID.
func (s *Store) Get(id string) (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.sets[id]
	return ds, ok
}

// List returns summaries of all known datasets, newest first.
func (s *Store) List() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*Dataset, 0, len(s.sets))
	for _, ds := range s.sets {
		all = append(all, ds)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ImportedAt.After(all[j].ImportedAt)
	})

	summaries := make([]Summary, 0, len(all))
	for _, ds := range all {
		summaries = append(summaries, ds.Summarize())
	}
	return summaries
}

func (s *Store) persist(ds *Dataset) error {
	if s.cacheDir == "" {
		return nil
	}
	path := filepath.Join(s.cacheDir, ds.ID+".json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset cache: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(ds)
}

func (s *Store) loadAll() {
	if s.cacheDir == "" {
		return
	}
	entries, err := os.ReadDir(s.cacheDir)
	if err != nil {
		return // No cache yet, not an error
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") || !strings.HasPrefix(entry.Name(), "ds-") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.cacheDir, entry.Name()))
		if err != nil {
			continue
		}
		var ds Dataset
		if err := json.Unmarshal(data, &ds); err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping invalid dataset cache file")
			continue
		}
		if ds.ID == "" {
			continue
		}
		s.sets[ds.ID] = &ds
		loaded++
	}

	if loaded > 0 {
		log.Info().Int("count", loaded).Msg("Loaded datasets from cache")
	}
}
