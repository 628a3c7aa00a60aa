package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	metadataFile = "metadata.json"
	runFile      = "run.txt"
)

// Store archives simulation runs under baseDir, one directory per run.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID             string             `json:"id"`
	Preset         string             `json:"preset"`
	Timestamp      time.Time          `json:"timestamp"`
	Integration    string             `json:"integration"`
	TimeSpan       float64            `json:"time_span"`
	TimeResolution float64            `json:"time_resolution"`
	Bodies         []string           `json:"bodies"`
	Samples        int                `json:"samples"`
	Metrics        map[string]float64 `json:"metrics,omitempty"`
}

// Save creates a run directory, writes meta and streams the run file
// through w. The assigned run id is returned.
func (s *Store) Save(meta RunMetadata, w io.WriterTo) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.Preset, meta.Timestamp.Unix())
	}
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, runFile))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := w.WriteTo(f); err != nil {
		return "", fmt.Errorf("failed to write run %s: %w", meta.ID, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return meta.ID, metaFile.Close()
}

// List returns the archived runs, newest first. Directories without
// readable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// RunPath is the run file of runID, readable by trajectory.Open.
func (s *Store) RunPath(runID string) string {
	return filepath.Join(s.baseDir, runID, runFile)
}
