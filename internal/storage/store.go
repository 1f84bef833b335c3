// Package storage persists run results: one directory per run holding
// JSON metadata and a CSV of sampled states.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/myphysicslab/myphysicslab-sub000/internal/lab"
)

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
	ID        string             `json:"id"`
	Sim       string             `json:"sim"`
	Timestamp time.Time          `json:"timestamp"`
	Solver    string             `json:"solver"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Variables []string           `json:"variables"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one run under a fresh directory and returns its id. The
// CSV header carries the variable names so runs stay readable after the
// simulation's variable layout changes.
func (s *Store) Save(sim, solver string, dt, duration float64, result *lab.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", sim, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Sim:       sim,
		Timestamp: time.Now(),
		Solver:    solver,
		Dt:        dt,
		Duration:  duration,
		Variables: result.Names,
		Metrics:   result.Metrics,
	}
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := append([]string{"time"}, result.Names...)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for i, state := range result.States {
		row := make([]string, 0, len(state)+1)
		row = append(row, strconv.FormatFloat(result.Times[i], 'g', -1, 64))
		for _, val := range state {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
}

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
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadResult reads a stored run back into a Result.
func (s *Store) LoadResult(runID string) (*lab.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	res := &lab.Result{Metrics: meta.Metrics}
	if len(records) == 0 {
		return res, nil
	}
	res.Names = records[0][1:]
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s: bad time %q", runID, record[0])
		}
		state := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: bad value %q", runID, field)
			}
			state = append(state, val)
		}
		res.Times = append(res.Times, t)
		res.States = append(res.States, state)
	}
	return res, nil
}

// ExportJSON writes one run's full data as a single JSON document, to
// path or to stdout when path is empty.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	res, err := s.LoadResult(runID)
	if err != nil {
		return err
	}
	doc := struct {
		RunMetadata
		Steps  int         `json:"steps"`
		Times  []float64   `json:"times"`
		States [][]float64 `json:"states"`
	}{
		RunMetadata: *meta,
		Steps:       len(res.Times),
		Times:       res.Times,
		States:      res.States,
	}
	if path == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	return writeJSON(path, doc)
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
