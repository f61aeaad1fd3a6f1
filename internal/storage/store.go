package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/gasdyn/internal/diagnostics"
)

const (
	metadataFile = "metadata.json"
	cellsFile    = "cells.csv"
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

type ReportMetadata struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Timestamp   time.Time          `json:"timestamp"`
	Cells       int                `json:"cells"`
	Metallicity float64            `json:"metallicity"`
	Courant     float64            `json:"courant"`
	CellWidth   float64            `json:"cell_width"`
	CellVolume  float64            `json:"cell_volume"`
	Totals      diagnostics.Totals `json:"totals"`
}

// Save writes the report under a fresh id and returns it.
func (s *Store) Save(snap diagnostics.Snapshot, report *diagnostics.Report) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", sanitize(report.Name), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := ReportMetadata{
		ID:          runID,
		Name:        report.Name,
		Timestamp:   now,
		Cells:       len(report.Cells),
		Metallicity: snap.Metallicity,
		Courant:     snap.Courant,
		CellWidth:   snap.CellWidth,
		CellVolume:  snap.CellVolume,
		Totals:      report.Totals,
	}

	err := writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		os.RemoveAll(runDir)
		return "", fmt.Errorf("write metadata: %w", err)
	}

	err = writeFile(filepath.Join(runDir, cellsFile), func(w io.Writer) error {
		return gocsv.Marshal(&report.Cells, w)
	})
	if err != nil {
		os.RemoveAll(runDir)
		return "", fmt.Errorf("write cells: %w", err)
	}

	return runID, nil
}

// writeFile creates path, fills it with write and returns the first of the
// write and close errors.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Store) List() ([]ReportMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ReportMetadata{}, nil
		}
		return nil, err
	}

	reports := make([]ReportMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		reports = append(reports, *meta)
	}

	return reports, nil
}

func (s *Store) Load(runID string) (*ReportMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta ReportMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadCells(runID string) ([]diagnostics.Cell, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, cellsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cells []diagnostics.Cell
	if err := gocsv.UnmarshalFile(file, &cells); err != nil {
		return nil, fmt.Errorf("read cells: %w", err)
	}
	return cells, nil
}

func sanitize(name string) string {
	if name == "" {
		return "report"
	}
	return strings.NewReplacer("/", "_", " ", "_").Replace(name)
}
