package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"registrySync/internal/model"
)

// Record type discriminators for lines in the report file.
const (
	RecordObservation = "observation"
	RecordRun         = "run"
)

// JsonlStorage appends observation records and run summaries to a JSONL report.
type JsonlStorage struct {
	path string
	mu   sync.Mutex
}

func NewJsonlStorage(path string) *JsonlStorage {
	return &JsonlStorage{path: path}
}

type observationLine struct {
	Record string `json:"record"`
	model.ObservationRecord
}

type runLine struct {
	Record        string        `json:"record"`
	RunID         string        `json:"run_id"`
	RunKind       model.RunKind `json:"run_kind"`
	Registry      string        `json:"registry"`
	ChainID       uint64        `json:"chain_id"`
	Status        string        `json:"status"`
	StartedAt     string        `json:"started_at"`
	FinishedAt    string        `json:"finished_at"`
	Entries       int           `json:"entries"`
	Writes        int           `json:"writes"`
	SkippedWrites int           `json:"skipped_writes"`
	Observations  int           `json:"observations"`
	Mismatches    int           `json:"mismatches"`
	Error         string        `json:"error,omitempty"`
}

// PutObservations appends a batch of observation records as JSON lines.
func (s *JsonlStorage) PutObservations(_ context.Context, records []model.ObservationRecord) error {
	if len(records) == 0 {
		return nil
	}
	lines := make([]interface{}, 0, len(records))
	for _, record := range records {
		lines = append(lines, observationLine{Record: RecordObservation, ObservationRecord: record})
	}
	return s.appendLines(lines)
}

// PutRun appends the run summary as a single JSON line.
func (s *JsonlStorage) PutRun(_ context.Context, summary model.RunSummary) error {
	return s.appendLines([]interface{}{runLine{
		Record:        RecordRun,
		RunID:         summary.RunID,
		RunKind:       summary.Kind,
		Registry:      summary.Registry,
		ChainID:       summary.ChainID,
		Status:        summary.Status(),
		StartedAt:     summary.StartedAt.UTC().Format(time.RFC3339Nano),
		FinishedAt:    summary.FinishedAt.UTC().Format(time.RFC3339Nano),
		Entries:       summary.Entries,
		Writes:        summary.Writes,
		SkippedWrites: summary.SkippedWrites,
		Observations:  summary.Observations,
		Mismatches:    summary.Mismatches,
		Error:         summary.Err,
	}})
}

func (s *JsonlStorage) appendLines(lines []interface{}) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, record := range lines {
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
