package model

import "time"

// RunKind identifies which of the two synchronization runs produced a result.
type RunKind string

const (
	RunDepositPools RunKind = "deposit-pools"
	RunSwapPools    RunKind = "swap-pools"
)

// RunSummary aggregates the outcome of one synchronization run.
type RunSummary struct {
	RunID         string
	Kind          RunKind
	Registry      string
	ChainID       uint64
	StartedAt     time.Time
	FinishedAt    time.Time
	Entries       int
	Writes        int
	SkippedWrites int
	Observations  int
	Mismatches    int
	Err           string
}

// OK reports whether the run finished without errors or mismatches.
func (s RunSummary) OK() bool {
	return s.Err == "" && s.Mismatches == 0
}

// Status returns the persisted status label for the run.
func (s RunSummary) Status() string {
	switch {
	case s.Err != "":
		return "failed"
	case s.Mismatches > 0:
		return "mismatch"
	default:
		return "ok"
	}
}
