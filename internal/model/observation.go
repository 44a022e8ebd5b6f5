package model

import "fmt"

// ObservationKind names the registry key that was verified.
type ObservationKind string

const (
	KindUnderlyingTokens          ObservationKind = "underlyingTokens"
	KindGauge                     ObservationKind = "gauge"
	KindLPToken                   ObservationKind = "lpToken"
	KindHasRemoveLiquidityOneCoin ObservationKind = "hasRemoveLiquidityOneCoin"
)

// Observation is the read-back result for one registry key.
type Observation struct {
	Entry    string          `json:"entry"`
	Pool     string          `json:"pool"`
	Kind     ObservationKind `json:"kind"`
	Expected string          `json:"expected"`
	Observed string          `json:"observed"`
	Matched  bool            `json:"matched"`
}

// String renders the operator line for the observation.
func (o Observation) String() string {
	return fmt.Sprintf("%s %s assertion result is %t", o.Entry, o.Kind, o.Matched)
}

// ObservationRecord is an observation enriched with run context for storage.
type ObservationRecord struct {
	Observation
	RunID        string   `json:"run_id"`
	RunKind      RunKind  `json:"run_kind"`
	Registry     string   `json:"registry"`
	TxHashes     []string `json:"tx_hashes,omitempty"`
	WriteSkipped bool     `json:"write_skipped"`
	RecordedAt   string   `json:"recorded_at"`
}
