// Package analysis defines the serializable result of running the
// approximation engine over one information table. These types are what the
// service layer hands to repositories, reports and API responses.
package analysis

import (
	"godrsa/domain/core"
)

// UnionSummary captures every derived set of one union as plain index
// slices, ready for JSON
type UnionSummary struct {
	Type             string `json:"type"`
	LimitingDecision string `json:"limiting_decision"`

	Members []int `json:"members"`
	Neutral []int `json:"neutral"`
	Lower   []int `json:"lower_approximation"`
	Upper   []int `json:"upper_approximation"`
	Boundary []int `json:"boundary"`

	PositiveRegion []int `json:"positive_region"`
	NegativeRegion []int `json:"negative_region"`
	BoundaryRegion []int `json:"boundary_region"`

	// Accuracy is omitted when the upper approximation is empty
	Accuracy *float64 `json:"accuracy,omitempty"`
	Quality  float64  `json:"quality"`
}

// Result is the full outcome of one approximation run
type Result struct {
	ID        core.AnalysisID `json:"id"`
	TableID   core.TableID    `json:"table_id"`
	TableName string          `json:"table_name"`

	TableFingerprint core.Hash `json:"table_fingerprint"`
	Fingerprint      core.Hash `json:"fingerprint"`

	Calculator  string `json:"calculator"`
	ObjectCount int    `json:"object_count"`

	Upward   []UnionSummary `json:"upward_unions"`
	Downward []UnionSummary `json:"downward_unions"`

	QualityOfClassification float64 `json:"quality_of_classification"`
	ConsistentObjects       []int   `json:"consistent_objects"`

	CreatedAt core.Timestamp `json:"created_at"`
}

// NewResult creates a result shell with identity and timestamps filled in
func NewResult(tableID core.TableID, tableName string, tableFingerprint core.Hash, calculator string) *Result {
	return &Result{
		ID:               core.AnalysisID(core.NewID()),
		TableID:          tableID,
		TableName:        tableName,
		TableFingerprint: tableFingerprint,
		Fingerprint:      core.AnalysisFingerprint(tableFingerprint, calculator),
		Calculator:       calculator,
		CreatedAt:        core.Now(),
	}
}

// AllSummaries returns upward then downward summaries in one slice
func (r *Result) AllSummaries() []UnionSummary {
	out := make([]UnionSummary, 0, len(r.Upward)+len(r.Downward))
	out = append(out, r.Upward...)
	out = append(out, r.Downward...)
	return out
}
