// Package corpus reads token record files and runs near-duplicate
// queries against them.
package corpus

// Record is one decoded line of a record file. Only TokenIDs feeds the
// matcher; the remaining fields identify where the sequence came from
// and round-trip into reports.
type Record struct {
	Iteration       uint32           `json:"iteration"`
	DatasetIdx      uint32           `json:"dataset_idx"`
	DatasetName     string           `json:"dataset_name"`
	DocIDs          []uint32         `json:"doc_ids"`
	Text            string           `json:"text"`
	TokenIDs        []int32          `json:"token_ids"`
	CompletionStats *CompletionStats `json:"completion_stats,omitempty"`
	Metrics         []float64        `json:"metrics,omitempty"`
}

// CompletionStats carries bookkeeping some producers attach to records.
type CompletionStats struct {
	Count         uint32 `json:"count"`
	LastIteration uint32 `json:"last_iteration"`
}
