package domain

import "time"

// SolveReport describes one overlap-counting run.
type SolveReport struct {
	Input     string  `json:"input"`
	Variant   Variant `json:"variant"`
	Part      int     `json:"part"`
	Threshold int     `json:"threshold"`

	SegmentsTotal int `json:"segments_total"`
	SegmentsUsed  int `json:"segments_used"`
	PointsCovered int `json:"points_covered"`
	Overlaps      int `json:"overlaps"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Duration is zero when either timestamp is missing.
func (r SolveReport) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
