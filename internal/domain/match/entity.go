package match

import "strings"

type Label int

const (
	LabelLow Label = iota
	LabelMedium
	LabelHigh
)

func (l Label) String() string {
	switch l {
	case LabelHigh:
		return "High"
	case LabelMedium:
		return "Medium"
	default:
		return "Low"
	}
}

func ParseLabel(s string) Label {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return LabelHigh
	case "medium":
		return LabelMedium
	default:
		return LabelLow
	}
}

// Labels lists every class in a fixed order. The order is part of the
// classifier weight export format.
func Labels() []Label {
	return []Label{LabelLow, LabelMedium, LabelHigh}
}

type Status string

const (
	StatusAccepted Status = "accepted"
	StatusReview   Status = "review"
	StatusRejected Status = "rejected"
)

// ScoreResult is the smoothed classifier output. Immutable once produced.
type ScoreResult struct {
	Label          Label
	RawLabel       Label
	Probabilities  map[Label]float64
	Confidence     float64
	SmoothingFlags []string
}

// ClassProbabilities returns the probability map keyed by label name for
// serialization.
func (r ScoreResult) ClassProbabilities() map[string]float64 {
	out := make(map[string]float64, len(r.Probabilities))
	for l, p := range r.Probabilities {
		out[l.String()] = p
	}
	return out
}

// Record is the final aggregated decision for one (candidate, job) pair.
// Never mutated after creation; reviewer overrides live elsewhere.
type Record struct {
	CandidateRef  string
	JobRef        string
	JobTitle      string
	ML            *ScoreResult
	ATSScore      float64
	FinalScore    float64
	Status        Status
	Rank          int
	LowConfidence bool
}
