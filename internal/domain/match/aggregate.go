package match

import (
	"recruiter-pro/internal/domain/job"
	"recruiter-pro/internal/domain/profile"
)

// AggregateConfig carries the blend weights and status thresholds. All of it
// is configuration so the decision surface can be recalibrated without a
// code change.
type AggregateConfig struct {
	MLWeight        float64
	ATSWeight       float64
	AcceptThreshold float64
	ReviewThreshold float64
}

func DefaultAggregateConfig() AggregateConfig {
	return AggregateConfig{
		MLWeight:        0.5,
		ATSWeight:       0.5,
		AcceptThreshold: 75,
		ReviewThreshold: 50,
	}
}

// labelPoints maps a smoothed label to its score contribution before
// confidence weighting.
func labelPoints(l Label) float64 {
	switch l {
	case LabelHigh:
		return 1.0
	case LabelMedium:
		return 0.6
	default:
		return 0.25
	}
}

// Aggregate merges the (possibly absent) classifier output with the rule
// score into one record. A nil ml is the degraded-classifier path: the final
// score is the ATS score alone.
func Aggregate(ml *ScoreResult, atsScore float64, p profile.CandidateProfile, j job.Requirement, candidateRef string, cfg AggregateConfig) Record {
	final := atsScore
	if ml != nil {
		mlScore := 100 * labelPoints(ml.Label) * ml.Confidence
		final = cfg.MLWeight*mlScore + cfg.ATSWeight*atsScore
	}
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	status := StatusRejected
	switch {
	case final >= cfg.AcceptThreshold:
		status = StatusAccepted
	case final >= cfg.ReviewThreshold:
		status = StatusReview
	}

	return Record{
		CandidateRef:  candidateRef,
		JobRef:        j.JobID,
		JobTitle:      j.Title,
		ML:            ml,
		ATSScore:      atsScore,
		FinalScore:    final,
		Status:        status,
		LowConfidence: p.LowConfidence || j.LowConfidence,
	}
}
