package classify

import (
	"sort"

	"recruiter-pro/internal/domain/match"
	"recruiter-pro/internal/features"

	"go.uber.org/zap"
)

// Thresholds parameterize the smoothing rules. Values are configuration;
// the defaults are the audited ones.
type Thresholds struct {
	HighConfidence float64
	HighFloor      float64
	MediumFloor    float64
	UpgradeOverlap float64
	AmbiguityGap   float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HighConfidence: 0.85,
		HighFloor:      0.60,
		MediumFloor:    0.35,
		UpgradeOverlap: 0.70,
		AmbiguityGap:   0.10,
	}
}

// smoothingRule is one (predicate, action, flag) step. Rules are evaluated
// in priority order; the first rule with an action that matches decides the
// label, later matching rules only record their flag.
type smoothingRule struct {
	flag    string
	applies func(raw match.Label, probs map[match.Label]float64, v features.Vector, th Thresholds) bool
	action  func(raw match.Label) match.Label
}

func identity(raw match.Label) match.Label { return raw }

var smoothingRules = []smoothingRule{
	{
		flag: "high_confidence_enforced",
		applies: func(raw match.Label, probs map[match.Label]float64, _ features.Vector, th Thresholds) bool {
			return probs[raw] > th.HighConfidence
		},
		action: identity,
	},
	{
		flag: "downgrade_high_to_medium",
		applies: func(raw match.Label, probs map[match.Label]float64, _ features.Vector, th Thresholds) bool {
			return raw == match.LabelHigh && probs[match.LabelHigh] < th.HighFloor
		},
		action: func(match.Label) match.Label { return match.LabelMedium },
	},
	{
		flag: "downgrade_medium_to_low",
		applies: func(raw match.Label, probs map[match.Label]float64, _ features.Vector, th Thresholds) bool {
			return raw == match.LabelMedium && probs[match.LabelMedium] < th.MediumFloor
		},
		action: func(match.Label) match.Label { return match.LabelLow },
	},
	{
		flag: "upgrade_low_to_medium",
		applies: func(raw match.Label, _ map[match.Label]float64, v features.Vector, th Thresholds) bool {
			return raw == match.LabelLow &&
				v[features.IdxSkillOverlapRatio] > th.UpgradeOverlap &&
				v[features.IdxExperienceMatch] == 1
		},
		action: func(match.Label) match.Label { return match.LabelMedium },
	},
	{
		flag: "downgrade_overqualified_high",
		applies: func(raw match.Label, _ map[match.Label]float64, v features.Vector, _ Thresholds) bool {
			return raw == match.LabelHigh && v[features.IdxUnderqualified] == 1
		},
		action: func(match.Label) match.Label { return match.LabelMedium },
	},
	{
		flag: "ambiguous_prediction",
		applies: func(_ match.Label, probs map[match.Label]float64, _ features.Vector, th Thresholds) bool {
			return topTwoGap(probs) < th.AmbiguityGap
		},
		action: nil,
	},
}

// Smoother wraps a classifier with deterministic post-hoc corrections.
type Smoother struct {
	cls    Classifier
	th     Thresholds
	logger *zap.Logger
}

func NewSmoother(cls Classifier, th Thresholds, logger *zap.Logger) *Smoother {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Smoother{cls: cls, th: th, logger: logger}
}

// Score runs the classifier and applies the smoothing rules. An error means
// the classifier is unavailable; callers degrade to rule-only scoring.
func (s *Smoother) Score(v features.Vector) (*match.ScoreResult, error) {
	if s == nil || s.cls == nil {
		return nil, ErrModelUnavailable
	}
	probs, err := s.cls.PredictProba(v)
	if err != nil {
		s.logger.Warn("classifier unavailable, degrading to rule scorer", zap.Error(err))
		return nil, err
	}
	res := Smooth(probs, v, s.th)
	return &res, nil
}

// Smooth applies the rule list to raw probabilities. The raw label is always
// recomputed as the argmax, which makes smoothing idempotent for a fixed
// probability map.
func Smooth(probs map[match.Label]float64, v features.Vector, th Thresholds) match.ScoreResult {
	raw := argmax(probs)

	label := raw
	decided := false
	flags := make([]string, 0, 2)
	for _, r := range smoothingRules {
		if !r.applies(raw, probs, v, th) {
			continue
		}
		flags = append(flags, r.flag)
		if r.action != nil && !decided {
			label = r.action(raw)
			decided = true
		}
	}

	return match.ScoreResult{
		Label:          label,
		RawLabel:       raw,
		Probabilities:  probs,
		Confidence:     probs[raw],
		SmoothingFlags: flags,
	}
}

func argmax(probs map[match.Label]float64) match.Label {
	best := match.LabelLow
	bestP := -1.0
	for _, l := range match.Labels() {
		if p := probs[l]; p > bestP {
			best = l
			bestP = p
		}
	}
	return best
}

func topTwoGap(probs map[match.Label]float64) float64 {
	vals := make([]float64, 0, len(probs))
	for _, p := range probs {
		vals = append(vals, p)
	}
	if len(vals) < 2 {
		return 1
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	return vals[0] - vals[1]
}
