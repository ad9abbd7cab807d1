package features

// Feature indices. The order is part of the classifier training contract and
// must never change without retraining.
const (
	IdxSkillOverlapCount = iota
	IdxSkillOverlapRatio
	IdxJaccardSimilarity
	IdxProfileSkillCount
	IdxJobSkillCount
	IdxExperienceDelta
	IdxExperienceMatch
	IdxOverqualified
	IdxUnderqualified
	IdxExperienceRatio
	IdxSeniorityMatch
	IdxTextSimilarity
	featureCount
)

var names = [featureCount]string{
	"skill_overlap_count",
	"skill_overlap_ratio",
	"jaccard_similarity",
	"profile_skill_count",
	"job_skill_count",
	"experience_delta",
	"experience_match",
	"overqualified",
	"underqualified",
	"experience_ratio",
	"seniority_match",
	"text_similarity",
}

// Vector is one fixed-length feature row. Binary features are 0/1 floats for
// homogeneity.
type Vector [featureCount]float64

func (v Vector) Values() []float64 {
	out := make([]float64, featureCount)
	copy(out, v[:])
	return out
}

// Order returns the canonical feature name sequence. Classifier weight
// exports are validated against it at load time.
func Order() []string {
	out := make([]string, featureCount)
	copy(out, names[:])
	return out
}

func Count() int { return featureCount }
