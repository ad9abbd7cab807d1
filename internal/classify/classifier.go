package classify

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"recruiter-pro/internal/domain/match"
	"recruiter-pro/internal/features"
)

var (
	// ErrModelContract means the weight export disagrees with the engine's
	// feature order. Refusing to start beats silently scoring garbage.
	ErrModelContract = errors.New("model feature order does not match engine contract")

	ErrModelUnavailable = errors.New("classifier model unavailable")
)

// Classifier is any probabilistic multi-class model. Probabilities must sum
// to 1 within 1e-6.
type Classifier interface {
	PredictProba(v features.Vector) (map[match.Label]float64, error)
}

// LogisticModel is a multinomial logistic regression over the fixed feature
// vector, loaded from a JSON weight export produced by offline training.
type LogisticModel struct {
	classes []match.Label
	weights [][]float64
	bias    []float64
}

type modelExport struct {
	FeatureOrder []string             `json:"feature_order"`
	Classes      []string             `json:"classes"`
	Coefficients map[string][]float64 `json:"coefficients"`
	Intercepts   map[string]float64   `json:"intercepts"`
}

// LoadModel reads a weight export from disk. A missing file is
// ErrModelUnavailable (recoverable degradation); a malformed or
// contract-breaking file is fatal.
func LoadModel(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrModelUnavailable, path)
		}
		return nil, err
	}
	return ParseModel(data)
}

func ParseModel(data []byte) (*LogisticModel, error) {
	var exp modelExport
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parse model export: %w", err)
	}

	order := features.Order()
	if len(exp.FeatureOrder) != len(order) {
		return nil, fmt.Errorf("%w: expected %d features, export has %d",
			ErrModelContract, len(order), len(exp.FeatureOrder))
	}
	for i, name := range order {
		if exp.FeatureOrder[i] != name {
			return nil, fmt.Errorf("%w: position %d is %q, expected %q",
				ErrModelContract, i, exp.FeatureOrder[i], name)
		}
	}

	if len(exp.Classes) == 0 {
		return nil, fmt.Errorf("%w: export lists no classes", ErrModelContract)
	}

	m := &LogisticModel{
		classes: make([]match.Label, 0, len(exp.Classes)),
		weights: make([][]float64, 0, len(exp.Classes)),
		bias:    make([]float64, 0, len(exp.Classes)),
	}
	for _, name := range exp.Classes {
		coef, ok := exp.Coefficients[name]
		if !ok || len(coef) != len(order) {
			return nil, fmt.Errorf("%w: class %q has %d coefficients, expected %d",
				ErrModelContract, name, len(coef), len(order))
		}
		m.classes = append(m.classes, match.ParseLabel(name))
		m.weights = append(m.weights, coef)
		m.bias = append(m.bias, exp.Intercepts[name])
	}
	return m, nil
}

func (m *LogisticModel) PredictProba(v features.Vector) (map[match.Label]float64, error) {
	if m == nil || len(m.classes) == 0 {
		return nil, ErrModelUnavailable
	}

	logits := make([]float64, len(m.classes))
	maxLogit := math.Inf(-1)
	for c := range m.classes {
		z := m.bias[c]
		for i, w := range m.weights[c] {
			z += w * v[i]
		}
		logits[c] = z
		if z > maxLogit {
			maxLogit = z
		}
	}

	// Softmax with the max-logit shift for numeric stability.
	var sum float64
	for c := range logits {
		logits[c] = math.Exp(logits[c] - maxLogit)
		sum += logits[c]
	}

	out := make(map[match.Label]float64, len(m.classes))
	for c, l := range m.classes {
		out[l] = logits[c] / sum
	}
	return out, nil
}
