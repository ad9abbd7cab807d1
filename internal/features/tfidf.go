package features

import (
	"math"
	"strings"
)

// Vectorizer is a TF-IDF vector space model. It must be fit once over a
// reference corpus and then shared read-only; refitting on the single pair
// being scored collapses the discriminative weighting.
type Vectorizer struct {
	idf  map[string]float64
	docs int
}

// FitVectorizer builds the model from a reference corpus. Empty documents
// are skipped.
func FitVectorizer(corpus []string) *Vectorizer {
	df := make(map[string]int)
	docs := 0
	for _, doc := range corpus {
		terms := tokenize(doc)
		if len(terms) == 0 {
			continue
		}
		docs++
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	idf := make(map[string]float64, len(df))
	for t, n := range df {
		idf[t] = math.Log(float64(1+docs)/float64(1+n)) + 1
	}
	return &Vectorizer{idf: idf, docs: docs}
}

// Documents reports the corpus size the model was fit on.
func (v *Vectorizer) Documents() int {
	if v == nil {
		return 0
	}
	return v.docs
}

// Transform maps text to its sparse TF-IDF vector. Terms unseen during fit
// get the maximum IDF, matching the smooth-IDF convention.
func (v *Vectorizer) Transform(text string) map[string]float64 {
	out := make(map[string]float64)
	if v == nil {
		return out
	}
	terms := tokenize(text)
	if len(terms) == 0 {
		return out
	}

	tf := make(map[string]float64, len(terms))
	for _, t := range terms {
		tf[t]++
	}
	unseen := math.Log(float64(1+v.docs)) + 1
	for t, n := range tf {
		w, ok := v.idf[t]
		if !ok {
			w = unseen
		}
		out[t] = (n / float64(len(terms))) * w
	}
	return out
}

// Similarity is the cosine similarity of two texts under the fitted model,
// in [0,1]. Either side empty yields 0, never NaN.
func (v *Vectorizer) Similarity(a, b string) float64 {
	va := v.Transform(a)
	vb := v.Transform(b)
	if len(va) == 0 || len(vb) == 0 {
		return 0
	}

	var dot, na, nb float64
	for t, w := range va {
		na += w * w
		if wb, ok := vb[t]; ok {
			dot += w * wb
		}
	}
	for _, w := range vb {
		nb += w * w
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "of": {}, "on": {}, "or": {}, "our": {}, "the": {},
	"to": {}, "we": {}, "with": {}, "you": {}, "your": {}, "will": {},
	"this": {}, "that": {},
}

func tokenize(text string) []string {
	text = strings.ToLower(text)
	fields := strings.FieldsFunc(text, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		case r == '+' || r == '#' || r == '.':
			return false
		default:
			return true
		}
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".")
		if len(f) < 2 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}
