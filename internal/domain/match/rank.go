package match

import "sort"

// Rank orders records by final score descending, breaking ties by ATS score
// descending and then job id ascending. The order is total, so re-running on
// the same set always produces the same sequence. At most one record survives
// per (candidate, job) pair; a later entry replaces an earlier one. Ranks
// are assigned 1..N before truncating to topK (topK <= 0 keeps everything).
func Rank(records []Record, topK int) []Record {
	type pairKey struct {
		candidate string
		job       string
	}

	latest := make(map[pairKey]int, len(records))
	deduped := make([]Record, 0, len(records))
	for _, r := range records {
		k := pairKey{candidate: r.CandidateRef, job: r.JobRef}
		if idx, ok := latest[k]; ok {
			deduped[idx] = r
			continue
		}
		latest[k] = len(deduped)
		deduped = append(deduped, r)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		if deduped[i].FinalScore != deduped[j].FinalScore {
			return deduped[i].FinalScore > deduped[j].FinalScore
		}
		if deduped[i].ATSScore != deduped[j].ATSScore {
			return deduped[i].ATSScore > deduped[j].ATSScore
		}
		return deduped[i].JobRef < deduped[j].JobRef
	})

	for i := range deduped {
		deduped[i].Rank = i + 1
	}

	if topK > 0 && len(deduped) > topK {
		deduped = deduped[:topK]
	}
	return deduped
}
