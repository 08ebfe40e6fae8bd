package match

import (
	"sort"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/job"
)

// TopN is the contract with the matching flows: callers always request and
// expect at most 3 results. A shorter list is valid output, never padded.
const TopN = 3

// Reconcile cross-references score records against the caller's authoritative
// catalog. Records whose job id does not resolve are dropped, never
// fabricated; the first record wins when the model repeats an id. Merged
// results are sorted by score descending with input order preserved on ties,
// then truncated to TopN.
func Reconcile(records []Result, catalog []job.Job) []Matched {
	byID := make(map[string]job.Job, len(catalog))
	for _, j := range catalog {
		byID[j.ID] = j
	}

	merged := make([]Matched, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		j, ok := byID[rec.JobID]
		if !ok {
			continue
		}
		if _, dup := seen[rec.JobID]; dup {
			continue
		}
		seen[rec.JobID] = struct{}{}
		merged = append(merged, Matched{
			Job:            j,
			Score:          clamp(rec.Score),
			Dimensions:     rec.Dimensions,
			Recommendation: rec.Recommendation,
			GapAnalysis:    rec.GapAnalysis,
		})
	}

	sort.SliceStable(merged, func(i, k int) bool {
		return merged[i].Score > merged[k].Score
	})
	if len(merged) > TopN {
		merged = merged[:TopN]
	}
	return merged
}
