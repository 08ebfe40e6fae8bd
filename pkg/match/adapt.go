package match

import "encoding/json"

// Two upstream scoring conventions appear at our call sites:
//
//	shape A: {"id": ..., "matchScore": ..., "recommendation": ..., "gapAnalysis": ...}
//	shape B: {"jobId": ..., "score": ..., "dimensions": {...}, "analysis": ..., "recommendation": ...}
//
// scoreRecord decodes the union; toResult selects the variant by probing for
// the keys that were actually present instead of guessing fields.
type scoreRecord struct {
	ID             *string        `json:"id"`
	MatchScore     *int           `json:"matchScore"`
	GapAnalysis    string         `json:"gapAnalysis"`
	JobID          *string        `json:"jobId"`
	Score          *int           `json:"score"`
	Dimensions     map[string]int `json:"dimensions"`
	Analysis       string         `json:"analysis"`
	Recommendation string         `json:"recommendation"`
}

func (r scoreRecord) toResult() Result {
	out := Result{Recommendation: r.Recommendation}
	switch {
	case r.JobID != nil:
		out.JobID = *r.JobID
	case r.ID != nil:
		out.JobID = *r.ID
	}
	switch {
	case r.Score != nil:
		out.Score = clamp(*r.Score)
	case r.MatchScore != nil:
		out.Score = clamp(*r.MatchScore)
	}
	if r.Dimensions != nil {
		out.Dimensions = make(map[string]int, len(r.Dimensions))
		for k, v := range r.Dimensions {
			out.Dimensions[k] = clamp(v)
		}
	}
	// shape B calls the free-text field "analysis"
	switch {
	case r.GapAnalysis != "":
		out.GapAnalysis = r.GapAnalysis
	case r.Analysis != "":
		out.GapAnalysis = r.Analysis
	}
	return out
}

// adaptRecords decodes a normalized JSON array of score records in either
// upstream shape into clamped Results.
func adaptRecords(msg json.RawMessage) ([]Result, error) {
	var records []scoreRecord
	if err := json.Unmarshal(msg, &records); err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(records))
	for _, r := range records {
		out = append(out, r.toResult())
	}
	return out, nil
}
