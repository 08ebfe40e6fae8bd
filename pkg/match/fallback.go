package match

import (
	"strings"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/job"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/profile"
)

const (
	fallbackBaseScore      = 50
	fallbackSkillIncrement = 10
	fallbackExpIncrement   = 5
	// only the head of an experience summary is matched against the JD
	fallbackExpPrefixRunes = 10
)

// FallbackScore computes a deterministic keyword-overlap score for one job:
// baseline 50, +10 per hard skill found in the description, +5 per experience
// summary whose first 10 characters are found, clamped to [0,100]. Used when
// the model reply carries no usable scoring signal.
func FallbackScore(p profile.Profile, j job.Job) Result {
	score := fallbackBaseScore
	jobText := strings.ToLower(j.Description)

	for _, skill := range p.HardSkills {
		if skill == "" {
			continue
		}
		if strings.Contains(jobText, strings.ToLower(skill)) {
			score += fallbackSkillIncrement
		}
	}
	for _, exp := range p.Experience {
		prefix := strings.ToLower(headRunes(exp, fallbackExpPrefixRunes))
		if prefix == "" {
			continue
		}
		if strings.Contains(jobText, prefix) {
			score += fallbackExpIncrement
		}
	}

	return Result{
		JobID:          j.ID,
		Score:          clamp(score),
		Recommendation: "基于关键词匹配的推荐",
		GapAnalysis:    "建议完善相关技能和经验",
	}
}

// FallbackScoreAll scores every job in catalog order.
func FallbackScoreAll(p profile.Profile, jobs []job.Job) []Result {
	out := make([]Result, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FallbackScore(p, j))
	}
	return out
}

func headRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
