package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/job"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/profile"
)

func TestFallbackScoreBaseline(t *testing.T) {
	out := FallbackScore(profile.Profile{}, job.Job{ID: "j", Description: "任意描述"})
	assert.Equal(t, 50, out.Score)
	assert.Equal(t, "j", out.JobID)
}

func TestFallbackScoreSkillIncrements(t *testing.T) {
	p := profile.Profile{HardSkills: []string{"Python", "SQL", "Rust"}}
	j := job.Job{ID: "j", Description: "要求熟悉 python 和 sql，加分项：Kafka"}
	out := FallbackScore(p, j)
	// 50 + 10 + 10; Rust not mentioned
	assert.Equal(t, 70, out.Score)
}

func TestFallbackScoreExperiencePrefix(t *testing.T) {
	p := profile.Profile{Experience: []string{"负责后端开发与性能优化工作"}}
	// first 10 runes of the summary appear in the description
	j := job.Job{ID: "j", Description: "希望候选人负责后端开发与性能优化"}
	out := FallbackScore(p, j)
	assert.Equal(t, 55, out.Score)
}

func TestFallbackScoreClamped(t *testing.T) {
	skills := make([]string, 10)
	for i := range skills {
		skills[i] = fmt.Sprintf("skill%d", i)
	}
	desc := ""
	for _, s := range skills {
		desc += s + " "
	}
	out := FallbackScore(profile.Profile{HardSkills: skills}, job.Job{ID: "j", Description: desc})
	assert.Equal(t, 100, out.Score)
}

func TestFallbackScoreDeterministic(t *testing.T) {
	p := profile.Profile{
		HardSkills: []string{"Python", "SQL"},
		Experience: []string{"负责后端开发"},
	}
	j := job.Job{ID: "j", Description: "python 后端开发，熟悉 sql"}
	first := FallbackScore(p, j)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FallbackScore(p, j))
	}
}

func TestFallbackScoreAllKeepsCatalogOrder(t *testing.T) {
	jobs := []job.Job{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	out := FallbackScoreAll(profile.Profile{}, jobs)
	assert.Len(t, out, 3)
	assert.Equal(t, "a", out[0].JobID)
	assert.Equal(t, "c", out[2].JobID)
}
