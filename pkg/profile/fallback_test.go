package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicExtractLabelledFields(t *testing.T) {
	text := "姓名：张三\n教育背景：本科\n项目经验：负责后端开发"
	p := HeuristicExtract(text)
	assert.Equal(t, "张三", p.Name)
	assert.Equal(t, "本科", p.Education)
	assert.Equal(t, []string{"负责后端开发"}, p.Experience)
}

func TestHeuristicExtractSkills(t *testing.T) {
	text := "技术栈：熟悉 python、TypeScript 和 SQL，具备良好的沟通能力与团队协作精神"
	p := HeuristicExtract(text)
	// hard skill tokens match case-insensitively
	assert.Contains(t, p.HardSkills, "Python")
	assert.Contains(t, p.HardSkills, "TypeScript")
	assert.Contains(t, p.HardSkills, "SQL")
	assert.Contains(t, p.SoftSkills, "沟通")
	assert.Contains(t, p.SoftSkills, "团队协作")
}

func TestHeuristicExtractIntentionAndCity(t *testing.T) {
	text := "求职意向：后端开发工程师\n目标城市：深圳"
	p := HeuristicExtract(text)
	assert.Equal(t, "后端开发工程师", p.TargetPosition)
	assert.Equal(t, "后端开发工程师", p.Intention)
	assert.Equal(t, "深圳", p.TargetCity)
}

func TestHeuristicExtractNoSignal(t *testing.T) {
	p := HeuristicExtract("完全无关的一段文字")
	assert.Empty(t, p.Name)
	// empty slices, never nil
	assert.NotNil(t, p.HardSkills)
	assert.NotNil(t, p.SoftSkills)
	assert.NotNil(t, p.Experience)
	assert.Empty(t, p.HardSkills)
}

func TestHeuristicExtractDeterministic(t *testing.T) {
	text := "姓名：张三\n教育背景：本科\n项目经验：负责后端开发\n熟悉 Python 与 SQL"
	first := HeuristicExtract(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, HeuristicExtract(text))
	}
}
