package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
	lastTemp   float32
}

func (s *stubModel) Ask(_ context.Context, system, user string, temperature float32) (string, error) {
	s.lastSystem = system
	s.lastUser = user
	s.lastTemp = temperature
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestParseStructuredReply(t *testing.T) {
	stub := &stubModel{reply: "```json\n" + `{
  "name": "张三",
  "education": "清华大学 计算机 本科",
  "skills": {"hard": ["Python", "SQL"], "soft": ["沟通"]},
  "experience": ["负责后端开发"],
  "intention": "后端工程师"
}` + "\n```"}
	svc := NewParseService(stub, "qwen-turbo", nil)

	out, err := svc.Parse(context.Background(), "简历原文……")
	require.NoError(t, err)
	assert.False(t, out.Degraded)
	assert.Equal(t, "qwen-turbo", out.Model)
	assert.Equal(t, "张三", out.Profile.Name)
	assert.Equal(t, []string{"Python", "SQL"}, out.Profile.HardSkills)
	assert.Equal(t, []string{"负责后端开发"}, out.Profile.Experience)
	assert.InDelta(t, 0.3, stub.lastTemp, 1e-6)
	assert.Contains(t, stub.lastUser, "简历原文")
}

func TestParseProseReplyFallsBack(t *testing.T) {
	stub := &stubModel{reply: "抱歉，这份简历我无法给出 JSON，但候选人看起来不错。"}
	svc := NewParseService(stub, "qwen-turbo", nil)

	out, err := svc.Parse(context.Background(), "姓名：张三\n教育背景：本科\n项目经验：负责后端开发")
	require.NoError(t, err)
	assert.True(t, out.Degraded)
	assert.Equal(t, "张三", out.Profile.Name)
	assert.Equal(t, "本科", out.Profile.Education)
	assert.Equal(t, []string{"负责后端开发"}, out.Profile.Experience)
}

func TestParseUpstreamErrorSurfaces(t *testing.T) {
	boom := errors.New("upstream down")
	svc := NewParseService(&stubModel{err: boom}, "qwen-turbo", nil)

	_, err := svc.Parse(context.Background(), "some resume text")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestParseEmptyTextRejected(t *testing.T) {
	svc := NewParseService(&stubModel{}, "qwen-turbo", nil)
	_, err := svc.Parse(context.Background(), "   \n ")
	var ve ErrValidation
	assert.ErrorAs(t, err, &ve)
}

func TestParsePartialReplyGetsDefaults(t *testing.T) {
	// missing fields default to empty values, not nulls
	stub := &stubModel{reply: `{"name":"李四","skills":["Java"]}`}
	svc := NewParseService(stub, "qwen-turbo", nil)

	out, err := svc.Parse(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "李四", out.Profile.Name)
	// flat skills array is treated as hard skills
	assert.Equal(t, []string{"Java"}, out.Profile.HardSkills)
	assert.Equal(t, []string{}, out.Profile.SoftSkills)
	assert.Equal(t, []string{}, out.Profile.Experience)
	assert.Empty(t, out.Profile.Education)
}

func TestParseExperienceAsString(t *testing.T) {
	stub := &stubModel{reply: `{"name":"王五","experience":"三年后端开发经验"}`}
	svc := NewParseService(stub, "qwen-turbo", nil)

	out, err := svc.Parse(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, []string{"三年后端开发经验"}, out.Profile.Experience)
}
