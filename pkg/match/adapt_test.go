package match

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptShapeA(t *testing.T) {
	msg := json.RawMessage(`[{"id":"j1","matchScore":95,"recommendation":"推荐理由","gapAnalysis":"差距分析"}]`)
	out, err := adaptRecords(msg)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "j1", out[0].JobID)
	assert.Equal(t, 95, out[0].Score)
	assert.Equal(t, "推荐理由", out[0].Recommendation)
	assert.Equal(t, "差距分析", out[0].GapAnalysis)
	assert.Nil(t, out[0].Dimensions)
}

func TestAdaptShapeB(t *testing.T) {
	msg := json.RawMessage(`[{
		"jobId":"j2","score":85,
		"dimensions":{"skills":90,"education":80,"experience":75,"location":100,"salary":85},
		"analysis":"匹配分析说明","recommendation":"推荐理由"
	}]`)
	out, err := adaptRecords(msg)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "j2", out[0].JobID)
	assert.Equal(t, 85, out[0].Score)
	assert.Equal(t, 90, out[0].Dimensions["skills"])
	assert.Equal(t, 100, out[0].Dimensions["location"])
	// shape B's "analysis" lands in GapAnalysis
	assert.Equal(t, "匹配分析说明", out[0].GapAnalysis)
}

func TestAdaptClampsDimensionScores(t *testing.T) {
	msg := json.RawMessage(`[{"jobId":"j","score":120,"dimensions":{"skills":250,"salary":-10}}]`)
	out, err := adaptRecords(msg)
	require.NoError(t, err)
	assert.Equal(t, 100, out[0].Score)
	assert.Equal(t, 100, out[0].Dimensions["skills"])
	assert.Equal(t, 0, out[0].Dimensions["salary"])
}

func TestAdaptMixedShapes(t *testing.T) {
	msg := json.RawMessage(`[
		{"id":"a","matchScore":70},
		{"jobId":"b","score":60}
	]`)
	out, err := adaptRecords(msg)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].JobID)
	assert.Equal(t, 70, out[0].Score)
	assert.Equal(t, "b", out[1].JobID)
	assert.Equal(t, 60, out[1].Score)
}

func TestAdaptWrongElementShape(t *testing.T) {
	_, err := adaptRecords(json.RawMessage(`["just","strings"]`))
	assert.Error(t, err)
}
