package normalize

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectEmbeddedInProse(t *testing.T) {
	raw := "Sure, here you go:\n```json\n{\"a\":1}\n```\nThanks"
	msg, err := Object(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(msg))
}

func TestObjectPlain(t *testing.T) {
	msg, err := Object(`{"name":"张三","skills":["Go"]}`)
	require.NoError(t, err)

	var v struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(msg, &v))
	assert.Equal(t, "张三", v.Name)
	assert.Equal(t, []string{"Go"}, v.Skills)
}

func TestObjectWithLeadingAndTrailingText(t *testing.T) {
	raw := "好的，以下是解析结果：{\"title\":\"后端工程师\"} 希望对你有帮助。"
	msg, err := Object(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"后端工程师"}`, string(msg))
}

func TestArrayEmbedded(t *testing.T) {
	raw := "```\n[{\"id\":\"j1\",\"matchScore\":80}]\n```"
	msg, err := Array(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"j1","matchScore":80}]`, string(msg))
}

func TestFailureCases(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no braces", "抱歉，我无法解析这份简历。"},
		{"truncated object", `{"name":"张三","skills":["Go"`},
		{"empty", ""},
		{"mismatched", "} not json {"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Object(tc.raw)
			var f *Failure
			require.ErrorAs(t, err, &f)
			assert.Equal(t, tc.raw, f.Raw)
		})
	}
}

func TestArrayFailureKeepsRaw(t *testing.T) {
	raw := "评分结果如下：1. 后端工程师 85分 2. 前端工程师 70分"
	_, err := Array(raw)
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, raw, f.Raw)
}

func TestUnmarshalObjectTypeMismatch(t *testing.T) {
	// parses as JSON but does not fit the target shape
	var v struct {
		Skills []string `json:"skills"`
	}
	err := UnmarshalObject(`{"skills":"not-a-list"}`, &v)
	var f *Failure
	require.ErrorAs(t, err, &f)
}

func TestUnmarshalArray(t *testing.T) {
	var v []struct {
		JobID string `json:"jobId"`
		Score int    `json:"score"`
	}
	raw := "以下是匹配结果：\n[{\"jobId\":\"a\",\"score\":90},{\"jobId\":\"b\",\"score\":75}]"
	require.NoError(t, UnmarshalArray(raw, &v))
	require.Len(t, v, 2)
	assert.Equal(t, 90, v[0].Score)
}

func TestFailureIsError(t *testing.T) {
	_, err := Object("nothing here")
	assert.True(t, errors.As(err, new(*Failure)))
}
