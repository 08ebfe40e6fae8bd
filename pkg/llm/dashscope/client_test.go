package dashscope

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", srv.URL, "qwen-turbo")
}

func TestAskCompatibleShape(t *testing.T) {
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"你好"}}]}`))
	})

	out, err := c.Ask(context.Background(), "system", "user", 0.3)
	require.NoError(t, err)
	assert.Equal(t, "你好", out)

	assert.Equal(t, "qwen-turbo", gotBody["model"])
	assert.InDelta(t, 0.3, gotBody["temperature"], 1e-6)
	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
}

func TestAskNativeShapeNestedChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"output":{"choices":[{"message":{"role":"assistant","content":"nested"}}]}}`))
	})
	out, err := c.Ask(context.Background(), "s", "u", 0.7)
	require.NoError(t, err)
	assert.Equal(t, "nested", out)
}

func TestAskNativeShapePlainText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"output":{"text":"plain"}}`))
	})
	out, err := c.Ask(context.Background(), "s", "u", 0.7)
	require.NoError(t, err)
	assert.Equal(t, "plain", out)
}

func TestAskMissingCredentials(t *testing.T) {
	c := New("", "http://127.0.0.1:1", "qwen-turbo")
	_, err := c.Ask(context.Background(), "s", "u", 0.3)
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestAskUpstreamStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})
	_, err := c.Ask(context.Background(), "s", "u", 0.3)
	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusTooManyRequests, ue.Status)
	assert.Contains(t, ue.Error(), "429")
}

func TestAskEmptyCompletion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	_, err := c.Ask(context.Background(), "s", "u", 0.3)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}
