package extraction

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretlog/fretlog/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewHTTPClient(config.ExtractionConfig{
		BaseURL:       srv.URL,
		APIKey:        "key123",
		Model:         "vision-model",
		RetryAttempts: 1,
	})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func textResponse(text string) string {
	body, _ := json.Marshal(map[string]any{
		"content": []map[string]any{{"type": "text", "text": text}},
	})
	return string(body)
}

func TestExtractCharts(t *testing.T) {
	var got messagesRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "key123", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(textResponse(`[{"title":"Am","fingers":[["B",1]]}]`)))
	})

	records, err := client.ExtractCharts(context.Background(), []File{
		{Name: "page1.png", MediaType: "image/png", Data: []byte("img-bytes")},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Am", records[0]["title"])

	assert.Equal(t, "vision-model", got.Model)
	require.Len(t, got.Messages, 1)
	content := got.Messages[0].Content
	require.Len(t, content, 2)
	assert.Equal(t, "image", content[0].Type)
	assert.Equal(t, "image/png", content[0].Source.MediaType)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("img-bytes")), content[0].Source.Data)
	assert.Equal(t, "text", content[1].Type)
	assert.NotEmpty(t, content[1].Text)
}

func TestExtractChartsStripsCodeFence(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(textResponse("```json\n[{\"title\":\"Em\"}]\n```")))
	})

	records, err := client.ExtractCharts(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Em", records[0]["title"])
}

func TestExtractChartsRetriesOnServerError(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(textResponse(`[]`)))
	})

	records, err := client.ExtractCharts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 2, attempts)
}

func TestExtractChartsDoesNotRetryOnClientError(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.ExtractCharts(context.Background(), nil)
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.False(t, isRetryableError(assert.AnError))
	assert.True(t, isRetryableError(errors.New("post messages: response error 503: unavailable")))
	assert.True(t, isRetryableError(errors.New("post messages: response error 429: rate limited")))
	assert.True(t, isRetryableError(errors.New("dial tcp: connection refused")))
	assert.False(t, isRetryableError(errors.New("post messages: response error 401: unauthorized")))
}
