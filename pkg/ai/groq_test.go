package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeting-summarizer/meeting-summarizer/pkg/config"
)

func TestGenerateAnalysis_Success(t *testing.T) {
	var captured ChatRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "SUMMARY:\nX\n\nACTION_ITEMS:\n- Y"}},
			},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL, Model: "llama-3.1-70b-versatile", Temperature: 0.7})

	content, err := client.GenerateAnalysis(context.Background(), "This is a test transcript.")
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY:\nX\n\nACTION_ITEMS:\n- Y", content)

	assert.Equal(t, "llama-3.1-70b-versatile", captured.Model)
	assert.InDelta(t, 0.7, captured.Temperature, 0.0001)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, systemInstruction, captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Contains(t, captured.Messages[1].Content, "This is a test transcript.")
	assert.Contains(t, captured.Messages[1].Content, "SUMMARY:")
	assert.Contains(t, captured.Messages[1].Content, "ACTION_ITEMS:")
}

func TestGenerateAnalysis_ProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limit exceeded"}`))
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.GenerateAnalysis(context.Background(), "transcript")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestGenerateAnalysis_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.GenerateAnalysis(context.Background(), "transcript")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "empty response"))
}

func TestNewGroqClient_Defaults(t *testing.T) {
	client := NewGroqClient(&config.GroqConfig{APIKey: "k"})
	assert.Equal(t, "https://api.groq.com", client.baseURL)
	assert.Equal(t, "llama-3.1-70b-versatile", client.model)
	assert.InDelta(t, 0.7, client.temperature, 0.0001)
}
