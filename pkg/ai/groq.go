package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/meeting-summarizer/meeting-summarizer/pkg/config"
)

const systemInstruction = "You are a meeting assistant that creates clear, structured summaries and extracts action items. Always use the exact format specified."

// GroqClient is a minimal client for Groq chat completions used to turn
// a transcript into a two-section summary / action-item analysis
type GroqClient struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	client      *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GROQ_API_URL")
		if base == "" {
			base = "https://api.groq.com"
		}
	}

	model := "llama-3.1-70b-versatile"
	temperature := 0.7
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}
	if cfg != nil && cfg.Temperature > 0 {
		temperature = cfg.Temperature
	}

	return &GroqClient{
		apiKey:      apiKey,
		baseURL:     base,
		model:       model,
		temperature: temperature,
		client:      &http.Client{Timeout: 60 * time.Second},
	}
}

// ChatMessage is one conversation turn in a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []ChatMessage `json:"messages,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateAnalysis sends the transcript to Groq with the fixed
// two-section instruction template and returns the raw assistant
// content. Template compliance is not guaranteed here; the response
// parser validates the shape.
func (g *GroqClient) GenerateAnalysis(ctx context.Context, transcript string) (string, error) {
	reqBody := ChatRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: buildAnalysisPrompt(transcript)},
		},
		Temperature: g.temperature,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("groq returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	return cr.Choices[0].Message.Content, nil
}

// buildAnalysisPrompt embeds the transcript into the fixed instruction
// template requesting the SUMMARY / ACTION_ITEMS sections
func buildAnalysisPrompt(transcript string) string {
	return fmt.Sprintf(`Please analyze this meeting transcript and provide the following in a structured format:

1. SUMMARY:
   A concise summary highlighting key decisions and main discussion points

2. ACTION_ITEMS:
   A list of specific action items, each on a new line starting with '- '
   Include assignee (if mentioned) and deadline (if mentioned)

Transcript:
%s

Please format your response exactly as:
SUMMARY:
(your summary here)

ACTION_ITEMS:
(your action items here, one per line)`, transcript)
}
