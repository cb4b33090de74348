package ai

import (
	"context"
	"fmt"
	"io"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/meeting-summarizer/meeting-summarizer/pkg/config"
)

// AssemblyAIClient wraps the official AssemblyAI SDK for synchronous
// speech-to-text. The caller is responsible for validating the audio
// format; any provider-side failure surfaces uniformly as an error
// carrying the provider's message.
type AssemblyAIClient struct {
	sdk *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}

	opts := []aai.ClientOption{aai.WithAPIKey(apiKey)}
	if cfg != nil && cfg.BaseURL != "" {
		opts = append(opts, aai.WithBaseURL(cfg.BaseURL))
	}

	return &AssemblyAIClient{sdk: aai.NewClientWithOptions(opts...)}
}

// Transcribe uploads the audio content and blocks until AssemblyAI
// finishes processing it. Returns the recognized text, which may be
// empty for silent audio.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	uploadURL, err := c.sdk.Upload(ctx, audio)
	if err != nil {
		return "", fmt.Errorf("failed to upload audio to AssemblyAI: %w", err)
	}

	transcript, err := c.sdk.Transcripts.TranscribeFromURL(ctx, uploadURL, nil)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription failed: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "transcription failed"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", fmt.Errorf("assemblyai error: %s", msg)
	}

	if transcript.Text == nil {
		return "", nil
	}
	return *transcript.Text, nil
}
