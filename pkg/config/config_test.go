package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "asm-key")
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("DB_NAME", "meeting_summarizer")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "meeting_summarizer", cfg.Database.Name)
	assert.Equal(t, "https://api.groq.com", cfg.Groq.BaseURL)
	assert.Equal(t, "llama-3.1-70b-versatile", cfg.Groq.Model)
	assert.InDelta(t, 0.7, cfg.Groq.Temperature, 0.0001)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestLoad_MissingProviderKeys(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ASSEMBLYAI_API_KEY")
	assert.Contains(t, err.Error(), "required")
}

func TestLoad_MissingGroqKey(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "asm-key")
	t.Setenv("GROQ_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestValidate_RejectsOutOfRangeTemperature(t *testing.T) {
	cfg := &Config{}
	cfg.Assembly = AssemblyAIConfig{APIKey: "asm-key"}
	cfg.Groq = GroqConfig{
		APIKey:      "groq-key",
		BaseURL:     "https://api.groq.com",
		Model:       "llama-3.1-70b-versatile",
		Temperature: 3.5,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_TEMPERATURE")
}

func TestValidate_RejectsMalformedBaseURL(t *testing.T) {
	cfg := &Config{}
	cfg.Assembly = AssemblyAIConfig{APIKey: "asm-key"}
	cfg.Groq = GroqConfig{
		APIKey:      "groq-key",
		BaseURL:     "not-a-url",
		Model:       "llama-3.1-70b-versatile",
		Temperature: 0.7,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_URL")
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database = DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "app",
		Password: "secret",
		Name:     "meetings",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=app password=secret dbname=meetings sslmode=disable", cfg.GetDatabaseDSN())
}
