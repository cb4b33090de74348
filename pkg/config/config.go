package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Assembly AssemblyAIConfig
	Groq     GroqConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meeting_summarizer"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// AssemblyAIConfig holds speech-to-text provider configuration
type AssemblyAIConfig struct {
	APIKey  string `envconfig:"ASSEMBLYAI_API_KEY" validate:"required"`
	BaseURL string `envconfig:"ASSEMBLYAI_BASE_URL" validate:"omitempty,url"`
}

// GroqConfig holds text-generation provider configuration
type GroqConfig struct {
	APIKey      string  `envconfig:"GROQ_API_KEY" validate:"required"`
	BaseURL     string  `envconfig:"GROQ_API_URL" default:"https://api.groq.com" validate:"required,url"`
	Model       string  `envconfig:"GROQ_MODEL" default:"llama-3.1-70b-versatile" validate:"required"`
	Temperature float64 `envconfig:"GROQ_TEMPERATURE" default:"0.7" validate:"gte=0,lte=2"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// envNames maps validated fields back to the environment variable the
// caller has to set, so validation failures name the knob to fix.
var envNames = map[string]string{
	"Config.Assembly.APIKey":  "ASSEMBLYAI_API_KEY",
	"Config.Assembly.BaseURL": "ASSEMBLYAI_BASE_URL",
	"Config.Groq.APIKey":      "GROQ_API_KEY",
	"Config.Groq.BaseURL":     "GROQ_API_URL",
	"Config.Groq.Model":       "GROQ_MODEL",
	"Config.Groq.Temperature": "GROQ_TEMPERATURE",
}

// Validate validates the configuration against the struct tags
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		name := fe.StructNamespace()
		if env, ok := envNames[name]; ok {
			name = env
		}
		if fe.Tag() == "required" {
			return fmt.Errorf("%s is required", name)
		}
		return fmt.Errorf("%s is invalid: failed %q validation", name, fe.Tag())
	}
	return err
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
