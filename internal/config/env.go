package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	apperrors "suomicast/internal/app/errors"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	Gemini string
	OpenAI string
}

// LoadEnv loads environment variables from .env file if it exists
func LoadEnv() error {
	// Try to load .env file from current directory or project root
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	// Look for .env file, but don't fail if not found (environment variables might be set system-wide)
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			fmt.Printf("✅ Loaded environment variables from %s\n", envPath)
			break
		}
	}

	return nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
// Returns an error immediately on malformed keys; absent keys are allowed
// because the app degrades to cached or fallback content without them.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
	}

	if apiKeys.Gemini != "" {
		if !strings.HasPrefix(apiKeys.Gemini, "AIza") {
			return nil, apperrors.Wrap(apperrors.ErrInvalidAPIKey, "invalid GEMINI_API_KEY format: must start with 'AIza'")
		}
		if len(apiKeys.Gemini) < 30 {
			return nil, apperrors.Wrap(apperrors.ErrInvalidAPIKey, "invalid GEMINI_API_KEY format: too short")
		}
	}

	if apiKeys.OpenAI != "" {
		if !strings.HasPrefix(apiKeys.OpenAI, "sk-") {
			return nil, apperrors.Wrap(apperrors.ErrInvalidAPIKey, "invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKeys.OpenAI) < 20 {
			return nil, apperrors.Wrap(apperrors.ErrInvalidAPIKey, "invalid OPENAI_API_KEY format: too short")
		}
	}

	return apiKeys, nil
}

// ValidateAPIKeys reports which keys are available without failing
func ValidateAPIKeys(apiKeys *APIKeys) {
	var availableKeys []string
	if apiKeys.Gemini != "" {
		availableKeys = append(availableKeys, "Gemini")
	}
	if apiKeys.OpenAI != "" {
		availableKeys = append(availableKeys, "OpenAI")
	}

	if len(availableKeys) > 0 {
		fmt.Printf("✅ API keys available: %s\n", strings.Join(availableKeys, ", "))
	} else {
		fmt.Printf("ℹ️  No API keys configured (serving cached or sample episodes only)\n")
	}
}

// RequireGeminiKey validates that the Gemini key is present, for commands
// that cannot degrade (generate, backfill).
func RequireGeminiKey(apiKeys *APIKeys) error {
	if apiKeys.Gemini == "" {
		return apperrors.Wrap(apperrors.ErrMissingAPIKey, "episode generation requires GEMINI_API_KEY in environment or .env file")
	}
	return nil
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

// InitializeConfig loads environment and validates configuration
func InitializeConfig() (*APIKeys, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	ValidateAPIKeys(apiKeys)

	return apiKeys, nil
}
