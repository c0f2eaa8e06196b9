package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"suomicast/internal/app/api"
	"suomicast/internal/app/api/gemini"
	"suomicast/internal/app/api/openai"
	appconfig "suomicast/internal/app/config"
	"suomicast/internal/app/player"
	"suomicast/internal/app/refresh"
	"suomicast/internal/app/repository"
	"suomicast/internal/app/repository/pg"
	"suomicast/internal/app/repository/sqlite"
	"suomicast/internal/config"
)

// provideSettings loads and validates environment settings
func provideSettings() (*config.Settings, error) {
	settings := config.GetSettings()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// provideLogger builds the process logger; SUOMICAST_ENV=development gets
// the console encoder.
func provideLogger() (*zap.Logger, error) {
	if os.Getenv("SUOMICAST_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// provideEpisodeDAO opens the episode store selected by settings
func provideEpisodeDAO(settings *config.Settings) (repository.EpisodeDAO, error) {
	switch settings.DBDriver {
	case "postgres":
		return pg.NewPostgresDB(settings.PostgresDSN)
	default:
		if dir := filepath.Dir(settings.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		return sqlite.NewSQLiteDB(settings.SQLitePath)
	}
}

// provideProvidersConfig loads the provider-selection file; a missing or
// unreadable file selects the built-in defaults.
func provideProvidersConfig(logger *zap.Logger) *appconfig.ProvidersConfig {
	path := appconfig.GetDefaultConfigPath()
	providersConfig, err := appconfig.LoadProvidersConfig(path)
	if err != nil {
		logger.Info("no providers config file; using defaults",
			zap.String("path", path),
			zap.Error(err))
		return appconfig.CreateDefaultConfig()
	}
	logger.Info("providers config loaded", zap.String("path", path))
	return providersConfig
}

// provideContentProvider returns the Gemini-backed generator. Generation is
// disabled (cached or sample content only) when the gemini provider is turned
// off in providers.yaml or no credential is configured.
func provideContentProvider(apiKeys *config.APIKeys, providers *appconfig.ProvidersConfig, logger *zap.Logger) (api.ContentProvider, error) {
	if !providers.ProviderEnabled("gemini") {
		logger.Info("gemini provider disabled in config; running on cached or sample episodes")
		return nil, nil
	}
	if apiKeys.Gemini == "" {
		logger.Info("no Gemini credential; running on cached or sample episodes")
		return nil, nil
	}
	client, err := gemini.NewClient(context.Background(), apiKeys.Gemini, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// provideTranslator honors the translation.provider override in
// providers.yaml, then falls back by credential presence (Gemini first); nil
// when neither credential is configured.
func provideTranslator(apiKeys *config.APIKeys, providers *appconfig.ProvidersConfig, logger *zap.Logger) (api.Translator, error) {
	if providers.TranslationProvider() == "openai" && apiKeys.OpenAI != "" {
		return openai.NewTranslator(apiKeys.OpenAI), nil
	}
	if apiKeys.Gemini != "" {
		client, err := gemini.NewClient(context.Background(), apiKeys.Gemini, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	}
	if apiKeys.OpenAI != "" {
		return openai.NewTranslator(apiKeys.OpenAI), nil
	}
	logger.Info("no translation credential; segment translation disabled")
	return nil, nil
}

// providePlayer builds the playback synchronizer
func providePlayer() *player.Player {
	return player.New()
}

// provideController wires the refresh controller
func provideController(dao repository.EpisodeDAO, provider api.ContentProvider, p *player.Player, logger *zap.Logger) *refresh.Controller {
	return refresh.NewController(dao, provider, p, logger)
}
