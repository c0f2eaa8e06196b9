//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"suomicast/internal/config"
)

// InitializeApplication builds the full object graph from environment
// configuration. Run `wire ./internal/app` after changing providers.
func InitializeApplication(apiKeys *config.APIKeys) (*Application, error) {
	wire.Build(
		provideSettings,
		provideLogger,
		provideEpisodeDAO,
		provideProvidersConfig,
		provideContentProvider,
		provideTranslator,
		providePlayer,
		provideController,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
