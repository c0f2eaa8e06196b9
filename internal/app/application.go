package app

import (
	"go.uber.org/zap"

	"suomicast/internal/app/api"
	"suomicast/internal/app/player"
	"suomicast/internal/app/refresh"
	"suomicast/internal/app/repository"
	"suomicast/internal/config"
)

// Application bundles the wired object graph for the commands.
type Application struct {
	Settings   *config.Settings
	Logger     *zap.Logger
	DAO        repository.EpisodeDAO
	Player     *player.Player
	Controller *refresh.Controller
	Translator api.Translator
	Provider   api.ContentProvider
}

// Close releases held resources in reverse construction order.
func (a *Application) Close() error {
	err := a.DAO.Close()
	_ = a.Logger.Sync()
	return err
}
