package api

import (
	"github.com/lingualearn/linguaflash/internal/services"
	"github.com/lingualearn/linguaflash/internal/speech"
)

// Server holds the service dependencies of the HTTP API.
type Server struct {
	Words        services.WordService
	Reviews      services.ReviewService
	Progress     services.ProgressService
	Games        services.GameService
	Translations services.TranslateService
	Settings     services.SettingsService
	Speaker      speech.Speaker
}
