package server

import (
	"log/slog"

	"github.com/gridironfacts/nfl-data-service/internal/config"
	"github.com/gridironfacts/nfl-data-service/internal/logging"
	"github.com/gridironfacts/nfl-data-service/internal/providers"
	"github.com/gridironfacts/nfl-data-service/internal/providers/espn"
	"github.com/gridironfacts/nfl-data-service/internal/providers/fixture"
)

func selectSource(cfg config.Config, logger *slog.Logger) providers.Source {
	switch cfg.DataSource {
	case config.SourceFixture, "":
		return fixture.New()
	case config.SourceESPN:
		return espn.NewClient(espn.Config{
			BaseURL: cfg.ESPN.BaseURL,
			APIKey:  cfg.ESPN.APIKey,
			Timeout: cfg.ESPN.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown data source, falling back to fixture",
				slog.String(logging.FieldSource, cfg.DataSource))
		}
		return fixture.New()
	}
}
