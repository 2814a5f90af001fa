package logger

import (
	"os"

	"docvault/internal/app/server/config"

	"golang.org/x/exp/slog"
)

// New возвращает slog.Logger, настроенный под окружение:
// local — цветной текстовый вывод с уровнем debug,
// dev   — JSON с уровнем debug,
// prod  — JSON с уровнем info.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return setupPrettySlog()
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
