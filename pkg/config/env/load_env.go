package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file without
// overriding variables that are already set.
// ENV_PATH, when set, wins over defaultPath. A missing file is an error only
// in local mode (env "local" or unset).
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err != nil {
		if env == "local" || env == "" {
			return err
		}
		slog.Debug("Skipping .env ...", "path", envPath)
	}

	return nil
}
