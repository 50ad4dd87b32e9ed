package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/truth-compare/internal/truthtable"
	"github.com/DjordjeVuckovic/truth-compare/pkg/config/env"
	"github.com/DjordjeVuckovic/truth-compare/pkg/utils"
)

type Config struct {
	Port         string
	UseHttp2     bool
	CorsOrigins  []string
	MaxVariables int
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/truth_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2Str := os.Getenv("USE_HTTP2")
	useHttp2 := useHttp2Str == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	var origins []string
	corsOriginsEnv := os.Getenv("CORS_ORIGINS")
	if corsOriginsEnv != "" {
		origins = strings.Split(corsOriginsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		origins = utils.RemoveEmptyStrings(origins)
	}

	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxVars, err := parseMaxVariables(os.Getenv("MAX_VARIABLES"))
	if err != nil {
		return nil, fmt.Errorf("invalid max variables: %w", err)
	}

	return &Config{
		Port:         port,
		UseHttp2:     useHttp2,
		CorsOrigins:  origins,
		MaxVariables: maxVars,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

func parseMaxVariables(raw string) (int, error) {
	if raw == "" {
		return truthtable.DefaultMaxVariables, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("MAX_VARIABLES must be a number")
	}

	if n < 0 || n > truthtable.HardMaxVariables {
		return 0, fmt.Errorf("MAX_VARIABLES must be between 0 and %d", truthtable.HardMaxVariables)
	}

	return n, nil
}
