package gateway

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/julianstephens/myday/internal/constants"
	apperrors "github.com/julianstephens/myday/internal/errors"
	"github.com/julianstephens/myday/internal/keyring"
	"github.com/julianstephens/myday/internal/logger"
)

// Key sources reported by ResolveAPIKey.
const (
	SourceFlag    = "flag"
	SourceEnv     = "environment"
	SourceKeyring = "keyring"
)

// LoadDotEnv loads .env files from the given directories. Variables already
// set in the environment win, and missing files are ignored.
func LoadDotEnv(dirs ...string) {
	for _, dir := range dirs {
		path := filepath.Join(dir, constants.EnvFileName)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logger.Warn("Could not load env file", "path", path, "error", err)
			continue
		}
		logger.Debug("Loaded env file", "path", path)
	}
}

// ResolveAPIKey finds the API key: the explicit value first, then the
// environment, then the OS keyring. It returns where the key came from.
func ResolveAPIKey(explicit string) (string, string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, SourceFlag, nil
	}
	for _, name := range []string{constants.EnvAPIKey, constants.EnvLegacyAPIKey} {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			return key, SourceEnv, nil
		}
	}

	key, err := keyring.GetAPIKey()
	if err == nil && key != "" {
		return key, SourceKeyring, nil
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Keyring lookup failed", "error", err)
	}
	return "", "", &apperrors.GatewayError{Op: "configure", Err: ErrMissingAPIKey}
}

// New resolves the API key and builds a GeminiClient.
func New(cfg Config) (*GeminiClient, error) {
	key, source, err := ResolveAPIKey(cfg.APIKey)
	if err != nil {
		return nil, err
	}
	logger.Debug("Using API key", "source", source)
	cfg.APIKey = key
	return NewGeminiClient(cfg)
}
