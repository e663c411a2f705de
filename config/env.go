package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// LoadEnv loads environment variables from the first .env file found. A
// missing file is not an error. Variables already set in the environment win
// over the file.
func LoadEnv(log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	// Try multiple possible locations for .env file
	possiblePaths := []string{
		os.Getenv("DASHBOARD_ENV"), // Environment-specified path
		".env",
		"../.env",
	}

	var loadedFile string
	for _, path := range possiblePaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			loadedFile = path
			break
		}
	}
	if loadedFile == "" {
		log.Debug("no .env file found")
		return nil
	}

	file, err := os.Open(loadedFile)
	if err != nil {
		return fmt.Errorf("opening .env file: %w", err)
	}
	defer file.Close()

	log.Info("loading environment", zap.String("file", loadedFile))
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		// Remove quotes if present
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		log.Debug("set environment variable", zap.String("key", key))
	}
	return scanner.Err()
}
