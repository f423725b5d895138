package config

import (
	"log/slog"
	"os"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DataDir               string
	OutputDir             string
	RateFile              string
	Timezone              string
	DatabaseURL           string
	SpreadsheetID         string
	GoogleCredentialsJSON string
}

// Load reads configuration from environment variables with sensible defaults.
// DatabaseURL and the Google settings are optional: without them the run
// works from the rate workbook alone and writes local xlsx files.
func Load() Config {
	return Config{
		DataDir:               envOrDefault("DATA_DIR", "./data"),
		OutputDir:             envOrDefault("OUTPUT_DIR", "./output"),
		RateFile:              envOrDefaultWarn("RATE_FILE", "./rate.xlsx"),
		Timezone:              envOrDefault("TIMEZONE", "Asia/Tokyo"),
		DatabaseURL:           envOrDefault("DATABASE_URL", ""),
		SpreadsheetID:         envOrDefault("SPREADSHEET_ID", ""),
		GoogleCredentialsJSON: envOrDefault("GOOGLE_CREDENTIALS_JSON", ""),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultWarn(key, defaultVal string) string {
	v := envOrDefault(key, defaultVal)
	if v == "" {
		slog.Warn("required env var not set", "key", key)
	}
	return v
}
