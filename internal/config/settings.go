package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Settings holds server, storage and backup configuration loaded from the
// environment.
type Settings struct {
	// Server
	Host string
	Port string

	// Episode store
	DBDriver    string // "sqlite" or "postgres"
	SQLitePath  string
	PostgresDSN string

	// Backup target
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

// GetSettings returns application settings from environment or defaults
func GetSettings() *Settings {
	return &Settings{
		Host:           getEnvOrDefault("SUOMICAST_HOST", "0.0.0.0"),
		Port:           getEnvOrDefault("SUOMICAST_PORT", DefaultHTTPPort),
		DBDriver:       getEnvOrDefault("SUOMICAST_DB_DRIVER", "sqlite"),
		SQLitePath:     getEnvOrDefault("SUOMICAST_SQLITE_PATH", defaultSQLitePath()),
		PostgresDSN:    getEnvOrDefault("SUOMICAST_POSTGRES_DSN", ""),
		MinioEndpoint:  getEnvOrDefault("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnvOrDefault("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnvOrDefault("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnvOrDefault("MINIO_BUCKET", "suomicast-episodes"),
		MinioUseSSL:    getEnvBoolOrDefault("MINIO_USE_SSL", false),
	}
}

// Addr returns the host:port listen address
func (s *Settings) Addr() string {
	return s.Host + ":" + s.Port
}

// Validate checks settings consistency
func (s *Settings) Validate() error {
	if err := ValidatePort(s.Port); err != nil {
		return err
	}
	switch s.DBDriver {
	case "sqlite":
		if s.SQLitePath == "" {
			return fmt.Errorf("SUOMICAST_SQLITE_PATH must not be empty")
		}
	case "postgres":
		if s.PostgresDSN == "" {
			return fmt.Errorf("SUOMICAST_POSTGRES_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver '%s' (want sqlite or postgres)", s.DBDriver)
	}
	return nil
}

// HasBackupTarget reports whether MinIO backup is configured
func (s *Settings) HasBackupTarget() bool {
	return s.MinioEndpoint != "" && s.MinioAccessKey != "" && s.MinioSecretKey != ""
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "suomicast.db"
	}
	return filepath.Join(home, ".suomicast", "suomicast.db")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
