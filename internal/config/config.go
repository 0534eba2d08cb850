package config

import (
	"os"
	"path/filepath"

	"github.com/lucasvtf/municcasign-code-challenge/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort string
	DataDir    string
	LogLevel   string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// PaaS platforms provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort: getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		DataDir:    getEnvOrDefault("DATA_DIR", "./data"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetDataDir returns the directory holding the collection files
func (c *AppConfig) GetDataDir() string {
	return c.DataDir
}

// GetUsersFilePath returns the path of the users collection file
func (c *AppConfig) GetUsersFilePath() string {
	return filepath.Join(c.DataDir, "users.json")
}

// GetDocumentsFilePath returns the path of the documents collection file
func (c *AppConfig) GetDocumentsFilePath() string {
	return filepath.Join(c.DataDir, "documents.json")
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
