// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	JWT      JWTConfig      `json:"jwt"`
	App      AppConfig      `json:"app"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host  string `json:"host"`
	Port  int    `json:"port"`
	Debug bool   `json:"debug"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	MongoDB MongoDBConfig `json:"mongodb"`
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	Host           string        `json:"host"`
	Port           int           `json:"port"`
	Username       string        `json:"username"`
	Password       string        `json:"password"`
	Database       string        `json:"database"`
	AuthDatabase   string        `json:"authDatabase"`
	ReplicaSet     string        `json:"replicaSet"`
	SSL            bool          `json:"ssl"`
	MaxPoolSize    int           `json:"maxPoolSize"`
	MinPoolSize    int           `json:"minPoolSize"`
	ConnectTimeout time.Duration `json:"connectTimeout"`
	SocketTimeout  time.Duration `json:"socketTimeout"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
	ClaimKey   string `json:"claimKey"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Name       string `json:"name"`
	WebDomain  string `json:"webDomain"`
	CORSOrigin string `json:"corsOrigin"`
}

// LoadFromEnv loads the configuration from environment variables.
// A .env file is loaded first when present; explicit environment variables
// always win over .env values.
func LoadFromEnv() (*Config, error) {
	// Best effort; missing .env is fine in production.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:  getEnv("SERVER_HOST", "0.0.0.0"),
			Port:  getEnvInt("SERVER_PORT", 8080),
			Debug: getEnvBool("SERVER_DEBUG", false),
		},
		Database: DatabaseConfig{
			MongoDB: MongoDBConfig{
				Host:           getEnv("MONGODB_HOST", "localhost"),
				Port:           getEnvInt("MONGODB_PORT", 27017),
				Username:       getEnv("MONGODB_USERNAME", ""),
				Password:       getEnv("MONGODB_PASSWORD", ""),
				Database:       getEnv("MONGODB_DATABASE", "brighttech"),
				AuthDatabase:   getEnv("MONGODB_AUTH_DATABASE", ""),
				ReplicaSet:     getEnv("MONGODB_REPLICA_SET", ""),
				SSL:            getEnvBool("MONGODB_SSL", false),
				MaxPoolSize:    getEnvInt("MONGODB_MAX_POOL_SIZE", 100),
				MinPoolSize:    getEnvInt("MONGODB_MIN_POOL_SIZE", 10),
				ConnectTimeout: getEnvDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
				SocketTimeout:  getEnvDuration("MONGODB_SOCKET_TIMEOUT", 30*time.Second),
			},
		},
		JWT: JWTConfig{
			PublicKey:  decodeKey(getEnv("JWT_PUBLIC_KEY", "")),
			PrivateKey: decodeKey(getEnv("JWT_PRIVATE_KEY", "")),
			ClaimKey:   getEnv("JWT_CLAIM_KEY", "claim"),
		},
		App: AppConfig{
			Name:       getEnv("APP_NAME", "bright-tech-server"),
			WebDomain:  getEnv("APP_WEB_DOMAIN", "http://localhost:3000"),
			CORSOrigin: getEnv("APP_CORS_ORIGIN", "*"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.MongoDB.Host == "" {
		return fmt.Errorf("mongodb host is required")
	}
	if c.Database.MongoDB.Database == "" {
		return fmt.Errorf("mongodb database name is required")
	}
	if c.JWT.PublicKey == "" {
		return fmt.Errorf("jwt public key is required")
	}
	return nil
}

// decodeKey converts escaped newlines in PEM keys passed via env vars.
func decodeKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		// Bare integers are treated as seconds.
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
