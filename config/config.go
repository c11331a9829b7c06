package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Registry RegistryConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port string
}

// RegistryConfig points at the external camera registry. When Endpoint is
// empty, camera creation stays local to the in-memory store.
type RegistryConfig struct {
	Endpoint string
	Timeout  time.Duration
}

type SeedConfig struct {
	Enabled bool
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Registry: RegistryConfig{
			Endpoint: getEnv("CAMERA_REGISTRY_URL", ""),
			Timeout:  getDuration("CAMERA_REGISTRY_TIMEOUT", 10*time.Second),
		},
		Seed: SeedConfig{
			Enabled: getBool("SEED_DEMO_DATA", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
