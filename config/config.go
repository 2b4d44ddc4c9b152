package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Store    StoreConfig
	LogLevel string
}

type StoreConfig struct {
	// Driver selects the key-value backend: "sugardb", "redis" or
	// "memory".
	Driver string

	// DataDir is where the embedded SugarDB backend persists its data.
	DataDir string

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string
	DB   int
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	storeConfig := StoreConfig{
		Driver:  getEnv("STORE_DRIVER", "sugardb"),
		DataDir: getEnv("STORE_DATA_DIR", defaultDataDir()),
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
			DB:   getEnvInt("REDIS_DB", 0),
		},
	}

	return Config{
		Store:    storeConfig,
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".campuschat"
	}
	return filepath.Join(home, ".campuschat")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}
