package config

import (
	"os"
	"strconv"
	"time"
)

type DatabaseConfig struct {
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
	RetryWrites     bool
}

// LoadDatabaseConfig reads the MongoDB settings from the environment.
// Kept free of the utils package so utils can depend on config.
func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             envString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     envUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     envUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(envInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		DatabaseName:    envString("MONGO_DB", "lifedesk"),
		RetryWrites:     envBool("MONGO_RETRY_WRITES", true),
	}
}

func envString(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envUint64(key string, defaultVal uint64) uint64 {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
