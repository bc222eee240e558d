package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds application configuration loaded from environment variables and .env file.
type AppConfig struct {
	// Profile store (the application database holding saved connections)
	DBHost       string
	DBPort       int
	DBUser       string
	DBPass       string
	DBName       string
	ProfileTable string

	// HTTP server
	Port    string
	GinMode string

	// Logging config
	LogLevel      string
	LogFile       string
	LogMaxSize    int // MB
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool

	// Gateway bounds
	ConnectTimeout time.Duration
	QueryTimeout   time.Duration
}

// Cfg is the global application configuration instance.
var Cfg AppConfig

// LoadConfig loads application configuration from .env file and environment variables.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		// logger is not initialized yet
		log.Printf("[WARN] .env file not found or cannot be loaded: %v", err)
	} else {
		log.Printf("[INFO] .env file loaded successfully")
	}

	Cfg = fromEnv()

	log.Printf("[INFO] Config loaded - ProfileStore: %s@%s:%d/%s (table %s), Port: %s, LogLevel: %s",
		Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName, Cfg.ProfileTable, Cfg.Port, Cfg.LogLevel)
	log.Printf("[INFO] Gateway bounds - ConnectTimeout: %v, QueryTimeout: %v", Cfg.ConnectTimeout, Cfg.QueryTimeout)
	return nil
}

func fromEnv() AppConfig {
	return AppConfig{
		DBHost:       getEnv("DB_HOST", "127.0.0.1"),
		DBPort:       getEnvInt("DB_PORT", 3306),
		DBUser:       getEnv("DB_USER", "root"),
		DBPass:       getEnv("DB_PASS", ""),
		DBName:       getEnv("DB_NAME", "dbgateway"),
		ProfileTable: getEnv("PROFILE_TABLE", "connections"),

		Port:    getEnv("PORT", "8081"),
		GinMode: getEnv("GIN_MODE", "release"),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFile:       getEnv("LOG_FILE", "/var/log/dbgateway/dbgatewayapi.log"),
		LogMaxSize:    getEnvInt("LOG_MAX_SIZE", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),

		ConnectTimeout: getEnvSeconds("CONNECT_TIMEOUT", 10),
		QueryTimeout:   getEnvSeconds("QUERY_TIMEOUT", 60),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

// getEnvSeconds reads a whole number of seconds. Non-positive values keep the default.
func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	seconds := getEnvInt(key, defaultSeconds)
	if seconds <= 0 {
		seconds = defaultSeconds
	}
	return time.Duration(seconds) * time.Second
}
