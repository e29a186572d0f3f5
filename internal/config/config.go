package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port                 string
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	RedisURL             string
	RedisPassword        string
	HistoryCap           int
	JWTSecret            string
	AccessTokenTTLMin    int
	SearchDepth          int
	AllowedOrigins       []string
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	dbURL := GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", ""))
	dbMaxOpenConns := GetEnvAsInt("DB_MAX_OPEN_CONNS", 25)
	dbMaxIdleConns := GetEnvAsInt("DB_MAX_IDLE_CONNS", 25)
	dbConnMaxLifetimeMin := GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)

	redisURL := GetEnv("REDIS_URL", "localhost:6379")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	historyCap := GetEnvAsInt("HISTORY_CAP", 50)

	jwtSecret := GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production")
	accessTokenTTLMin := GetEnvAsInt("ACCESS_TOKEN_TTL_MINUTES", 60)

	searchDepth := GetEnvAsInt("SEARCH_DEPTH", 5)

	allowedOrigins := []string{"http://localhost:5173"}
	if extras := GetEnv("ALLOWED_ORIGINS", ""); extras != "" {
		for _, origin := range strings.Split(extras, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	AppConfig = &Config{
		Port:                 port,
		DatabaseURL:          dbURL,
		DBMaxOpenConns:       dbMaxOpenConns,
		DBMaxIdleConns:       dbMaxIdleConns,
		DBConnMaxLifetimeMin: dbConnMaxLifetimeMin,
		RedisURL:             redisURL,
		RedisPassword:        redisPassword,
		HistoryCap:           historyCap,
		JWTSecret:            jwtSecret,
		AccessTokenTTLMin:    accessTokenTTLMin,
		SearchDepth:          searchDepth,
		AllowedOrigins:       allowedOrigins,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
