package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP   string // Host IP for the server
	RESTPort int    // Port for the REST API
	GinMode  string // Mode for the Gin framework (e.g., release, debug, test)

	DBHost     string // Hostname or IP address for the database
	DBPort     int    // Port number for the database
	DBUser     string // Username for the database
	DBPassword string // Password for the database
	DBName     string // Name of the database

	RedisHost string // Hostname or IP address for Redis
	RedisPort int    // Port number for Redis

	JWTSecret   string // Secret key for JWT signing
	JWTIssuer   string // Issuer claim for JWTs
	OperatorKey string // Shared key exchanged for operator tokens

	DatasetPath string // Path to the labeled expense-note CSV
	ModelPath   string // Path where the trained classifier is persisted

	RetrainThreshold int64 // Pending feedback count that triggers a retrain

	GridSide int // Side length of the navigation grid
	GoalCell int // Goal cell index of the navigation grid

	Alpha        float64 // Agent learning rate
	Gamma        float64 // Agent discount factor
	Epsilon      float64 // Initial exploration rate
	EpsilonDecay float64 // Per-step exploration decay factor
	EpsilonMin   float64 // Exploration rate floor
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	// Populate the Config struct with required environment variables
	return Config{
		HostIP:   mustGetEnv("HOST_IP"),
		RESTPort: mustGetEnvAsInt("REST_PORT"),
		GinMode:  getEnvWithDefault("GIN_MODE", "release"),

		DBHost:     mustGetEnv("DB_HOST"),
		DBPort:     mustGetEnvAsInt("DB_PORT"),
		DBUser:     mustGetEnv("DB_USER"),
		DBPassword: mustGetEnv("DB_PASS"),
		DBName:     mustGetEnv("DB_NAME"),

		RedisHost: mustGetEnv("REDIS_HOST"),
		RedisPort: mustGetEnvAsInt("REDIS_PORT"),

		JWTSecret:   mustGetEnv("JWT_SECRET"),
		JWTIssuer:   mustGetEnv("JWT_ISSUER"),
		OperatorKey: mustGetEnv("OPERATOR_KEY"),

		DatasetPath: mustGetEnv("DATASET_PATH"),
		ModelPath:   getEnvWithDefault("MODEL_PATH", "nb_model.gob"),

		RetrainThreshold: int64(getEnvAsIntWithDefault("RETRAIN_THRESHOLD", 25)),

		GridSide: getEnvAsIntWithDefault("GRID_SIDE", 4),
		GoalCell: getEnvAsIntWithDefault("GOAL_CELL", 15),

		Alpha:        getEnvAsFloatWithDefault("ALPHA", 0.1),
		Gamma:        getEnvAsFloatWithDefault("GAMMA", 0.9),
		Epsilon:      getEnvAsFloatWithDefault("EPSILON", 0.1),
		EpsilonDecay: getEnvAsFloatWithDefault("EPSILON_DECAY", 0.995),
		EpsilonMin:   getEnvAsFloatWithDefault("EPSILON_MIN", 0.01),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsFloatWithDefault retrieves a float environment variable or returns a default value if not set.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}
