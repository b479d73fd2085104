package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// Cart persistence.
	CartStorageBackend string        `mapstructure:"CART_STORAGE_BACKEND"`
	CartStorageKey     string        `mapstructure:"CART_STORAGE_KEY"`
	CartDataDir        string        `mapstructure:"CART_DATA_DIR"`
	CartTTL            time.Duration `mapstructure:"CART_TTL"`
	SQLitePath         string        `mapstructure:"SQLITE_PATH"`
	PostgresURL        string        `mapstructure:"POSTGRES_URL"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCartDB   int    `mapstructure:"REDIS_CART_DB"`

	// MongoDB.
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Google Places.
	GoogleAPIKey       string `mapstructure:"GOOGLE_API_KEY"`
	PlacesRadiusMeters int    `mapstructure:"PLACES_RADIUS_METERS"`
}

// Storage backends accepted by CART_STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMongo    = "mongo"
)

var AppConfig Config

// Load reads .env, an optional config.yaml and the environment, in that order of precedence
// (environment wins). The result is also stored in AppConfig.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.CartStorageBackend = strings.ToLower(strings.TrimSpace(cfg.CartStorageBackend))

	AppConfig = cfg
	return cfg, nil
}

// LoadConfig is Load for callers that cannot continue without configuration.
func LoadConfig() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("CART_STORAGE_BACKEND", BackendFile)
	v.SetDefault("CART_STORAGE_KEY", "trip-cart-storage")
	v.SetDefault("CART_DATA_DIR", "./data")
	v.SetDefault("CART_TTL", "0s")
	v.SetDefault("SQLITE_PATH", "./data/tripcart.db")
	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CART_DB", 0)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "tripcart")
	v.SetDefault("GOOGLE_API_KEY", "")
	v.SetDefault("PLACES_RADIUS_METERS", 1500)
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
