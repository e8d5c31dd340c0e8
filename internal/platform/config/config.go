package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	CORSOrigin        string
	RateLimit         string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Admin credentials guarding the fx-override endpoints. The password is
	// stored as a bcrypt hash.
	AdminUsername     string
	AdminPasswordHash string

	// Live FX provider endpoints and resolution behaviour.
	FxPrimaryURL  string
	FxTertiaryURL string
	FxTimeout     time.Duration
	FxCacheTTL    time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "tripwise-backend")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("FX_PRIMARY_URL", "https://api.exchangerate.host/latest")
	viper.SetDefault("FX_TERTIARY_URL", "https://open.er-api.com/v6/latest")
	viper.SetDefault("FX_TIMEOUT", "3s")
	viper.SetDefault("FX_CACHE_TTL", "10m")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CORSOrigin = viper.GetString("CORS_ORIGIN")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Rate override admin login is disabled.")
	}

	cfg.FxPrimaryURL = viper.GetString("FX_PRIMARY_URL")
	cfg.FxTertiaryURL = viper.GetString("FX_TERTIARY_URL")

	fxTimeoutStr := viper.GetString("FX_TIMEOUT")
	fxTimeout, err := time.ParseDuration(fxTimeoutStr)
	if err != nil {
		fxTimeout = 3 * time.Second
		log.Printf("Warning: Invalid value for FX_TIMEOUT ('%s'). Defaulting to %s.\n", fxTimeoutStr, fxTimeout.String())
	}
	cfg.FxTimeout = fxTimeout

	fxCacheTTLStr := viper.GetString("FX_CACHE_TTL")
	fxCacheTTL, err := time.ParseDuration(fxCacheTTLStr)
	if err != nil {
		fxCacheTTL = 10 * time.Minute
		log.Printf("Warning: Invalid value for FX_CACHE_TTL ('%s'). Defaulting to %s.\n", fxCacheTTLStr, fxCacheTTL.String())
	}
	cfg.FxCacheTTL = fxCacheTTL

	return cfg, nil
}
