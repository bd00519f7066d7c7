package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// MinHashSecretLength is the minimum required length for the IP hash secret in production
	MinHashSecretLength = 32
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	ContactInbox  string
	// Other
	AllowedOrigins   []string
	AppURL           string
	ProductAppURL    string // Where login/signup/trial/demo links go
	HashSecret       string // Key for hashing submitter IPs
	TursoDatabaseURL string
	TursoAuthToken   string
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
	AssetDir          string // Local asset directory when R2 is not configured
	// Landing page
	ContentPath      string
	CounterTick      time.Duration
	CarouselAutoplay time.Duration
	CarouselLock     time.Duration
	ContactRetention time.Duration
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	hashSecret := getEnv("HASH_SECRET", "")

	// Validate hash secret - this will fatal in production if invalid
	ValidateHashSecret(hashSecret, environment)

	// In development, generate a secure secret if none provided
	if hashSecret == "" && environment != "production" {
		hashSecret = GenerateSecureSecret()
		log.Println("[INFO] Generated temporary hash secret for development. Set HASH_SECRET env var for stable IP hashes.")
	}

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DBPath:             getEnv("DB_PATH", "db/landing.db"),
		Environment:        environment,
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@donna.legal"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "DONNA"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		ContactInbox:       getEnv("CONTACT_INBOX", "hello@donna.legal"),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:             getEnv("APP_URL", "http://localhost:8080"),
		ProductAppURL:      getEnv("PRODUCT_APP_URL", "https://app.donna.legal"),
		HashSecret:         hashSecret,
		TursoDatabaseURL:   getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:     getEnv("TURSO_AUTH_TOKEN", ""),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:       getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:        getEnv("R2_PUBLIC_URL", ""),
		AssetDir:           getEnv("ASSET_DIR", "static/images"),
		ContentPath:        getEnv("CONTENT_PATH", ""),
		CounterTick:        getEnvDuration("COUNTER_TICK", 30*time.Millisecond),
		CarouselAutoplay:   getEnvDuration("CAROUSEL_AUTOPLAY", 6*time.Second),
		CarouselLock:       getEnvDuration("CAROUSEL_LOCK", 500*time.Millisecond),
		ContactRetention:   time.Duration(getEnvInt("CONTACT_RETENTION", 365)) * 24 * time.Hour,
	}
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration parses Go duration strings ("30ms", "6s"). Invalid or
// non-positive values fall back to the default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid number for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// ValidateHashSecret validates the IP hash secret meets security requirements
// In production, it must be at least 32 bytes and not a known insecure default
func ValidateHashSecret(secret string, environment string) error {
	// Known insecure defaults that must be rejected
	insecureDefaults := []string{
		"change-me",
		"secret",
		"development",
		"test",
		"",
	}

	for _, insecure := range insecureDefaults {
		if strings.EqualFold(secret, insecure) {
			if environment == "production" {
				log.Fatal("[CRITICAL] HASH_SECRET is set to an insecure default value. Generate a secure random secret with: openssl rand -base64 32")
			}
			log.Printf("[WARNING] HASH_SECRET is set to an insecure default value. This is acceptable only in development.")
			return nil
		}
	}

	if environment == "production" {
		if len(secret) < MinHashSecretLength {
			log.Fatalf("[CRITICAL] HASH_SECRET must be at least %d characters in production (current: %d). Generate with: openssl rand -base64 32", MinHashSecretLength, len(secret))
		}
	}

	return nil
}

// GenerateSecureSecret generates a cryptographically secure random secret
func GenerateSecureSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Printf("[WARNING] Failed to generate secure secret: %v", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(bytes)
}
