package db

import (
	"fmt"
	"log"
	"net/url"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Options selects the database backend. A Turso URL takes precedence over
// the local file path.
type Options struct {
	Path        string
	TursoURL    string
	TursoToken  string
	Environment string
}

// Initialize sets up the database connection. Local files use WAL mode for
// concurrency; a Turso URL connects through the libsql driver.
func Initialize(opts Options) error {
	// Determine log level based on environment
	logLevel := logger.Info
	if opts.Environment == "production" {
		logLevel = logger.Warn
	}

	conn, err := Open(opts, logLevel)
	if err != nil {
		return err
	}
	DB = conn
	return nil
}

// Open connects without touching the package-level DB.
func Open(opts Options, logLevel logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if opts.TursoURL != "" {
		dsn, err := TursoDSN(opts.TursoURL, opts.TursoToken)
		if err != nil {
			return nil, err
		}
		dialector = sqlite.New(sqlite.Config{DriverName: "libsql", DSN: dsn})
	} else {
		// Enable WAL mode for better concurrency support
		dialector = sqlite.Open(opts.Path + "?_journal_mode=WAL")
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if opts.TursoURL != "" {
		log.Println("Database connection established (Turso)")
	} else {
		log.Println("Database connection established (WAL mode enabled)")
	}
	return conn, nil
}

// TursoDSN adds the auth token to a libsql URL.
func TursoDSN(rawURL, token string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid TURSO_DATABASE_URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid TURSO_DATABASE_URL: %q", rawURL)
	}
	if token != "" {
		q := u.Query()
		q.Set("authToken", token)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
