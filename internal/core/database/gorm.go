package database

import (
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Opts struct {
	// URL is the platform-provided connection string. Empty means the
	// local sqlite fallback file.
	URL                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
}

const sqliteFallbackPath = "petcare.db"

// Open connects through the driver implied by the URL scheme and applies
// the pool limits. The connection is ping-verified before returning so a
// dead store fails at boot instead of on the first request.
func Open(o Opts) (*gorm.DB, error) {
	dial := dialectorFor(o.URL)

	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return db.Session(&gorm.Session{PrepareStmt: true}), nil
}

func dialectorFor(rawURL string) gorm.Dialector {
	switch {
	case rawURL == "":
		return sqlite.Open(sqliteFallbackPath)
	case strings.HasPrefix(rawURL, "mysql://"), strings.Contains(rawURL, "@tcp("):
		return mysql.Open(strings.TrimPrefix(rawURL, "mysql://"))
	default:
		return postgres.Open(NormalizePostgresURL(rawURL))
	}
}

// NormalizePostgresURL rewrites the legacy "postgres://" scheme some
// hosting platforms emit to "postgresql://". The pgx driver accepts both,
// so this only matters for tooling that reuses the normalized value.
func NormalizePostgresURL(raw string) string {
	if strings.HasPrefix(raw, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(raw, "postgres://")
	}
	return raw
}

// Ping runs the liveness probe used by the health endpoint.
func Ping(db *gorm.DB) error {
	return db.Exec("SELECT 1").Error
}
