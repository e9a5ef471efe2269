package db

import (
	"fmt"     // Error wrapping
	"strings" // URL scheme detection
	"time"    // Slow query threshold

	"irys_gallery/internal/config" // Pool configuration

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/driver/postgres"    // PostgreSQL driver for GORM
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger interface
)

// Dialector picks the GORM driver from the connection string scheme.
// postgres:// and postgresql:// go to PostgreSQL, mysql:// to MySQL (the rest is a go-sql-driver DSN),
// sqlite:// and file: to SQLite. Anything else is handed to PostgreSQL as a key=value DSN.
func Dialector(url string) (gorm.Dialector, error) {
	switch {
	case url == "":
		return nil, fmt.Errorf("empty database url")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), nil // PostgreSQL URL
	case strings.HasPrefix(url, "mysql://"):
		return mysql.Open(strings.TrimPrefix(url, "mysql://")), nil // MySQL DSN
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(url, "sqlite://")), nil // SQLite path
	case strings.HasPrefix(url, "file:"):
		return sqlite.Open(url), nil // SQLite URI
	case strings.Contains(url, "://"):
		return nil, fmt.Errorf("unsupported database url scheme in %q", url[:strings.Index(url, "://")])
	default:
		return postgres.Open(url), nil // PostgreSQL key=value DSN
	}
}

// Open opens the process-wide connection pool and applies the pool limits
func Open(url string, pool config.PoolConfig) (*gorm.DB, error) {
	dialector, err := Dialector(url)
	if err != nil {
		return nil, err
	}
	// Route SQL warnings through logrus
	gormLogger := logger.New(logrus.StandardLogger(), logger.Config{
		SlowThreshold:             200 * time.Millisecond, // Warn on slow queries
		LogLevel:                  logger.Warn,            // Only warnings and errors
		IgnoreRecordNotFoundError: true,                   // Lookups miss routinely
	})
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)       // Max open connections
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)       // Max idle connections
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime) // Recycle old connections
	return db, nil
}
