// internal/database/database.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/anz-davar/giuson/internal/config"
	"github.com/anz-davar/giuson/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Pure Go sqlite driver registered as "sqlite".
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// GormConfig is the shared gorm configuration. Errors are translated so
// duplicate keys surface as gorm.ErrDuplicatedKey where the dialect supports it.
func GormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Open connects to the database selected by cfg.Database.Driver.
func Open(cfg *config.Config, level logger.LogLevel) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		return OpenSQLite(cfg.Database.Path, level)
	case "postgres", "":
		return OpenPostgres(cfg.DSN(), level)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func OpenPostgres(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), GormConfig(level))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return configurePool(db, 25)
}

// FromSQL wraps an already opened postgres *sql.DB, such as one opened with
// lib/pq.
func FromSQL(sqlDB *sql.DB, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), GormConfig(level))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

// OpenSQLite opens a file database. SQLite allows a single writer, so the
// pool is limited to one connection and transactions queue behind each other.
func OpenSQLite(path string, level logger.LogLevel) (*gorm.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: sqliteDriverName,
		DSN:        dsn,
	}), GormConfig(level))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return configurePool(db, 1)
}

func configurePool(db *gorm.DB, maxOpen int) (*gorm.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates every table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
