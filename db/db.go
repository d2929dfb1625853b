package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const (
	// one console match per process; a handful of connections is plenty
	maxOpenConns = 4
	maxIdleConns = 2
	connMaxLife  = time.Minute * 15

	MigrationDir = "file://db/migration"
	databaseName = "seabattle"
)

var ErrDirtyDatabase = errors.New("database is dirty")

func Migrate(db *sql.DB, migrationDir string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		DatabaseName: databaseName,
	})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationDir, databaseName, driver)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return ErrDirtyDatabase
	}
	log.Debug("migration", "version", version)

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return err
	}
	log.Info("migration successful")
	return nil
}

// ConnectToDb opens a pool, pings it and brings the schema up to date.
func ConnectToDb(psqlUrl string) (*sql.DB, error) {
	// Open only validates its arguments
	db, err := sql.Open("postgres", psqlUrl)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)

	if err := Migrate(db, MigrationDir); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
