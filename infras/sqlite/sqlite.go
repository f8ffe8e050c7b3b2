package sqlite

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"flightdesk/config"
)

// Connection owns the single handle to the embedded database file. The driver
// handle is not safe for concurrent callers, so the pool is capped at one open
// connection and database/sql serializes access on it.
type Connection struct {
	DB   *sqlx.DB
	Path string
}

// New materializes the database file from the bundled seed on first launch,
// then opens it. The seed is copied exactly once; an existing copy is never
// re-synced from the template. Every failure is returned to the assembly: the
// application then runs with a non-functional data layer and each operation
// fails individually.
func New(config *config.Config) (*Connection, error) {
	dataDir, err := resolveDataDir(config)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dataDir, err)
	}

	destination := filepath.Join(dataDir, config.DB.FileName)

	if _, err := os.Stat(destination); os.IsNotExist(err) {
		if err := copySeed(config.DB.SeedPath, destination); err != nil {
			return nil, err
		}

		log.Info().Str("path", destination).Msg("Database file materialized from bundled seed")
	} else {
		log.Info().Str("path", destination).Msg("Database file already exists")
	}

	return Open(destination)
}

// Open opens a database file (or ":memory:") without seed materialization.
func Open(path string) (*Connection, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	// One live connection for the process lifetime; the store does not
	// guarantee multi-caller safety over a single handle.
	db.SetMaxOpenConns(1)

	log.Info().Str("path", path).Msg("Connected to database")

	return &Connection{DB: db, Path: path}, nil
}

func (c *Connection) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}

	return c.DB.Close() //nolint:wrapcheck
}

func resolveDataDir(config *config.Config) (string, error) {
	if config.DB.DataDir != "" {
		return config.DB.DataDir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}

	return filepath.Join(base, config.App.Name), nil
}

func copySeed(seedPath, destination string) error {
	source, err := os.Open(seedPath)
	if err != nil {
		return fmt.Errorf("bundled seed database not found at %s: %w", seedPath, err)
	}
	defer source.Close()

	target, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("creating database file %s: %w", destination, err)
	}
	defer target.Close()

	if _, err := io.Copy(target, source); err != nil {
		return fmt.Errorf("copying seed database to %s: %w", destination, err)
	}

	return nil
}
