package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name     string `envconfig:"NAME" default:"flightdesk"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		// HomeAirport is the IATA code the guest board is built around.
		HomeAirport string `envconfig:"HOME_AIRPORT" default:"SVO"`
		// WipeResetSeats is the seat count every flight is reset to when
		// passenger records are wiped.
		WipeResetSeats int `envconfig:"WIPE_RESET_SEATS" default:"250"`
	} `envconfig:"APP"`

	DB struct {
		// DataDir is the per-user writable directory the database file is
		// materialized into. Empty means the OS user config directory.
		DataDir string `envconfig:"DATA_DIR"`
		// SeedPath points at the bundled template database copied into
		// DataDir on first launch.
		SeedPath string `envconfig:"SEED_PATH" default:"main_db.db"`
		FileName string `envconfig:"FILE_NAME" default:"main_db.db"`
	} `envconfig:"DB"`

	Auth struct {
		BcryptCost int `envconfig:"BCRYPT_COST" default:"10"`
		// FallbackName is returned by display-name lookups for unknown logins.
		FallbackName string `envconfig:"FALLBACK_NAME" default:"User"`
	} `envconfig:"AUTH"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		if procErr := envconfig.Process("", &conf); procErr != nil {
			err = fmt.Errorf("processing environment variables: %w", procErr)

			return
		}

		initialized = true

		log.Info().Msg("Application configuration initialized successfully")
	})

	return err
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
