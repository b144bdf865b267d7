package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"resto/config"
	"resto/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// connectionString builds the golang-migrate URL for the write database.
func connectionString(config *config.Config) string {
	write := config.DB.Postgres.Write

	query := url.Values{}

	if write.SSLMode != "" {
		query.Set("sslmode", write.SSLMode)
	}

	if config.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     "/" + getDBName(config, write.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error reading embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func run(mig *migrate.Migrate, action string) error {
	var err error

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", action, err)
	}

	return nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err = run(mig, action); err != nil {
		return err
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Warn().Err(err).Msg("Could not read migration version")
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
