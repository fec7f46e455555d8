package app

import (
	"errors"
	"net/url"
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogBoard/pkg/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAttempts = 10
	defaultTimeout  = time.Second

	migrationsPath = "migrations"
)

var ErrNoMigrationsDir = errors.New("migrations directory does not exist")

func Migrate(pgUrl string) error {
	pgUrl = withSSLModeDisabled(pgUrl)
	log.Info("Running migrations")

	var (
		connAttempts = defaultAttempts
		err          error
		mgrt         *migrate.Migrate
	)

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		return errorsUtils.WrapPathErr(ErrNoMigrationsDir)
	}

	for connAttempts > 0 {
		mgrt, err = migrate.New("file://"+migrationsPath, pgUrl)
		if err == nil {
			break
		}

		connAttempts--
		log.Infof("Postgres trying to connect, attempts left: %d", connAttempts)
		time.Sleep(defaultTimeout)
	}

	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer mgrt.Close()

	err = mgrt.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Migration no change")
		return nil
	}
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	log.Info("Migration successful up")
	return nil
}

// withSSLModeDisabled adds sslmode=disable unless the URL already sets sslmode.
func withSSLModeDisabled(pgUrl string) string {
	u, err := url.Parse(pgUrl)
	if err != nil {
		return pgUrl
	}
	q := u.Query()
	if q.Has("sslmode") {
		return pgUrl
	}
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}
