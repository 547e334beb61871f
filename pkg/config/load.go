package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finish derives computed fields and reports every invalid setting at once.
func (c *Config) finish() error {
	err := c.DB.resolveDSN()
	err = multierr.Append(err, positive(EnvJWTAccessTTL, c.JWT.AccessTTL > 0))
	err = multierr.Append(err, positive(EnvRefreshTokenTTL, c.JWT.RefreshTTL > 0))
	err = multierr.Append(err, positive(EnvArgonTime, c.Password.ArgonTime > 0))
	err = multierr.Append(err, positive(EnvArgonMemory, c.Password.ArgonMemoryKB > 0))
	return err
}

func positive(name string, ok bool) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%s must be positive", name)
}

func (db *DBConfig) resolveDSN() error {
	if db.DSN != "" {
		return nil
	}

	var err error
	for name, value := range map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	} {
		if value == "" {
			err = multierr.Append(err, fmt.Errorf("%s is required when %s is unset", name, EnvDBDSN))
		}
	}
	if err != nil {
		return err
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.User(db.LegacyUser),
		Host:   net.JoinHostPort(db.LegacyHost, strconv.Itoa(db.LegacyPort)),
		Path:   db.LegacyName,
	}
	if db.LegacyPassword != "" {
		dsn.User = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}
	if db.LegacySSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {db.LegacySSLMode}}.Encode()
	}
	db.DSN = dsn.String()
	return nil
}
