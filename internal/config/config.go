package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration. Every field has a
// default, so the check runs without a config file; the YAML file and the
// environment only override.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Database contains the connection parameters of the ingestion database,
	// reached through a local cloud-sql-proxy.
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"postgres" yaml:"username"`
		// Password for database authentication; intentionally without a default
		Password string `env:"DATABASE_PASSWORD" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"127.0.0.1" yaml:"host"`
		// Port is the local port the proxy forwards to the managed instance
		Port int `env:"DATABASE_PORT" env-default:"5434" yaml:"port"`
		// SslMode defines the SSL mode for the connection; the proxy already encrypts
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"ttkit_db" yaml:"name"`
		// ConnectTimeout bounds connecting and pinging; zero keeps the driver default
		ConnectTimeout time.Duration `env:"DATABASE_CONNECT_TIMEOUT" env-default:"0s" yaml:"connectTimeout"`
	} `yaml:"database"`

	// Proxy describes the cloud-sql-proxy the operator is expected to run.
	// It is only used to print remediation hints.
	Proxy struct {
		// InstanceConnectionName is the Cloud SQL instance the proxy forwards to
		InstanceConnectionName string `env:"PROXY_INSTANCE" env-default:"apti-ttkit:asia-northeast1:ttkit-db-instance" yaml:"instance"` //nolint: lll
	} `yaml:"proxy"`

	// Report contains what the status check looks at and how it is titled.
	Report struct {
		// Title is printed in the report banner
		Title string `env:"REPORT_TITLE" env-default:"sellers.json fetch status check" yaml:"title"`
		// Domains are the seller domains to check
		Domains []string `env:"REPORT_DOMAINS" env-separator:"," env-default:"advertising.com,tremorhub.com,telaria.com,freewheel.com,criteo.com,adcolony.com,loopme.com,opera.com,synacor.com,yandex.com,pangleglobal.com" yaml:"domains"` //nolint: lll
	} `yaml:"report"`
}

// Load reads the YAML file at configPath and then the environment. An empty
// path, or a path that does not exist, falls back to environment and defaults.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
				return nil, fmt.Errorf("could not read config: %w", err)
			}

			return &cfg, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("could not stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
