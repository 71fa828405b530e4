package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	Server      Server
	Database    Database
}

type Server struct {
	Port         string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
}

type Database struct {
	Host            string        `env:"PG_HOST" envDefault:"localhost"`
	Port            int           `env:"PG_PORT" envDefault:"5432"`
	User            string        `env:"PG_USER"`
	Password        string        `env:"PG_PASSWORD" json:"-"`
	Name            string        `env:"PG_DATABASE,notEmpty"`
	SSLMode         string        `env:"PG_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
	PingTimeout     time.Duration `env:"PG_PING_TIMEOUT" envDefault:"5s"`
}

// EnvFile is the dotenv file for the current run: .env.test under
// TESTING=test (any case), .env.dev otherwise.
func EnvFile() string {
	if strings.EqualFold(os.Getenv("TESTING"), "test") {
		return ".env.test"
	}
	return ".env.dev"
}

// Load reads the environment file selected by EnvFile.
func Load() (*Config, error) {
	return LoadFrom(EnvFile())
}

// LoadFrom reads file, if it exists, and parses the environment. Variables
// already set in the process win over the file.
func LoadFrom(file string) (*Config, error) {
	_ = godotenv.Load(file)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("env.Parse: %w", err)
	}

	return &cfg, nil
}

// GetDSN builds a postgres:// connection URL for the pgx driver.
func (c *Config) GetDSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   c.Database.Host + ":" + strconv.Itoa(c.Database.Port),
		Path:   "/" + c.Database.Name,
	}
	switch {
	case c.Database.User != "" && c.Database.Password != "":
		u.User = url.UserPassword(c.Database.User, c.Database.Password)
	case c.Database.User != "":
		u.User = url.User(c.Database.User)
	}
	q := url.Values{}
	q.Set("sslmode", c.Database.SSLMode)
	u.RawQuery = q.Encode()

	return u.String()
}
