package config

import "fmt"

// PostgresConfig представляет конфигурацию подключения к Postgres.
type PostgresConfig struct {
	Host           string `yaml:"host" env:"SCRIBE_POSTGRES_HOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"SCRIBE_POSTGRES_PORT" env-default:"5432"`
	User           string `yaml:"user" env:"SCRIBE_POSTGRES_USER" env-default:"postgres"`
	Password       string `yaml:"password" env:"SCRIBE_POSTGRES_PASSWORD" env-default:"postgres"`
	Database       string `yaml:"database" env:"SCRIBE_POSTGRES_DB" env-default:"scribe"`
	SSLMode        string `yaml:"ssl_mode" env:"SCRIBE_POSTGRES_SSL_MODE" env-default:"disable"`
	MinConn        int    `yaml:"min_conn" env:"SCRIBE_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn        int    `yaml:"max_conn" env:"SCRIBE_POSTGRES_MAX_CONN" env-default:"10"`
	MigrationsPath string `yaml:"migrations_path" env:"SCRIBE_POSTGRES_MIGRATIONS_PATH" env-default:"file://migrations"`
}

// GetDSN возвращает строку подключения к Postgres.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}
