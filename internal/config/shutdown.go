package config

import "time"

// ShutdownConfig содержит настройки корректного завершения приложения.
type ShutdownConfig struct {
	Timeout int `yaml:"timeout" env:"SCRIBE_SHUTDOWN_TIMEOUT" env-default:"10"`
}

// GetTimeout возвращает timeout завершения в виде time.Duration.
func (s *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}
