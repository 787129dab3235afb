// Package cache определяет интерфейс кэширования.
package cache

import (
	"context"
	"time"
)

// Cache определяет интерфейс key-value кэша с временем жизни записей.
type Cache interface {
	// Get возвращает значение по ключу. Отсутствующий ключ - пустая строка без ошибки.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
