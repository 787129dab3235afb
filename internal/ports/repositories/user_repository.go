// Package repositories определяет интерфейсы репозиториев сервиса заметок.
package repositories

import (
	"context"

	"goscribe/internal/domain/entities"
)

// UserRepository определяет интерфейс для работы с хранилищем пользователей.
type UserRepository interface {
	// Create создает пользователя в одной транзакции: проверка занятости
	// имени, вставка и чтение созданной записи. Возвращает
	// entities.ErrUsernameTaken при конфликте имени.
	Create(ctx context.Context, username, name, passwordHash string) (*entities.User, error)
	// FindByUsername возвращает пользователя по имени или entities.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	// FindProfileByID возвращает публичный профиль пользователя.
	// Отсутствующий пользователь возвращается как (nil, nil).
	FindProfileByID(ctx context.Context, id int64) (*entities.UserProfile, error)
}
