// Package api определяет интерфейсы сценариев использования.
package api

import (
	"context"

	"goscribe/internal/domain/entities"
)

// AuthUseCase определяет сценарии аутентификации.
type AuthUseCase interface {
	// CreateAccount создает учетную запись и выпускает токен сессии.
	// Возвращает entities.ErrUsernameTaken при занятом имени.
	CreateAccount(ctx context.Context, username, name, password string) (string, error)
	// Login проверяет учетные данные и выпускает токен сессии.
	// Неизвестное имя и неверный пароль неразличимы:
	// оба возвращают services.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}

// UserUseCase определяет сценарии работы с профилем пользователя.
type UserUseCase interface {
	// GetProfile возвращает профиль пользователя или (nil, nil), если он отсутствует.
	GetProfile(ctx context.Context, id int64) (*entities.UserProfile, error)
}

// NoteUseCase определяет сценарии работы с заметками.
type NoteUseCase interface {
	Create(ctx context.Context, userID int64, name, body string) (*entities.Note, error)
	Get(ctx context.Context, noteID, userID int64) (*entities.Note, error)
	List(ctx context.Context, userID int64) ([]entities.NoteSummary, error)
	Update(ctx context.Context, noteID, userID int64, name, body string) (*entities.Note, error)
	Delete(ctx context.Context, noteID, userID int64) error
}
