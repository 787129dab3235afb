// Package entities определяет доменные сущности сервиса заметок.
package entities

import (
	"errors"
	"time"
)

// Ошибки доменного уровня для пользователей.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is taken")
)

// User представляет учетную запись пользователя.
// PasswordHash хранит только результат хеширования, исходный пароль не сохраняется.
type User struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// UserProfile представляет публичную проекцию пользователя.
type UserProfile struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}
