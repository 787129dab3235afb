// Package services определяет доменные ошибки сервисов токенов и паролей.
package services

import "errors"

// Ошибки кодека токенов.
var (
	// ErrTokenFormat возвращается, когда строка не является корректно
	// сформированным подписанным токеном.
	ErrTokenFormat = errors.New("malformed token")
	// ErrTokenIntegrity возвращается, когда подпись токена не проходит
	// проверку текущим секретом процесса.
	ErrTokenIntegrity = errors.New("token signature verification failed")
)

// Ошибки сервиса паролей и аутентификации.
var (
	ErrInvalidPassword    = errors.New("invalid password")
	ErrHashingFailed      = errors.New("password hashing failed")
	ErrInvalidCredentials = errors.New("username or password is invalid")
)
