package services

import "context"

// PasswordService определяет интерфейс хеширования и проверки паролей.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)
	// Verify сравнивает пароль с хешем за константное время.
	Verify(ctx context.Context, password, hash string) (bool, error)
}
