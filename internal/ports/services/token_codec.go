// Package services определяет интерфейсы сервисов токенов и паролей.
package services

import (
	"context"

	"goscribe/internal/domain/entities"
)

// TokenCodec кодирует claims сессии в компактную подписанную строку и обратно.
type TokenCodec interface {
	// Encode сериализует claims и подписывает их секретом процесса.
	Encode(ctx context.Context, claims entities.Claims) (string, error)
	// Decode проверяет подпись и возвращает claims.
	// Возвращает services.ErrTokenFormat для некорректно сформированных строк
	// и services.ErrTokenIntegrity для токенов с неверной подписью.
	Decode(ctx context.Context, token string) (entities.Claims, error)
}
