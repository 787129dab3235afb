// Package services содержит реализации сервисов токенов и паролей.
package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"goscribe/internal/domain/entities"
	domain "goscribe/internal/domain/services"
	svc "goscribe/internal/ports/services"
	"goscribe/pkg/logger"
)

// Константы для работы с кодеком токенов.
const (
	methodEncode = "Encode"
	methodDecode = "Decode"

	msgEncodingToken = "encoding session token"
	msgTokenEncoded  = "session token encoded"
	msgDecodingToken = "decoding session token"
	msgTokenDecoded  = "session token decoded"
	msgTokenRejected = "session token rejected"

	//nolint:gosec
	errSigningToken    = "error signing token"
	errCtxSigningToken = "signing token"
	errCtxParsingToken = "parsing token"
)

// secretLength - длина секрета подписи в байтах.
const secretLength = 32

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Secret - секрет подписи токенов. Генерируется один раз на запуск процесса
// и хранится только в памяти: перезапуск делает все выданные токены недействительными.
type Secret []byte

// NewSecret генерирует новый случайный секрет подписи.
func NewSecret() (Secret, error) {
	secret := make(Secret, secretLength)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generating signing secret: %w", err)
	}
	return secret, nil
}

// tokenClaims адаптирует доменные claims к формату библиотеки JWT.
// RegisteredClaims остаются пустыми: токен не несет exp и прочих
// зарегистрированных полей.
type tokenClaims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// CodecJWT реализует интерфейс TokenCodec поверх компактной сериализации JWS (HS256).
type CodecJWT struct {
	secret Secret
}

// NewCodecJWT создает новый кодек токенов с явно переданным секретом процесса.
func NewCodecJWT(secret Secret) svc.TokenCodec {
	return &CodecJWT{secret: secret}
}

// Encode сериализует claims и подписывает их секретом процесса.
func (c *CodecJWT) Encode(ctx context.Context, claims entities.Claims) (string, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodEncode),
		zap.Int64("userID", claims.UserID),
	)
	log.Debug(ctx, msgEncodingToken)

	if len(c.secret) == 0 {
		log.Error(ctx, "empty signing secret provided")
		return "", fmt.Errorf("%s: %w: empty secret", errCtxSigningToken, domain.ErrTokenIntegrity)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Name:     claims.Name,
	})

	signed, err := token.SignedString([]byte(c.secret))
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxSigningToken, err)
	}

	log.Debug(ctx, msgTokenEncoded)
	return signed, nil
}

// Decode проверяет подпись токена и возвращает claims.
// Никакие claims не возвращаются вызывающему, пока подпись не проверена.
func (c *CodecJWT) Decode(ctx context.Context, tokenString string) (entities.Claims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodDecode))
	log.Debug(ctx, msgDecodingToken)

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return []byte(c.secret), nil
	})

	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return entities.Claims{}, fmt.Errorf("%s: %w: %w", errCtxParsingToken, domain.ErrTokenFormat, err)
		}
		return entities.Claims{}, fmt.Errorf("%s: %w: %w", errCtxParsingToken, domain.ErrTokenIntegrity, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgTokenRejected)
		return entities.Claims{}, fmt.Errorf("%s: %w", errCtxParsingToken, domain.ErrTokenIntegrity)
	}

	log.Debug(ctx, msgTokenDecoded, zap.Int64("userID", claims.UserID))
	return entities.Claims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Name:     claims.Name,
	}, nil
}
