// Package guard реализует проверку авторизации защищенных маршрутов.
package guard

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goscribe/internal/adapters/http/response"
	"goscribe/internal/domain/entities"
	svc "goscribe/internal/ports/services"
	"goscribe/pkg/logger"
)

// bearerPrefix - префикс схемы авторизации в заголовке Authorization.
const bearerPrefix = "Bearer "

// Константы для логирования.
const (
	LogNoAuthHeader  = "no authorization header provided"
	LogTokenRejected = "bearer token rejected"
	LogOwnershipMiss = "claims do not satisfy ownership predicate"
)

// OwnershipPredicate решает, дают ли claims токена право на целевой ресурс.
type OwnershipPredicate func(claims entities.Claims) bool

// ProtectedHandler - обработчик, выполняемый после успешной авторизации.
type ProtectedHandler func(claims entities.Claims) error

// EnsureAuthorized извлекает bearer токен из запроса, проверяет его кодеком
// и выполняет предикат владения. Отсутствующий или непроверяемый токен
// дает 401 без различения причин; непройденный предикат дает 404, а не 403:
// существование чужого ресурса не раскрывается.
func EnsureAuthorized(c fiber.Ctx, codec svc.TokenCodec, allowed OwnershipPredicate, next ProtectedHandler) error {
	ctx := c.Context()
	log := logger.Log(ctx).With(zap.String("guard", "EnsureAuthorized"))

	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		log.Debug(ctx, LogNoAuthHeader)
		return response.Unauthorized(c)
	}

	claims, err := codec.Decode(ctx, strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		log.Debug(ctx, LogTokenRejected, zap.Error(err))
		return response.Unauthorized(c)
	}

	if !allowed(claims) {
		log.Debug(ctx, LogOwnershipMiss, zap.Int64("userID", claims.UserID))
		return response.NotFound(c)
	}

	return next(claims)
}
