// Package users содержит HTTP обработчики профиля пользователя.
package users

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goscribe/internal/adapters/http/guard"
	"goscribe/internal/adapters/http/response"
	"goscribe/internal/domain/entities"
	"goscribe/internal/ports/api"
	svc "goscribe/internal/ports/services"
	"goscribe/internal/validation"
	"goscribe/pkg/logger"
)

// ParamUserID - имя параметра пути с идентификатором пользователя.
const ParamUserID = "userId"

// LogHandlerGetUser - сообщение логирования обработчика профиля.
const LogHandlerGetUser = "users handler: get user"

// Handler содержит HTTP обработчики профиля пользователя.
type Handler struct {
	userUseCase api.UserUseCase
	tokenCodec  svc.TokenCodec
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(userUseCase api.UserUseCase, tokenCodec svc.TokenCodec) *Handler {
	return &Handler{
		userUseCase: userUseCase,
		tokenCodec:  tokenCodec,
	}
}

// GetUser возвращает публичный профиль пользователя.
// Отсутствующий пользователь отдается как null с кодом 200.
func (h *Handler) GetUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerGetUser)

	userID, problems := validation.ParseID(ParamUserID, ctx.Params(ParamUserID))
	if problems != nil {
		return response.BadValidation(ctx, problems)
	}

	return guard.EnsureAuthorized(ctx, h.tokenCodec,
		func(claims entities.Claims) bool { return claims.UserID == userID },
		func(entities.Claims) error {
			profile, err := h.userUseCase.GetProfile(requestCtx, userID)
			if err != nil {
				log.Error(requestCtx, "failed to get user profile", zap.Error(err))
				return response.BadRequest(ctx, err.Error())
			}
			return response.Ok(ctx, profile)
		},
	)
}
