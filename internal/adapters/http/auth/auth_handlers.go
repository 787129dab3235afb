// Package auth содержит HTTP обработчики создания учетной записи и входа.
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goscribe/internal/adapters/http/response"
	"goscribe/internal/app/dto"
	"goscribe/internal/domain/entities"
	domain "goscribe/internal/domain/services"
	"goscribe/internal/ports/api"
	"goscribe/internal/validation"
	"goscribe/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreateAccount = "auth handler: create account"
	LogHandlerLogin         = "auth handler: login"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
	validator   *validation.Validator
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase, validator *validation.Validator) *Handler {
	return &Handler{
		authUseCase: authUseCase,
		validator:   validator,
	}
}

// CreateAccount обрабатывает запрос на создание учетной записи.
func (h *Handler) CreateAccount(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateAccount)

	var req dto.CreateAccountRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return response.BadRequest(ctx, response.MsgInvalidBody)
	}

	req.Normalize()
	if problems := h.validator.Check(&req); problems != nil {
		return response.BadValidation(ctx, problems)
	}

	token, err := h.authUseCase.CreateAccount(requestCtx, req.Username, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			return response.BadRequest(ctx, entities.ErrUsernameTaken.Error())
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return response.BadRequest(ctx, err.Error())
	}

	return response.Created(ctx, dto.TokenResponse{Token: token})
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return response.BadRequest(ctx, response.MsgInvalidBody)
	}

	req.Normalize()
	if problems := h.validator.Check(&req); problems != nil {
		return response.BadValidation(ctx, problems)
	}

	token, err := h.authUseCase.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.LoginInvalid(ctx)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return response.BadRequest(ctx, err.Error())
	}

	return response.Ok(ctx, dto.TokenResponse{Token: token})
}
