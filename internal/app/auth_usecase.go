// Package app содержит сценарии использования сервиса заметок.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"goscribe/internal/domain/entities"
	domain "goscribe/internal/domain/services"
	"goscribe/internal/ports/api"
	"goscribe/internal/ports/repositories"
	svc "goscribe/internal/ports/services"
	"goscribe/pkg/logger"
)

const (
	methodCreateAccount = "CreateAccount"
	methodLogin         = "Login"

	msgStartRegistration   = "starting account creation"
	msgUsernameTaken       = "username already taken"
	msgAccountCreated      = "account created successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent username"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"

	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrEncodeToken       = "failed to encode session token"
	msgErrFindingUser       = "error finding user by username"
	msgErrVerifyingPassword = "error verifying password"

	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxEncodingToken      = "encoding token"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenCodec  svc.TokenCodec
}

// NewAuthUseCase создает новый экземпляр сценариев аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenCodec svc.TokenCodec,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenCodec:  tokenCodec,
	}
}

// CreateAccount создает учетную запись и выпускает токен сессии для нового пользователя.
func (a *AuthUseCaseImpl) CreateAccount(ctx context.Context, username, name, password string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateAccount), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user, err := a.userRepo.Create(ctx, username, name, hashedPassword)
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			log.Debug(ctx, msgUsernameTaken)
			return "", entities.ErrUsernameTaken
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	token, err := a.tokenCodec.Encode(ctx, entities.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
	})
	if err != nil {
		log.Error(ctx, msgErrEncodeToken, zap.Error(err), zap.Int64("userID", user.ID))
		return "", fmt.Errorf("%s: %w", errCtxEncodingToken, err)
	}

	log.Info(ctx, msgAccountCreated, zap.Int64("userID", user.ID))
	return token, nil
}

// Login аутентифицирует пользователя по имени и паролю.
// Неизвестное имя и неверный пароль возвращают одну и ту же ошибку,
// чтобы ответы были неотличимы.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, domain.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth)
		return "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, domain.ErrInvalidCredentials)
	}

	token, err := a.tokenCodec.Encode(ctx, entities.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
	})
	if err != nil {
		log.Error(ctx, msgErrEncodeToken, zap.Error(err), zap.Int64("userID", user.ID))
		return "", fmt.Errorf("%s: %w", errCtxEncodingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("userID", user.ID))
	return token, nil
}
