package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"goscribe/internal/domain/entities"
	"goscribe/internal/ports/api"
	"goscribe/internal/ports/cache"
	"goscribe/internal/ports/repositories"
	"goscribe/pkg/logger"
)

// Параметры кэширования профилей.
const (
	profileCacheKeyFmt = "user:profile:%d"
	profileCacheTTL    = 15 * time.Minute
)

const (
	msgProfileCacheHit   = "user profile served from cache"
	msgErrCacheGet       = "failed to read profile from cache"
	msgErrCacheSet       = "failed to store profile in cache"
	msgErrDecodeCached   = "failed to decode cached profile"
	msgErrFindingProfile = "error finding user profile"
	errCtxFindingProfile = "finding user profile"
)

// UserUseCaseImpl реализует интерфейс api.UserUseCase с кэшированием профилей.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
	cache    cache.Cache
}

// NewUserUseCase создает новый экземпляр сценариев работы с профилем.
func NewUserUseCase(userRepo repositories.UserRepository, cache cache.Cache) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo, cache: cache}
}

// GetProfile возвращает профиль пользователя, используя кэш со сквозным чтением.
// Ошибки кэша не прерывают запрос: источником истины остается хранилище.
func (u *UserUseCaseImpl) GetProfile(ctx context.Context, id int64) (*entities.UserProfile, error) {
	log := logger.Log(ctx).With(zap.String("method", "GetProfile"), zap.Int64("userID", id))

	cacheKey := fmt.Sprintf(profileCacheKeyFmt, id)

	cached, err := u.cache.Get(ctx, cacheKey)
	if err != nil {
		log.Warn(ctx, msgErrCacheGet, zap.Error(err))
	}
	if cached != "" {
		var profile entities.UserProfile
		if err := json.Unmarshal([]byte(cached), &profile); err != nil {
			log.Warn(ctx, msgErrDecodeCached, zap.Error(err))
		} else {
			log.Debug(ctx, msgProfileCacheHit)
			return &profile, nil
		}
	}

	profile, err := u.userRepo.FindProfileByID(ctx, id)
	if err != nil {
		log.Error(ctx, msgErrFindingProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingProfile, err)
	}
	if profile == nil {
		return nil, nil
	}

	profileJSON, err := json.Marshal(profile)
	if err == nil {
		if err := u.cache.Set(ctx, cacheKey, string(profileJSON), profileCacheTTL); err != nil {
			log.Warn(ctx, msgErrCacheSet, zap.Error(err))
		}
	}

	return profile, nil
}
