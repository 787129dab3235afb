package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"goscribe/internal/domain/entities"
	"goscribe/internal/ports/repositories"
	"goscribe/pkg/logger"
)

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create создает пользователя в одной транзакции: проверка занятости имени,
// вставка и чтение созданной записи. Конкурентная вставка того же имени
// перехватывается уникальным ограничением.
func (r *UserRepository) Create(ctx context.Context, username, name, passwordHash string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var taken bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&taken)
	if err != nil {
		log.Error(ctx, "error checking username", zap.Error(err))
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		log.Debug(ctx, "username already taken", zap.String("username", username))
		return nil, entities.ErrUsernameTaken
	}

	var user entities.User
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, name, password_hash)
         VALUES ($1, $2, $3)
         RETURNING id, username, name, password_hash, created_at, last_updated_at`,
		username, name, passwordHash,
	).Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Debug(ctx, "username already taken", zap.String("username", username))
			return nil, entities.ErrUsernameTaken
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing transaction", zap.Error(err))
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return &user, nil
}

// FindByUsername находит пользователя по имени.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByUsername"))

	query := `
        SELECT id, username, name, password_hash, created_at, last_updated_at
        FROM users
        WHERE username = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("username", username))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by username", zap.Error(err))
		return nil, fmt.Errorf("error querying user by username: %w", err)
	}

	return &user, nil
}

// FindProfileByID находит публичный профиль пользователя по ID.
// Отсутствующий пользователь не является ошибкой.
func (r *UserRepository) FindProfileByID(ctx context.Context, id int64) (*entities.UserProfile, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindProfileByID"))

	query := `
        SELECT id, name, username
        FROM users
        WHERE id = $1
    `

	var profile entities.UserProfile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Username,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("id", id))
			return nil, nil
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &profile, nil
}
