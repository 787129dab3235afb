package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goscribe/internal/adapters/postgres"
	"goscribe/internal/domain/entities"
	"goscribe/pkg/logger"
)

var errConnection = errors.New("database connection error")

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func userColumns() []string {
	return []string{"id", "username", "name", "password_hash", "created_at", "last_updated_at"}
}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS .+").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs("alice", "Alice", "hashed-password").
			WillReturnRows(pgxmock.NewRows(userColumns()).
				AddRow(int64(42), "alice", "Alice", "hashed-password", now, now))
		mock.ExpectCommit()

		repo := postgres.NewUserRepository(mock)
		user, err := repo.Create(ctx, "alice", "Alice", "hashed-password")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(42), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "hashed-password", user.PasswordHash)
		assert.Equal(t, now, user.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Имя пользователя уже занято", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS .+").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		repo := postgres.NewUserRepository(mock)
		user, err := repo.Create(ctx, "alice", "Alice", "hashed-password")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUsernameTaken)
	})

	t.Run("Конкурентная вставка перехватывается уникальным ограничением", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS .+").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs("alice", "Alice", "hashed-password").
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		repo := postgres.NewUserRepository(mock)
		user, err := repo.Create(ctx, "alice", "Alice", "hashed-password")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUsernameTaken)
	})

	t.Run("Общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS .+").
			WithArgs("alice").
			WillReturnError(errConnection)
		mock.ExpectRollback()

		repo := postgres.NewUserRepository(mock)
		user, err := repo.Create(ctx, "alice", "Alice", "hashed-password")

		assert.Nil(t, user)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error checking username")
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Пользователь найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users .+").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(userColumns()).
				AddRow(int64(42), "alice", "Alice", "hashed-password", now, now))

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByUsername(ctx, "alice")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(42), user.ID)
		assert.Equal(t, "hashed-password", user.PasswordHash)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users .+").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByUsername(ctx, "ghost")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestUserRepository_FindProfileByID(t *testing.T) {
	ctx := testContext(t)

	t.Run("Профиль найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, username .+").
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "username"}).
				AddRow(int64(42), "Alice", "alice"))

		repo := postgres.NewUserRepository(mock)
		profile, err := repo.FindProfileByID(ctx, 42)

		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, int64(42), profile.ID)
		assert.Equal(t, "Alice", profile.Name)
		assert.Equal(t, "alice", profile.Username)
	})

	t.Run("Отсутствующий пользователь не является ошибкой", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, username .+").
			WithArgs(int64(7)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		profile, err := repo.FindProfileByID(ctx, 7)

		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("Общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, username .+").
			WithArgs(int64(7)).
			WillReturnError(errConnection)

		repo := postgres.NewUserRepository(mock)
		profile, err := repo.FindProfileByID(ctx, 7)

		assert.Nil(t, profile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error querying user by id")
	})
}
