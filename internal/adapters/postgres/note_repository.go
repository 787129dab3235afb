package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goscribe/internal/domain/entities"
	"goscribe/internal/ports/repositories"
	"goscribe/pkg/logger"
)

// noteColumns - полный набор столбцов заметки в порядке сканирования.
const noteColumns = "id, user_id, name, body, created_at, last_updated_at"

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

func scanNote(row pgx.Row, note *entities.Note) error {
	return row.Scan(
		&note.ID,
		&note.UserID,
		&note.Name,
		&note.Body,
		&note.CreatedAt,
		&note.LastUpdatedAt,
	)
}

// Create вставляет заметку и читает созданную запись в одной транзакции,
// чтобы чтение гарантированно наблюдало только что вставленную строку.
func (r *NoteRepository) Create(ctx context.Context, userID int64, name, body string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new note", zap.Int64("userID", userID))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var noteID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO notes (user_id, name, body) VALUES ($1, $2, $3) RETURNING id`,
		userID, name, body,
	).Scan(&noteID)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	var note entities.Note
	err = scanNote(tx.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	), &note)
	if err != nil {
		log.Error(ctx, "failed to read back created note", zap.Error(err))
		return nil, fmt.Errorf("failed to read back created note: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing transaction", zap.Error(err))
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	log.Debug(ctx, "note created", zap.Int64("noteID", note.ID))
	return &note, nil
}

// GetByID получает заметку по ID и ID владельца.
func (r *NoteRepository) GetByID(ctx context.Context, noteID, userID int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))
	log.Debug(ctx, "getting note", zap.Int64("noteID", noteID), zap.Int64("userID", userID))

	var note entities.Note
	err := scanNote(r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	), &note)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// ListByUserID получает до limit заметок пользователя.
func (r *NoteRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]entities.NoteSummary, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByUserID"))
	log.Debug(ctx, "listing notes", zap.Int64("userID", userID), zap.Int("limit", limit))

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, body FROM notes WHERE user_id = $1 ORDER BY id LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]entities.NoteSummary, 0)
	for rows.Next() {
		var note entities.NoteSummary
		if err := rows.Scan(&note.ID, &note.Name, &note.Body); err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update обновляет заметку и обновляет last_updated_at.
func (r *NoteRepository) Update(ctx context.Context, noteID, userID int64, name, body string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.Int64("noteID", noteID))

	var note entities.Note
	err := scanNote(r.pool.QueryRow(ctx,
		`UPDATE notes SET name = $1, body = $2, last_updated_at = now()
         WHERE id = $3 AND user_id = $4
         RETURNING `+noteColumns,
		name, body, noteID, userID,
	), &note)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user")
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &note, nil
}

// Delete удаляет заметку. Отсутствующая заметка не является ошибкой.
func (r *NoteRepository) Delete(ctx context.Context, noteID, userID int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting note", zap.Int64("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note already absent", zap.Int64("noteID", noteID))
	}

	return nil
}
