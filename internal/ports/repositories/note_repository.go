package repositories

import (
	"context"

	"goscribe/internal/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
type NoteRepository interface {
	// Create вставляет заметку и читает созданную запись в одной транзакции.
	Create(ctx context.Context, userID int64, name, body string) (*entities.Note, error)
	// GetByID возвращает заметку по ID и ID владельца или entities.ErrNoteNotFound.
	GetByID(ctx context.Context, noteID, userID int64) (*entities.Note, error)
	// ListByUserID возвращает до limit заметок пользователя.
	ListByUserID(ctx context.Context, userID int64, limit int) ([]entities.NoteSummary, error)
	// Update обновляет заметку и обновляет last_updated_at.
	// Возвращает entities.ErrNoteNotFound, если заметка отсутствует.
	Update(ctx context.Context, noteID, userID int64, name, body string) (*entities.Note, error)
	// Delete удаляет заметку. Отсутствующая заметка не является ошибкой.
	Delete(ctx context.Context, noteID, userID int64) error
}
