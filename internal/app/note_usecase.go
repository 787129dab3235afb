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

// notesListLimit - фиксированный предел размера списка заметок.
const notesListLimit = 100

// Параметры кэширования списков заметок.
const (
	notesCacheKeyFmt = "user:notes:%d"
	notesCacheTTL    = 5 * time.Minute
)

const (
	msgNotesCacheHit      = "notes list served from cache"
	msgErrNotesCacheGet   = "failed to read notes list from cache"
	msgErrNotesCacheSet   = "failed to store notes list in cache"
	msgErrNotesCacheDrop  = "failed to invalidate notes list cache"
	msgErrDecodeNoteCache = "failed to decode cached notes list"
)

// NoteUseCaseImpl реализует интерфейс api.NoteUseCase.
// Список заметок кэшируется и инвалидируется при каждой мутации.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
	cache    cache.Cache
}

// NewNoteUseCase создает новый экземпляр сценариев работы с заметками.
func NewNoteUseCase(noteRepo repositories.NoteRepository, cache cache.Cache) api.NoteUseCase {
	return &NoteUseCaseImpl{noteRepo: noteRepo, cache: cache}
}

// Create создает заметку и инвалидирует кэш списка владельца.
func (n *NoteUseCaseImpl) Create(ctx context.Context, userID int64, name, body string) (*entities.Note, error) {
	note, err := n.noteRepo.Create(ctx, userID, name, body)
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	n.invalidateList(ctx, userID)
	return note, nil
}

// Get возвращает заметку по ID и ID владельца.
func (n *NoteUseCaseImpl) Get(ctx context.Context, noteID, userID int64) (*entities.Note, error) {
	note, err := n.noteRepo.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	return note, nil
}

// List возвращает до notesListLimit заметок пользователя, используя кэш.
func (n *NoteUseCaseImpl) List(ctx context.Context, userID int64) ([]entities.NoteSummary, error) {
	log := logger.Log(ctx).With(zap.String("method", "List"), zap.Int64("userID", userID))

	cacheKey := fmt.Sprintf(notesCacheKeyFmt, userID)

	cached, err := n.cache.Get(ctx, cacheKey)
	if err != nil {
		log.Warn(ctx, msgErrNotesCacheGet, zap.Error(err))
	}
	if cached != "" {
		var notes []entities.NoteSummary
		if err := json.Unmarshal([]byte(cached), &notes); err != nil {
			log.Warn(ctx, msgErrDecodeNoteCache, zap.Error(err))
		} else {
			log.Debug(ctx, msgNotesCacheHit)
			return notes, nil
		}
	}

	notes, err := n.noteRepo.ListByUserID(ctx, userID, notesListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	notesJSON, err := json.Marshal(notes)
	if err == nil {
		if err := n.cache.Set(ctx, cacheKey, string(notesJSON), notesCacheTTL); err != nil {
			log.Warn(ctx, msgErrNotesCacheSet, zap.Error(err))
		}
	}

	return notes, nil
}

// Update обновляет заметку и инвалидирует кэш списка владельца.
func (n *NoteUseCaseImpl) Update(ctx context.Context, noteID, userID int64, name, body string) (*entities.Note, error) {
	note, err := n.noteRepo.Update(ctx, noteID, userID, name, body)
	if err != nil {
		return nil, err
	}

	n.invalidateList(ctx, userID)
	return note, nil
}

// Delete удаляет заметку и инвалидирует кэш списка владельца.
func (n *NoteUseCaseImpl) Delete(ctx context.Context, noteID, userID int64) error {
	if err := n.noteRepo.Delete(ctx, noteID, userID); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	n.invalidateList(ctx, userID)
	return nil
}

func (n *NoteUseCaseImpl) invalidateList(ctx context.Context, userID int64) {
	cacheKey := fmt.Sprintf(notesCacheKeyFmt, userID)
	if err := n.cache.Delete(ctx, cacheKey); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrNotesCacheDrop, zap.Error(err), zap.Int64("userID", userID))
	}
}
