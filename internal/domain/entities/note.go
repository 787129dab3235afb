package entities

import (
	"errors"
	"time"
)

// ErrNoteNotFound возвращается, когда заметка отсутствует или принадлежит другому пользователю.
var ErrNoteNotFound = errors.New("note not found")

// Note представляет заметку пользователя.
type Note struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// NoteSummary представляет сокращенную проекцию заметки для списков.
type NoteSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Body string `json:"body"`
}
