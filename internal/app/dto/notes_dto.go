package dto

// NoteRequest представляет тело запроса создания или обновления заметки.
// Предел длины body (4000) является авторитетным: колонка хранилища
// имеет тот же размер, более свободный предел недостижим.
type NoteRequest struct {
	Name string `json:"name" validate:"min=1,max=100"`
	Body string `json:"body" validate:"max=4000"`
}
