// Package notes содержит HTTP обработчики для управления заметками.
package notes

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goscribe/internal/adapters/http/guard"
	"goscribe/internal/adapters/http/response"
	"goscribe/internal/app/dto"
	"goscribe/internal/domain/entities"
	"goscribe/internal/ports/api"
	svc "goscribe/internal/ports/services"
	"goscribe/internal/validation"
	"goscribe/pkg/logger"
)

// Имена параметров пути.
const (
	ParamUserID = "userId"
	ParamNoteID = "noteId"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerListNotes  = "notes handler: list notes"
	LogHandlerCreateNote = "notes handler: create note"
	LogHandlerGetNote    = "notes handler: get note"
	LogHandlerUpdateNote = "notes handler: update note"
	LogHandlerDeleteNote = "notes handler: delete note"

	ErrMsgInvalidRequestBody = "invalid request body"
)

// Handler - обработчик HTTP запросов для работы с заметками.
type Handler struct {
	noteUseCase api.NoteUseCase
	tokenCodec  svc.TokenCodec
	validator   *validation.Validator
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase api.NoteUseCase, tokenCodec svc.TokenCodec, validator *validation.Validator) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
		tokenCodec:  tokenCodec,
		validator:   validator,
	}
}

// ownerOf возвращает предикат владения заметками пользователя userID.
func ownerOf(userID int64) guard.OwnershipPredicate {
	return func(claims entities.Claims) bool { return claims.UserID == userID }
}

// ListNotes возвращает список заметок пользователя.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerListNotes)

	userID, problems := validation.ParseID(ParamUserID, ctx.Params(ParamUserID))
	if problems != nil {
		return response.BadValidation(ctx, problems)
	}

	return guard.EnsureAuthorized(ctx, h.tokenCodec, ownerOf(userID),
		func(entities.Claims) error {
			notes, err := h.noteUseCase.List(requestCtx, userID)
			if err != nil {
				log.Error(requestCtx, "failed to list notes", zap.Error(err))
				return response.BadRequest(ctx, err.Error())
			}
			return response.Ok(ctx, notes)
		},
	)
}

// CreateNote создает новую заметку.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerCreateNote)

	userID, problems := validation.ParseID(ParamUserID, ctx.Params(ParamUserID))
	if problems != nil {
		return response.BadValidation(ctx, problems)
	}

	return guard.EnsureAuthorized(ctx, h.tokenCodec, ownerOf(userID),
		func(entities.Claims) error {
			var req dto.NoteRequest
			if err := ctx.Bind().Body(&req); err != nil {
				log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
				return response.BadRequest(ctx, ErrMsgInvalidRequestBody)
			}
			if problems := h.validator.Check(&req); problems != nil {
				return response.BadValidation(ctx, problems)
			}

			note, err := h.noteUseCase.Create(requestCtx, userID, req.Name, req.Body)
			if err != nil {
				log.Error(requestCtx, "failed to create note", zap.Error(err))
				return response.BadRequest(ctx, err.Error())
			}
			return response.Created(ctx, note)
		},
	)
}

// GetNote возвращает заметку по идентификатору.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerGetNote)

	userID, problems := validation.ParseID(ParamUserID, ctx.Params(ParamUserID))
	if problems != nil {
		return response.BadValidation(ctx, problems)
	}
	noteID, problems := validation.ParseID(ParamNoteID, ctx.Params(ParamNoteID))
	if problems != nil {
		return response.BadValidation(ctx, problems)
	}

	return guard.EnsureAuthorized(ctx, h.tokenCodec, ownerOf(userID),
		func(entities.Claims) error {
			note, err := h.noteUseCase.Get(requestCtx, noteID, userID)
			if err != nil {
				if errors.Is(err, entities.ErrNoteNotFound) {
					return response.NotFound(ctx)
				}
				log.Error(requestCtx, "failed to get note", zap.Error(err))
				return response.BadRequest(ctx, err.Error())
			}
			return response.Ok(ctx, note)
		},
	)
}

// UpdateNote обновляет заметку.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerUpdateNote)

	userID, problems := validation.ParseID(ParamUserID, ctx.Params(ParamUserID))
	if problems != nil {
		return response.BadValidation(ctx, problems)
	}
	noteID, problems := validation.ParseID(ParamNoteID, ctx.Params(ParamNoteID))
	if problems != nil {
		return response.BadValidation(ctx, problems)
	}

	return guard.EnsureAuthorized(ctx, h.tokenCodec, ownerOf(userID),
		func(entities.Claims) error {
			var req dto.NoteRequest
			if err := ctx.Bind().Body(&req); err != nil {
				log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
				return response.BadRequest(ctx, ErrMsgInvalidRequestBody)
			}
			if problems := h.validator.Check(&req); problems != nil {
				return response.BadValidation(ctx, problems)
			}

			note, err := h.noteUseCase.Update(requestCtx, noteID, userID, req.Name, req.Body)
			if err != nil {
				if errors.Is(err, entities.ErrNoteNotFound) {
					return response.NotFound(ctx)
				}
				log.Error(requestCtx, "failed to update note", zap.Error(err))
				return response.BadRequest(ctx, err.Error())
			}
			return response.Ok(ctx, note)
		},
	)
}

// DeleteNote удаляет заметку. Удаление отсутствующей заметки также дает 204.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerDeleteNote)

	userID, problems := validation.ParseID(ParamUserID, ctx.Params(ParamUserID))
	if problems != nil {
		return response.BadValidation(ctx, problems)
	}
	noteID, problems := validation.ParseID(ParamNoteID, ctx.Params(ParamNoteID))
	if problems != nil {
		return response.BadValidation(ctx, problems)
	}

	return guard.EnsureAuthorized(ctx, h.tokenCodec, ownerOf(userID),
		func(entities.Claims) error {
			if err := h.noteUseCase.Delete(requestCtx, noteID, userID); err != nil {
				log.Error(requestCtx, "failed to delete note", zap.Error(err))
				return response.BadRequest(ctx, err.Error())
			}
			return response.NoContent(ctx)
		},
	)
}
