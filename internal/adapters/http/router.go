// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"goscribe/internal/adapters/http/auth"
	"goscribe/internal/adapters/http/middleware"
	"goscribe/internal/adapters/http/notes"
	"goscribe/internal/adapters/http/response"
	"goscribe/internal/adapters/http/users"
	"goscribe/internal/ports/api"
	svc "goscribe/internal/ports/services"
	"goscribe/internal/validation"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	validator *validation.Validator,
	tokenCodec svc.TokenCodec,
	authUseCase api.AuthUseCase,
	userUseCase api.UserUseCase,
	noteUseCase api.NoteUseCase,
) {
	authHandler := auth.NewHandler(authUseCase, validator)
	usersHandler := users.NewHandler(userUseCase, tokenCodec)
	notesHandler := notes.NewHandler(noteUseCase, tokenCodec, validator)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	apiGroup := app.Group("/api")

	// Auth routes (публичные).
	authRoutes := apiGroup.Group("/auth")
	authRoutes.Post("/createAccount", authHandler.CreateAccount)
	authRoutes.Post("/login", authHandler.Login)

	// Маршруты пользователей и заметок. Авторизация и проверка владения
	// выполняются в самих обработчиках.
	userRoutes := apiGroup.Group("/users/:userId")
	userRoutes.Get("/", usersHandler.GetUser)
	userRoutes.Get("/notes", notesHandler.ListNotes)
	userRoutes.Post("/notes", notesHandler.CreateNote)
	userRoutes.Get("/notes/:noteId", notesHandler.GetNote)
	userRoutes.Put("/notes/:noteId", notesHandler.UpdateNote)
	userRoutes.Delete("/notes/:noteId", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов под /api.
	apiGroup.Use(func(c fiber.Ctx) error {
		return response.NotFound(c)
	})
}
