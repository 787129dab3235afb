// Package response содержит единый формат конвертов ответов HTTP API.
// Каждый отказ любого обработчика сводится к JSON телу с полем error;
// отказы проверки входных данных дополнительно несут структурный блок
// zodError с тремя детерминированными представлениями одних и тех же ошибок.
package response

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"goscribe/internal/validation"
)

// Фиксированные сообщения конвертов.
const (
	MsgUnauthorized = "Access token is missing or invalid"
	MsgNotFound     = "Resource is either missing or you don't have access"
	MsgValidation   = "Validation Error"
	MsgLoginInvalid = "username or password is invalid"
	MsgInvalidBody  = "invalid request body"
)

// ErrorBody - конверт произвольного отказа.
type ErrorBody struct {
	Error string `json:"error"`
}

// FlattenedErrors - плоское представление ошибок проверки по полям.
type FlattenedErrors struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// ErrorTreeNode - ошибки одного поля в древовидном представлении.
type ErrorTreeNode struct {
	Errors []string `json:"errors"`
}

// ErrorTree - древовидное представление ошибок проверки.
type ErrorTree struct {
	Errors     []string                 `json:"errors"`
	Properties map[string]ErrorTreeNode `json:"properties,omitempty"`
}

// SchemaError - структурный блок ошибок проверки входных данных.
type SchemaError struct {
	Pretty  string          `json:"pretty"`
	Flatten FlattenedErrors `json:"flatten"`
	Tree    ErrorTree       `json:"tree"`
}

// ValidationErrorBody - конверт отказа проверки входных данных.
type ValidationErrorBody struct {
	Error    string      `json:"error"`
	ZodError SchemaError `json:"zodError"`
}

// Ok отправляет успешный ответ 200.
func Ok(c fiber.Ctx, body any) error {
	return c.JSON(body)
}

// Created отправляет успешный ответ 201.
func Created(c fiber.Ctx, body any) error {
	return c.Status(fiber.StatusCreated).JSON(body)
}

// NoContent отправляет ответ 204 без тела.
func NoContent(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// BadRequest отправляет конверт отказа со статусом 400.
func BadRequest(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: message})
}

// Unauthorized отправляет конверт отказа со статусом 401.
// Причина отказа (отсутствие, искажение или подделка токена) не раскрывается.
func Unauthorized(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorBody{Error: MsgUnauthorized})
}

// NotFound отправляет конверт отказа со статусом 404.
// Используется и для отсутствующих ресурсов, и для чужих:
// существование ресурса другого пользователя не раскрывается.
func NotFound(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorBody{Error: MsgNotFound})
}

// LoginInvalid отправляет конверт отказа входа со статусом 403.
// Тело одинаково для неизвестного имени и неверного пароля.
func LoginInvalid(c fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(ErrorBody{Error: MsgLoginInvalid})
}

// BadValidation отправляет конверт отказа проверки со статусом 400.
func BadValidation(c fiber.Ctx, problems *validation.Problems) error {
	return c.Status(fiber.StatusBadRequest).JSON(NewValidationErrorBody(problems))
}

// NewValidationErrorBody строит конверт проверки из упорядоченного набора ошибок.
// Все три представления выводятся из одного набора детерминированно.
func NewValidationErrorBody(problems *validation.Problems) ValidationErrorBody {
	fieldErrors := make(map[string][]string, len(problems.Fields))
	properties := make(map[string]ErrorTreeNode, len(problems.Fields))
	prettyLines := make([]string, 0, len(problems.Fields))

	for _, fe := range problems.Fields {
		fieldErrors[fe.Field] = append(fieldErrors[fe.Field], fe.Message)
		node := properties[fe.Field]
		node.Errors = append(node.Errors, fe.Message)
		properties[fe.Field] = node
		prettyLines = append(prettyLines, fmt.Sprintf("✖ %s\n  → at %s", fe.Message, fe.Field))
	}

	return ValidationErrorBody{
		Error: MsgValidation,
		ZodError: SchemaError{
			Pretty: strings.Join(prettyLines, "\n"),
			Flatten: FlattenedErrors{
				FormErrors:  []string{},
				FieldErrors: fieldErrors,
			},
			Tree: ErrorTree{
				Errors:     []string{},
				Properties: properties,
			},
		},
	}
}
