// Package validation содержит декларативные схемы проверки входных данных.
// Все проверки детерминированы: порядок ошибок совпадает с порядком
// объявления полей схемы, общие состояния после создания не изменяются.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Теги пользовательских правил.
const (
	tagUsernameCharset = "uname"
	tagPasswordLower   = "pwlower"
	tagPasswordUpper   = "pwupper"
	tagPasswordDigit   = "pwdigit"
	tagPasswordSpecial = "pwspecial"
)

// Сообщения пользовательских правил.
const (
	MsgUsernameCharset = "Username must only contain alphabetical characters, numbers, underscores (_), or hyphens (-)"
	MsgPasswordLower   = "Password must have at least 1 lowercase alphabetical character"
	MsgPasswordUpper   = "Password must have at least 1 uppercase alphabetical character"
	MsgPasswordDigit   = "Password must have at least 1 number"
	MsgPasswordSpecial = "Password must have at least 1 special character"
)

// Регулярные выражения правил.
var (
	usernameCharsetRe = regexp.MustCompile(`^[\w\-]+$`)
	lowerRe           = regexp.MustCompile(`[a-z]`)
	upperRe           = regexp.MustCompile(`[A-Z]`)
	digitRe           = regexp.MustCompile(`\d`)
	specialRe         = regexp.MustCompile(`[\W_]`)
)

// FieldError описывает одну ошибку проверки, адресуемую по имени поля.
type FieldError struct {
	Field   string
	Message string
}

// Problems - упорядоченный набор ошибок проверки.
type Problems struct {
	Fields []FieldError
}

// NewProblem создает Problems с единственной ошибкой поля.
func NewProblem(field, message string) *Problems {
	return &Problems{Fields: []FieldError{{Field: field, Message: message}}}
}

// Validator проверяет структуры запросов по декларативным схемам.
// Экземпляр безопасен для конкурентного использования.
type Validator struct {
	v *validator.Validate
}

// New создает новый Validator с зарегистрированными правилами.
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Имена полей в ошибках берутся из json тегов.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]*regexp.Regexp{
		tagUsernameCharset: usernameCharsetRe,
		tagPasswordLower:   lowerRe,
		tagPasswordUpper:   upperRe,
		tagPasswordDigit:   digitRe,
		tagPasswordSpecial: specialRe,
	}
	for tag, re := range rules {
		if err := v.RegisterValidation(tag, matchValidator(re)); err != nil {
			return nil, fmt.Errorf("registering validation %q: %w", tag, err)
		}
	}

	return &Validator{v: v}, nil
}

func matchValidator(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Check проверяет структуру запроса. Возвращает nil при успехе,
// иначе упорядоченный набор ошибок полей.
func (v *Validator) Check(s any) *Problems {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewProblem("", err.Error())
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return &Problems{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must contain at least %s character(s)", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must contain at most %s character(s)", fe.Field(), fe.Param())
	case tagUsernameCharset:
		return MsgUsernameCharset
	case tagPasswordLower:
		return MsgPasswordLower
	case tagPasswordUpper:
		return MsgPasswordUpper
	case tagPasswordDigit:
		return MsgPasswordDigit
	case tagPasswordSpecial:
		return MsgPasswordSpecial
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ParseID приводит строковый параметр к положительному целому идентификатору.
// Нечисловые, дробные и неположительные значения отклоняются одинаково.
func ParseID(field, raw string) (int64, *Problems) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewProblem(field, fmt.Sprintf("%s must be a positive integer", field))
	}
	return id, nil
}
