package response_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goscribe/internal/adapters/http/response"
	"goscribe/internal/validation"
)

func TestNewValidationErrorBody_SingleField(t *testing.T) {
	problems := validation.NewProblem("username", "username must contain at least 3 character(s)")

	body := response.NewValidationErrorBody(problems)

	assert.Equal(t, response.MsgValidation, body.Error)
	assert.Equal(t, "✖ username must contain at least 3 character(s)\n  → at username", body.ZodError.Pretty)
	assert.Equal(t, []string{}, body.ZodError.Flatten.FormErrors)
	assert.Equal(t,
		map[string][]string{"username": {"username must contain at least 3 character(s)"}},
		body.ZodError.Flatten.FieldErrors)
	assert.Equal(t, []string{}, body.ZodError.Tree.Errors)
	require.Contains(t, body.ZodError.Tree.Properties, "username")
	assert.Equal(t,
		[]string{"username must contain at least 3 character(s)"},
		body.ZodError.Tree.Properties["username"].Errors)
}

func TestNewValidationErrorBody_MultipleErrorsPerField(t *testing.T) {
	problems := &validation.Problems{Fields: []validation.FieldError{
		{Field: "password", Message: validation.MsgPasswordUpper},
		{Field: "password", Message: validation.MsgPasswordDigit},
		{Field: "name", Message: "name must contain at least 1 character(s)"},
	}}

	body := response.NewValidationErrorBody(problems)

	assert.Equal(t,
		[]string{validation.MsgPasswordUpper, validation.MsgPasswordDigit},
		body.ZodError.Flatten.FieldErrors["password"])
	assert.Len(t, body.ZodError.Tree.Properties, 2)

	// Порядок pretty строк совпадает с порядком ошибок набора.
	expectedPretty := "✖ " + validation.MsgPasswordUpper + "\n  → at password\n" +
		"✖ " + validation.MsgPasswordDigit + "\n  → at password\n" +
		"✖ name must contain at least 1 character(s)\n  → at name"
	assert.Equal(t, expectedPretty, body.ZodError.Pretty)
}

func TestValidationErrorBody_JSONShape(t *testing.T) {
	problems := validation.NewProblem("body", "body must contain at most 4000 character(s)")

	raw, err := json.Marshal(response.NewValidationErrorBody(problems))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, response.MsgValidation, decoded["error"])

	zodError, ok := decoded["zodError"].(map[string]any)
	require.True(t, ok, "zodError must be an object")

	for _, key := range []string{"pretty", "flatten", "tree"} {
		assert.Contains(t, zodError, key)
	}

	flatten, ok := zodError["flatten"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{}, flatten["formErrors"], "formErrors serializes as [] not null")

	tree, ok := zodError["tree"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{}, tree["errors"], "tree errors serializes as [] not null")
}
