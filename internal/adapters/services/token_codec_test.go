package services_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goscribe/internal/adapters/services"
	"goscribe/internal/domain/entities"
	domain "goscribe/internal/domain/services"
)

func newTestCodec(t *testing.T) (services.Secret, *services.CodecJWT) {
	t.Helper()

	secret, err := services.NewSecret()
	require.NoError(t, err)

	codec, ok := services.NewCodecJWT(secret).(*services.CodecJWT)
	require.True(t, ok)

	return secret, codec
}

func TestNewSecret(t *testing.T) {
	first, err := services.NewSecret()
	require.NoError(t, err)
	assert.Len(t, first, 32)

	second, err := services.NewSecret()
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "secrets must be unique per generation")
}

func TestCodecJWT_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, codec := newTestCodec(t)

	claims := entities.Claims{
		UserID:   42,
		Username: "alice",
		Name:     "Alice Smith",
	}

	token, err := codec.Encode(ctx, claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := codec.Decode(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, claims, decoded)
}

func TestCodecJWT_PayloadShape(t *testing.T) {
	ctx := context.Background()
	_, codec := newTestCodec(t)

	token, err := codec.Encode(ctx, entities.Claims{UserID: 7, Username: "bob", Name: "Bob"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payloadJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(payloadJSON, &payload))

	// Полезная нагрузка содержит ровно три поля, без exp и прочих
	// зарегистрированных claims.
	assert.Len(t, payload, 3)
	assert.Contains(t, payload, "userId")
	assert.Contains(t, payload, "username")
	assert.Contains(t, payload, "name")
}

func TestCodecJWT_Decode_Garbage(t *testing.T) {
	ctx := context.Background()
	_, codec := newTestCodec(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a token", token: "definitely-not-a-token"},
		{name: "two segments", token: "abc.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(ctx, tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrTokenFormat)
		})
	}
}

func TestCodecJWT_Decode_TamperedSignature(t *testing.T) {
	ctx := context.Background()
	_, codec := newTestCodec(t)

	token, err := codec.Encode(ctx, entities.Claims{UserID: 1, Username: "eve", Name: "Eve"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Decode(ctx, tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenIntegrity)
	assert.NotErrorIs(t, err, domain.ErrTokenFormat)
}

func TestCodecJWT_Decode_ForeignSecret(t *testing.T) {
	ctx := context.Background()
	_, codec := newTestCodec(t)
	_, foreign := newTestCodec(t)

	token, err := foreign.Encode(ctx, entities.Claims{UserID: 9, Username: "mallory", Name: "Mallory"})
	require.NoError(t, err)

	_, err = codec.Decode(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenIntegrity)
}

func TestCodecJWT_Decode_WrongAlgorithm(t *testing.T) {
	ctx := context.Background()
	_, codec := newTestCodec(t)

	// Заголовок {"alg":"none","typ":"JWT"} с пустой подписью.
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"userId":1,"username":"x","name":"y"}`))
	unsigned := header + "." + payload + "."

	_, err := codec.Decode(ctx, unsigned)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenIntegrity)
}
