// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import "strings"

// CreateAccountRequest представляет запрос на создание учетной записи.
type CreateAccountRequest struct {
	Username string `json:"username" validate:"min=3,max=64,uname"`
	Name     string `json:"name" validate:"min=1,max=100"`
	Password string `json:"password" validate:"min=8,max=128,pwlower,pwupper,pwdigit,pwspecial"`
}

// Normalize приводит имя пользователя к нижнему регистру до проверки.
func (r *CreateAccountRequest) Normalize() {
	r.Username = strings.ToLower(r.Username)
}

// LoginRequest представляет запрос на вход.
type LoginRequest struct {
	Username string `json:"username" validate:"min=3,max=64,uname"`
	Password string `json:"password" validate:"min=8,max=128,pwlower,pwupper,pwdigit,pwspecial"`
}

// Normalize приводит имя пользователя к нижнему регистру до проверки.
func (r *LoginRequest) Normalize() {
	r.Username = strings.ToLower(r.Username)
}

// TokenResponse представляет ответ с выпущенным токеном сессии.
type TokenResponse struct {
	Token string `json:"token"`
}
