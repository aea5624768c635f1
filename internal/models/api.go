package models

import "encoding/json"

// Output — стандартный конверт ответа платформы: result=false означает
// бизнес-отказ, message_ru — локализованный текст для пользователя.
type Output struct {
	Result    bool   `json:"result"`
	MessageRU string `json:"message_ru,omitempty"`
}

// SessionUser — сессионная часть ответа /v1/login. userId приходит то числом,
// то строкой, поэтому json.Number.
type SessionUser struct {
	SessionID string      `json:"sessionId"`
	UserID    json.Number `json:"userId"`
}

type APIResponse struct {
	Output Output       `json:"output"`
	User   *SessionUser `json:"user,omitempty"`
}

// LoginRequest — тело POST /v1/login.
type LoginRequest struct {
	Login      string `json:"login"`
	Password   string `json:"password"`
	FirebaseID string `json:"firebase_id"` // у веба всегда пустой
}

// RegistrationCheckRequest — тело POST /v1/registration/check.
type RegistrationCheckRequest struct {
	Accept bool   `json:"accept"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	CodeID int    `json:"code_id"`
	Email  string `json:"email"`
}

// RegistrationRequest — тело POST /v1/registration. Code и InstallURL
// заполняются только на финальном шаге; по их наличию сервер различает
// отправку кода и завершение регистрации.
type RegistrationRequest struct {
	Login       string `json:"login"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PhoneCodeID int    `json:"phone_code_id"`
	Name        string `json:"name"`
	Accept      bool   `json:"accept"`
	Code        string `json:"code,omitempty"`
	InstallURL  string `json:"install_url,omitempty"`
}
