package services

// Резервные тексты на случай, когда сервер отказал без message_ru.
const (
	fallbackRegistrationMessage = "Не удалось завершить регистрацию, попробуйте позже"
	fallbackLoginMessage        = "Не удалось войти, попробуйте позже"
)

// ValidationError — клиентская предпроверка формы не прошла. До сети такой
// вызов не доходит.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var (
	ErrAgreementNotAccepted = &ValidationError{Reason: "agreement not accepted"}
	ErrPasswordMismatch     = &ValidationError{Reason: "passwords do not match"}
)

// RegistrationRejectedError — сервер явно ответил output.result=false на одном
// из шагов регистрации. Message — локализованный текст сервера.
type RegistrationRejectedError struct {
	Message string
}

func (e *RegistrationRejectedError) Error() string {
	if e.Message == "" {
		return fallbackRegistrationMessage
	}
	return e.Message
}

// AuthenticationFailedError — сервер отклонил логин/пароль.
type AuthenticationFailedError struct {
	Message string
}

func (e *AuthenticationFailedError) Error() string {
	if e.Message == "" {
		return fallbackLoginMessage
	}
	return e.Message
}
