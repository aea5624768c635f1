package models

// RegistrationDraft — черновик регистрации между шагом проверки и финальным
// подтверждением. Живёт только в подписанном cookie, в БД не попадает.
type RegistrationDraft struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	DialCode string `json:"dial_code"`
	CodeID   int    `json:"code_id"`
	Email    string `json:"email"`
	Accept   bool   `json:"accept"`
}
