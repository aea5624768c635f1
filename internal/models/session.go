package models

// Имена cookie — общий контракт между хендлерами, сервисом сессий и гардом.
const (
	CookieSessionID = "sessionId"
	CookieUserID    = "userId"
	CookieViewID    = "viewId"
	CookieDraft     = "draft"
)

// Credentials — пара (sessionId, userId), выданная платформой при входе.
// Инвариант: пара валидна только целиком; одиночное значение = не авторизован.
type Credentials struct {
	SessionID string `json:"-"` // не отдаём наружу
	UserID    string `json:"-"`
}

// Complete — обе части пары на месте.
func (c Credentials) Complete() bool {
	return c.SessionID != "" && c.UserID != ""
}
