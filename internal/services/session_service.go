package services

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"webcabinet/internal/models"
	"webcabinet/internal/repositories"
)

// viewID живёт дольше сессии: он привязывает состояние панелей и зеркало
// сессии к браузеру, а не к логину.
const viewCookieMaxAge = 365 * 24 * 60 * 60

// SessionService — хранилище сессионной пары. Пишет её в оба места сразу:
// cookie браузера (по ним работает гард маршрутов) и серверное зеркало
// (по нему подставляются заголовки исходящих вызовов API).
type SessionService interface {
	// Establish сохраняет пару после успешного входа. Неполная пара — ошибка.
	Establish(c *gin.Context, creds models.Credentials) error
	// FromCookies читает пару из cookie запроса; обе части или ничего.
	FromCookies(c *gin.Context) (models.Credentials, bool)
	// Mirror читает серверное зеркало; (nil, nil) — зеркала нет.
	Mirror(viewID string) (*models.Credentials, error)
	// Logout чистит оба cookie и зеркало, ничего не устанавливая взамен.
	Logout(c *gin.Context) error
	// EnsureViewID возвращает viewId браузера, выпуская cookie при первом визите.
	EnsureViewID(c *gin.Context) string
}

type sessionService struct {
	repo   repositories.SessionRepository
	maxAge int // срок сессионных cookie, секунды
}

func NewSessionService(repo repositories.SessionRepository, maxAge int) SessionService {
	return &sessionService{repo: repo, maxAge: maxAge}
}

func (s *sessionService) Establish(c *gin.Context, creds models.Credentials) error {
	if !creds.Complete() {
		return fmt.Errorf("session: неполная пара credentials (sessionId=%t, userId=%t)",
			creds.SessionID != "", creds.UserID != "")
	}

	viewID := s.EnsureViewID(c)
	if err := s.repo.Save(viewID, &creds); err != nil {
		return fmt.Errorf("session: save mirror: %w", err)
	}

	c.SetCookie(models.CookieSessionID, creds.SessionID, s.maxAge, "/", "", false, true)
	c.SetCookie(models.CookieUserID, creds.UserID, s.maxAge, "/", "", false, true)
	return nil
}

func (s *sessionService) FromCookies(c *gin.Context) (models.Credentials, bool) {
	sid, err1 := c.Cookie(models.CookieSessionID)
	uid, err2 := c.Cookie(models.CookieUserID)
	if err1 != nil || err2 != nil {
		return models.Credentials{}, false
	}
	creds := models.Credentials{SessionID: sid, UserID: uid}
	if !creds.Complete() {
		return models.Credentials{}, false
	}
	return creds, true
}

func (s *sessionService) Mirror(viewID string) (*models.Credentials, error) {
	return s.repo.Get(viewID)
}

func (s *sessionService) Logout(c *gin.Context) error {
	if viewID, err := c.Cookie(models.CookieViewID); err == nil && viewID != "" {
		if err := s.repo.Delete(viewID); err != nil {
			// cookie всё равно чистим: без них гард не пустит дальше
			log.Printf("[session][logout] не удалось удалить зеркало view=%s: %v", viewID, err)
		}
	}
	c.SetCookie(models.CookieSessionID, "", -1, "/", "", false, true)
	c.SetCookie(models.CookieUserID, "", -1, "/", "", false, true)
	return nil
}

func (s *sessionService) EnsureViewID(c *gin.Context) string {
	// в пределах одного запроса выпущенный id переиспользуем
	if v, ok := c.Get("view_id"); ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	if id, err := c.Cookie(models.CookieViewID); err == nil && id != "" {
		c.Set("view_id", id)
		return id
	}
	id := uuid.NewString()
	c.SetCookie(models.CookieViewID, id, viewCookieMaxAge, "/", "", false, true)
	c.Set("view_id", id)
	return id
}
