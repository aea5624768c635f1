package services

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"webcabinet/internal/models"
	"webcabinet/internal/panel"
)

// AuthService — обмен логина/пароля на сессию и разрыв сессии.
type AuthService interface {
	// Login обменивает учётные данные на сессионную пару и при успехе пишет её
	// в хранилище. При отказе сервера или транспортном сбое хранилище не трогает.
	Login(c *gin.Context, login, password string) error
	Logout(c *gin.Context) error
}

type authService struct {
	gw       Gateway
	sessions SessionService
	panels   *panel.Registry
}

func NewAuthService(gw Gateway, sessions SessionService, panels *panel.Registry) AuthService {
	return &authService{gw: gw, sessions: sessions, panels: panels}
}

func (s *authService) Login(c *gin.Context, login, password string) error {
	login = strings.TrimSpace(login)
	log.Printf("[auth][login] attempt login=%q", login)

	resp, err := s.gw.Login(models.LoginRequest{
		Login:      login,
		Password:   password,
		FirebaseID: "", // у веб-клиента push-токена нет
	})
	if err != nil {
		log.Printf("[auth][login] gateway failure login=%q: err=%v", login, err)
		return err
	}
	if !resp.Output.Result {
		log.Printf("[auth][login] rejected login=%q", login)
		return &AuthenticationFailedError{Message: resp.Output.MessageRU}
	}
	if resp.User == nil || resp.User.SessionID == "" {
		log.Printf("[auth][login] result=true без сессии login=%q", login)
		return &AuthenticationFailedError{}
	}

	creds := models.Credentials{
		SessionID: resp.User.SessionID,
		UserID:    resp.User.UserID.String(),
	}
	if err := s.sessions.Establish(c, creds); err != nil {
		return err
	}
	log.Printf("[auth][login] success userId=%s", creds.UserID)
	return nil
}

func (s *authService) Logout(c *gin.Context) error {
	// размонтируем view: его панельные open-функции больше не должны срабатывать
	if viewID, err := c.Cookie(models.CookieViewID); err == nil && viewID != "" {
		s.panels.Deregister(viewID)
	}
	return s.sessions.Logout(c)
}
