package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"webcabinet/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginPage — поверхность входа; разметку рисует фронтенд.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

// @Summary      Вход в систему
// @Description  Обменивает логин и пароль на сессию и устанавливает сессионные cookie
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      object  true  "Логин и пароль"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      502    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Login    string `json:"login" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.Login(c, req.Login, req.Password); err != nil {
		respondFlowError(c, err)
		return
	}

	// навигация в кабинет односторонняя: назад на форму входа не возвращаемся
	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"redirect": "/dashboard",
	})
}

// @Summary      Выход
// @Description  Чистит сессионные cookie и серверное зеркало сессии
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c); err != nil {
		log.Printf("[auth][logout] err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Logged out",
		"redirect": "/login",
	})
}
