package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"webcabinet/internal/gateway"
	"webcabinet/internal/services"
)

// respondFlowError — единая точка отображения ошибок рукопожатий: любая из
// них превращается в inline-текст для формы и дальше не пробрасывается.
// Автоматических повторов нет, пользователь правит ввод и отправляет снова.
func respondFlowError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	var rejErr *services.RegistrationRejectedError
	var authErr *services.AuthenticationFailedError
	var apiErr *gateway.APIError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason})
	case errors.As(err, &rejErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": rejErr.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Error()})
	case errors.As(err, &apiErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Message, "status": apiErr.Status})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
