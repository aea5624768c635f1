package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"webcabinet/internal/services"
)

type CountryHandler struct {
	countryService services.CountryService
	sessions       services.SessionService
}

func NewCountryHandler(countryService services.CountryService, sessions services.SessionService) *CountryHandler {
	return &CountryHandler{countryService: countryService, sessions: sessions}
}

// @Summary      Справочник стран
// @Description  Телефонные коды и флаги для поля ввода номера
// @Tags         Reference
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /countries [get]
func (h *CountryHandler) List(c *gin.Context) {
	// пара берётся из серверного зеркала: для исходящих вызовов API
	// источником истины служит оно, а не cookie
	viewID := h.sessions.EnsureViewID(c)
	creds, err := h.sessions.Mirror(viewID)
	if err != nil {
		// без зеркала вызов уходит неавторизованным, справочник публичный
		log.Printf("[countries][list] зеркало недоступно view=%s: %v", viewID, err)
		creds = nil
	}

	list, err := h.countryService.List(creds)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": list})
}
