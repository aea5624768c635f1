package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webcabinet/internal/panel"
	"webcabinet/internal/services"
)

type PanelHandler struct {
	registry *panel.Registry
	sessions services.SessionService
}

func NewPanelHandler(registry *panel.Registry, sessions services.SessionService) *PanelHandler {
	return &PanelHandler{registry: registry, sessions: sessions}
}

// Dashboard — посадочная точка кабинета; монтирует view для панельной навигации.
func (h *PanelHandler) Dashboard(c *gin.Context) {
	viewID := h.sessions.EnsureViewID(c)
	h.registry.Register(viewID)

	// userId читаем из зеркала; cookie — запасной источник, если зеркало
	// потерялось (гард уже пропустил запрос по cookie)
	userID := ""
	if mirrored, err := h.sessions.Mirror(viewID); err == nil && mirrored != nil {
		userID = mirrored.UserID
	} else if creds, ok := h.sessions.FromCookies(c); ok {
		userID = creds.UserID
	}

	c.JSON(http.StatusOK, gin.H{
		"page":   "dashboard",
		"userId": userID,
	})
}

// OpenPanel показывает панель; открытие чисто локальное, к API не ходит.
func (h *PanelHandler) OpenPanel(c *gin.Context) {
	var req struct {
		Panel   string `json:"panel" binding:"required"`
		Payload any    `json:"payload"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := panel.Parse(req.Panel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	viewID := h.sessions.EnsureViewID(c)
	if !h.registry.Open(viewID, p, req.Payload) {
		c.JSON(http.StatusConflict, gin.H{"error": "view not mounted"})
		return
	}
	h.respondState(c, viewID)
}

// AdvancePanel двигает многошаговую панель на следующий шаг.
func (h *PanelHandler) AdvancePanel(c *gin.Context) {
	viewID := h.sessions.EnsureViewID(c)
	nav, ok := h.registry.Navigator(viewID)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "view not mounted"})
		return
	}
	nav.Advance()
	h.respondState(c, viewID)
}

// ClosePanel прячет активную панель и сбрасывает шаги.
func (h *PanelHandler) ClosePanel(c *gin.Context) {
	viewID := h.sessions.EnsureViewID(c)
	nav, ok := h.registry.Navigator(viewID)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "view not mounted"})
		return
	}
	nav.Close()
	h.respondState(c, viewID)
}

// PanelState отдаёт текущее состояние панельной навигации view.
func (h *PanelHandler) PanelState(c *gin.Context) {
	viewID := h.sessions.EnsureViewID(c)
	if _, ok := h.registry.Navigator(viewID); !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "view not mounted"})
		return
	}
	h.respondState(c, viewID)
}

func (h *PanelHandler) respondState(c *gin.Context, viewID string) {
	nav, ok := h.registry.Navigator(viewID)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "view not mounted"})
		return
	}
	active, step, payload := nav.State()
	resp := gin.H{"panel": active.String()}
	if panel.HasSteps(active) {
		resp["step"] = step.String()
	}
	if payload != nil {
		resp["payload"] = payload
	}
	c.JSON(http.StatusOK, resp)
}
