package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"webcabinet/internal/models"
	"webcabinet/internal/services"
	"webcabinet/internal/utils"
)

// Черновик живёт столько, сколько разумно держать открытой форму регистрации.
const draftTTL = 30 * time.Minute

type RegisterHandler struct {
	regService services.RegistrationService
}

func NewRegisterHandler(regService services.RegistrationService) *RegisterHandler {
	return &RegisterHandler{regService: regService}
}

// RegisterPage — поверхность регистрации.
func (h *RegisterHandler) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "register"})
}

// @Summary      Проверка данных регистрации
// @Description  Серверная проверка черновика; при успехе выдаёт подписанный cookie черновика
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /register/check [post]
func (h *RegisterHandler) Check(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		DialCode string `json:"dial_code"`
		CodeID   int    `json:"code_id" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Accept   bool   `json:"accept"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := models.RegistrationDraft{
		Name:     req.Name,
		Phone:    req.Phone,
		DialCode: req.DialCode,
		CodeID:   req.CodeID,
		Email:    req.Email,
		Accept:   req.Accept,
	}
	if err := h.regService.CheckEligibility(draft); err != nil {
		respondFlowError(c, err)
		return
	}

	if err := h.issueDraft(c, draft, services.StepEligible); err != nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft accepted"})
}

// @Summary      Отправка кода подтверждения
// @Description  Просит платформу выслать код на почту из черновика; повторный вызов — повторная отправка
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /register [post]
func (h *RegisterHandler) Initiate(c *gin.Context) {
	claims, ok := h.draftFromCookie(c, services.StepEligible, services.StepCodeSent)
	if !ok {
		return
	}

	var req struct {
		Login           string `json:"login" binding:"required"`
		Password        string `json:"password" binding:"required"`
		PasswordConfirm string `json:"password_confirm" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.regService.InitiateVerification(req.Login, req.Password, req.PasswordConfirm, claims.Draft); err != nil {
		respondFlowError(c, err)
		return
	}

	if err := h.issueDraft(c, claims.Draft, services.StepCodeSent); err != nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// @Summary      Завершение регистрации
// @Description  Подтверждает регистрацию кодом из письма
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /register/confirm [post]
func (h *RegisterHandler) Complete(c *gin.Context) {
	claims, ok := h.draftFromCookie(c, services.StepCodeSent)
	if !ok {
		return
	}

	var req struct {
		Login           string `json:"login" binding:"required"`
		Password        string `json:"password" binding:"required"`
		PasswordConfirm string `json:"password_confirm" binding:"required"`
		Code            string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.regService.CompleteRegistration(req.Login, req.Password, req.PasswordConfirm, req.Code, claims.Draft); err != nil {
		respondFlowError(c, err)
		return
	}

	// черновик израсходован
	c.SetCookie(models.CookieDraft, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Registration completed",
		"redirect": "/login",
	})
}

func (h *RegisterHandler) issueDraft(c *gin.Context, draft models.RegistrationDraft, step services.StepTag) error {
	token, err := utils.SignDraft(draft, string(step), draftTTL)
	if err != nil {
		log.Printf("[registration][draft] sign failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store draft"})
		return err
	}
	c.SetCookie(models.CookieDraft, token, int(draftTTL.Seconds()), "/", "", false, true)
	return nil
}

// draftFromCookie читает и проверяет черновик; допустимые шаги перечисляет
// вызывающий (Initiate принимает и code_sent — это повторная отправка кода).
func (h *RegisterHandler) draftFromCookie(c *gin.Context, allowed ...services.StepTag) (*utils.DraftClaims, bool) {
	token, err := c.Cookie(models.CookieDraft)
	if err != nil || token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "registration draft not found, start over"})
		return nil, false
	}
	claims, err := utils.ParseDraft(token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "registration draft expired, start over"})
		return nil, false
	}
	for _, step := range allowed {
		if claims.Step == string(step) {
			return claims, true
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "registration step out of order"})
	return nil, false
}
