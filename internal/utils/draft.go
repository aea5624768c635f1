package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"webcabinet/internal/models"
)

var DraftKey = []byte("webcabinet-draft-key") // TODO: вынести в конфиг/ENV

// DraftClaims — черновик регистрации между шагами формы. Подпись нужна,
// чтобы шаг и данные черновика нельзя было подменить на клиенте; на сервере
// черновик нигде не хранится.
type DraftClaims struct {
	Draft models.RegistrationDraft `json:"draft"`
	Step  string                   `json:"step"` // "eligible" | "code_sent"
	jwt.RegisteredClaims
}

func SignDraft(draft models.RegistrationDraft, step string, ttl time.Duration) (string, error) {
	jti, err := NewOpaqueToken(16)
	if err != nil {
		return "", err
	}
	claims := &DraftClaims{
		Draft: draft,
		Step:  step,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(DraftKey)
}

func ParseDraft(tokenStr string) (*DraftClaims, error) {
	claims := &DraftClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		// принимаем только HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return DraftKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("draft token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("draft token: invalid")
	}
	return claims, nil
}
