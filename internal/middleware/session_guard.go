package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"webcabinet/internal/models"
)

const (
	protectedPrefix = "/dashboard"
	loginPath       = "/login"
)

// поверхности, доступные только без сессии
func isAuthOnlyPath(path string) bool {
	return strings.HasPrefix(path, "/login") || strings.HasPrefix(path, "/register")
}

func isProtectedPath(path string) bool {
	return strings.HasPrefix(path, protectedPrefix)
}

// SessionGuard — чистая граница маршрутов: смотрит только на cookie запроса,
// к API не ходит и хранилище не трогает. Пара cookie валидна целиком;
// одиночный sessionId или userId = не авторизован.
func SessionGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		// пропускаем preflight
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		sid, errS := c.Cookie(models.CookieSessionID)
		uid, errU := c.Cookie(models.CookieUserID)
		authed := errS == nil && errU == nil && sid != "" && uid != ""

		path := c.Request.URL.Path
		switch {
		case isProtectedPath(path) && !authed:
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
		case isAuthOnlyPath(path) && authed:
			c.Redirect(http.StatusFound, protectedPrefix)
			c.Abort()
		default:
			c.Next()
		}
	}
}
