package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webcabinet/internal/handlers"
	"webcabinet/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	registerHandler *handlers.RegisterHandler,
	countryHandler *handlers.CountryHandler,
	panelHandler *handlers.PanelHandler,
) *gin.Engine {

	// гард смотрит на путь сам: auth-поверхности и /dashboard он
	// разводит по cookie, остальное пропускает
	r.Use(middleware.SessionGuard())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ---- auth-поверхности (доступны только без сессии)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	r.GET("/register", registerHandler.RegisterPage)
	r.POST("/register/check", registerHandler.Check)
	r.POST("/register", registerHandler.Initiate)
	r.POST("/register/confirm", registerHandler.Complete)

	// справочник для поля телефона — нужен форме регистрации
	r.GET("/countries", countryHandler.List)

	// ---- кабинет (только с сессией)
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("", panelHandler.Dashboard)
		dashboard.GET("/main", panelHandler.Dashboard)

		panels := dashboard.Group("/panels")
		{
			panels.GET("", panelHandler.PanelState)
			panels.POST("/open", panelHandler.OpenPanel)
			panels.POST("/advance", panelHandler.AdvancePanel)
			panels.POST("/close", panelHandler.ClosePanel)
		}
	}

	return r
}
