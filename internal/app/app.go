package app

import (
	"database/sql"
	"fmt"
	"log"

	"webcabinet/internal/config"
	"webcabinet/internal/gateway"
	"webcabinet/internal/handlers"
	"webcabinet/internal/panel"
	"webcabinet/internal/repositories"
	"webcabinet/internal/routes"
	"webcabinet/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "webcabinet/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB (зеркало сессий) ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия БД: %v", err)
		}
	}()

	// === Repos ===
	sessionRepo := repositories.NewSessionRepository(db)

	// === Gateway ===
	gw := gateway.NewClient(cfg.API.BaseURL, cfg.API.DebugMode)

	// === Services ===
	sessionService := services.NewSessionService(sessionRepo, cfg.Cookies.MaxAge)
	panelRegistry := panel.NewRegistry()
	authService := services.NewAuthService(gw, sessionService, panelRegistry)
	regService := services.NewRegistrationService(gw, cfg.API.InstallURL)
	countryService := services.NewCountryService(gw)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(authService)
	registerHandler := handlers.NewRegisterHandler(regService)
	countryHandler := handlers.NewCountryHandler(countryService, sessionService)
	panelHandler := handlers.NewPanelHandler(panelRegistry, sessionService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		registerHandler,
		countryHandler,
		panelHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
