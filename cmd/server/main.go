package main

import (
	"log"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/config"
	"github.com/neurosensemed-IA/Med-FlashCards/internal/database"
	"github.com/neurosensemed-IA/Med-FlashCards/internal/handlers"
	"github.com/neurosensemed-IA/Med-FlashCards/internal/middleware"
	"github.com/neurosensemed-IA/Med-FlashCards/internal/services"
	"github.com/neurosensemed-IA/Med-FlashCards/internal/storage"

	_ "github.com/neurosensemed-IA/Med-FlashCards/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Med-Flash API
// @version         1.0
// @description     Study-flashcard API: upload material, generate question decks with AI, study them and level up per subject
// @host            localhost:8080
// @BasePath        /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	remote := storage.NewPostgres(db)
	cache := storage.NewMemory()

	authService := services.NewAuthService(remote, cfg.JWTSecret)
	progressTracker := services.NewProgressTracker(remote, cache)
	deckRepo := services.NewDeckRepository(remote, cache)
	examService := services.NewExamService()
	extractService := services.NewExtractService()
	generationService := services.NewGenerationService(cfg.GeminiAPIKey, cfg.GeminiAPIURL, cfg.GeminiModel)

	authHandler := handlers.NewAuthHandler(authService, progressTracker)
	contentHandler := handlers.NewContentHandler(extractService, generationService)
	deckHandler := handlers.NewDeckHandler(deckRepo, generationService, progressTracker)
	examHandler := handlers.NewExamHandler(examService, deckRepo, progressTracker)
	progressHandler := handlers.NewProgressHandler(progressTracker)
	catalogHandler := handlers.NewCatalogHandler()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		api.GET("/catalog", catalogHandler.Get)

		authed := api.Group("")
		authed.Use(middleware.SessionAuth(authService, handlers.SessionCookie))
		{
			authed.GET("/me", authHandler.Me)
			authed.GET("/progress", progressHandler.Overview)

			authed.POST("/content/extract", contentHandler.Extract)
			authed.POST("/content/review", contentHandler.Review)

			authed.GET("/decks", deckHandler.List)
			authed.POST("/decks/generate", deckHandler.Generate)
			authed.DELETE("/decks/:name", deckHandler.Delete)

			authed.POST("/exam/start", examHandler.Start)
			authed.GET("/exam", examHandler.State)
			authed.POST("/exam/answer", examHandler.Answer)
			authed.POST("/exam/next", examHandler.Next)
			authed.POST("/exam/abandon", examHandler.Abandon)
		}
	}

	if !generationService.IsAvailable() {
		log.Println("GEMINI_API_KEY not set, deck generation disabled")
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
