package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dineshhh-06/ai-powered-resume-screening/internal/config"
	"github.com/dineshhh-06/ai-powered-resume-screening/internal/handlers"
	"github.com/dineshhh-06/ai-powered-resume-screening/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Load NLP resources. A missing model must stop the process here;
	// serving with a broken pipeline would silently score everything 0.
	nlpContext, err := services.NewNLPContext()
	if err != nil {
		log.Fatalf("❌ Failed to load NLP resources: %v", err)
	}
	log.Println("✅ NLP resources loaded successfully")

	// Initialize embedding model
	embedder, err := services.NewGeminiEmbedder(cfg.Gemini.APIKey, cfg.Gemini.EmbeddingModel)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding model: %v", err)
	}
	log.Println("✅ Embedding model initialized successfully")

	similarityService := services.NewSimilarityService(embedder)

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(pdfParser, nlpContext, similarityService)
	log.Println("✅ Analyzer service initialized")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(storageService, cfg.Storage.MaxFileSize)
	jobDescHandler := handlers.NewJobDescriptionHandler()
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Screening API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/analyzer")

	api.Post("/upload-resumes", uploadHandler.HandleUploadResumes)
	api.Post("/submit-job-description", jobDescHandler.HandleSubmit)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Resume Analyzer API is running",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/analyzer/upload-resumes",
				"POST /api/analyzer/submit-job-description",
				"POST /api/analyzer/analyze",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
