package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"speechcoach/config"
	"speechcoach/handlers"
	"speechcoach/internal/aiclient"
	"speechcoach/middleware"
	"speechcoach/storage"
)

func main() {
	config.InitLogger()
	log := config.Log

	settings, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	var store storage.HistoryStore
	if settings.SupabaseURL != "" && settings.SupabaseKey != "" {
		store, err = storage.NewSupabaseStore(settings.SupabaseURL, settings.SupabaseKey)
		if err != nil {
			log.WithError(err).Fatal("Failed to initialize Supabase history store")
		}
		log.Info("History store: Supabase")
	} else {
		mem := storage.NewMemoryStore()
		if settings.DemoSeed {
			if err := storage.SeedDemo(mem, time.Now()); err != nil {
				log.WithError(err).Fatal("Failed to seed demo history")
			}
			log.Info("Seeded demo analysis history")
		}
		store = mem
		log.Info("History store: in-memory (no Supabase credentials configured)")
	}

	ai := aiclient.New(settings.GroqAPIKey, settings.GroqBaseURL, log)
	if !ai.Enabled() {
		log.Warn("GROQ_API_KEY not set - analysis runs rule-based only, transcription disabled")
	}

	h := handlers.NewApplicationHandler(ai, log, store)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "SpeechCoach gateway is healthy",
		})
	})

	app.Post("/analyze", h.AnalyzeScript)
	app.Post("/transcribe", h.TranscribeAudio)
	app.Get("/history/:id", h.GetAnalysis)
	app.Get("/progress", h.GetProgress)

	log.WithField("addr", settings.ListenAddr).Info("Starting SpeechCoach gateway")
	if err := app.Listen(settings.ListenAddr); err != nil {
		log.WithError(err).Fatal("Server exited")
	}
}
