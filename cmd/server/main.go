package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"

	config "github.com/Rutuja303/contentforge/configs"
	"github.com/Rutuja303/contentforge/internal/ai"
	"github.com/Rutuja303/contentforge/internal/api/handlers"
	"github.com/Rutuja303/contentforge/internal/api/middleware"
	job "github.com/Rutuja303/contentforge/internal/jobs"
	"github.com/Rutuja303/contentforge/internal/platforms"
	"github.com/Rutuja303/contentforge/internal/queue"
	"github.com/Rutuja303/contentforge/internal/repository"
	"github.com/Rutuja303/contentforge/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}
	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	promptRepo := repository.NewPromptRepository(db)
	generatedPostRepo := repository.NewGeneratedPostRepository(db)
	scheduledPostRepo := repository.NewScheduledPostRepository(db)
	connectionRepo := repository.NewPlatformConnectionRepository(db)
	settingsRepo := repository.NewUserSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	registry := platforms.Registry()

	providers := ai.ChainFromConfig(*cfg)
	analyzer := ai.NewMediaAnalyzer(ai.NewGeminiProvider(cfg.GeminiAPIKey))
	generator := ai.NewGenerator(providers, analyzer)

	r2Service := service.NewR2Service(*cfg)
	mediaService := service.NewMediaService(*cfg, r2Service)
	authService := service.NewAuthService(userRepo)
	generationService := service.NewGenerationService(repository.NewTxRunner(db), generator, mediaService, promptRepo, generatedPostRepo)
	postService := service.NewPostService(generator, generatedPostRepo)
	publishService := service.NewPublishService(*cfg, registry, generatedPostRepo, scheduledPostRepo, connectionRepo)
	contentService := service.NewContentService(generatedPostRepo, publishService)
	scheduleService := service.NewScheduleService(generatedPostRepo, scheduledPostRepo)
	oauthService := service.NewOAuthService(*cfg, registry, userRepo, connectionRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, scheduledPostRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)
	app.Post("/auth/logout", auth.Logout)

	oauth := handlers.NewOAuthHandler(*cfg, oauthService)
	// callback has no session; user identity travels in the state value
	app.Get("/oauth/:platform/callback", oauth.Callback)

	api := app.Group("/")
	api.Use(authMiddleware.AuthMiddleware())

	api.Get("/auth/me", auth.Me)

	prompt := handlers.NewPromptHandler(generationService)
	api.Post("/prompts/generate", prompt.Generate)
	api.Post("/prompts/:id/regenerate", prompt.Regenerate)
	api.Get("/prompts", prompt.ListPrompts)

	post := handlers.NewPostHandler(postService)
	api.Get("/posts", post.ListPosts)
	api.Get("/posts/:id", post.GetPost)
	api.Put("/posts/:id", post.UpdatePost)
	api.Post("/posts/:id/approve", post.ApprovePost)
	api.Post("/posts/:id/reject", post.RejectPost)
	api.Post("/posts/:id/improve", post.ImprovePost)
	api.Delete("/posts/:id", post.DeletePost)

	content := handlers.NewContentHandler(contentService)
	api.Post("/content/drafts", content.CreateDraft)
	api.Get("/content/drafts", content.ListDrafts)
	api.Put("/content/drafts/:id", content.UpdateDraft)
	api.Delete("/content/drafts/:id", content.DeleteDraft)
	api.Post("/content/drafts/:id/post", content.PostDraft)

	schedule := handlers.NewScheduleHandler(scheduleService, client)
	api.Post("/schedule", schedule.CreateSchedule)
	api.Get("/schedule", schedule.ListSchedules)
	api.Get("/schedule/upcoming", schedule.UpcomingSchedules)
	api.Get("/schedule/:id", schedule.GetSchedule)
	api.Put("/schedule/:id", schedule.UpdateSchedule)
	api.Delete("/schedule/:id", schedule.DeleteSchedule)

	publish := handlers.NewPublishHandler(publishService, scheduleService, client)
	api.Post("/publish", publish.Publish)

	api.Get("/oauth/:platform/connect", oauth.Connect)
	api.Get("/oauth/connections", oauth.ListConnections)
	api.Delete("/oauth/connections/:platform", oauth.Disconnect)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics/dashboard", analytics.Dashboard)
	api.Get("/analytics/platforms", analytics.PlatformStats)
	api.Get("/analytics/timeline", analytics.Timeline)
	api.Get("/analytics/schedule", analytics.ScheduleOverview)

	settings := handlers.NewSettingsHandler(settingsService)
	api.Get("/settings", settings.GetSettings)
	api.Put("/settings", settings.UpdateSettings)

	// cron jobs
	refreshTokenJob := job.NewTokenRefreshJob(connectionRepo, oauthService)
	cleanupJob := job.NewCleanupJob(mediaService)
	sweepJob := job.NewScheduleSweepJob(scheduledPostRepo, client)

	// queue
	queueW := queue.NewQueue(publishService)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", refreshTokenJob.RefreshTokens)
	c.AddFunc("@every 01h00m00s", cleanupJob.Run)
	c.AddFunc("@every 00h01m00s", sweepJob.Run)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypePublishScheduled, queueW.HandlePublishScheduledTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":8000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:8000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
