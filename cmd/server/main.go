package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/Rakifeller/idea-approval/configs"
	"github.com/Rakifeller/idea-approval/internal/api/handlers"
	"github.com/Rakifeller/idea-approval/internal/api/middleware"
	job "github.com/Rakifeller/idea-approval/internal/jobs"
	"github.com/Rakifeller/idea-approval/internal/queue"
	"github.com/Rakifeller/idea-approval/internal/repository"
	"github.com/Rakifeller/idea-approval/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
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

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    25 * 1024 * 1024, // 25 MB, reference image uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	ideaRepo := repository.NewIdeaRepository(db)
	contentRepo := repository.NewContentRepository(db)
	scheduledPostRepo := repository.NewScheduledPostRepository(db)
	characterRepo := repository.NewCharacterRepository(db)

	dispatcher := queue.NewDispatcher(client)

	authService := service.NewAuthService(*cfg)
	notifier := service.NewWebhookNotifier(*cfg)
	r2Service := service.NewR2Service(*cfg)
	ideaService := service.NewIdeaService(ideaRepo, dispatcher)
	contentService := service.NewContentService(contentRepo, scheduledPostRepo)
	scheduleService := service.NewScheduleService(scheduledPostRepo, contentRepo, dispatcher)
	characterService := service.NewCharacterService(characterRepo, ideaRepo, contentRepo, r2Service)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(authService)
	app.Post("/login", auth.Login)

	api := app.Group("/")
	api.Use(authMiddleware.AuthMiddleware())

	content := handlers.NewContentHandler(contentService)
	api.Get("/approved-content", content.ListReadyContent)

	schedule := handlers.NewScheduleHandler(scheduleService)
	api.Get("/schedule-post", schedule.ListScheduledPosts)
	api.Post("/schedule-post", schedule.CreateScheduledPost)
	api.Delete("/schedule-post/:id", schedule.DeleteScheduledPost)

	idea := handlers.NewIdeaHandler(ideaService, notifier)
	api.Get("/ideas", idea.ListIdeas)
	api.Post("/approve-idea", idea.ApproveIdea)
	api.Post("/reject-idea", idea.RejectIdea)
	api.Post("/assign-influencer", idea.AssignInfluencer)
	api.Post("/trend-ideas", idea.GenerateTrendIdeas)

	character := handlers.NewCharacterHandler(characterService)
	api.Get("/characters", character.ListCharacters)
	api.Post("/characters", character.CreateCharacter)
	api.Get("/characters/:id", character.GetCharacter)
	api.Put("/characters/:id", character.UpdateCharacter)
	api.Post("/characters/:id/reference-image", character.UploadReferenceImage)
	api.Get("/character-stats", character.CharacterStats)
	api.Get("/character-content", character.CharacterContent)

	// cron jobs
	duePostsJob := job.NewDuePostsJob(scheduledPostRepo, dispatcher)

	// queue
	queueW := queue.NewQueue(scheduledPostRepo, notifier)

	c := cron.New()
	c.AddFunc("@every 00h02m00s", duePostsJob.NudgeDuePosts)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeNotifyPoster, queueW.HandleNotifyPosterTask)
		mux.HandleFunc(queue.TaskTypeNotifyGeneration, queueW.HandleNotifyGenerationTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

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
