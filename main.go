package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Printf("Token blacklist unavailable: %v", err)
		} else {
			services.TokenBlacklist = blacklist
		}

		cache, err := services.NewSessionCache(redisURL)
		if err != nil {
			log.Printf("Session cache unavailable: %v", err)
		} else {
			services.GlobalSessionCache = cache
		}
	}
}

func setupRouter() *gin.Engine {
	if !utils.GetEnvAsBool("GIN_DEBUG", false) {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Repositories
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	habitsRepo := repository.GetHabitsRepo(utils.MongoClient)
	categoriesRepo := repository.GetCategoriesRepo(utils.MongoClient)
	todosRepo := repository.GetTodosRepo(utils.MongoClient)
	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	goalsRepo := repository.GetGoalsRepo(utils.MongoClient)
	projectsRepo := repository.GetProjectsRepo(utils.MongoClient)
	pomodoroRepo := repository.GetPomodoroRepo(utils.MongoClient)
	settingsRepo := repository.GetSettingsRepo(utils.MongoClient)

	// Services
	usersService := usecase.NewUsersService(usersRepo, repository.GetPurgeRepo(utils.MongoClient))
	habitsService := usecase.NewHabitsService(habitsRepo)
	categoriesService := usecase.NewCategoriesService(categoriesRepo, habitsRepo)
	todosService := usecase.NewTodosService(todosRepo)
	notesService := usecase.NewNotesService(notesRepo)
	goalsService := usecase.NewGoalsService(goalsRepo, habitsRepo)
	projectsService := usecase.NewProjectsService(projectsRepo)
	pomodoroService := &usecase.PomodoroService{
		PomodoroRepo: pomodoroRepo,
		SettingsRepo: settingsRepo,
	}

	// Handlers
	authHandler := handler.NewAuthHandler(usersService, sessionRepo)
	profileHandler := handler.NewProfileHandler(usersService, usersRepo, sessionRepo)
	sessionsHandler := handler.NewSessionsHandler(sessionRepo)
	twoFactorHandler := handler.NewTwoFactorHandler(usersRepo)
	habitsHandler := handler.NewHabitsHandler(habitsService)
	categoriesHandler := handler.NewCategoriesHandler(categoriesService)
	todosHandler := handler.NewTodosHandler(todosService)
	notesHandler := handler.NewNotesHandler(notesService)
	goalsHandler := handler.NewGoalsHandler(goalsService)
	projectsHandler := handler.NewProjectsHandler(projectsService)
	pomodoroHandler := handler.NewPomodoroHandler(pomodoroService)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)
	statsHandler := handler.NewStatsHandler(habitsService, goalsService, todosRepo, notesRepo, pomodoroRepo, usersRepo, sessionRepo)

	// Middleware
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestBodyLimit(int64(utils.GetEnvAsInt("MAX_REQUEST_BODY_BYTES", 1<<20))))
	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", profileHandler.GetProfile)
			user.POST("/change-email", profileHandler.ChangeEmail)
			user.POST("/change-password", profileHandler.ChangePassword)
			user.POST("/logout", authHandler.Logout)
			user.DELETE("/delete", profileHandler.DeleteAccount)
		}

		twoFactor := protected.Group("/2fa")
		{
			twoFactor.POST("/generate", twoFactorHandler.GenerateSecret)
			twoFactor.POST("/enable", twoFactorHandler.Enable)
			twoFactor.POST("/disable", twoFactorHandler.Disable)
			twoFactor.POST("/recovery", twoFactorHandler.UseRecoveryCode)
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", sessionsHandler.GetActiveSessions)
			sessions.DELETE("/:id", sessionsHandler.EndSession)
			sessions.POST("/logout-all", sessionsHandler.LogoutAllSessions)
		}

		habits := protected.Group("/habits")
		{
			habits.GET("/", habitsHandler.GetUserHabits)
			habits.GET("/today", habitsHandler.GetToday)
			habits.GET("/:id", habitsHandler.GetHabit)
			habits.GET("/:id/stats", habitsHandler.GetStats)
			habits.POST("/", habitsHandler.CreateHabit)
			habits.PUT("/:id", habitsHandler.UpdateHabit)
			habits.POST("/:id/toggle", habitsHandler.ToggleCompletion)
			habits.POST("/:id/archive", habitsHandler.ArchiveHabit)
			habits.POST("/:id/unarchive", habitsHandler.UnarchiveHabit)
			habits.DELETE("/:id", habitsHandler.DeleteHabit)
		}

		categories := protected.Group("/categories")
		{
			// Category listings change rarely; let clients cache them briefly.
			categories.GET("/", middleware.CacheControlMiddleware("private", 5*time.Minute), categoriesHandler.GetCategories)
			categories.POST("/", categoriesHandler.CreateCategory)
			categories.PUT("/:id", categoriesHandler.UpdateCategory)
			categories.DELETE("/:id", categoriesHandler.DeleteCategory)
		}

		todos := protected.Group("/todos")
		{
			todos.GET("/", todosHandler.GetUserTodos)
			todos.POST("/", todosHandler.CreateTodo)
			todos.PUT("/:id", todosHandler.UpdateTodo)
			todos.POST("/:id/toggle", todosHandler.ToggleComplete)
			todos.DELETE("/:id", todosHandler.DeleteTodo)
		}

		notes := protected.Group("/notes")
		{
			notes.GET("/", notesHandler.GetUserNotes)
			notes.GET("/search", notesHandler.SearchNotes)
			notes.POST("/", notesHandler.CreateNote)
			notes.PUT("/:id", notesHandler.UpdateNote)
			notes.POST("/:id/pin", notesHandler.TogglePin)
			notes.POST("/:id/archive", notesHandler.ArchiveNote)
			notes.POST("/:id/unarchive", notesHandler.UnarchiveNote)
			notes.DELETE("/:id", notesHandler.DeleteNote)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("/", goalsHandler.GetUserGoals)
			goals.GET("/:id", goalsHandler.GetGoal)
			goals.GET("/:id/stats", goalsHandler.GetGoalStats)
			goals.POST("/", goalsHandler.CreateGoal)
			goals.PUT("/:id", goalsHandler.UpdateGoal)
			goals.POST("/:id/archive", goalsHandler.ArchiveGoal)
			goals.DELETE("/:id", goalsHandler.DeleteGoal)
			goals.POST("/:id/items", goalsHandler.AddItem)
			goals.PUT("/:id/items/:itemId", goalsHandler.UpdateItemWeight)
			goals.DELETE("/:id/items/:itemId", goalsHandler.RemoveItem)
		}

		projects := protected.Group("/projects")
		{
			projects.GET("/", projectsHandler.GetUserProjects)
			projects.POST("/", projectsHandler.CreateProject)
			projects.PUT("/:id", projectsHandler.UpdateProject)
			projects.DELETE("/:id", projectsHandler.DeleteProject)
			projects.POST("/:id/tasks", projectsHandler.AddTask)
			projects.PUT("/:id/tasks/:taskId", projectsHandler.UpdateTask)
			projects.POST("/:id/tasks/:taskId/time", projectsHandler.AddTimeEntry)
			projects.GET("/:id/report", projectsHandler.GetTimeReport)
		}

		pomodoro := protected.Group("/pomodoro")
		{
			pomodoro.GET("/", pomodoroHandler.GetState)
			pomodoro.POST("/complete", pomodoroHandler.CompletePhase)
			pomodoro.POST("/reset", pomodoroHandler.Reset)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("/", settingsHandler.GetSettings)
			settings.PUT("/", settingsHandler.SaveSettings)
			settings.POST("/reset", settingsHandler.ResetSettings)
		}

		protected.GET("/stats", statsHandler.GetUserStats)
	}

	return router
}

func main() {
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "lifedesk"
	}
	db := utils.MongoClient.Database(dbName)

	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	categoriesRepo := repository.GetCategoriesRepo(utils.MongoClient)
	if err := categoriesRepo.EnsureDefaultCategories(ctx); err != nil {
		cancel()
		log.Fatalf("Failed to seed default categories: %v", err)
	}
	cancel()

	scheduler := services.NewScheduler(repository.GetSessionRepo(utils.MongoClient))
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start maintenance scheduler: %v", err)
	}

	router := setupRouter()

	port := utils.GetEnvAsString("PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Printf("Caught signal %s, shutting down", sig)

	scheduler.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if err := utils.MongoClient.Disconnect(shutdownCtx); err != nil {
		log.Printf("Mongo disconnect error: %v", err)
	}
	if services.TokenBlacklist != nil {
		services.TokenBlacklist.Close()
	}
	if services.GlobalSessionCache != nil {
		services.GlobalSessionCache.Close()
	}

	log.Println("Server shutdown complete")
}
