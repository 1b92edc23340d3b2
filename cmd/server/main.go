package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"famify/internal/config"
	"famify/internal/database"
	"famify/internal/handlers"
	"famify/internal/repository"
	"famify/internal/security"
	"famify/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	eventRepo := repository.NewEventRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	listRepo := repository.NewListRepository(db)
	mealPlanRepo := repository.NewMealPlanRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	postRepo := repository.NewPostRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	familyService := service.NewFamilyService(familyRepo, userRepo)
	authService := service.NewAuthService(userRepo, familyService, cfg.SessionDuration)
	plannerService := service.NewPlannerService(eventRepo, taskRepo, mealPlanRepo, reminderRepo, noteRepo)
	listService := service.NewListService(listRepo)
	feedService := service.NewFeedService(postRepo, notificationRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	inviteService := service.NewInviteService(familyRepo, emailService, cfg.InviteTokenSecret)

	// Handlers
	middleware := handlers.NewMiddleware(authService, familyService)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	familyHandler := handlers.NewFamilyHandler(familyService, inviteService)
	plannerHandler := handlers.NewPlannerHandler(plannerService)
	listHandler := handlers.NewListHandler(listService)
	feedHandler := handlers.NewFeedHandler(feedService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	loginLimiter := security.NewRateLimiter(10, time.Minute)
	joinLimiter := security.NewRateLimiter(10, time.Minute)

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(loginLimiter, authHandler.Login))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(authHandler.CurrentUser))
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Family
	mux.HandleFunc("GET /api/family", middleware.RequireAuth(familyHandler.GetActiveFamily))
	mux.HandleFunc("POST /api/family", middleware.RequireAuth(familyHandler.CreateFamily))
	mux.HandleFunc("POST /api/family/join", middleware.RateLimit(joinLimiter, middleware.RequireAuth(familyHandler.JoinFamily)))
	mux.HandleFunc("POST /api/family/invite", middleware.RequireFamily(familyHandler.SendInvite))
	mux.HandleFunc("POST /api/family/invite/accept", middleware.RequireAuth(familyHandler.AcceptInvite))

	// Planner
	mux.HandleFunc("GET /api/events", middleware.RequireFamily(plannerHandler.ListEvents))
	mux.HandleFunc("POST /api/events", middleware.RequireFamily(plannerHandler.CreateEvent))
	mux.HandleFunc("DELETE /api/events/{id}", middleware.RequireFamily(plannerHandler.DeleteEvent))
	mux.HandleFunc("GET /api/tasks", middleware.RequireFamily(plannerHandler.ListTasks))
	mux.HandleFunc("POST /api/tasks", middleware.RequireFamily(plannerHandler.CreateTask))
	mux.HandleFunc("PUT /api/tasks/{id}/complete", middleware.RequireFamily(plannerHandler.SetTaskCompleted))
	mux.HandleFunc("DELETE /api/tasks/{id}", middleware.RequireFamily(plannerHandler.DeleteTask))
	mux.HandleFunc("GET /api/meals", middleware.RequireFamily(plannerHandler.ListMealPlans))
	mux.HandleFunc("POST /api/meals", middleware.RequireFamily(plannerHandler.CreateMealPlan))
	mux.HandleFunc("DELETE /api/meals/{id}", middleware.RequireFamily(plannerHandler.DeleteMealPlan))
	mux.HandleFunc("GET /api/reminders", middleware.RequireFamily(plannerHandler.ListReminders))
	mux.HandleFunc("POST /api/reminders", middleware.RequireFamily(plannerHandler.CreateReminder))
	mux.HandleFunc("PUT /api/reminders/{id}/complete", middleware.RequireFamily(plannerHandler.SetReminderCompleted))
	mux.HandleFunc("GET /api/notes", middleware.RequireFamily(plannerHandler.ListNotes))
	mux.HandleFunc("POST /api/notes", middleware.RequireFamily(plannerHandler.CreateNote))
	mux.HandleFunc("PUT /api/notes/{id}", middleware.RequireFamily(plannerHandler.UpdateNote))
	mux.HandleFunc("GET /api/dashboard", middleware.RequireFamily(plannerHandler.GetDashboard))

	// Lists
	mux.HandleFunc("GET /api/lists", middleware.RequireFamily(listHandler.GetLists))
	mux.HandleFunc("POST /api/lists", middleware.RequireFamily(listHandler.CreateList))
	mux.HandleFunc("POST /api/lists/{id}/items", middleware.RequireFamily(listHandler.AddItem))
	mux.HandleFunc("PUT /api/lists/{id}/items/{itemID}/check", middleware.RequireFamily(listHandler.SetItemChecked))
	mux.HandleFunc("PUT /api/lists/{id}/items/{itemID}/reorder", middleware.RequireFamily(listHandler.ReorderItem))
	mux.HandleFunc("DELETE /api/lists/{id}/items/{itemID}", middleware.RequireFamily(listHandler.DeleteItem))

	// Feed
	mux.HandleFunc("GET /api/posts", middleware.RequireFamily(feedHandler.GetFeed))
	mux.HandleFunc("POST /api/posts", middleware.RequireFamily(feedHandler.CreatePost))
	mux.HandleFunc("POST /api/posts/{id}/like", middleware.RequireFamily(feedHandler.LikePost))
	mux.HandleFunc("DELETE /api/posts/{id}/like", middleware.RequireFamily(feedHandler.UnlikePost))
	mux.HandleFunc("GET /api/posts/{id}/comments", middleware.RequireFamily(feedHandler.GetComments))
	mux.HandleFunc("POST /api/posts/{id}/comments", middleware.RequireFamily(feedHandler.CreateComment))

	// Notifications
	mux.HandleFunc("GET /api/notifications", middleware.RequireAuth(notificationHandler.GetNotifications))
	mux.HandleFunc("PUT /api/notifications/{id}/read", middleware.RequireAuth(notificationHandler.MarkRead))
	mux.HandleFunc("PUT /api/notifications/read-all", middleware.RequireAuth(notificationHandler.MarkAllRead))

	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go cleanupExpiredSessions(authService)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Failed to cleanup expired sessions: %v", err)
		}
	}
}
