package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hireline/applicant-tracking-api/internal/config"
	"github.com/hireline/applicant-tracking-api/internal/database"
	"github.com/hireline/applicant-tracking-api/internal/files"
	"github.com/hireline/applicant-tracking-api/internal/handlers"
	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/mailer"
	"github.com/hireline/applicant-tracking-api/internal/middleware"
	"github.com/hireline/applicant-tracking-api/internal/repository"
	"github.com/hireline/applicant-tracking-api/internal/security"
	"github.com/hireline/applicant-tracking-api/internal/services"
	"github.com/hireline/applicant-tracking-api/internal/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logging.New(cfg.Log.Level)
	defer log.Sync()

	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("failed to ensure indexes", "error", err)
	}
	if err := database.BootstrapAdmin(ctx, db, cfg, log); err != nil {
		log.Fatal("failed to bootstrap admin account", "error", err)
	}

	store, err := files.NewStore(cfg.Storage.Root)
	if err != nil {
		log.Fatal("failed to initialize file storage", "error", err)
	}

	tokens := security.NewTokenProvider(cfg.JWT.Secret)
	mail := mailer.NewSMTPMailer(cfg.SMTP)
	runner := tasks.NewQueueRunner(4, 256, log)
	defer runner.Close()

	users := repository.NewUserRepository(db)
	positions := repository.NewPositionRepository(db)
	applications := repository.NewApplicationRepository(db)
	interviews := repository.NewInterviewRepository(db)
	members := repository.NewMemberRepository(db)
	messages := repository.NewMessageRepository(db)
	notifications := repository.NewNotificationRepository(db)

	notificationService := services.NewNotificationService(notifications, log)
	positionService := services.NewPositionService(positions, log)
	applicationService := services.NewApplicationService(applications, positions, notificationService, mail, runner, store, log)
	interviewService := services.NewInterviewService(interviews, applications, members, notificationService, mail, runner, log)
	memberService := services.NewMemberService(members, notificationService, runner, log)
	messageService := services.NewMessageService(messages, mail, log)
	authService := services.NewAuthService(users, tokens, mail, runner, cfg.Frontend.BaseURL, log)
	dashboardService := services.NewDashboardService(applications, positions, interviews, log)

	positionHandler := handlers.NewPositionHandler(positionService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	memberHandler := handlers.NewMemberHandler(memberService)
	messageHandler := handlers.NewMessageHandler(messageService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	admin := middleware.RequireRole(tokens, "admin")
	anyRole := middleware.RequireRole(tokens, "admin", "user")

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/application/:id", anyRole, applicationHandler.SubmitApplication)
		api.GET("/application", admin, applicationHandler.ListApplications)
		api.GET("/application/:id", admin, applicationHandler.GetApplication)
		api.PUT("/application/:id/status", admin, applicationHandler.UpdateApplicationStatus)
		api.GET("/application/:id/resume", admin, applicationHandler.DownloadResume)
		api.DELETE("/application/:id", admin, applicationHandler.DeleteApplication)
		api.POST("/application/:id/message", admin, applicationHandler.SendApplicationMessage)

		api.POST("/position", admin, positionHandler.CreatePosition)
		api.GET("/position", anyRole, positionHandler.ListPositions)
		api.GET("/position/:id", anyRole, positionHandler.GetPosition)
		api.PATCH("/position/:id", admin, positionHandler.UpdatePosition)
		api.DELETE("/position/:id", admin, positionHandler.DeletePosition)

		api.POST("/interview", admin, interviewHandler.ScheduleInterview)
		api.GET("/interview", admin, interviewHandler.ListInterviews)
		api.PUT("/interview/:id", admin, interviewHandler.UpdateInterview)
		api.DELETE("/interview/:id", admin, interviewHandler.CancelInterview)
		api.DELETE("/interview/:id/permanent", admin, interviewHandler.PermanentDeleteInterview)

		api.POST("/member", admin, memberHandler.CreateMember)
		api.GET("/member", admin, memberHandler.ListMembers)
		api.GET("/member/:id", admin, memberHandler.GetMember)
		api.PUT("/member/:id", admin, memberHandler.UpdateMember)
		api.DELETE("/member/:id", admin, memberHandler.DeleteMember)

		api.POST("/contact", messageHandler.CreateMessage)
		api.GET("/messages", admin, messageHandler.ListMessages)
		api.PUT("/messages/:id/status", admin, messageHandler.UpdateMessageStatus)
		api.PATCH("/messages/:id/reply", admin, messageHandler.ReplyMessage)
		api.DELETE("/messages/:id", admin, messageHandler.DeleteMessage)

		api.GET("/notification", admin, notificationHandler.ListNotifications)
		api.GET("/notification/stats", admin, notificationHandler.NotificationStats)
		api.GET("/notification/unread-count", admin, notificationHandler.UnreadCount)
		api.PUT("/notification/:id/read", admin, notificationHandler.MarkNotificationRead)
		api.PUT("/notification/mark-all-read", admin, notificationHandler.MarkAllNotificationsRead)
		api.DELETE("/notification/:id", admin, notificationHandler.DeleteNotification)

		api.GET("/dashboard/summary", admin, dashboardHandler.Summary)
		api.GET("/dashboard/status-summary", admin, dashboardHandler.StatusSummary)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/verify-2fa-login", authHandler.Verify2FALogin)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password/:token", authHandler.ResetPassword)

		auth.GET("/user", admin, authHandler.GetAdmin)
		auth.PUT("/admin/change-password", admin, authHandler.ChangePassword)
		auth.PUT("/admin/:id", admin, authHandler.UpdateUser)

		auth.GET("/2fa/status", admin, authHandler.TwoFAStatus)
		auth.POST("/2fa/enable", admin, authHandler.Enable2FA)
		auth.POST("/2fa/verify-setup", admin, authHandler.Verify2FASetup)
		auth.POST("/2fa/disable", admin, authHandler.Disable2FA)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("server exited", "error", err)
	}
}
