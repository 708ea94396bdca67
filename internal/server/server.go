package server

import (
	"strings"
	"time"

	"github.com/sukoonsphere/backend/internal/config"
	"github.com/sukoonsphere/backend/internal/middleware"

	badgeService "github.com/sukoonsphere/backend/internal/modules/badge/service"
	contentHttp "github.com/sukoonsphere/backend/internal/modules/content/delivery/http"
	contentRepo "github.com/sukoonsphere/backend/internal/modules/content/repository"
	contentService "github.com/sukoonsphere/backend/internal/modules/content/service"
	engagementService "github.com/sukoonsphere/backend/internal/modules/engagement/service"
	leaderboardHttp "github.com/sukoonsphere/backend/internal/modules/leaderboard/delivery/http"
	leaderboardService "github.com/sukoonsphere/backend/internal/modules/leaderboard/service"
	notifHttp "github.com/sukoonsphere/backend/internal/modules/notification/delivery/http"
	notifRepo "github.com/sukoonsphere/backend/internal/modules/notification/repository"
	notifService "github.com/sukoonsphere/backend/internal/modules/notification/service"
	pointsService "github.com/sukoonsphere/backend/internal/modules/points/service"
	progressHttp "github.com/sukoonsphere/backend/internal/modules/progress/delivery/http"
	progressRepo "github.com/sukoonsphere/backend/internal/modules/progress/repository"
	reactionHttp "github.com/sukoonsphere/backend/internal/modules/reaction/delivery/http"
	reactionRepo "github.com/sukoonsphere/backend/internal/modules/reaction/repository"
	reactionService "github.com/sukoonsphere/backend/internal/modules/reaction/service"
	searchService "github.com/sukoonsphere/backend/internal/modules/search/service"
	streakHttp "github.com/sukoonsphere/backend/internal/modules/streak/delivery/http"
	streakService "github.com/sukoonsphere/backend/internal/modules/streak/service"
	userHttp "github.com/sukoonsphere/backend/internal/modules/user/delivery/http"
	userRepo "github.com/sukoonsphere/backend/internal/modules/user/repository"
	userService "github.com/sukoonsphere/backend/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	var meiliClient meilisearch.ServiceManager
	if cfg.MeiliSearchHost != "" {
		meiliClient = meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	}
	searchSvc := searchService.NewSearchService(meiliClient)

	users := userRepo.NewUserRepository(db)
	authSvc := userService.NewAuthService(users, cfg.JWTSecret, 24*time.Hour)
	authHandler := userHttp.NewUserHandler(authSvc)

	progress := progressRepo.NewProgressRepository(db)
	pointsSvc := pointsService.NewPointsService(progress)
	badgeSvc := badgeService.NewBadgeService(progress)
	streakSvc := streakService.NewStreakService(progress)

	notifications := notifRepo.NewNotificationRepository(db)
	notificationSvc := notifService.NewNotificationService(notifications, redisClient)
	notificationHandler := notifHttp.NewNotificationHandler(notificationSvc, redisClient)

	contents := contentRepo.NewContentRepository(db)

	reactions := reactionRepo.NewReactionRepository(db)
	reactionSvc := reactionService.NewReactionService(reactions, redisClient)

	engagementSvc := engagementService.NewEngagementService(
		reactionSvc, pointsSvc, badgeSvc, notificationSvc, contents, cfg.CountDeleteActions)

	reactionHandler := reactionHttp.NewReactionHandler(reactionSvc, engagementSvc)

	contentSvc := contentService.NewContentService(contents, engagementSvc, searchSvc)
	contentHandler := contentHttp.NewContentHandler(contentSvc)

	leaderboardSvc := leaderboardService.NewLeaderboardService(progress)
	leaderboardHandler := leaderboardHttp.NewLeaderboardHandler(leaderboardSvc)

	progressHandler := progressHttp.NewProgressHandler(pointsSvc, badgeSvc, streakSvc)
	streakHandler := streakHttp.NewStreakHandler(streakSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Reaction reads tolerate anonymous callers.
	reads := api.Group("")
	reads.Use(authMiddleware.OptionalAuth())
	{
		reads.GET("/reactions/:contentType/:contentID", reactionHandler.GetReactions)
		reads.GET("/reactions/:contentType/:contentID/users", reactionHandler.ListReactingUsers)
		reads.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
	}

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/reactions", reactionHandler.SetReaction)

		protected.POST("/content", contentHandler.CreateContent)
		protected.DELETE("/content/:contentType/:id", contentHandler.DeleteContent)

		protected.POST("/visits", streakHandler.RecordVisit)
		protected.GET("/streak", streakHandler.GetStreak)
		protected.GET("/progress/me", progressHandler.GetMyProgress)

		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.GET("/notifications/ws", notificationHandler.HandleWebSocket)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
