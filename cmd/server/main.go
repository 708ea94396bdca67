package main

import (
	"github.com/redis/go-redis/v9"
	"github.com/sukoonsphere/backend/internal/config"
	"github.com/sukoonsphere/backend/internal/entity"
	"github.com/sukoonsphere/backend/internal/server"
	"github.com/sukoonsphere/backend/pkg/database"
	"github.com/sukoonsphere/backend/pkg/logger"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid redis url")
		}
		redisClient = redis.NewClient(opts)
	}

	srv := server.NewServer(cfg, db, redisClient)

	log.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("server starting")
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Post{},
		&entity.Comment{},
		&entity.Reply{},
		&entity.Article{},
		&entity.ArticleComment{},
		&entity.Video{},
		&entity.VideoComment{},
		&entity.VideoReply{},
		&entity.PersonalStory{},
		&entity.PersonalStoryComment{},
		&entity.PersonalStoryReply{},
		&entity.Question{},
		&entity.Answer{},
		&entity.AnswerComment{},
		&entity.Reaction{},
		&entity.UserProgress{},
		&entity.UserBadge{},
		&entity.PointLog{},
		&entity.Notification{},
	)
}
