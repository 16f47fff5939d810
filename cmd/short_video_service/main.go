package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	_ "short_video_service/cmd/short_video_service/docs" // 引入生成的 Swagger 文件
	"short_video_service/internal/api/handlers"
	"short_video_service/internal/api/router"
	memberapp "short_video_service/internal/member/app"
	memberdomain "short_video_service/internal/member/domain"
	memberrepo "short_video_service/internal/member/repository"
	videoapp "short_video_service/internal/video/app"
	videodomain "short_video_service/internal/video/domain"
	videorepo "short_video_service/internal/video/repository"
	"short_video_service/pkg/config"
	"short_video_service/pkg/database"
	"short_video_service/pkg/logger"
	testtool "short_video_service/pkg/test_tool"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.ShortVideoService, config.EnvConfig.ShortVideoLogPath)
	cfg := config.LoadConfig[config.ShortVideo](config.EnvConfig.ShortVideoService, config.EnvConfig.ShortVideoYAMLPath)

	// PostgreSQL 放會員資料
	sqlParams := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Host, cfg.PostgreSQL.Port, cfg.PostgreSQL.Database)
	pool, err := database.NewDatabaseConnection(database.Connection{
		ConnectStr:    sqlParams,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to postgreSQL database after retries",
			zap.String("address", fmt.Sprintf("[%s]", sqlParams)),
			zap.Error(err),
		)
	}
	defer pool.Close()

	memberRepo := memberrepo.NewMemberRepository(pool)
	redisRepo, err := database.NewRedisRepository[memberdomain.MemberSession](cfg.Redis.Addr, cfg.Redis.RedisDB)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect redis err : %v", err))
	}
	memberUsecase := memberapp.NewMemberUseCase(memberRepo, cfg.SessionTTL*time.Minute, redisRepo)
	sessions := &memberapp.SessionCheckerAdapter{Usecase: memberUsecase}

	// MongoDB 放影片資料
	mongoParams := fmt.Sprintf("mongodb://%s:%s@%s:%d",
		cfg.Mongo.User, cfg.Mongo.Password, cfg.Mongo.Host, cfg.Mongo.Port)
	mongoDB, err := database.GetMongoDatabase(context.Background(), database.Connection{
		ConnectStr:    mongoParams,
		RetryCount:    cfg.Mongo.RetryCount,
		RetryInterval: time.Duration(cfg.Mongo.RetryInterval),
	}, cfg.Mongo.Database)
	if err != nil {
		logger.Log.Fatal("Unable to connect to mongoDB after retries", zap.Error(err))
	}
	videoRepo := videorepo.NewVideoRepo(mongoDB.Database)

	// RabbitMQ 發佈 video.created 事件
	rabbitConn, err := database.ConnectRabbitMQWithRetry(database.Connection{
		ConnectStr:    cfg.Rabbit.URL,
		RetryCount:    cfg.Rabbit.RetryCount,
		RetryInterval: time.Duration(cfg.Rabbit.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to rabbitMQ after retries", zap.Error(err))
	}
	defer rabbitConn.Close()
	rabbitChannel, err := database.GetRabbitMQChannelWithRetry(rabbitConn, cfg.Rabbit.RetryCount, time.Duration(cfg.Rabbit.RetryInterval)*time.Second)
	if err != nil {
		logger.Log.Fatal("Unable to open rabbitMQ channel", zap.Error(err))
	}
	defer rabbitChannel.Close()
	if _, err := rabbitChannel.QueueDeclare(videodomain.VideoCreatedQueue, true, false, false, false, nil); err != nil {
		logger.Log.Fatal("Unable to declare queue", zap.Error(err))
	}
	videoUsecase := videoapp.NewVideoUseCase(videoRepo, database.NewRabbitRepository(rabbitChannel))

	// MinIO 簽發上傳憑證
	minioClient, err := database.NewMinIOConnection(database.MinIOConnection{
		Endpoint:      cfg.MinIO.Endpoint,
		User:          cfg.MinIO.User,
		Password:      cfg.MinIO.Password,
		BucketName:    cfg.MinIO.BucketName,
		UseSSL:        cfg.MinIO.UseSSL,
		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: time.Duration(cfg.MinIO.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to minIO after retries", zap.Error(err))
	}

	memberHandler := handlers.NewMemberHandler(memberUsecase, cfg.SessionTTL*time.Minute)
	videoHandler := handlers.NewVideoHandler(videoUsecase, minioClient)
	uploadAuthHandler := handlers.NewUploadAuthHandler(minioClient)

	r := fiber.New()
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.ShortVideoLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	router.RegisterRoutes(r, memberHandler, videoHandler, uploadAuthHandler, sessions)

	testtool.StartPprof()

	if err := r.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
