package router

import (
	"short_video_service/internal/api/handlers"
	"short_video_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// RegisterRoutes 註冊所有路由
// @title Short Video Service API
// @version 1.0
// @description API documentation for Short Video Service
// @host localhost:8080
// @BasePath /
func RegisterRoutes(app *fiber.App,
	memberHandler *handlers.MemberHandler,
	videoHandler *handlers.VideoHandler,
	uploadAuthHandler *handlers.UploadAuthHandler,
	sessions middlewares.SessionChecker,
) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	api := app.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", memberHandler.Register)
	authRoutes.Post("/login", memberHandler.Login)

	authRoutes.Use(middlewares.JWTMiddleware(sessions))
	authRoutes.Post("/logout", memberHandler.Logout)
	authRoutes.Get("/upload-auth", uploadAuthHandler.UploadAuth)

	// /api/feed 與 /api/video 的列表行為相同，保留兩條路由相容舊客戶端
	api.Get("/feed", videoHandler.ListVideos)
	api.Get("/video", videoHandler.ListVideos)
	api.Post("/video", middlewares.JWTMiddleware(sessions), videoHandler.CreateVideo)
}
