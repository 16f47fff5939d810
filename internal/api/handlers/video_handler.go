package handlers

import (
	"errors"
	"time"

	videoapp "short_video_service/internal/video/app"
	"short_video_service/internal/video/domain"
	"short_video_service/pkg/database"
	"short_video_service/pkg/logger"
	"short_video_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// 播放連結的有效時間
const playbackURLExpiry = 15 * time.Minute

// VideoHandler 處理影片相關的 HTTP 請求
type VideoHandler struct {
	Usecase videoapp.VideoUseCase
	Storage database.MinIOClientRepo
}

// NewVideoHandler 建立 VideoHandler
func NewVideoHandler(usecase videoapp.VideoUseCase, storage database.MinIOClientRepo) *VideoHandler {
	return &VideoHandler{Usecase: usecase, Storage: storage}
}

// createVideoRequest HTTP 建立影片的 payload
type createVideoRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	VideoURL       string `json:"videoUrl"`
	ThumbnailURL   string `json:"thumbnailUrl"`
	Controls       *bool  `json:"controls"`
	Transformation *struct {
		Quality *int `json:"quality"`
	} `json:"transformation"`
}

// CreateVideo 建立影片
// @Summary 建立影片
// @Description 儲存已上傳影片的中繼資料，userId 與 createdAt 由伺服器決定
// @Tags Videos
// @Accept json
// @Produce json
// @Param request body createVideoRequest true "影片資料"
// @Success 200 {object} string "建立成功"
// @Failure 400 {object} string "缺少必填欄位"
// @Failure 401 {object} string "未授權"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /api/video [post]
func (h *VideoHandler) CreateVideo(c *fiber.Ctx) error {
	userID, ok := c.Locals(middlewares.TokenMemberID).(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var body createVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request"})
	}

	req := domain.CreateVideoReq{
		Title:        body.Title,
		Description:  body.Description,
		VideoURL:     body.VideoURL,
		ThumbnailURL: body.ThumbnailURL,
		Controls:     body.Controls,
	}
	if body.Transformation != nil {
		req.Quality = body.Transformation.Quality
	}

	video, err := h.Usecase.CreateVideo(c.Context(), userID, req)
	if err != nil {
		var missing domain.ErrMissingFields
		if errors.As(err, &missing) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   missing.Error(),
				"fields":  missing.Fields,
			})
		}
		logger.Log.Error("create video", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create video"})
	}

	return c.JSON(fiber.Map{"success": true, "video": video})
}

// ListVideos 取得影片列表
// @Summary 取得影片列表
// @Description 回傳所有影片，依建立時間由新到舊排序
// @Tags Videos
// @Produce json
// @Success 200 {object} string "影片列表"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /api/feed [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	videos, err := h.Usecase.ListVideos(c.Context())
	if err != nil {
		logger.Log.Error("list videos", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to fetch videos"})
	}

	// bucket 不開放匿名讀取，回應前把 object URL 換成短效播放連結
	if h.Storage != nil {
		for i := range videos {
			videos[i].VideoURL = h.signPlayback(c, videos[i].VideoURL)
			videos[i].ThumbnailURL = h.signPlayback(c, videos[i].ThumbnailURL)
		}
	}

	return c.JSON(fiber.Map{"success": true, "videos": videos})
}

// signPlayback 簽名失敗只記 log，回原本的 URL
func (h *VideoHandler) signPlayback(c *fiber.Ctx, rawURL string) string {
	signed, err := h.Storage.PresignPlaybackURL(c.Context(), rawURL, playbackURLExpiry)
	if err != nil {
		logger.Log.Warn("presign playback url", zap.String("url", rawURL), zap.Error(err))
		return rawURL
	}
	return signed
}
