package handlers

import (
	"fmt"
	"path"
	"time"

	"short_video_service/pkg/database"
	"short_video_service/pkg/logger"
	"short_video_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 簽名上傳 URL 的有效時間
const uploadURLExpiry = 15 * time.Minute

// UploadAuthHandler issues short-lived signed upload credentials.
type UploadAuthHandler struct {
	MinioClient database.MinIOClientRepo
}

// NewUploadAuthHandler 建立 UploadAuthHandler
func NewUploadAuthHandler(minioClient database.MinIOClientRepo) *UploadAuthHandler {
	return &UploadAuthHandler{MinioClient: minioClient}
}

// UploadAuth 簽發單次上傳憑證
// @Summary 簽發單次上傳憑證
// @Description 回傳預簽名上傳 URL，供客戶端直接上傳到物件儲存
// @Tags Upload
// @Produce json
// @Param object query string true "object file name"
// @Success 200 {object} string "upload credentials"
// @Failure 400 {object} string "請求錯誤"
// @Failure 401 {object} string "未授權"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /api/auth/upload-auth [get]
func (h *UploadAuthHandler) UploadAuth(c *fiber.Ctx) error {
	memberID, ok := c.Locals(middlewares.TokenMemberID).(string)
	if !ok || memberID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	object := c.Query("object")
	if object == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "object is required"})
	}

	// token 讓每次上傳的 object key 都不會互相覆蓋
	token := uuid.NewString()
	objectName := fmt.Sprintf("uploads/%s/%s_%s", memberID, token, path.Base(object))

	uploadURL, err := h.MinioClient.PresignPutURL(c.Context(), objectName, uploadURLExpiry)
	if err != nil {
		logger.Log.Error("presign upload url", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to sign upload"})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"uploadUrl": uploadURL,
		"token":     token,
		"expire":    time.Now().Add(uploadURLExpiry).Unix(),
	})
}
