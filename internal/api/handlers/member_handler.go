package handlers

import (
	"time"

	memberapp "short_video_service/internal/member/app"
	"short_video_service/pkg/logger"
	"short_video_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MemberHandler 處理會員相關的 HTTP 請求
type MemberHandler struct {
	Usecase    memberapp.MemberUseCase
	SessionTTL time.Duration
}

// NewMemberHandler 建立 MemberHandler
func NewMemberHandler(usecase memberapp.MemberUseCase, sessionTTL time.Duration) *MemberHandler {
	return &MemberHandler{
		Usecase:    usecase,
		SessionTTL: sessionTTL,
	}
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register 註冊新會員
// @Summary 註冊新會員
// @Description 以 email 與密碼建立帳號
// @Tags Members
// @Accept json
// @Produce json
// @Param request body authRequest true "註冊請求"
// @Success 200 {object} string "註冊成功"
// @Failure 400 {object} string "請求錯誤"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /api/auth/register [post]
func (h *MemberHandler) Register(c *fiber.Ctx) error {
	var req authRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "email and password are required"})
	}

	logger.Log.Debug("Register request", zap.String("email", req.Email))

	if err := h.Usecase.Register(c.Context(), req.Email, req.Password); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "register success"})
}

// Login 會員登入
// @Summary 會員登入
// @Description 以 email 與密碼登入，成功時回傳 token 並寫入 cookie
// @Tags Members
// @Accept json
// @Produce json
// @Param request body authRequest true "登入請求"
// @Success 200 {object} string "登入成功"
// @Failure 400 {object} string "請求錯誤"
// @Failure 401 {object} string "登入失敗"
// @Router /api/auth/login [post]
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	var req authRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request"})
	}

	logger.Log.Debug("Login", zap.String("email", req.Email))

	token, err := h.Usecase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	// session token 同時放在 cookie，瀏覽器端不用自己帶 header
	c.Cookie(&fiber.Cookie{
		Name:     middlewares.CookieToken,
		Value:    token,
		Expires:  time.Now().Add(h.SessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"success": true, "token": token, "message": "login success"})
}

// Logout 會員登出
// @Summary 會員登出
// @Description 註銷會員 session 並清除 cookie
// @Tags Members
// @Accept json
// @Produce json
// @Param auth query string false "session token"
// @Success 200 {object} string "登出成功"
// @Failure 401 {object} string "未授權"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /api/auth/logout [post]
func (h *MemberHandler) Logout(c *fiber.Ctx) error {
	tokenStr := c.Query(middlewares.QueryToken)
	if tokenStr == "" {
		tokenStr = c.Cookies(middlewares.CookieToken)
	}

	if err := h.Usecase.Logout(c.Context(), tokenStr); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middlewares.CookieToken,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"success": true, "message": "logout success"})
}
