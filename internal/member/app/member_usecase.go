package app

import (
	"context"
	"errors"
	"time"

	"short_video_service/internal/member/domain"
	"short_video_service/internal/member/repository"
	"short_video_service/pkg/database"
	"short_video_service/pkg/encrypt"
	"short_video_service/pkg/logger"
	token "short_video_service/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MemberUseCase 這裡封裝了對外提供的應用服務
type MemberUseCase interface {
	Register(ctx context.Context, email, password string) error
	FindMember(ctx context.Context, param *domain.MemberQuery) (*domain.Member, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	SessionAlive(ctx context.Context, memberID string) (bool, error)
}

type memberUseCase struct {
	memberRepo repository.MemberRepository
	sessionTTL time.Duration
	redisRepo  database.RedisRepository[domain.MemberSession]
}

// NewMemberUseCase 建立一個新的 MemberUseCase
func NewMemberUseCase(memberRepo repository.MemberRepository,
	sessionTTL time.Duration,
	redisRepo database.RedisRepository[domain.MemberSession],
) MemberUseCase {
	return &memberUseCase{
		memberRepo: memberRepo,
		sessionTTL: sessionTTL,
		redisRepo:  redisRepo,
	}
}

// Register 建立新使用者
func (m *memberUseCase) Register(ctx context.Context, email, password string) error {
	// 檢查 email 是否已存在
	if _, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{Email: &email}); err == nil {
		return errors.New("email already exists")
	}

	pw, err := encrypt.HashPassword(password)
	if err != nil {
		return err
	}

	member := domain.Member{
		MemberID: uuid.New().String(),
		Email:    email,
		Password: pw,
	}

	logger.Log.Debug("usecase Register", zap.String("email", email))

	if err := m.memberRepo.CreateUser(ctx, &member); err != nil {
		return err
	}

	return nil
}

// FindMember 依條件尋找使用者
func (m *memberUseCase) FindMember(ctx context.Context, param *domain.MemberQuery) (*domain.Member, error) {
	return m.memberRepo.FindByMember(ctx, param)
}

// Login 驗證密碼後發 JWT 並建立 redis session
func (m *memberUseCase) Login(ctx context.Context, email, password string) (string, error) {
	// 取得使用者
	member, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{Email: &email})
	if err != nil {
		logger.Log.Error("email can't find!!!")
		return "", errors.New("user not found")
	}

	if err = member.IsPasswordMatch(password); err != nil {
		logger.Log.Error("password can't match!!!")
		return "", err
	}

	member.Status = domain.MemberStatusOnLine

	t, err := token.GenerateJWTWrapper(member.MemberID, string(token.RoleMember))
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := domain.MemberSession{
		Token:        t,
		MemberID:     member.MemberID,
		CreatedAt:    now,
		LastActivity: now,
		ExpiredAt:    now.Add(m.sessionTTL),
	}

	if err := m.redisRepo.Set(ctx, member.MemberID, session, m.sessionTTL); err != nil {
		return "", err
	}

	if err := m.memberRepo.UpdateMemberStatus(ctx, member); err != nil {
		return "", err
	}

	return t, nil
}

// Logout 刪除 session 並更新狀態
func (m *memberUseCase) Logout(ctx context.Context, t string) error {
	tokenInfo, err := token.ParseJWTWrapper(t)
	if err != nil {
		logger.Log.Error("Logout err :", zap.String("err", err.Error()))
		return err
	}

	if err := m.redisRepo.Del(ctx, tokenInfo.MemberID); err != nil {
		return err
	}

	if err := m.memberRepo.UpdateMemberStatus(ctx, &domain.Member{
		MemberID: tokenInfo.MemberID,
		Status:   domain.MemberStatusOffLine,
	}); err != nil {
		return err
	}
	return nil
}

// SessionAlive 檢查 member 的 session 是否還存在
func (m *memberUseCase) SessionAlive(ctx context.Context, memberID string) (bool, error) {
	ttl, err := m.redisRepo.GetTTL(ctx, memberID)
	if err != nil {
		return false, err
	}
	return ttl > 0, nil
}

// SessionCheckerAdapter 讓 middleware 透過 usecase 驗證 session
type SessionCheckerAdapter struct {
	Usecase MemberUseCase
}

// Exists 實作 middlewares.SessionChecker
func (a *SessionCheckerAdapter) Exists(ctx context.Context, memberID string) (bool, error) {
	return a.Usecase.SessionAlive(ctx, memberID)
}
