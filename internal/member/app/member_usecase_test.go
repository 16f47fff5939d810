package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"short_video_service/internal/member/domain"
	"short_video_service/pkg/encrypt"
	"short_video_service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.SetNewNop()
	m.Run()
}

// === 以下為假的 mock repository，用來做 TDD ===
type mockMemberRepo struct {
	mock.Mock
}

func (m *mockMemberRepo) CreateUser(ctx context.Context, user *domain.Member) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockMemberRepo) FindByMember(ctx context.Context, memberQuery *domain.MemberQuery) (*domain.Member, error) {
	args := m.Called(ctx, memberQuery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *mockMemberRepo) UpdateMemberStatus(ctx context.Context, user *domain.Member) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockRedisRepo struct {
	mock.Mock
}

func (m *mockRedisRepo) Set(ctx context.Context, key string, ms domain.MemberSession, ttl time.Duration) error {
	args := m.Called(ctx, key, ms, ttl)
	return args.Error(0)
}

func (m *mockRedisRepo) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockRedisRepo) GetTTL(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

// === 測試 Register ===
func TestMemberUseCaseRegister(t *testing.T) {
	ctx := context.Background()

	memberRepo := new(mockMemberRepo)
	redisRepo := new(mockRedisRepo)
	usecase := NewMemberUseCase(memberRepo, 30*time.Minute, redisRepo)

	// email 不存在時才能註冊
	memberRepo.On("FindByMember", ctx, mock.Anything).Return(nil, errors.New("no member found with given criteria"))
	memberRepo.On("CreateUser", ctx, mock.Anything).Return(nil)

	err := usecase.Register(ctx, "user@example.com", "pass1234")
	assert.NoError(t, err)
	memberRepo.AssertCalled(t, "CreateUser", ctx, mock.Anything)
}

func TestMemberUseCaseRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()

	memberRepo := new(mockMemberRepo)
	redisRepo := new(mockRedisRepo)
	usecase := NewMemberUseCase(memberRepo, 30*time.Minute, redisRepo)

	memberRepo.On("FindByMember", ctx, mock.Anything).
		Return(&domain.Member{ID: 1, Email: "user@example.com"}, nil)

	err := usecase.Register(ctx, "user@example.com", "pass1234")
	assert.Error(t, err)
	assert.Equal(t, "email already exists", err.Error())
	memberRepo.AssertNotCalled(t, "CreateUser", ctx, mock.Anything)
}

// === 測試 Login ===
func TestMemberUseCaseLogin(t *testing.T) {
	ctx := context.Background()

	memberRepo := new(mockMemberRepo)
	redisRepo := new(mockRedisRepo)
	usecase := NewMemberUseCase(memberRepo, 30*time.Minute, redisRepo)

	hashed, err := encrypt.HashPassword("pass1234")
	assert.NoError(t, err)

	memberRepo.On("FindByMember", ctx, mock.Anything).
		Return(&domain.Member{ID: 1, MemberID: "m-1", Email: "user@example.com", Password: hashed}, nil)
	memberRepo.On("UpdateMemberStatus", ctx, mock.Anything).Return(nil)
	redisRepo.On("Set", ctx, "m-1", mock.Anything, 30*time.Minute).Return(nil)

	// 測試正確密碼
	token, err := usecase.Login(ctx, "user@example.com", "pass1234")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	redisRepo.AssertCalled(t, "Set", ctx, "m-1", mock.Anything, 30*time.Minute)

	// 測試錯誤密碼
	_, err = usecase.Login(ctx, "user@example.com", "wrongpass")
	assert.Error(t, err)
}

// === 測試 SessionAlive ===
func TestMemberUseCaseSessionAlive(t *testing.T) {
	ctx := context.Background()

	memberRepo := new(mockMemberRepo)
	redisRepo := new(mockRedisRepo)
	usecase := NewMemberUseCase(memberRepo, 30*time.Minute, redisRepo)

	redisRepo.On("GetTTL", ctx, "m-1").Return(120, nil)
	redisRepo.On("GetTTL", ctx, "m-2").Return(0, nil)

	alive, err := usecase.SessionAlive(ctx, "m-1")
	assert.NoError(t, err)
	assert.True(t, alive)

	alive, err = usecase.SessionAlive(ctx, "m-2")
	assert.NoError(t, err)
	assert.False(t, alive)
}
