package unit

import (
	"testing"
	"time"

	"short_video_service/internal/member/domain"
	"short_video_service/pkg/encrypt"

	"github.com/stretchr/testify/assert"
)

func TestMemberPasswordMatch(t *testing.T) {
	hashed, err := encrypt.HashPassword("pass1234")
	assert.NoError(t, err)

	member := domain.Member{
		ID:       1,
		Email:    "user@example.com",
		Password: hashed,
	}

	assert.True(t, member.IsPasswordMatch("pass1234") == nil, "should match correct password")
	assert.False(t, member.IsPasswordMatch("wrongpass") == nil, "should not match incorrect password")
}

func TestMemberSessionExpiration(t *testing.T) {
	session := domain.MemberSession{
		Token:        "abcd1234",
		MemberID:     "1",
		CreatedAt:    time.Now(),
		LastActivity: time.Now(),
		ExpiredAt:    time.Now().Add(-1 * time.Minute), // 已經過期
	}

	assert.True(t, session.IsExpired(), "session should be expired")
}
