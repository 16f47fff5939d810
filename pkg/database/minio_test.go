package database

import (
	"context"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
)

func newTestMinIOClient(t *testing.T) *MinIOClient {
	t.Helper()
	c, err := minio.New("localhost:9000", &minio.Options{
		Creds: credentials.NewStaticV4("access", "secret", ""),
	})
	assert.NoError(t, err)
	return &MinIOClient{Client: c, BucketName: "shorts"}
}

// === 測試 feed 播放連結簽名 ===
func TestPresignPlaybackURL(t *testing.T) {
	m := newTestMinIOClient(t)

	signed, err := m.PresignPlaybackURL(context.Background(),
		"http://localhost:9000/shorts/uploads/member-1/clip.mp4", 15*time.Minute)
	assert.NoError(t, err)
	assert.Contains(t, signed, "/shorts/uploads/member-1/clip.mp4")
	assert.Contains(t, signed, "X-Amz-Signature")
}

// === 測試 bucket 之外的 URL 原樣返回 ===
func TestPresignPlaybackURLForeignURL(t *testing.T) {
	m := newTestMinIOClient(t)

	raw := "https://cdn.example.com/other/clip.mp4"
	signed, err := m.PresignPlaybackURL(context.Background(), raw, 15*time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, raw, signed)
}
