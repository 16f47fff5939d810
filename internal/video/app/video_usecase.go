package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"short_video_service/internal/video/domain"
	"short_video_service/internal/video/repository"
	"short_video_service/pkg/database"
	errprocess "short_video_service/pkg/err"
	"short_video_service/pkg/logger"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// VideoUseCase 這裡封裝了對外提供的應用服務
type VideoUseCase interface {
	CreateVideo(ctx context.Context, userID string, req domain.CreateVideoReq) (*domain.Video, error)
	ListVideos(ctx context.Context) ([]domain.Video, error)
}

type videoUseCase struct {
	videoRepo     repository.VideoRepo
	rabbitChannel database.RabbitRepo // 用於發布 video.created 事件
}

// NewVideoUseCase 建立一個新的 VideoUseCase
func NewVideoUseCase(repo repository.VideoRepo, rabbitChannel database.RabbitRepo) VideoUseCase {
	return &videoUseCase{
		videoRepo:     repo,
		rabbitChannel: rabbitChannel,
	}
}

// 測試時可替換 詳情轉跳至 jwt_wrapper.go
var now = time.Now

// CreateVideo 驗證欄位、補預設值後寫入，成功後發布 video.created 事件
// userId 與 createdAt 一律由 server 端決定，呼叫端傳入的值不採用
func (u *videoUseCase) CreateVideo(ctx context.Context, userID string, req domain.CreateVideoReq) (*domain.Video, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, domain.ErrMissingFields{Fields: missing}
	}

	controls := true
	if req.Controls != nil {
		controls = *req.Controls
	}

	quality := domain.DefaultQuality
	if req.Quality != nil {
		quality = *req.Quality
	}

	video := &domain.Video{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Controls:     controls,
		Transformation: domain.Transformation{
			Height:  domain.TransformationHeight,
			Width:   domain.TransformationWidth,
			Quality: quality,
		},
		UserID:    userID,
		CreatedAt: now().UTC(),
	}

	if err := u.videoRepo.Insert(ctx, video); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("video[%s] 資料庫建立影片失敗 : %v", video.ID, err))
	}

	u.publishCreated(video)

	return video, nil
}

// ListVideos feed 讀取路徑
func (u *videoUseCase) ListVideos(ctx context.Context) ([]domain.Video, error) {
	return u.videoRepo.FindAll(ctx)
}

// publishCreated 發布 video.created 事件
// 記錄已寫入成功，事件發布失敗只記 log 不影響請求結果
func (u *videoUseCase) publishCreated(video *domain.Video) {
	if u.rabbitChannel == nil {
		return
	}

	event := domain.VideoCreatedEvent{
		VideoID:   video.ID,
		UserID:    video.UserID,
		CreatedAt: video.CreatedAt,
	}
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorf("video.created JSON 轉換失敗: ", err)
		return
	}

	if err := u.rabbitChannel.Publish(
		"",                       // 預設 exchange
		domain.VideoCreatedQueue, // queue 名稱
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        data,
		},
	); err != nil {
		logger.Log.Warn("發布 video.created 事件失敗", zap.String("video_id", video.ID), zap.Error(err))
	}
}
