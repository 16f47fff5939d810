package domain

import (
	"fmt"
	"strings"
	"time"
)

// 影片輸出規格固定 1920x1080，quality 預設 100，只有 quality 允許呼叫端覆寫
const (
	TransformationHeight = 1920
	TransformationWidth  = 1080
	DefaultQuality       = 100
)

// Transformation definition video playback transformation
type Transformation struct {
	Height  int `bson:"height" json:"height"`
	Width   int `bson:"width" json:"width"`
	Quality int `bson:"quality" json:"quality"`
}

// Video 定義影片模型
type Video struct {
	ID             string         `bson:"_id" json:"id"`
	Title          string         `bson:"title" json:"title"`
	Description    string         `bson:"description" json:"description"`
	VideoURL       string         `bson:"video_url" json:"videoUrl"`
	ThumbnailURL   string         `bson:"thumbnail_url" json:"thumbnailUrl"`
	Controls       bool           `bson:"controls" json:"controls"`
	Transformation Transformation `bson:"transformation" json:"transformation"`
	UserID         string         `bson:"user_id" json:"userId"`
	CreatedAt      time.Time      `bson:"created_at" json:"createdAt"`
}

// CreateVideoReq usecase create video request
type CreateVideoReq struct {
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Controls     *bool
	Quality      *int
}

// MissingFields returns the required fields absent from the request.
func (r *CreateVideoReq) MissingFields() []string {
	var missing []string
	if r.Title == "" {
		missing = append(missing, "title")
	}
	if r.Description == "" {
		missing = append(missing, "description")
	}
	if r.VideoURL == "" {
		missing = append(missing, "videoUrl")
	}
	if r.ThumbnailURL == "" {
		missing = append(missing, "thumbnailUrl")
	}
	return missing
}

// ErrMissingFields create request is missing required fields
type ErrMissingFields struct {
	Fields []string
}

func (e ErrMissingFields) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// VideoCreatedQueue queue name for video created events
const VideoCreatedQueue = "video.created"

// VideoCreatedEvent 發佈到 MQ 的事件
type VideoCreatedEvent struct {
	VideoID   string    `json:"video_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
