package repository

import (
	"context"

	"short_video_service/internal/video/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VideoRepo definition video persistence
type VideoRepo interface {
	Insert(ctx context.Context, video *domain.Video) error
	// FindAll 返回所有影片，依 created_at 由新到舊排序
	FindAll(ctx context.Context) ([]domain.Video, error)
}

type videoRepo struct {
	coll *mongo.Collection
}

// NewVideoRepo create a VideoRepo
func NewVideoRepo(db *mongo.Database) VideoRepo {
	return &videoRepo{
		coll: db.Collection("videos"),
	}
}

// Insert 寫入一筆影片記錄
func (r *videoRepo) Insert(ctx context.Context, video *domain.Video) error {
	_, err := r.coll.InsertOne(ctx, video)
	return err
}

// FindAll - feed 讀取路徑，created_at 降序
func (r *videoRepo) FindAll(ctx context.Context) ([]domain.Video, error) {
	opts := options.Find()
	opts.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var videos []domain.Video
	if err := cur.All(ctx, &videos); err != nil {
		return nil, err
	}

	// 沒有資料時回空陣列而不是 nil，API 層不用特判
	if videos == nil {
		videos = []domain.Video{}
	}
	return videos, nil
}
