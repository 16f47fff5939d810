package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// === 測試 GetMongoDatabase 冷啟動只撥號一次 ===
func TestGetMongoDatabaseSingleFlight(t *testing.T) {
	var dialCount int32
	fake := &MongoDB{}

	orig := connectMongo
	connectMongo = func(ctx context.Context, c Connection, dbName string) (*MongoDB, error) {
		atomic.AddInt32(&dialCount, 1)
		return fake, nil
	}
	defer func() {
		connectMongo = orig
		mongoShared = nil
	}()
	mongoShared = nil

	var wg sync.WaitGroup
	results := make([]*MongoDB, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := GetMongoDatabase(context.Background(), Connection{}, "short_video")
			assert.NoError(t, err)
			results[i] = db
		}(i)
	}
	wg.Wait()

	// 併發冷啟動只會有一次撥號，且所有呼叫者拿到同一個連線
	assert.Equal(t, int32(1), atomic.LoadInt32(&dialCount))
	for _, db := range results {
		assert.Same(t, fake, db)
	}
}

// === 測試 連線失敗不快取，下一次呼叫重新嘗試 ===
func TestGetMongoDatabaseFailureNotCached(t *testing.T) {
	var dialCount int32
	fake := &MongoDB{}

	orig := connectMongo
	connectMongo = func(ctx context.Context, c Connection, dbName string) (*MongoDB, error) {
		if atomic.AddInt32(&dialCount, 1) == 1 {
			return nil, errors.New("dial failed")
		}
		return fake, nil
	}
	defer func() {
		connectMongo = orig
		mongoShared = nil
	}()
	mongoShared = nil

	_, err := GetMongoDatabase(context.Background(), Connection{}, "short_video")
	assert.Error(t, err)

	db, err := GetMongoDatabase(context.Background(), Connection{}, "short_video")
	assert.NoError(t, err)
	assert.Same(t, fake, db)
	assert.Equal(t, int32(2), atomic.LoadInt32(&dialCount))
}
