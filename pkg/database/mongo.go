package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoDB create a new MongoDB connection
func NewMongoDB(ctx context.Context, c Connection, dbName string) (*MongoDB, error) {
	clientOpts := options.Client().ApplyURI(c.ConnectStr)

	var client *mongo.Client
	var err error

	for i := 0; i <= c.RetryCount; i++ {
		client, err = mongo.Connect(ctx, clientOpts)
		if err == nil {
			// Ping the database to verify the connection
			pingErr := client.Ping(ctx, readpref.Primary())
			if pingErr == nil {
				db := client.Database(dbName)
				return &MongoDB{
					Client:   client,
					Database: db,
				}, nil
			}
			err = pingErr

		}

		if i < c.RetryCount {
			time.Sleep(c.RetryInterval)
		}
	}

	return nil, errors.New("failed to connect to MongoDB after retries: " + err.Error())
}

var (
	mongoMu     sync.Mutex
	mongoShared *MongoDB

	// 測試時可替換 詳情轉跳至 jwt_wrapper.go
	connectMongo = NewMongoDB
)

// GetMongoDatabase returns the process-wide MongoDB handle, dialing on first use.
// 冷啟動時多個請求同時呼叫，只會撥號一次，其他呼叫者等同一個連線結果。
// 連線失敗不快取，下一次呼叫會重新嘗試。
func GetMongoDatabase(ctx context.Context, c Connection, dbName string) (*MongoDB, error) {
	mongoMu.Lock()
	defer mongoMu.Unlock()

	if mongoShared != nil {
		return mongoShared, nil
	}

	db, err := connectMongo(ctx, c, dbName)
	if err != nil {
		return nil, err
	}
	mongoShared = db
	return mongoShared, nil
}

// Close disenable mongoDB connection
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
