package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// ConnectMongoDB เชื่อมต่อ MongoDB และ ping เพื่อตรวจสอบการเชื่อมต่อ
func ConnectMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	// ตรวจสอบการเชื่อมต่อ
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info("✅ MongoDB connected successfully")
	return client, nil
}

// DisconnectMongoDB closes client; nil is a no-op.
func DisconnectMongoDB(ctx context.Context, client *mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Errorw("❌ MongoDB disconnect failed", "error", err)
	}
}
