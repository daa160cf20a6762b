package utils

import (
	"context"
	"log"
	"time"

	"tutorhive/config"

	"github.com/go-redis/redis/v8"
)

// DraftClient holds weekly edit drafts awaiting save.
var DraftClient *redis.Client

// InitRedis initializes the draft Redis client and verifies connectivity.
func InitRedis() {
	DraftClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDraftDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := DraftClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Drafts): %v", err)
	}
}

// GetDraftClient returns the Redis client backing the draft store.
func GetDraftClient() *redis.Client {
	if DraftClient == nil {
		InitRedis()
	}
	return DraftClient
}
