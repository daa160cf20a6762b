package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external collaborators.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	Backend   bool      `json:"backend"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClient *redis.Client, backendBaseURL string) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		httpClient := &http.Client{Timeout: 5 * time.Second}
		ctx := context.Background()

		for range ticker.C {
			redisHealthy := redisClient.Ping(ctx).Err() == nil

			backendHealthy := false
			if req, err := http.NewRequestWithContext(ctx, http.MethodHead, backendBaseURL+"/health", nil); err == nil {
				if resp, err := httpClient.Do(req); err == nil {
					resp.Body.Close()
					backendHealthy = resp.StatusCode < http.StatusInternalServerError
				}
			}

			healthMu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealthy,
				Backend:   backendHealthy,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
