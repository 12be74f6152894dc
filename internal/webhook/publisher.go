package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tactical_dashboard/internal/models"
)

const (
	dispatchQueueKey = "dispatch_events"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// DispatchEvent - экстренное оповещение для внешней диспетчерской
type DispatchEvent struct {
	OfficerID string       `json:"officer_id"`
	Alert     models.Alert `json:"alert"`
	Timestamp time.Time    `json:"timestamp"`
}

// DispatchPublisher - интерфейс для постановки события в очередь доставки
type DispatchPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisDispatchPublisher - реализация DispatchPublisher поверх списка Redis
type RedisDispatchPublisher struct {
	redisClient *redis.Client
}

func NewRedisDispatchPublisher(client *redis.Client) *RedisDispatchPublisher {
	return &RedisDispatchPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в левую часть очереди; воркер забирает его справа
func (p *RedisDispatchPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}
