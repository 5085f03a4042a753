// Package audit ships activity log entries to an optional external webhook.
// Entries are queued in Redis so delivery never blocks the request path.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/redis/go-redis/v9"
)

const auditQueueKey = "crisis_audit_events"

// Publisher queues activity log entries for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, entry *models.ActivityLogEntry) error
}

// RedisPublisher is a Publisher backed by a Redis list.
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher creates a new RedisPublisher.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes the entry onto the audit queue.
func (p *RedisPublisher) Publish(ctx context.Context, entry *models.ActivityLogEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, auditQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish audit event to Redis: %w", err)
	}
	return nil
}
