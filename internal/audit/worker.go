package audit

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/crisisops/crisis_response_system/internal/config"
	"github.com/crisisops/crisis_response_system/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Worker drains the audit queue and delivers entries to the configured
// webhook endpoint. Delivery is best-effort: failures are logged and the
// entry is dropped after the retry budget is spent.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker creates a new audit Worker.
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.AuditWebhookTimeout,
		},
	}
}

// Start launches the queue-draining goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting audit worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping audit worker.")
				return
			default:
				// BRPop with timeout 0 blocks until an event arrives.
				result, err := w.redisClient.BRPop(ctx, 0, auditQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop audit event from Redis")
					time.Sleep(w.cfg.AuditWebhookTimeout)
					continue
				}

				payload := result[1]
				var entry models.ActivityLogEntry
				if err := json.Unmarshal([]byte(payload), &entry); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal audit event from Redis")
					continue
				}

				w.deliver(ctx, entry, payload)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, entry models.ActivityLogEntry, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"incident_id":   entry.IncidentID,
		"activity_type": entry.ActivityType,
	})
	log.Debug("Delivering audit event...")

	if w.cfg.AuditWebhookURL == "" {
		log.Debug("Audit webhook URL is not configured. Skipping delivery.")
		return
	}

	maxRetries := w.cfg.AuditWebhookMaxRetries
	delay := w.cfg.AuditWebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.AuditWebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create audit webhook request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		if w.cfg.AuditWebhookSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.AuditWebhookSecret)
			req.Header.Set("X-Webhook-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send audit webhook. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
			time.Sleep(delay)
			delay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Debug("Audit webhook delivered successfully.")
			return
		}
		log.Warnf("Audit webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, delay, maxRetries-1-i)
		time.Sleep(delay)
		delay *= 2
	}

	log.Errorf("Failed to deliver audit webhook after %d retries.", maxRetries)
}

// generateHMACSHA256 signs the payload with the shared webhook secret.
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
