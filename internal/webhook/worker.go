package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tactical_dashboard/internal/config"
	"github.com/sirupsen/logrus"
)

// DispatchWorker забирает события из очереди Redis и доставляет их на WEBHOOK_URL
type DispatchWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewDispatchWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *DispatchWorker {
	return &DispatchWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди до отмены ctx
func (w *DispatchWorker) Start(ctx context.Context) {
	w.logger.Info("Starting dispatch worker...")
	go func() {
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping dispatch worker.")
				return
			}

			// 0 - ждать бесконечно
			result, err := w.redisClient.BRPop(ctx, 0, dispatchQueueKey).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop dispatch event from Redis")
				sleepCtx(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event DispatchEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal dispatch event from Redis")
				continue
			}

			if err := w.deliver(ctx, event, []byte(payload)); err != nil {
				w.logger.WithError(err).WithField("alert_id", event.Alert.ID).Error("Dispatch event dropped")
			}
		}
	}()
}

// deliver отправляет payload с экспоненциальной задержкой между попытками
func (w *DispatchWorker) deliver(ctx context.Context, event DispatchEvent, payload []byte) error {
	log := w.logger.WithFields(logrus.Fields{
		"alert_id":   event.Alert.ID,
		"officer_id": event.OfficerID,
	})
	log.Debug("Processing dispatch event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping dispatch delivery.")
		return nil
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			if !sleepCtx(ctx, delay) {
				return ctx.Err()
			}
			delay *= 2
		}

		status, err := w.post(ctx, payload)
		if err != nil {
			log.WithError(err).Warnf("Failed to send dispatch webhook. Retries left: %d", maxRetries-1-i)
			continue
		}
		if status >= 200 && status < 300 {
			log.Info("Dispatch webhook delivered successfully.")
			return nil
		}
		log.Warnf("Dispatch webhook failed with status code %d. Retries left: %d", status, maxRetries-1-i)
	}

	return fmt.Errorf("failed to deliver dispatch webhook after %d attempts", maxRetries)
}

func (w *DispatchWorker) post(ctx context.Context, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если задан WEBHOOK_SECRET
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
