package notify

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

	"github.com/shenikar/shelter_dispatch_system/internal/config"
	"github.com/shenikar/shelter_dispatch_system/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader = "X-Webhook-Signature"
	popTimeout      = time.Second
)

// Worker - обработчик очереди уведомлений
type Worker struct {
	queue      Queue
	logger     *logrus.Logger
	cfg        *config.Config
	httpClient *http.Client
}

// NewWorker создает новый Worker
func NewWorker(queue Queue, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		queue:  queue,
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает обработку очереди в отдельной горутине; канал закрывается после остановки
func (w *Worker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()
	return done
}

// Run обрабатывает очередь до отмены контекста
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	for {
		if ctx.Err() != nil {
			w.logger.Info("Stopping notification worker.")
			return
		}

		payload, err := w.queue.Pop(ctx, popTimeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				continue
			}
			w.logger.WithError(err).Error("Failed to pop notification event")
			sleep(ctx, w.cfg.WebhookTimeout)
			continue
		}
		if payload == nil {
			continue
		}

		var event Event
		if err := json.Unmarshal(payload, &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal notification event")
			metrics.NotificationsTotal.WithLabelValues("deliver", "malformed").Inc()
			continue
		}

		if w.deliver(ctx, event, payload) {
			metrics.NotificationsTotal.WithLabelValues("deliver", "ok").Inc()
		} else {
			metrics.NotificationsTotal.WithLabelValues("deliver", "error").Inc()
		}
	}
}

// deliver отправляет событие с экспоненциальной задержкой между попытками
func (w *Worker) deliver(ctx context.Context, event Event, payload []byte) bool {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
		"user_id":    event.UserID,
	})
	log.Debug("Processing notification event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping notification delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		status, err := w.send(ctx, payload)
		if err == nil && status >= 200 && status < 300 {
			log.Info("Notification delivered successfully.")
			return true
		}

		left := maxRetries - 1 - i
		if err != nil {
			log.WithError(err).Warnf("Failed to send notification. Retries left: %d", left)
		} else {
			log.Warnf("Notification delivery failed with status code %d. Retries left: %d", status, left)
		}
		if left == 0 || !sleep(ctx, delay) {
			break
		}
		delay *= 2
	}

	log.Errorf("Failed to deliver notification after %d attempts.", maxRetries)
	return false
}

func (w *Worker) send(ctx context.Context, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, Sign(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Sign вычисляет HMAC-SHA256 подпись тела запроса
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// sleep ждет d или отмены контекста; false означает отмену
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
