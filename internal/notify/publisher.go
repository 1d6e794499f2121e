// Package notify доставляет события распределения во внешний вебхук через очередь Redis.
package notify

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/shelter_dispatch_system/internal/metrics"
)

type EventType string

const (
	EventShelterAssigned     EventType = "shelter_assigned"
	EventArrived             EventType = "arrived"
	EventLeftShelter         EventType = "left_shelter"
	EventRouteUpdated        EventType = "route_updated"
	EventAllocationCompleted EventType = "allocation_completed"
)

// Event - событие для отправки во внешний вебхук
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	UserID    int64     `json:"user_id"`
	ShelterID int64     `json:"shelter_id,omitempty"`
	AlertID   int64     `json:"alert_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent заполняет идентификатор и время события
func NewEvent(eventType EventType, userID, shelterID, alertID int64, status string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		ShelterID: shelterID,
		AlertID:   alertID,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher - интерфейс для публикации уведомлений
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// QueuePublisher - реализация Publisher поверх очереди
type QueuePublisher struct {
	queue Queue
}

// NewQueuePublisher создает новый QueuePublisher
func NewQueuePublisher(queue Queue) *QueuePublisher {
	return &QueuePublisher{queue: queue}
}

// Publish сериализует событие и ставит его в очередь
func (p *QueuePublisher) Publish(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}
	if err := p.queue.Push(ctx, payload); err != nil {
		metrics.NotificationsTotal.WithLabelValues("publish", "error").Inc()
		return err
	}
	metrics.NotificationsTotal.WithLabelValues("publish", "ok").Inc()
	return nil
}
