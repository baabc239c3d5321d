package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"jobId"`
	Timestamp string `json:"timestamp"`
}

// Notifier publishes job lifecycle events to the hub.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) NotifyJob(ctx context.Context, eventType string, jobID uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}

	evt := JobEvent{
		Type:      eventType,
		JobID:     jobID.String(),
		Timestamp: n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		n.hub.logger.ErrorContext(ctx, "encode job event", "error", err)
		return
	}

	n.hub.Broadcast(b)
}
