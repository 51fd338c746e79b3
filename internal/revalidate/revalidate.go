package revalidate

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event tells the frontend which rendered path went stale.
type Event struct {
	ID         string    `json:"id"`
	Path       string    `json:"path"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PathRevalidator publishes invalidation events for the public
// tracking page and the dashboard list. Publishing is fire-and-forget:
// a failed publish is logged and never fails the write that triggered
// it.
type PathRevalidator struct {
	producer Producer
	logger   *zap.Logger
}

func New(producer Producer, logger *zap.Logger) *PathRevalidator {
	return &PathRevalidator{producer: producer, logger: logger}
}

func (r *PathRevalidator) TrackingPage(ctx context.Context, trackingNumber string) {
	r.publish(ctx, "/track/"+trackingNumber)
}

func (r *PathRevalidator) Dashboard(ctx context.Context) {
	r.publish(ctx, "/dashboard/list")
}

func (r *PathRevalidator) Close() error {
	return r.producer.Close()
}

func (r *PathRevalidator) publish(ctx context.Context, path string) {
	event := Event{
		ID:         uuid.NewString(),
		Path:       path,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		r.logger.Error("failed to marshal revalidation event", zap.Error(err))
		return
	}

	if err := r.producer.SendMessage(ctx, []byte(path), payload); err != nil {
		r.logger.Warn("failed to publish revalidation event",
			zap.String("path", path), zap.Error(err))
	}
}
