package eventstream

import (
	"time"

	"github.com/google/uuid"

	"github.com/papercomputeco/charnn/pkg/storage"
)

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeRunCompleted is emitted after a training run is recorded.
	EventTypeRunCompleted = "charnn.run.completed"
)

// RunCompletedEvent is a transport-neutral event payload for a finished run.
type RunCompletedEvent struct {
	SchemaVersion int         `json:"schema_version"`
	EventType     string      `json:"event_type"`
	EventID       string      `json:"event_id"`
	EmittedAt     time.Time   `json:"emitted_at"`
	Source        EventSource `json:"source"`
	Run           storage.Run `json:"run"`

	// Diagonal is the per-category confusion accuracy, in category order.
	Diagonal []float64 `json:"diagonal,omitempty"`
}

// EventSource identifies the emitting build.
type EventSource struct {
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
	Host    string `json:"host,omitempty"`
}

// NewRunCompletedEvent wraps run in a fresh event envelope.
func NewRunCompletedEvent(run *storage.Run, diagonal []float64, source EventSource) *RunCompletedEvent {
	return &RunCompletedEvent{
		SchemaVersion: SchemaVersionV1,
		EventType:     EventTypeRunCompleted,
		EventID:       uuid.NewString(),
		EmittedAt:     time.Now().UTC(),
		Source:        source,
		Run:           *run,
		Diagonal:      append([]float64(nil), diagonal...),
	}
}
