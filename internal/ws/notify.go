package ws

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

type BatchProgressEvent struct {
	Type         string `json:"type"`
	CandidateRef string `json:"candidate_ref"`
	Done         int    `json:"done"`
	Total        int    `json:"total"`
	Timestamp    string `json:"timestamp"`
}

// Notifier bridges batch scoring to the hub. A nil hub drops everything,
// so the engine works with the websocket surface disabled.
type Notifier struct {
	hub    *Hub
	logger *zap.Logger
}

func NewNotifier(hub *Hub, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{hub: hub, logger: logger}
}

func (n *Notifier) BatchProgress(candidateRef string, done, total int) {
	n.publish(BatchProgressEvent{
		Type:         "batch_progress",
		CandidateRef: candidateRef,
		Done:         done,
		Total:        total,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) BatchCompleted(candidateRef string, total int) {
	n.publish(BatchProgressEvent{
		Type:         "batch_completed",
		CandidateRef: candidateRef,
		Done:         total,
		Total:        total,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) publish(evt BatchProgressEvent) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
