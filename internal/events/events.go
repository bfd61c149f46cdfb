// Package events publica os eventos do ciclo de vida de outreach
package events

import (
	"context"
	"time"
)

const (
	EventOutreachPitched       = "outreach.pitched"
	EventOutreachStatusChanged = "outreach.status_changed"
)

type Publisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
	Close() error
}

// OutreachEvent é o payload comum aos eventos de outreach
type OutreachEvent struct {
	OutreachID     string    `json:"outreachId"`
	UserID         int       `json:"userId"`
	BrandID        string    `json:"brandId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}
