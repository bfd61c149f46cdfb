package domain

import (
	"fmt"
	"time"
)

type OutreachStatus string

const (
	OutreachStatusPitched     OutreachStatus = "pitched"
	OutreachStatusNegotiating OutreachStatus = "negotiating"
	OutreachStatusConfirmed   OutreachStatus = "confirmed"
	OutreachStatusCompleted   OutreachStatus = "completed"
	OutreachStatusRejected    OutreachStatus = "rejected"
	OutreachStatusGhosted     OutreachStatus = "ghosted"
)

// OutreachStatuses lista todos os status na ordem do ciclo de vida
var OutreachStatuses = []OutreachStatus{
	OutreachStatusPitched,
	OutreachStatusNegotiating,
	OutreachStatusConfirmed,
	OutreachStatusCompleted,
	OutreachStatusRejected,
	OutreachStatusGhosted,
}

// outreachTransitions define as transições válidas a partir de cada status.
// Status ausentes do mapa (completed, rejected, ghosted) são terminais.
var outreachTransitions = map[OutreachStatus][]OutreachStatus{
	OutreachStatusPitched:     {OutreachStatusNegotiating, OutreachStatusRejected, OutreachStatusGhosted},
	OutreachStatusNegotiating: {OutreachStatusConfirmed, OutreachStatusRejected, OutreachStatusGhosted},
	OutreachStatusConfirmed:   {OutreachStatusCompleted},
}

func ParseOutreachStatus(s string) (OutreachStatus, error) {
	for _, status := range OutreachStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid outreach status: %q", s)
}

func (s OutreachStatus) IsTerminal() bool {
	_, hasNext := outreachTransitions[s]
	return !hasNext
}

// CanTransition informa se o status pode avançar de from para to
func CanTransition(from, to OutreachStatus) bool {
	for _, next := range outreachTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BrandSummary são os campos da marca exibidos junto com o outreach
type BrandSummary struct {
	Name           string  `json:"name"`
	Handle         string  `json:"handle"`
	Category       *string `json:"category"`
	ProfilePicture *string `json:"profilePicture"`
}

type OutreachRecord struct {
	ID           string         `json:"id"`
	UserID       int            `json:"userId"`
	BrandID      string         `json:"brandId"`
	Status       OutreachStatus `json:"status"`
	PitchSubject *string        `json:"pitchSubject"`
	PitchBody    *string        `json:"pitchBody"`
	PitchTone    *string        `json:"pitchTone"`
	TemplateID   *string        `json:"templateId"`
	PitchedAt    *time.Time     `json:"pitchedAt"`
	ConfirmedAt  *time.Time     `json:"confirmedAt"`
	PaidAt       *time.Time     `json:"paidAt"`
	Amount       *float64       `json:"amount"`
	Notes        *string        `json:"notes"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	Brand        *BrandSummary  `json:"brand,omitempty"`
}

// OutreachStats sempre contém as seis chaves de status
type OutreachStats map[OutreachStatus]int

func NewOutreachStats() OutreachStats {
	stats := make(OutreachStats, len(OutreachStatuses))
	for _, status := range OutreachStatuses {
		stats[status] = 0
	}
	return stats
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type OutreachListResponse struct {
	Outreach   []OutreachRecord `json:"outreach"`
	Pagination Pagination       `json:"pagination"`
	Stats      OutreachStats    `json:"stats"`
}

type PitchedResponse struct {
	Pitched  bool            `json:"pitched"`
	Outreach *OutreachRecord `json:"outreach"`
}

// OutreachUpdate representa os campos alterados em uma escrita condicional
type OutreachUpdate struct {
	ID             string
	UserID         int
	ExpectedStatus OutreachStatus
	Status         *OutreachStatus
	Amount         *float64
	Notes          *string
	ConfirmedAt    *time.Time
	PaidAt         *time.Time
	UpdatedAt      time.Time
}
