package domain

import "time"

type Brand struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Handle            string     `json:"handle"`
	Category          *string    `json:"category"`
	Followers         int        `json:"followers"`
	PartnershipCount  int        `json:"partnershipCount"`
	ActivityScore     float64    `json:"activityScore"`
	LastPartnershipAt *time.Time `json:"lastPartnershipAt"`
}
