package domain

import "time"

// Idempotency records the outcome of a create request, keyed by
// (resource, key). A retried POST carrying the same Idempotency-Key replays
// the entity created by the first request instead of inserting again.
type Idempotency struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	Resource  string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_idem_resource_key,priority:1"`
	Key       string    `gorm:"type:varchar(200);not null;uniqueIndex:ux_idem_resource_key,priority:2"`
	EntityID  string    `gorm:"type:char(36);not null"`
	Status    int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
