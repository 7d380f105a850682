package models

import (
	"time"

	"gorm.io/gorm"
)

// StatusHistory is an hourly status snapshot for a service. The table is
// migrated but no code path writes or reads it yet; the public timeline is
// reconstructed from incident windows instead. Reserved for a future
// snapshot-based history.
type StatusHistory struct {
	gorm.Model

	ServiceID  uint          `gorm:"not null;uniqueIndex:idx_service_recorded"`
	Status     ServiceStatus `gorm:"not null"`
	IncidentID *uint         `gorm:"index"`
	RecordedAt time.Time     `gorm:"not null;uniqueIndex:idx_service_recorded"`

	// Relationships
	Service  Service   `gorm:"foreignKey:ServiceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Incident *Incident `gorm:"foreignKey:IncidentID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
