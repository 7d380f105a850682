package models

import (
	"time"

	"gorm.io/gorm"
)

// Incident is an operator-declared event affecting one or more services.
// Its Status always mirrors the status of its most recent update; ResolvedAt
// is set exactly once, when the incident first transitions to resolved.
type Incident struct {
	gorm.Model

	Title      string         `gorm:"not null"`
	Status     IncidentStatus `gorm:"not null"`
	Impact     Impact         `gorm:"not null"`
	ResolvedAt *time.Time

	// Relationships
	Services []Service        `gorm:"many2many:incident_services"`
	Updates  []IncidentUpdate `gorm:"foreignKey:IncidentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// IncidentUpdate is one entry in an incident's update feed. The first update
// is created automatically when the incident is declared.
type IncidentUpdate struct {
	gorm.Model

	IncidentID uint           `gorm:"not null;index"`
	Status     IncidentStatus `gorm:"not null"`
	Message    string         `gorm:"not null"`

	// Relationships
	Incident Incident `gorm:"foreignKey:IncidentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
