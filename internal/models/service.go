package models

import "gorm.io/gorm"

// Service is a monitored component shown on the status page.
type Service struct {
	gorm.Model

	Name        string        `gorm:"not null"`
	Description string
	Status      ServiceStatus `gorm:"not null"`
	SortOrder   int           `gorm:"not null;default:0"`

	// Relationships
	Incidents []Incident `gorm:"many2many:incident_services"`
}

// OrderedServices lists all services in display order.
func OrderedServices(db *gorm.DB) ([]Service, error) {
	var services []Service
	err := db.Order("sort_order, name").Find(&services).Error
	return services, err
}
