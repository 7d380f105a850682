// Package incidents implements the incident lifecycle: declaring incidents,
// posting updates, and the service-status side effects of both. Each
// operation runs in a single transaction so a failed step never leaves a
// half-applied state.
package incidents

import (
	"fmt"
	"time"

	"github.com/beacon-dev/beacon/internal/models"
	"gorm.io/gorm"
)

type CreateInput struct {
	Title      string
	Status     models.IncidentStatus
	Impact     models.Impact
	ServiceIDs []uint
}

type UpdateInput struct {
	Status  models.IncidentStatus
	Message string
}

// Create persists a new incident, records its initial update, and overwrites
// the status of every affected service from the incident's impact. When a
// service is affected by concurrent incidents the last writer wins; no merge
// is attempted at declaration time.
func Create(conn *gorm.DB, in CreateInput) (models.Incident, error) {
	var incident models.Incident

	err := conn.Transaction(func(tx *gorm.DB) error {
		var services []models.Service

		if len(in.ServiceIDs) > 0 {
			if err := tx.Where("id IN ?", in.ServiceIDs).Find(&services).Error; err != nil {
				return err
			}
		}

		incident = models.Incident{
			Title:    in.Title,
			Status:   in.Status,
			Impact:   in.Impact,
			Services: services,
		}

		if in.Status == models.IncidentResolved {
			now := time.Now()
			incident.ResolvedAt = &now
		}

		if err := tx.Create(&incident).Error; err != nil {
			return err
		}

		initial := models.IncidentUpdate{
			IncidentID: incident.ID,
			Status:     in.Status,
			Message:    fmt.Sprintf("Incident created: %s", in.Title),
		}

		if err := tx.Create(&initial).Error; err != nil {
			return err
		}

		newStatus := in.Impact.ServiceStatus()

		for i := range services {
			if err := tx.Model(&services[i]).Update("status", newStatus).Error; err != nil {
				return err
			}
		}

		return nil
	})

	return incident, err
}

// PostUpdate appends an update to an incident and moves the incident to the
// update's status, keeping the invariant that an incident's status equals
// its newest update's status.
//
// When the update resolves the incident, ResolvedAt is stamped (once) and
// every affected service is recomputed from the incidents still open against
// it, rather than blindly reset to operational: a service held down by a
// second unresolved incident stays at that incident's implied status.
func PostUpdate(conn *gorm.DB, incidentID uint, in UpdateInput) (models.IncidentUpdate, error) {
	var update models.IncidentUpdate

	err := conn.Transaction(func(tx *gorm.DB) error {
		var incident models.Incident

		if err := tx.Preload("Services").First(&incident, incidentID).Error; err != nil {
			return err
		}

		if !incident.Status.CanTransitionTo(in.Status) {
			return fmt.Errorf("cannot transition incident from %s to %s", incident.Status, in.Status)
		}

		update = models.IncidentUpdate{
			IncidentID: incident.ID,
			Status:     in.Status,
			Message:    in.Message,
		}

		if err := tx.Create(&update).Error; err != nil {
			return err
		}

		changes := map[string]interface{}{"status": in.Status}

		if in.Status == models.IncidentResolved && incident.ResolvedAt == nil {
			changes["resolved_at"] = time.Now()
		}

		if err := tx.Model(&incident).Updates(changes).Error; err != nil {
			return err
		}

		if in.Status == models.IncidentResolved {
			for i := range incident.Services {
				if err := refreshServiceStatus(tx, &incident.Services[i]); err != nil {
					return err
				}
			}
		}

		return nil
	})

	return update, err
}

// SetServiceStatus overwrites one service's status directly, independent of
// any incident.
func SetServiceStatus(conn *gorm.DB, serviceID uint, status models.ServiceStatus) (models.Service, error) {
	var service models.Service

	err := conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&service, serviceID).Error; err != nil {
			return err
		}

		return tx.Model(&service).Update("status", status).Error
	})

	return service, err
}

// refreshServiceStatus derives a service's status from the unresolved
// incidents still affecting it: the highest impact wins through the
// impact-to-status table, operational when none remain.
func refreshServiceStatus(tx *gorm.DB, service *models.Service) error {
	var open []models.Incident

	err := tx.
		Joins("JOIN incident_services ON incident_services.incident_id = incidents.id").
		Where("incident_services.service_id = ?", service.ID).
		Where("incidents.status <> ?", models.IncidentResolved).
		Find(&open).Error

	if err != nil {
		return err
	}

	status := models.ServiceOperational
	best := 0

	for _, incident := range open {
		if priority := incident.Impact.Priority(); priority > best {
			best = priority
			status = incident.Impact.ServiceStatus()
		}
	}

	return tx.Model(service).Update("status", status).Error
}
