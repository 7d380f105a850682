// Package timeline reconstructs a service's hourly status history from the
// incidents that affected it. No stored snapshot is read; the sequence is
// derived on the fly from incident creation and resolution timestamps.
package timeline

import (
	"time"

	"github.com/beacon-dev/beacon/internal/models"
	"gorm.io/gorm"
)

// DefaultWindowHours is the length of the public status page timeline.
const DefaultWindowHours = 24

// Bucket is one hour of reconstructed history. Incident carries the title of
// the highest-impact incident covering the hour, or "" when the hour was
// clean.
type Bucket struct {
	Hour     time.Time            `json:"hour"`
	Status   models.ServiceStatus `json:"status"`
	Incident string               `json:"incident"`
}

// ServiceHistory returns one bucket per hour from (now - hours + 1) through
// the current hour, truncated to hour boundaries, oldest first.
//
// Every incident linked to the service whose active interval — creation hour
// through resolution hour, or through the current hour while unresolved —
// overlaps the window claims the hours it covers. When incidents compete for
// an hour, the higher impact priority wins; ties keep the first assignment.
// The winning impact maps to a display status via Impact.ServiceStatus.
func ServiceHistory(conn *gorm.DB, serviceID uint, hours int, now time.Time) ([]Bucket, error) {
	now = now.UTC()
	nowHour := now.Truncate(time.Hour)
	windowStart := nowHour.Add(-time.Duration(hours-1) * time.Hour)

	var incidents []models.Incident

	err := conn.
		Joins("JOIN incident_services ON incident_services.incident_id = incidents.id").
		Where("incident_services.service_id = ?", serviceID).
		Where("incidents.created_at <= ?", now).
		Where("incidents.resolved_at IS NULL OR incidents.resolved_at >= ?", windowStart).
		Find(&incidents).Error

	if err != nil {
		return nil, err
	}

	// Hour (as unix seconds) -> winning incident for that hour.
	winners := make(map[int64]models.Incident)

	for _, incident := range incidents {
		start := incident.CreatedAt.UTC().Truncate(time.Hour)

		end := nowHour
		if incident.ResolvedAt != nil {
			end = incident.ResolvedAt.UTC().Truncate(time.Hour)
		}

		for hour := start; !hour.After(end); hour = hour.Add(time.Hour) {
			if hour.Before(windowStart) || hour.After(nowHour) {
				continue
			}

			key := hour.Unix()
			if current, claimed := winners[key]; claimed && incident.Impact.Priority() <= current.Impact.Priority() {
				continue
			}
			winners[key] = incident
		}
	}

	buckets := make([]Bucket, 0, hours)

	for i := hours - 1; i >= 0; i-- {
		hour := nowHour.Add(-time.Duration(i) * time.Hour)

		if incident, ok := winners[hour.Unix()]; ok {
			buckets = append(buckets, Bucket{
				Hour:     hour,
				Status:   incident.Impact.ServiceStatus(),
				Incident: incident.Title,
			})
		} else {
			buckets = append(buckets, Bucket{
				Hour:     hour,
				Status:   models.ServiceOperational,
				Incident: "",
			})
		}
	}

	return buckets, nil
}
