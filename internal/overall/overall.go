// Package overall computes the site-wide banner status from current service
// statuses.
package overall

import "github.com/beacon-dev/beacon/internal/models"

var bannerMessages = map[models.ServiceStatus]string{
	models.ServiceMajor:       "Major System Outage",
	models.ServicePartial:     "Partial System Outage",
	models.ServiceDegraded:    "Degraded Performance",
	models.ServiceMaintenance: "Scheduled Maintenance",
	models.ServiceOperational: "All Systems Operational",
}

// statusPriority is the strict descending order the banner scans in; the
// first status any service currently holds wins.
var statusPriority = []models.ServiceStatus{
	models.ServiceMajor,
	models.ServicePartial,
	models.ServiceDegraded,
	models.ServiceMaintenance,
}

// Compute returns the worst current status across services and its banner
// message. With no services, or none in a non-operational state, the site is
// operational.
func Compute(services []models.Service) (models.ServiceStatus, string) {
	for _, status := range statusPriority {
		for _, service := range services {
			if service.Status == status {
				return status, bannerMessages[status]
			}
		}
	}

	return models.ServiceOperational, bannerMessages[models.ServiceOperational]
}
