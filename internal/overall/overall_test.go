package overall

import (
	"testing"

	"github.com/beacon-dev/beacon/internal/models"
	"github.com/stretchr/testify/assert"
)

func services(statuses ...models.ServiceStatus) []models.Service {
	out := make([]models.Service, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, models.Service{Status: status})
	}
	return out
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name        string
		services    []models.Service
		wantStatus  models.ServiceStatus
		wantMessage string
	}{
		{
			name:        "all operational",
			services:    services(models.ServiceOperational, models.ServiceOperational),
			wantStatus:  models.ServiceOperational,
			wantMessage: "All Systems Operational",
		},
		{
			name:        "no services",
			services:    nil,
			wantStatus:  models.ServiceOperational,
			wantMessage: "All Systems Operational",
		},
		{
			name:        "one degraded",
			services:    services(models.ServiceOperational, models.ServiceDegraded, models.ServiceOperational),
			wantStatus:  models.ServiceDegraded,
			wantMessage: "Degraded Performance",
		},
		{
			name:        "major beats partial",
			services:    services(models.ServiceMajor, models.ServicePartial),
			wantStatus:  models.ServiceMajor,
			wantMessage: "Major System Outage",
		},
		{
			name:        "partial beats degraded and maintenance",
			services:    services(models.ServiceMaintenance, models.ServiceDegraded, models.ServicePartial),
			wantStatus:  models.ServicePartial,
			wantMessage: "Partial System Outage",
		},
		{
			name:        "maintenance only",
			services:    services(models.ServiceOperational, models.ServiceMaintenance),
			wantStatus:  models.ServiceMaintenance,
			wantMessage: "Scheduled Maintenance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := Compute(tt.services)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
