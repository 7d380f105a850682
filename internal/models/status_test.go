package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImpactServiceStatus(t *testing.T) {
	assert.Equal(t, ServiceOperational, ImpactNone.ServiceStatus())
	assert.Equal(t, ServiceDegraded, ImpactMinor.ServiceStatus())
	assert.Equal(t, ServicePartial, ImpactMajor.ServiceStatus())
	assert.Equal(t, ServiceMajor, ImpactCritical.ServiceStatus())

	// Unknown impacts fall back to degraded.
	assert.Equal(t, ServiceDegraded, Impact("catastrophic").ServiceStatus())
}

func TestImpactPriority(t *testing.T) {
	assert.Greater(t, ImpactCritical.Priority(), ImpactMajor.Priority())
	assert.Greater(t, ImpactMajor.Priority(), ImpactMinor.Priority())
	assert.Greater(t, ImpactMinor.Priority(), ImpactNone.Priority())
	assert.Greater(t, ImpactNone.Priority(), Impact("").Priority())
}

func TestIncidentTransitionsArePermissive(t *testing.T) {
	for _, from := range IncidentStatusChoices {
		for _, to := range IncidentStatusChoices {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s should be allowed", from, to)
		}
	}
}

func TestStatusValidation(t *testing.T) {
	assert.True(t, ServiceDegraded.Valid())
	assert.False(t, ServiceStatus("down").Valid())

	assert.True(t, IncidentMonitoring.Valid())
	assert.False(t, IncidentStatus("closed").Valid())

	assert.True(t, ImpactCritical.Valid())
	assert.False(t, Impact("severe").Valid())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Degraded Performance", ServiceDegraded.Label())
	assert.Equal(t, "Under Maintenance", ServiceMaintenance.Label())
	assert.Equal(t, "Investigating", IncidentInvestigating.Label())
	assert.Equal(t, "Critical", ImpactCritical.Label())
}
