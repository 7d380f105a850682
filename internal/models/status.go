package models

// ServiceStatus is the current health label of a service.
type ServiceStatus string

const (
	ServiceOperational ServiceStatus = "operational"
	ServiceDegraded    ServiceStatus = "degraded"
	ServicePartial     ServiceStatus = "partial"
	ServiceMajor       ServiceStatus = "major"
	ServiceMaintenance ServiceStatus = "maintenance"
)

var serviceStatusLabels = map[ServiceStatus]string{
	ServiceOperational: "Operational",
	ServiceDegraded:    "Degraded Performance",
	ServicePartial:     "Partial Outage",
	ServiceMajor:       "Major Outage",
	ServiceMaintenance: "Under Maintenance",
}

// ServiceStatusChoices lists selectable statuses in display order.
var ServiceStatusChoices = []ServiceStatus{
	ServiceOperational,
	ServiceDegraded,
	ServicePartial,
	ServiceMajor,
	ServiceMaintenance,
}

func (s ServiceStatus) Valid() bool {
	_, ok := serviceStatusLabels[s]
	return ok
}

func (s ServiceStatus) Label() string {
	return serviceStatusLabels[s]
}

// IncidentStatus is the lifecycle stage of an incident investigation.
type IncidentStatus string

const (
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentIdentified    IncidentStatus = "identified"
	IncidentMonitoring    IncidentStatus = "monitoring"
	IncidentResolved      IncidentStatus = "resolved"
)

var incidentStatusLabels = map[IncidentStatus]string{
	IncidentInvestigating: "Investigating",
	IncidentIdentified:    "Identified",
	IncidentMonitoring:    "Monitoring",
	IncidentResolved:      "Resolved",
}

var IncidentStatusChoices = []IncidentStatus{
	IncidentInvestigating,
	IncidentIdentified,
	IncidentMonitoring,
	IncidentResolved,
}

func (s IncidentStatus) Valid() bool {
	_, ok := incidentStatusLabels[s]
	return ok
}

func (s IncidentStatus) Label() string {
	return incidentStatusLabels[s]
}

// incidentTransitions is the allowed transition table. Operators may move an
// incident between any two stages, including backwards (e.g. resolved back to
// investigating when an incident reopens). Tightening the lifecycle is a table
// edit here, not a handler change.
var incidentTransitions = map[IncidentStatus][]IncidentStatus{
	IncidentInvestigating: {IncidentInvestigating, IncidentIdentified, IncidentMonitoring, IncidentResolved},
	IncidentIdentified:    {IncidentInvestigating, IncidentIdentified, IncidentMonitoring, IncidentResolved},
	IncidentMonitoring:    {IncidentInvestigating, IncidentIdentified, IncidentMonitoring, IncidentResolved},
	IncidentResolved:      {IncidentInvestigating, IncidentIdentified, IncidentMonitoring, IncidentResolved},
}

func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	for _, allowed := range incidentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Impact is the operator-declared severity of an incident, independent of
// service status.
type Impact string

const (
	ImpactNone     Impact = "none"
	ImpactMinor    Impact = "minor"
	ImpactMajor    Impact = "major"
	ImpactCritical Impact = "critical"
)

var impactLabels = map[Impact]string{
	ImpactNone:     "None",
	ImpactMinor:    "Minor",
	ImpactMajor:    "Major",
	ImpactCritical: "Critical",
}

var ImpactChoices = []Impact{
	ImpactNone,
	ImpactMinor,
	ImpactMajor,
	ImpactCritical,
}

func (i Impact) Valid() bool {
	_, ok := impactLabels[i]
	return ok
}

func (i Impact) Label() string {
	return impactLabels[i]
}

var impactPriority = map[Impact]int{
	ImpactCritical: 4,
	ImpactMajor:    3,
	ImpactMinor:    2,
	ImpactNone:     1,
}

// Priority orders impacts for conflict resolution; higher wins. Unknown
// impacts rank below every known one.
func (i Impact) Priority() int {
	return impactPriority[i]
}

var impactToStatus = map[Impact]ServiceStatus{
	ImpactNone:     ServiceOperational,
	ImpactMinor:    ServiceDegraded,
	ImpactMajor:    ServicePartial,
	ImpactCritical: ServiceMajor,
}

// ServiceStatus maps an incident impact to the service status it implies.
// Unknown impacts fall back to degraded.
func (i Impact) ServiceStatus() ServiceStatus {
	if status, ok := impactToStatus[i]; ok {
		return status
	}
	return ServiceDegraded
}
