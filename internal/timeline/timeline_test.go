package timeline

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/beacon-dev/beacon/db"
	"github.com/beacon-dev/beacon/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 3, 14, 15, 42, 10, 0, time.UTC)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "beacon.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	return conn
}

func createService(t *testing.T, conn *gorm.DB, name string) models.Service {
	t.Helper()

	service := models.Service{Name: name, Status: models.ServiceOperational}
	require.NoError(t, conn.Create(&service).Error)
	return service
}

func createIncident(t *testing.T, conn *gorm.DB, title string, impact models.Impact, createdAt time.Time, resolvedAt *time.Time, services ...models.Service) models.Incident {
	t.Helper()

	status := models.IncidentInvestigating
	if resolvedAt != nil {
		status = models.IncidentResolved
	}

	incident := models.Incident{
		Title:      title,
		Status:     status,
		Impact:     impact,
		ResolvedAt: resolvedAt,
		Services:   services,
	}
	incident.CreatedAt = createdAt
	require.NoError(t, conn.Create(&incident).Error)
	return incident
}

func ptr(ts time.Time) *time.Time { return &ts }

func TestServiceHistoryNoIncidents(t *testing.T) {
	conn := openTestDB(t)
	service := createService(t, conn, "API")

	history, err := ServiceHistory(conn, service.ID, DefaultWindowHours, testNow)
	require.NoError(t, err)
	require.Len(t, history, DefaultWindowHours)

	nowHour := testNow.Truncate(time.Hour)
	assert.Equal(t, nowHour.Add(-23*time.Hour), history[0].Hour)
	assert.Equal(t, nowHour, history[len(history)-1].Hour)

	for _, bucket := range history {
		assert.Equal(t, models.ServiceOperational, bucket.Status)
		assert.Empty(t, bucket.Incident)
	}
}

func TestServiceHistoryCriticalWindow(t *testing.T) {
	conn := openTestDB(t)
	service := createService(t, conn, "API")

	nowHour := testNow.Truncate(time.Hour)
	createIncident(t, conn, "Database outage", models.ImpactCritical,
		nowHour.Add(-5*time.Hour).Add(12*time.Minute),
		ptr(nowHour.Add(-3*time.Hour).Add(40*time.Minute)),
		service)

	history, err := ServiceHistory(conn, service.ID, DefaultWindowHours, testNow)
	require.NoError(t, err)
	require.Len(t, history, DefaultWindowHours)

	for _, bucket := range history {
		offset := int(bucket.Hour.Sub(nowHour) / time.Hour)
		if offset >= -5 && offset <= -3 {
			assert.Equal(t, models.ServiceMajor, bucket.Status, "hour %d", offset)
			assert.Equal(t, "Database outage", bucket.Incident, "hour %d", offset)
		} else {
			assert.Equal(t, models.ServiceOperational, bucket.Status, "hour %d", offset)
			assert.Empty(t, bucket.Incident, "hour %d", offset)
		}
	}
}

func TestServiceHistoryHigherImpactWins(t *testing.T) {
	conn := openTestDB(t)
	service := createService(t, conn, "API")

	nowHour := testNow.Truncate(time.Hour)

	// Minor incident spanning six hours, critical one covering a single hour
	// in the middle.
	createIncident(t, conn, "Elevated latency", models.ImpactMinor,
		nowHour.Add(-6*time.Hour),
		ptr(nowHour.Add(-1*time.Hour)),
		service)
	createIncident(t, conn, "Full outage", models.ImpactCritical,
		nowHour.Add(-4*time.Hour).Add(5*time.Minute),
		ptr(nowHour.Add(-4*time.Hour).Add(50*time.Minute)),
		service)

	history, err := ServiceHistory(conn, service.ID, DefaultWindowHours, testNow)
	require.NoError(t, err)

	for _, bucket := range history {
		offset := int(bucket.Hour.Sub(nowHour) / time.Hour)
		switch {
		case offset == -4:
			assert.Equal(t, models.ServiceMajor, bucket.Status)
			assert.Equal(t, "Full outage", bucket.Incident)
		case offset >= -6 && offset <= -1:
			assert.Equal(t, models.ServiceDegraded, bucket.Status, "hour %d", offset)
			assert.Equal(t, "Elevated latency", bucket.Incident, "hour %d", offset)
		default:
			assert.Equal(t, models.ServiceOperational, bucket.Status, "hour %d", offset)
		}
	}
}

func TestServiceHistorySameHourResolution(t *testing.T) {
	conn := openTestDB(t)
	service := createService(t, conn, "API")

	nowHour := testNow.Truncate(time.Hour)
	createIncident(t, conn, "Blip", models.ImpactMajor,
		nowHour.Add(-8*time.Hour).Add(10*time.Minute),
		ptr(nowHour.Add(-8*time.Hour).Add(25*time.Minute)),
		service)

	history, err := ServiceHistory(conn, service.ID, DefaultWindowHours, testNow)
	require.NoError(t, err)

	affected := 0
	for _, bucket := range history {
		if bucket.Incident != "" {
			affected++
			assert.Equal(t, nowHour.Add(-8*time.Hour), bucket.Hour)
			assert.Equal(t, models.ServicePartial, bucket.Status)
		}
	}
	assert.Equal(t, 1, affected)
}

func TestServiceHistoryUnresolvedExtendsToNow(t *testing.T) {
	conn := openTestDB(t)
	service := createService(t, conn, "API")

	nowHour := testNow.Truncate(time.Hour)
	createIncident(t, conn, "Ongoing incident", models.ImpactMinor,
		nowHour.Add(-2*time.Hour).Add(30*time.Minute), nil, service)

	history, err := ServiceHistory(conn, service.ID, DefaultWindowHours, testNow)
	require.NoError(t, err)

	for _, bucket := range history {
		offset := int(bucket.Hour.Sub(nowHour) / time.Hour)
		if offset >= -2 {
			assert.Equal(t, models.ServiceDegraded, bucket.Status, "hour %d", offset)
			assert.Equal(t, "Ongoing incident", bucket.Incident, "hour %d", offset)
		} else {
			assert.Equal(t, models.ServiceOperational, bucket.Status, "hour %d", offset)
		}
	}
}

func TestServiceHistoryClampsToWindow(t *testing.T) {
	conn := openTestDB(t)
	service := createService(t, conn, "API")

	nowHour := testNow.Truncate(time.Hour)

	// Started three days ago and still open: every bucket in the window is
	// covered, nothing outside it is emitted.
	createIncident(t, conn, "Long outage", models.ImpactMajor,
		nowHour.Add(-72*time.Hour), nil, service)

	history, err := ServiceHistory(conn, service.ID, DefaultWindowHours, testNow)
	require.NoError(t, err)
	require.Len(t, history, DefaultWindowHours)

	for _, bucket := range history {
		assert.Equal(t, models.ServicePartial, bucket.Status)
		assert.Equal(t, "Long outage", bucket.Incident)
	}
}

func TestServiceHistoryIgnoresOtherServices(t *testing.T) {
	conn := openTestDB(t)
	api := createService(t, conn, "API")
	web := createService(t, conn, "Website")

	nowHour := testNow.Truncate(time.Hour)
	createIncident(t, conn, "Website down", models.ImpactCritical,
		nowHour.Add(-4*time.Hour), nil, web)

	history, err := ServiceHistory(conn, api.ID, DefaultWindowHours, testNow)
	require.NoError(t, err)

	for _, bucket := range history {
		assert.Equal(t, models.ServiceOperational, bucket.Status)
		assert.Empty(t, bucket.Incident)
	}
}
