package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/beacon-dev/beacon/db"
	"github.com/beacon-dev/beacon/internal/models"
	"github.com/beacon-dev/beacon/internal/overall"
	"github.com/beacon-dev/beacon/internal/timeline"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatusPageResponse struct {
	Settings          SettingsView         `json:"settings"`
	OverallStatus     models.ServiceStatus `json:"overall_status"`
	OverallMessage    string               `json:"overall_message"`
	Services          []ServiceHistoryView `json:"services"`
	ActiveIncidents   []IncidentView       `json:"active_incidents"`
	ResolvedIncidents []IncidentView       `json:"resolved_incidents"`
}

// Index renders the public status page: branding, the site-wide banner, every
// service with its reconstructed 24-hour timeline, and the active and
// resolved incident lists.
func Index(ctx *gin.Context) {
	settings, err := models.GetSiteSettings(db.DB)

	if err != nil {
		log.Printf("Failed to load site settings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	services, err := models.OrderedServices(db.DB)

	if err != nil {
		log.Printf("Failed to retrieve services: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	now := time.Now()
	serviceViews := make([]ServiceHistoryView, 0, len(services))

	for _, service := range services {
		history, err := timeline.ServiceHistory(db.DB, service.ID, timeline.DefaultWindowHours, now)

		if err != nil {
			log.Printf("Failed to build history for service %d: %v", service.ID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		serviceViews = append(serviceViews, ServiceHistoryView{
			ServiceView: newServiceView(service),
			History:     history,
		})
	}

	active, err := activeIncidents(db.DB)

	if err != nil {
		log.Printf("Failed to retrieve active incidents: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var resolved []models.Incident

	if err := incidentScope(db.DB).
		Where("status = ?", models.IncidentResolved).
		Order("resolved_at DESC").
		Find(&resolved).Error; err != nil {
		log.Printf("Failed to retrieve resolved incidents: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	overallStatus, overallMessage := overall.Compute(services)

	ctx.JSON(http.StatusOK, StatusPageResponse{
		Settings:          newSettingsView(settings),
		OverallStatus:     overallStatus,
		OverallMessage:    overallMessage,
		Services:          serviceViews,
		ActiveIncidents:   newIncidentViews(active),
		ResolvedIncidents: newIncidentViews(resolved),
	})
}

// incidentScope preloads the associations every incident listing renders,
// updates newest first.
func incidentScope(conn *gorm.DB) *gorm.DB {
	return conn.
		Preload("Services").
		Preload("Updates", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC")
		})
}

func activeIncidents(conn *gorm.DB) ([]models.Incident, error) {
	var incidents []models.Incident
	err := incidentScope(conn).
		Where("status <> ?", models.IncidentResolved).
		Order("created_at DESC").
		Find(&incidents).Error
	return incidents, err
}
