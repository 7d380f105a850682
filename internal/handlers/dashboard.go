package handlers

import (
	"log"
	"net/http"

	"github.com/beacon-dev/beacon/db"
	"github.com/beacon-dev/beacon/internal/models"
	"github.com/beacon-dev/beacon/internal/types"
	"github.com/beacon-dev/beacon/internal/utils"
	"github.com/gin-gonic/gin"
)

type DashboardResponse struct {
	User            types.UserResponse `json:"user"`
	Settings        SettingsView       `json:"settings"`
	Services        []ServiceView      `json:"services"`
	ActiveIncidents []IncidentView     `json:"active_incidents"`
	RecentIncidents []IncidentView     `json:"recent_incidents"`
	Notice          string             `json:"notice,omitempty"`
}

// Dashboard is the operator landing page: every service, the active
// incidents, and the five most recently resolved ones.
func Dashboard(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

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

	active, err := activeIncidents(db.DB)

	if err != nil {
		log.Printf("Failed to retrieve active incidents: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var recent []models.Incident

	if err := incidentScope(db.DB).
		Where("status = ?", models.IncidentResolved).
		Order("resolved_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		log.Printf("Failed to retrieve resolved incidents: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	serviceViews := make([]ServiceView, 0, len(services))
	for _, service := range services {
		serviceViews = append(serviceViews, newServiceView(service))
	}

	ctx.JSON(http.StatusOK, DashboardResponse{
		User: types.UserResponse{
			ID:    currentUser.ID,
			Name:  currentUser.Name,
			Email: currentUser.Email,
		},
		Settings:        newSettingsView(settings),
		Services:        serviceViews,
		ActiveIncidents: newIncidentViews(active),
		RecentIncidents: newIncidentViews(recent),
		Notice:          ctx.Query("notice"),
	})
}
