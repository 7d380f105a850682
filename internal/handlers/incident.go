package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/beacon-dev/beacon/db"
	"github.com/beacon-dev/beacon/internal/incidents"
	"github.com/beacon-dev/beacon/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IncidentForm struct {
	Title    string `form:"title" json:"title"`
	Status   string `form:"status" json:"status"`
	Impact   string `form:"impact" json:"impact"`
	Services []uint `form:"services" json:"services"`
}

type IncidentUpdateForm struct {
	Status  string `form:"status" json:"status"`
	Message string `form:"message" json:"message"`
}

type choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func incidentStatusChoices() []choice {
	choices := make([]choice, 0, len(models.IncidentStatusChoices))
	for _, status := range models.IncidentStatusChoices {
		choices = append(choices, choice{Value: string(status), Label: status.Label()})
	}
	return choices
}

func impactChoices() []choice {
	choices := make([]choice, 0, len(models.ImpactChoices))
	for _, impact := range models.ImpactChoices {
		choices = append(choices, choice{Value: string(impact), Label: impact.Label()})
	}
	return choices
}

// NewIncidentForm returns the choices and selectable services the incident
// creation form renders with.
func NewIncidentForm(ctx *gin.Context) {
	services, err := models.OrderedServices(db.DB)

	if err != nil {
		log.Printf("Failed to retrieve services: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	serviceViews := make([]ServiceView, 0, len(services))
	for _, service := range services {
		serviceViews = append(serviceViews, newServiceView(service))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status_choices": incidentStatusChoices(),
		"impact_choices": impactChoices(),
		"services":       serviceViews,
	})
}

// CreateIncident validates the form and declares the incident, recording its
// initial update and marking affected services. Validation failures re-render
// the form with field errors; success redirects to the dashboard.
func CreateIncident(ctx *gin.Context) {
	var form IncidentForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"errors": gin.H{"form": "Invalid form submission."},
			"values": form,
		})
		return
	}

	form.Title = strings.TrimSpace(form.Title)

	formErrors := make(map[string]string)

	if form.Title == "" {
		formErrors["title"] = "This field is required."
	} else if len(form.Title) > 200 {
		formErrors["title"] = "Ensure this value has at most 200 characters."
	}

	status := models.IncidentStatus(form.Status)
	if !status.Valid() {
		formErrors["status"] = "Select a valid choice."
	}

	impact := models.Impact(form.Impact)
	if !impact.Valid() {
		formErrors["impact"] = "Select a valid choice."
	}

	if len(formErrors) > 0 {
		ctx.JSON(http.StatusOK, gin.H{"errors": formErrors, "values": form})
		return
	}

	incident, err := incidents.Create(db.DB, incidents.CreateInput{
		Title:      form.Title,
		Status:     status,
		Impact:     impact,
		ServiceIDs: form.Services,
	})

	if err != nil {
		log.Printf("Failed to create incident: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create incident"})
		return
	}

	redirectWithNotice(ctx, "/dashboard", fmt.Sprintf("Incident %q created successfully.", incident.Title))
}

// IncidentDetail shows one incident with its update feed and the form
// choices for posting the next update.
func IncidentDetail(ctx *gin.Context) {
	incident, ok := findIncident(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"incident":       newIncidentView(incident),
		"status_choices": incidentStatusChoices(),
	})
}

// PostIncidentUpdate appends an operator update to the incident, moving its
// status and applying resolve side effects, then redirects back to the
// detail page.
func PostIncidentUpdate(ctx *gin.Context) {
	incident, ok := findIncident(ctx)
	if !ok {
		return
	}

	var form IncidentUpdateForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"errors": gin.H{"form": "Invalid form submission."},
			"values": form,
		})
		return
	}

	form.Message = strings.TrimSpace(form.Message)

	formErrors := make(map[string]string)

	status := models.IncidentStatus(form.Status)
	if !status.Valid() {
		formErrors["status"] = "Select a valid choice."
	}

	if form.Message == "" {
		formErrors["message"] = "This field is required."
	}

	if len(formErrors) > 0 {
		ctx.JSON(http.StatusOK, gin.H{"errors": formErrors, "values": form})
		return
	}

	if _, err := incidents.PostUpdate(db.DB, incident.ID, incidents.UpdateInput{
		Status:  status,
		Message: form.Message,
	}); err != nil {
		log.Printf("Failed to update incident %d: %v", incident.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update incident"})
		return
	}

	redirectWithNotice(ctx, fmt.Sprintf("/dashboard/incident/%d", incident.ID), "Incident updated successfully.")
}

// findIncident resolves the :id route parameter, writing the error response
// itself when the incident cannot be loaded.
func findIncident(ctx *gin.Context) (models.Incident, bool) {
	var incident models.Incident

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
		return incident, false
	}

	if err := incidentScope(db.DB).First(&incident, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
		} else {
			log.Printf("Failed to retrieve incident %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return incident, false
	}

	return incident, true
}

func redirectWithNotice(ctx *gin.Context, path, notice string) {
	query := url.Values{"notice": {notice}}
	ctx.Redirect(http.StatusSeeOther, path+"?"+query.Encode())
}
