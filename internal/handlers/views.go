package handlers

import (
	"time"

	"github.com/beacon-dev/beacon/internal/models"
	"github.com/beacon-dev/beacon/internal/timeline"
)

// View models returned to the status page and dashboard frontends.

type SettingsView struct {
	CompanyName string `json:"company_name"`
	CompanyURL  string `json:"company_url"`
	LogoURL     string `json:"logo_url"`
}

type ServiceView struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ServiceStatus `json:"status"`
	StatusLabel string               `json:"status_label"`
	SortOrder   int                  `json:"order"`
}

type ServiceHistoryView struct {
	ServiceView
	History []timeline.Bucket `json:"history"`
}

type IncidentUpdateView struct {
	ID          uint                  `json:"id"`
	Status      models.IncidentStatus `json:"status"`
	StatusLabel string                `json:"status_label"`
	Message     string                `json:"message"`
	CreatedAt   time.Time             `json:"created_at"`
}

type IncidentView struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Status      models.IncidentStatus `json:"status"`
	StatusLabel string                `json:"status_label"`
	Impact      models.Impact         `json:"impact"`
	ImpactLabel string                `json:"impact_label"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	ResolvedAt  *time.Time            `json:"resolved_at"`
	Services    []ServiceView         `json:"services"`
	Updates     []IncidentUpdateView  `json:"updates"`
}

func newSettingsView(settings models.SiteSettings) SettingsView {
	return SettingsView{
		CompanyName: settings.CompanyName,
		CompanyURL:  settings.CompanyURL,
		LogoURL:     settings.LogoURL,
	}
}

func newServiceView(service models.Service) ServiceView {
	return ServiceView{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Status:      service.Status,
		StatusLabel: service.Status.Label(),
		SortOrder:   service.SortOrder,
	}
}

func newIncidentView(incident models.Incident) IncidentView {
	view := IncidentView{
		ID:          incident.ID,
		Title:       incident.Title,
		Status:      incident.Status,
		StatusLabel: incident.Status.Label(),
		Impact:      incident.Impact,
		ImpactLabel: incident.Impact.Label(),
		CreatedAt:   incident.CreatedAt,
		UpdatedAt:   incident.UpdatedAt,
		ResolvedAt:  incident.ResolvedAt,
	}

	for _, service := range incident.Services {
		view.Services = append(view.Services, newServiceView(service))
	}

	for _, update := range incident.Updates {
		view.Updates = append(view.Updates, IncidentUpdateView{
			ID:          update.ID,
			Status:      update.Status,
			StatusLabel: update.Status.Label(),
			Message:     update.Message,
			CreatedAt:   update.CreatedAt,
		})
	}

	return view
}

func newIncidentViews(incidents []models.Incident) []IncidentView {
	views := make([]IncidentView, 0, len(incidents))
	for _, incident := range incidents {
		views = append(views, newIncidentView(incident))
	}
	return views
}
