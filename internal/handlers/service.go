package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/beacon-dev/beacon/db"
	"github.com/beacon-dev/beacon/internal/incidents"
	"github.com/beacon-dev/beacon/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ServiceForm struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
	Status      string `form:"status" json:"status"`
	SortOrder   int    `form:"order" json:"order"`
}

type ServiceStatusForm struct {
	Status string `form:"status" json:"status"`
}

// UpdateServiceStatus is the manual override: the operator sets a service's
// status directly, independent of any incident.
func UpdateServiceStatus(ctx *gin.Context) {
	service, ok := findService(ctx)
	if !ok {
		return
	}

	var form ServiceStatusForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"errors": gin.H{"form": "Invalid form submission."},
			"values": form,
		})
		return
	}

	status := models.ServiceStatus(form.Status)

	if !status.Valid() {
		ctx.JSON(http.StatusOK, gin.H{
			"errors": gin.H{"status": "Select a valid choice."},
			"values": form,
		})
		return
	}

	if _, err := incidents.SetServiceStatus(db.DB, service.ID, status); err != nil {
		log.Printf("Failed to update status for service %d: %v", service.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}

	redirectWithNotice(ctx, "/dashboard", fmt.Sprintf("Status for %q updated.", service.Name))
}

// CreateService adds a service to the status page.
func CreateService(ctx *gin.Context) {
	var form ServiceForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"errors": gin.H{"form": "Invalid form submission."},
			"values": form,
		})
		return
	}

	form.Name = strings.TrimSpace(form.Name)

	formErrors := make(map[string]string)

	if form.Name == "" {
		formErrors["name"] = "This field is required."
	} else if len(form.Name) > 100 {
		formErrors["name"] = "Ensure this value has at most 100 characters."
	}

	status := models.ServiceOperational
	if form.Status != "" {
		status = models.ServiceStatus(form.Status)
		if !status.Valid() {
			formErrors["status"] = "Select a valid choice."
		}
	}

	if len(formErrors) > 0 {
		ctx.JSON(http.StatusOK, gin.H{"errors": formErrors, "values": form})
		return
	}

	service := models.Service{
		Name:        form.Name,
		Description: form.Description,
		Status:      status,
		SortOrder:   form.SortOrder,
	}

	if err := db.DB.Create(&service).Error; err != nil {
		log.Printf("Failed to create service: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	redirectWithNotice(ctx, "/dashboard", fmt.Sprintf("Service %q created.", service.Name))
}

// UpdateService edits a service's name, description, status, and sort order.
func UpdateService(ctx *gin.Context) {
	service, ok := findService(ctx)
	if !ok {
		return
	}

	var form ServiceForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"errors": gin.H{"form": "Invalid form submission."},
			"values": form,
		})
		return
	}

	form.Name = strings.TrimSpace(form.Name)

	formErrors := make(map[string]string)

	if form.Name == "" {
		formErrors["name"] = "This field is required."
	} else if len(form.Name) > 100 {
		formErrors["name"] = "Ensure this value has at most 100 characters."
	}

	status := service.Status
	if form.Status != "" {
		status = models.ServiceStatus(form.Status)
		if !status.Valid() {
			formErrors["status"] = "Select a valid choice."
		}
	}

	if len(formErrors) > 0 {
		ctx.JSON(http.StatusOK, gin.H{"errors": formErrors, "values": form})
		return
	}

	service.Name = form.Name
	service.Description = form.Description
	service.Status = status
	service.SortOrder = form.SortOrder

	if err := db.DB.Save(&service).Error; err != nil {
		log.Printf("Failed to update service %d: %v", service.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}

	redirectWithNotice(ctx, "/dashboard", fmt.Sprintf("Service %q updated.", service.Name))
}

// DeleteService removes a service from the status page.
func DeleteService(ctx *gin.Context) {
	service, ok := findService(ctx)
	if !ok {
		return
	}

	if err := db.DB.Delete(&service).Error; err != nil {
		log.Printf("Failed to delete service %d: %v", service.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}

	redirectWithNotice(ctx, "/dashboard", fmt.Sprintf("Service %q deleted.", service.Name))
}

func findService(ctx *gin.Context) (models.Service, bool) {
	var service models.Service

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return service, false
	}

	if err := db.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		} else {
			log.Printf("Failed to retrieve service %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return service, false
	}

	return service, true
}
