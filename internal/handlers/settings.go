package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/beacon-dev/beacon/db"
	"github.com/beacon-dev/beacon/internal/models"
	"github.com/gin-gonic/gin"
)

type SettingsForm struct {
	CompanyName string `form:"company_name" json:"company_name"`
	CompanyURL  string `form:"company_url" json:"company_url"`
	LogoURL     string `form:"logo_url" json:"logo_url"`
}

// GetSettings returns the singleton site settings for the dashboard form.
func GetSettings(ctx *gin.Context) {
	settings, err := models.GetSiteSettings(db.DB)

	if err != nil {
		log.Printf("Failed to load site settings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"settings": newSettingsView(settings)})
}

// UpdateSettings edits the singleton site settings row.
func UpdateSettings(ctx *gin.Context) {
	var form SettingsForm

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"errors": gin.H{"form": "Invalid form submission."},
			"values": form,
		})
		return
	}

	form.CompanyName = strings.TrimSpace(form.CompanyName)

	formErrors := make(map[string]string)

	if form.CompanyName == "" {
		formErrors["company_name"] = "This field is required."
	} else if len(form.CompanyName) > 100 {
		formErrors["company_name"] = "Ensure this value has at most 100 characters."
	}

	if form.CompanyURL != "" {
		if _, err := url.ParseRequestURI(form.CompanyURL); err != nil {
			formErrors["company_url"] = "Enter a valid URL."
		}
	}

	if len(formErrors) > 0 {
		ctx.JSON(http.StatusOK, gin.H{"errors": formErrors, "values": form})
		return
	}

	settings, err := models.GetSiteSettings(db.DB)

	if err != nil {
		log.Printf("Failed to load site settings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	settings.CompanyName = form.CompanyName
	settings.CompanyURL = form.CompanyURL
	settings.LogoURL = form.LogoURL

	if err := models.SaveSiteSettings(db.DB, &settings); err != nil {
		log.Printf("Failed to save site settings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	redirectWithNotice(ctx, "/dashboard", "Settings updated.")
}
