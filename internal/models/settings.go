package models

import (
	"errors"

	"gorm.io/gorm"
)

// SiteSettingsID is the fixed primary key of the singleton settings row.
const SiteSettingsID uint = 1

const DefaultCompanyName = "Your Company"

// SiteSettings is the singleton site-wide configuration record.
type SiteSettings struct {
	gorm.Model

	CompanyName string `gorm:"not null"`
	CompanyURL  string
	LogoURL     string
}

// GetSiteSettings returns the settings row, creating it with defaults on
// first read. The row always carries SiteSettingsID and is never deleted.
func GetSiteSettings(db *gorm.DB) (SiteSettings, error) {
	var settings SiteSettings

	err := db.First(&settings, SiteSettingsID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = SiteSettings{
			Model:       gorm.Model{ID: SiteSettingsID},
			CompanyName: DefaultCompanyName,
		}
		err = db.Create(&settings).Error
	}

	return settings, err
}

// SaveSiteSettings persists settings, forcing the singleton primary key so a
// second row can never appear.
func SaveSiteSettings(db *gorm.DB, settings *SiteSettings) error {
	settings.ID = SiteSettingsID
	return db.Save(settings).Error
}
