package models

import "time"

// SiteSettingsDocID is the fixed id of the one settings row.
const SiteSettingsDocID = "general"

// SiteSettings is the singleton configuration document (brand name, contact
// block, social links). Same merge-on-write pattern as the page documents.
type SiteSettings struct {
	ID        string    `json:"-" gorm:"primaryKey"`
	Data      JSONMap   `json:"data" gorm:"type:jsonb;not null;default:'{}'"`
	UpdatedAt time.Time `json:"-" gorm:"autoUpdateTime"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

// Typed shape, used by the seeder.

type ContactInfo struct {
	Address string          `json:"address"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email"`
	Hours   LocalizedString `json:"hours"`
}

type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook,omitempty"`
}

type SiteSettingsData struct {
	BrandName   string      `json:"brandName"`
	Contact     ContactInfo `json:"contact"`
	SocialMedia SocialLinks `json:"socialMedia"`
}
