package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a portfolio/reference installation. IsActive hides a project
// from the public site without deleting it.
type Project struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Title       LocalizedString `json:"title" gorm:"type:jsonb;not null"`
	Description LocalizedString `json:"description" gorm:"type:jsonb;not null;default:'{}'"`
	Location    LocalizedString `json:"location" gorm:"type:jsonb;not null;default:'{}'"`
	Image       string          `json:"image" gorm:"type:text;not null"`
	Date        string          `json:"date,omitempty"`
	IsActive    bool            `json:"isActive" gorm:"not null;default:true"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime;index:idx_projects_created_at,sort:desc"`
	UpdatedAt   time.Time       `json:"-" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Project) TableName() string {
	return "projects"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProjectRequest struct {
	Title       LocalizedString `json:"title"`
	Description LocalizedString `json:"description"`
	Location    LocalizedString `json:"location"`
	Image       string          `json:"image"`
	Date        string          `json:"date"`
	IsActive    *bool           `json:"isActive"`
}

type UpdateProjectRequest struct {
	Title       *LocalizedString `json:"title"`
	Description *LocalizedString `json:"description"`
	Location    *LocalizedString `json:"location"`
	Image       *string          `json:"image"`
	Date        *string          `json:"date"`
	IsActive    *bool            `json:"isActive"`
}
