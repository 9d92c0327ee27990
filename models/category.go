package models

import "time"

// ValidCategoryIDs is the closed set of catalog categories. The id doubles
// as the classifier on products; it is chosen by the admin, never generated.
var ValidCategoryIDs = []string{"wood", "ethanol", "electric"}

// IsValidCategoryID reports whether id is one of the three fixed categories.
func IsValidCategoryID(id string) bool {
	for _, valid := range ValidCategoryIDs {
		if id == valid {
			return true
		}
	}
	return false
}

// Category is one of the three fixed fireplace types shown on the site.
type Category struct {
	ID          string          `json:"id" gorm:"primaryKey"` // wood | ethanol | electric
	Title       LocalizedString `json:"title" gorm:"type:jsonb;not null"`
	Description LocalizedString `json:"description" gorm:"type:jsonb;not null;default:'{}'"`
	Image       string          `json:"image" gorm:"type:text"`
	CreatedAt   time.Time       `json:"-" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"-" gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type CategoryRequest struct {
	ID          string          `json:"id"`
	Title       LocalizedString `json:"title"`
	Description LocalizedString `json:"description"`
	Image       string          `json:"image"`
}

type UpdateCategoryRequest struct {
	Title       *LocalizedString `json:"title"`
	Description *LocalizedString `json:"description"`
	Image       *string          `json:"image"`
}
