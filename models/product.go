package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a fireplace in the catalog. Price is a free-form display string
// ("₺45.000", "Fiyat için arayınız"), not a numeric amount.
type Product struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name        LocalizedString `json:"name" gorm:"type:jsonb;not null"`
	Description LocalizedString `json:"description" gorm:"type:jsonb;not null;default:'{}'"`
	Price       string          `json:"price" gorm:"not null"`
	Category    string          `json:"category" gorm:"not null;index;check:category IN ('wood','ethanol','electric')"`
	IsFeatured  bool            `json:"isFeatured" gorm:"not null;default:false"`
	Images      StringList      `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime;index:idx_products_created_at,sort:desc"`
	UpdatedAt   time.Time       `json:"-" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name        LocalizedString `json:"name"`
	Description LocalizedString `json:"description"`
	Price       string          `json:"price"`
	Category    string          `json:"category"`
	IsFeatured  bool            `json:"isFeatured"`
	Images      []string        `json:"images"`
}

// UpdateProductRequest carries a partial update; only non-nil fields are
// written.
type UpdateProductRequest struct {
	Name        *LocalizedString `json:"name"`
	Description *LocalizedString `json:"description"`
	Price       *string          `json:"price"`
	Category    *string          `json:"category"`
	IsFeatured  *bool            `json:"isFeatured"`
	Images      *[]string        `json:"images"`
}
