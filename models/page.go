package models

import "time"

// ValidPageIDs lists the singleton page documents the site knows about.
var ValidPageIDs = []string{"home", "about", "faq"}

// IsValidPageID reports whether pageId addresses a known singleton page.
func IsValidPageID(id string) bool {
	for _, valid := range ValidPageIDs {
		if id == valid {
			return true
		}
	}
	return false
}

// Page is a singleton content document ("home", "about", "faq"). The body is
// schemaless JSONB: the admin panel writes partial objects which are merged
// over the stored data, so the shape can evolve without migrations.
type Page struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Data      JSONMap   `json:"data" gorm:"type:jsonb;not null;default:'{}'"`
	UpdatedAt time.Time `json:"-" gorm:"autoUpdateTime"`
}

func (Page) TableName() string {
	return "pages"
}

// ═══════════════════════════════════════════════════════════
// Typed page shapes
// ═══════════════════════════════════════════════════════════
// Runtime writes stay schemaless; these structs exist for the seeder and for
// the home-content resolver, which needs the selected-id lists out of the
// home document.

type SectionCopy struct {
	Title    LocalizedString `json:"title"`
	Subtitle LocalizedString `json:"subtitle"`
}

type FeatureItem struct {
	Title       LocalizedString `json:"title"`
	Description LocalizedString `json:"description"`
	Icon        string          `json:"icon,omitempty"`
}

type ProcessStep struct {
	Title       LocalizedString `json:"title"`
	Description LocalizedString `json:"description"`
	Icon        string          `json:"icon"`
}

type HomeStats struct {
	YearsLabel        LocalizedString `json:"yearsLabel"`
	YearsValue        int             `json:"yearsValue"`
	ProjectsLabel     LocalizedString `json:"projectsLabel"`
	ProjectsValue     int             `json:"projectsValue"`
	SatisfactionLabel LocalizedString `json:"satisfactionLabel"`
	SatisfactionValue int             `json:"satisfactionValue"`
	CitiesLabel       LocalizedString `json:"citiesLabel"`
	CitiesValue       int             `json:"citiesValue"`
}

type HomeAbout struct {
	Title       LocalizedString `json:"title"`
	Description LocalizedString `json:"description"`
	Philosophy  LocalizedString `json:"philosophy"`
	SinceDate   LocalizedString `json:"sinceDate"`
	Tagline     LocalizedString `json:"tagline"`
}

type FeaturedProductsSection struct {
	Title              LocalizedString `json:"title"`
	Subtitle           LocalizedString `json:"subtitle"`
	SelectedProductIDs []string        `json:"selectedProductIds"`
}

type HomePageData struct {
	Hero             SectionCopy              `json:"hero"`
	Stats            HomeStats                `json:"stats"`
	Features         []FeatureItem            `json:"features"`
	SelectedProjects []string                 `json:"selectedProjects,omitempty"`
	FeaturedProducts *FeaturedProductsSection `json:"featuredProducts,omitempty"`
	Process          *struct {
		Steps []ProcessStep `json:"steps"`
	} `json:"process,omitempty"`
	Categories *SectionCopy `json:"categories,omitempty"`
	About      HomeAbout    `json:"about"`
}

type HistoryEntry struct {
	Date        string          `json:"date"`
	Description LocalizedString `json:"description"`
}

type ValueItem struct {
	Icon        string          `json:"icon"`
	Title       LocalizedString `json:"title"`
	Description LocalizedString `json:"description"`
}

type AboutPageData struct {
	History           []HistoryEntry      `json:"history"`
	Image             string              `json:"image"`
	Features          []FeatureItem       `json:"features"`
	Vision            LocalizedString     `json:"vision"`
	Mission           LocalizedStringList `json:"mission"`
	Values            []ValueItem         `json:"values"`
	ValuesDescription LocalizedString     `json:"valuesDescription"`
}

type FaqItem struct {
	Question LocalizedString `json:"question"`
	Answer   LocalizedString `json:"answer"`
}

type FaqPageData struct {
	Faqs []FaqItem `json:"faqs"`
}
