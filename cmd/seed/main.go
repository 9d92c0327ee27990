package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
	"github.com/atesyeri/somine-cms-backend/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates the first admin account and the default content documents.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ŞÖMİNE CMS - Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	config.Migrate()
	log.Println("✓ Connected to database")

	email, password, name := getAdminCredentials()

	var existingAdmin models.Admin
	if err := config.Gorm.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	authService := services.GetAdminAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	admin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Status:       "active",
	}

	if err := config.Gorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("✓ Admin created: %s", admin.Email)

	seedCategories()
	seedPages()
	seedSettings()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding Complete!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Admin: %s (%s)\n", admin.Name, admin.Email)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/admin/login with email and password")
	fmt.Println()
}

// seedCategories inserts the fixed category set if missing. Existing rows
// are left untouched so reruns are safe.
func seedCategories() {
	categories := []models.Category{
		{
			ID:          "wood",
			Title:       models.LocalizedString{Tr: "Odun Şömineleri", En: "Wood Fireplaces"},
			Description: models.LocalizedString{Tr: "Geleneksel odun yakıtlı şömineler.", En: "Traditional wood burning fireplaces."},
		},
		{
			ID:          "ethanol",
			Title:       models.LocalizedString{Tr: "Etanol Şömineleri", En: "Ethanol Fireplaces"},
			Description: models.LocalizedString{Tr: "Bacasız, bioetanol yakıtlı şömineler.", En: "Flueless bio ethanol fireplaces."},
		},
		{
			ID:          "electric",
			Title:       models.LocalizedString{Tr: "Elektrikli Şömineler", En: "Electric Fireplaces"},
			Description: models.LocalizedString{Tr: "Tesisat gerektirmeyen elektrikli şömineler.", En: "Plug and play electric fireplaces."},
		},
	}

	for _, category := range categories {
		var existing models.Category
		err := config.Gorm.First(&existing, "id = ?", category.ID).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Database error: %v", err)
		}
		if err := config.Gorm.Create(&category).Error; err != nil {
			log.Fatalf("Failed to seed category %s: %v", category.ID, err)
		}
		log.Printf("✓ Category seeded: %s", category.ID)
	}
}

// seedPages writes empty skeleton documents for each known page so the admin
// panel has something to merge into.
func seedPages() {
	defaults := map[string]interface{}{
		"home": models.HomePageData{
			Hero: models.SectionCopy{
				Title:    models.LocalizedString{Tr: "Ateşin Sanatı", En: "The Art of Fire"},
				Subtitle: models.LocalizedString{Tr: "El yapımı şömineler", En: "Handcrafted fireplaces"},
			},
			Stats: models.HomeStats{
				YearsLabel:        models.LocalizedString{Tr: "Yıllık Tecrübe", En: "Years of Experience"},
				ProjectsLabel:     models.LocalizedString{Tr: "Tamamlanan Proje", En: "Completed Projects"},
				SatisfactionLabel: models.LocalizedString{Tr: "Müşteri Memnuniyeti", En: "Customer Satisfaction"},
				CitiesLabel:       models.LocalizedString{Tr: "Şehir", En: "Cities"},
			},
			Features: []models.FeatureItem{},
			About: models.HomeAbout{
				Title: models.LocalizedString{Tr: "Hakkımızda", En: "About Us"},
			},
		},
		"about": models.AboutPageData{
			History:  []models.HistoryEntry{},
			Features: []models.FeatureItem{},
			Values:   []models.ValueItem{},
		},
		"faq": models.FaqPageData{
			Faqs: []models.FaqItem{},
		},
	}

	for _, pageID := range models.ValidPageIDs {
		var existing models.Page
		err := config.Gorm.First(&existing, "id = ?", pageID).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Database error: %v", err)
		}

		var data models.JSONMap
		if err := models.ToJSONMap(defaults[pageID], &data); err != nil {
			log.Fatalf("Failed to encode default page %s: %v", pageID, err)
		}

		if err := config.Gorm.Create(&models.Page{ID: pageID, Data: data}).Error; err != nil {
			log.Fatalf("Failed to seed page %s: %v", pageID, err)
		}
		log.Printf("✓ Page seeded: %s", pageID)
	}
}

func seedSettings() {
	var existing models.SiteSettings
	err := config.Gorm.First(&existing, "id = ?", models.SiteSettingsDocID).Error
	if err == nil {
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	defaults := models.SiteSettingsData{
		BrandName: "Şömine Atölyesi",
		Contact: models.ContactInfo{
			Phone: "+90 212 000 00 00",
			Email: "info@example.com",
			Hours: models.LocalizedString{
				Tr: "Hafta içi 09:00 - 18:00",
				En: "Weekdays 9am - 6pm",
			},
		},
		SocialMedia: models.SocialLinks{},
	}

	var data models.JSONMap
	if err := models.ToJSONMap(defaults, &data); err != nil {
		log.Fatalf("Failed to encode default settings: %v", err)
	}

	if err := config.Gorm.Create(&models.SiteSettings{ID: models.SiteSettingsDocID, Data: data}).Error; err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}
	log.Println("✓ Site settings seeded")
}

// getAdminCredentials prompts user for admin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Admin Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)

		authService := services.GetAdminAuthService()
		if !authService.ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name
}
