package config

import (
	"context"
	"log"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCVerifier verifies Google ID tokens sent by the admin login form.
// Nil when GOOGLE_CLIENT_ID is not configured; password login still works.
var OIDCVerifier *oidc.IDTokenVerifier

func InitGoogleOAuth() {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		log.Println("⚠️  GOOGLE_CLIENT_ID not set, Google admin login disabled")
		return
	}

	provider, err := oidc.NewProvider(context.Background(), "https://accounts.google.com")
	if err != nil {
		log.Fatalf("❌ Failed to create OIDC provider: %v", err)
	}

	OIDCVerifier = provider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	log.Println("✅ Google OAuth initialized successfully")
}
