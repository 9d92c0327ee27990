package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicID(t *testing.T) {
	assert.Equal(t,
		"somine/products/x/a",
		ExtractPublicID("https://res.cloudinary.com/demo/image/upload/v1234567890/somine/products/x/a.jpg"))

	// No version segment
	assert.Equal(t,
		"somine/projects/y/b",
		ExtractPublicID("https://res.cloudinary.com/demo/image/upload/somine/projects/y/b.png"))

	assert.Equal(t, "", ExtractPublicID(""))
	assert.Equal(t, "", ExtractPublicID("https://example.com/not-cloudinary.jpg"))
}
