package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategoryID(t *testing.T) {
	for _, id := range []string{"wood", "ethanol", "electric"} {
		assert.True(t, IsValidCategoryID(id), id)
	}

	assert.False(t, IsValidCategoryID("gas"))
	assert.False(t, IsValidCategoryID("Wood"))
	assert.False(t, IsValidCategoryID(""))
}

func TestIsValidPageID(t *testing.T) {
	for _, id := range []string{"home", "about", "faq"} {
		assert.True(t, IsValidPageID(id), id)
	}

	assert.False(t, IsValidPageID("contact"))
	assert.False(t, IsValidPageID(""))
}
