package content_cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atesyeri/somine-cms-backend/models"
)

func TestCategoryCacheRoundtrip(t *testing.T) {
	InvalidateCategories()

	_, ok := GetCategories()
	assert.False(t, ok)

	SetCategories([]models.Category{{ID: "wood"}, {ID: "ethanol"}})

	cached, ok := GetCategories()
	require.True(t, ok)
	assert.Len(t, cached, 2)
	assert.Equal(t, "wood", cached[0].ID)

	InvalidateCategories()
	_, ok = GetCategories()
	assert.False(t, ok)
}

func TestSettingsCacheRoundtrip(t *testing.T) {
	InvalidateSettings()

	_, ok := GetSettings()
	assert.False(t, ok)

	SetSettings(models.JSONMap{"brandName": "Şömine Atölyesi"})

	cached, ok := GetSettings()
	require.True(t, ok)
	assert.Equal(t, "Şömine Atölyesi", cached["brandName"])

	InvalidateSettings()
	_, ok = GetSettings()
	assert.False(t, ok)
}
