package content_cache

import (
	"sync"
	"time"

	"github.com/atesyeri/somine-cms-backend/models"
)

const TTL = 5 * time.Minute

// ── Category cache ───────────────────────────────────────────────────────────
// The category set is three rows and read on every catalog page; serve it
// from memory and refetch at most every TTL.

type categoryEntry struct {
	data      []models.Category
	fetchedAt time.Time
}

var (
	categoryMu    sync.RWMutex
	categoryCache *categoryEntry
)

func GetCategories() ([]models.Category, bool) {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	if categoryCache != nil && time.Since(categoryCache.fetchedAt) < TTL {
		return categoryCache.data, true
	}
	return nil, false
}

func SetCategories(data []models.Category) {
	categoryMu.Lock()
	defer categoryMu.Unlock()
	categoryCache = &categoryEntry{data: data, fetchedAt: time.Now()}
}

// InvalidateCategories must be called on any category create/update/delete.
func InvalidateCategories() {
	categoryMu.Lock()
	categoryCache = nil
	categoryMu.Unlock()
}

// ── Site settings cache ──────────────────────────────────────────────────────

type settingsEntry struct {
	data      models.JSONMap
	fetchedAt time.Time
}

var (
	settingsMu    sync.RWMutex
	settingsCache *settingsEntry
)

func GetSettings() (models.JSONMap, bool) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if settingsCache != nil && time.Since(settingsCache.fetchedAt) < TTL {
		return settingsCache.data, true
	}
	return nil, false
}

func SetSettings(data models.JSONMap) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settingsCache = &settingsEntry{data: data, fetchedAt: time.Now()}
}

// InvalidateSettings must be called whenever the settings document is
// written.
func InvalidateSettings() {
	settingsMu.Lock()
	settingsCache = nil
	settingsMu.Unlock()
}
