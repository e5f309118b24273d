package repositories

import (
	"database/sql"
	"fmt"

	"github.com/polyglotfm/plx/internal/models"
)

// Cache combines both repositories into the write-through adapter the flow
// engine expects. Library fetches are mirrored here so the dashboard can fall
// back to the last known collections when the backend is unreachable.
type Cache struct {
	Podcasts     *PodcastRepository
	Translations *TranslationRepository
}

// NewCache creates a Cache backed by the given database connection
func NewCache(db *sql.DB) *Cache {
	return &Cache{
		Podcasts:     NewPodcastRepository(db),
		Translations: NewTranslationRepository(db),
	}
}

// SavePodcasts mirrors a fetched podcast collection into the cache
func (c *Cache) SavePodcasts(podcasts []models.Podcast) error {
	return c.Podcasts.ReplaceAll(podcasts)
}

// SaveTranslations mirrors a fetched translation collection into the cache
func (c *Cache) SaveTranslations(translations []models.Translation) error {
	return c.Translations.ReplaceAll(translations)
}

// Clear drops both cached collections. Called on logout so the next account
// never sees the previous account's library.
func (c *Cache) Clear() error {
	if err := c.Translations.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	if err := c.Podcasts.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
