package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/polyglotfm/plx/internal/models"
)

// PodcastRepository persists the cached podcast collection.
type PodcastRepository struct {
	db *sql.DB
}

// NewPodcastRepository creates a new PodcastRepository with the given database connection
func NewPodcastRepository(db *sql.DB) *PodcastRepository {
	return &PodcastRepository{db: db}
}

// ReplaceAll overwrites the cached collection with the given podcasts.
// The swap happens inside one transaction so readers never observe a
// half-written cache.
func (r *PodcastRepository) ReplaceAll(podcasts []models.Podcast) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM podcasts"); err != nil {
		return fmt.Errorf("failed to clear podcast cache: %w", err)
	}

	query := `
		INSERT INTO podcasts (id, title, description, original_language, cover_image, episode_count, rss_feed_url, created_date, updated_date, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	for _, podcast := range podcasts {
		_, err := tx.Exec(query,
			podcast.ID,
			podcast.Title,
			podcast.Description,
			podcast.OriginalLanguage,
			podcast.CoverImage,
			podcast.EpisodeCount,
			podcast.RSSFeedURL,
			podcast.CreatedDate,
			podcast.UpdatedDate,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert podcast %d: %w", podcast.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit podcast cache: %w", err)
	}

	return nil
}

// Get retrieves a cached podcast by ID
func (r *PodcastRepository) Get(id int) (*models.Podcast, error) {
	query := `
		SELECT id, title, description, original_language, cover_image, episode_count, rss_feed_url, created_date, updated_date
		FROM podcasts
		WHERE id = ?
	`

	var podcast models.Podcast
	err := r.db.QueryRow(query, id).Scan(
		&podcast.ID,
		&podcast.Title,
		&podcast.Description,
		&podcast.OriginalLanguage,
		&podcast.CoverImage,
		&podcast.EpisodeCount,
		&podcast.RSSFeedURL,
		&podcast.CreatedDate,
		&podcast.UpdatedDate,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("podcast not cached: %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get podcast: %w", err)
	}

	return &podcast, nil
}

// List retrieves all cached podcasts ordered by title
func (r *PodcastRepository) List() ([]models.Podcast, error) {
	query := `
		SELECT id, title, description, original_language, cover_image, episode_count, rss_feed_url, created_date, updated_date
		FROM podcasts
		ORDER BY title
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list podcasts: %w", err)
	}
	defer rows.Close()

	podcasts := []models.Podcast{}
	for rows.Next() {
		var podcast models.Podcast
		err := rows.Scan(
			&podcast.ID,
			&podcast.Title,
			&podcast.Description,
			&podcast.OriginalLanguage,
			&podcast.CoverImage,
			&podcast.EpisodeCount,
			&podcast.RSSFeedURL,
			&podcast.CreatedDate,
			&podcast.UpdatedDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan podcast: %w", err)
		}
		podcasts = append(podcasts, podcast)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate podcasts: %w", err)
	}

	return podcasts, nil
}

// FetchedAt returns when the podcast cache was last written. Returns the zero
// time when the cache is empty.
func (r *PodcastRepository) FetchedAt() (time.Time, error) {
	var fetched sql.NullTime
	err := r.db.QueryRow("SELECT MAX(fetched_at) FROM podcasts").Scan(&fetched)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read cache age: %w", err)
	}
	if !fetched.Valid {
		return time.Time{}, nil
	}
	return fetched.Time, nil
}

// Clear removes all cached podcasts
func (r *PodcastRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM podcasts"); err != nil {
		return fmt.Errorf("failed to clear podcast cache: %w", err)
	}
	return nil
}
