package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/polyglotfm/plx/internal/models"
)

// TranslationRepository persists the cached translation jobs.
type TranslationRepository struct {
	db *sql.DB
}

// NewTranslationRepository creates a new TranslationRepository with the given database connection
func NewTranslationRepository(db *sql.DB) *TranslationRepository {
	return &TranslationRepository{db: db}
}

// ReplaceAll overwrites the cached collection with the given translations
// inside one transaction.
func (r *TranslationRepository) ReplaceAll(translations []models.Translation) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM translations"); err != nil {
		return fmt.Errorf("failed to clear translation cache: %w", err)
	}

	query := `
		INSERT INTO translations (id, podcast_id, target_language, status, progress, episode_count, created_date, updated_date, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	for _, translation := range translations {
		_, err := tx.Exec(query,
			translation.ID,
			translation.PodcastID,
			translation.TargetLanguage,
			string(translation.Status),
			translation.Progress,
			translation.EpisodeCount,
			translation.CreatedDate,
			translation.UpdatedDate,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert translation %d: %w", translation.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit translation cache: %w", err)
	}

	return nil
}

// List retrieves all cached translations ordered by podcast then language
func (r *TranslationRepository) List() ([]models.Translation, error) {
	query := `
		SELECT id, podcast_id, target_language, status, progress, episode_count, created_date, updated_date
		FROM translations
		ORDER BY podcast_id, target_language
	`

	return r.scanAll(r.db.Query(query))
}

// ListByPodcast retrieves the cached translations for one podcast
func (r *TranslationRepository) ListByPodcast(podcastID int) ([]models.Translation, error) {
	query := `
		SELECT id, podcast_id, target_language, status, progress, episode_count, created_date, updated_date
		FROM translations
		WHERE podcast_id = ?
		ORDER BY target_language
	`

	return r.scanAll(r.db.Query(query, podcastID))
}

func (r *TranslationRepository) scanAll(rows *sql.Rows, err error) ([]models.Translation, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}
	defer rows.Close()

	translations := []models.Translation{}
	for rows.Next() {
		var translation models.Translation
		var status string
		err := rows.Scan(
			&translation.ID,
			&translation.PodcastID,
			&translation.TargetLanguage,
			&status,
			&translation.Progress,
			&translation.EpisodeCount,
			&translation.CreatedDate,
			&translation.UpdatedDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan translation: %w", err)
		}
		translation.Status = models.TranslationStatus(status)
		translations = append(translations, translation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate translations: %w", err)
	}

	return translations, nil
}

// Clear removes all cached translations
func (r *TranslationRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM translations"); err != nil {
		return fmt.Errorf("failed to clear translation cache: %w", err)
	}
	return nil
}
