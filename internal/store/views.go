package store

import (
	"github.com/polyglotfm/plx/internal/models"
)

// AuthView is a narrow read view over the auth slice of a Store. It derives
// nothing and caches nothing.
type AuthView struct {
	store *Store
}

// NewAuthView creates an AuthView over the given store.
func NewAuthView(s *Store) AuthView {
	return AuthView{store: s}
}

// User returns the current auth user, nil when signed out.
func (v AuthView) User() *models.User {
	return v.store.State().Auth.User
}

// IsAuthenticated reports whether a login or registration succeeded and no
// logout has happened since.
func (v AuthView) IsAuthenticated() bool {
	return v.store.State().Auth.IsAuthenticated
}

// IsLoading reports whether an auth flow is in flight.
func (v AuthView) IsLoading() bool {
	return v.store.State().Auth.IsLoading
}

// Error returns the auth error slot, empty when clear.
func (v AuthView) Error() string {
	return v.store.State().Auth.Error
}

// LibraryView is a narrow read view over the podcast and translation slices.
type LibraryView struct {
	store *Store
}

// NewLibraryView creates a LibraryView over the given store.
func NewLibraryView(s *Store) LibraryView {
	return LibraryView{store: s}
}

// Podcasts returns the current podcast collection.
func (v LibraryView) Podcasts() []models.Podcast {
	return v.store.State().Podcasts
}

// Translations returns the current translation collection.
func (v LibraryView) Translations() []models.Translation {
	return v.store.State().Translations
}

// TranslationsFor returns the translations belonging to one podcast.
func (v LibraryView) TranslationsFor(podcastID int) []models.Translation {
	var out []models.Translation
	for _, t := range v.store.State().Translations {
		if t.PodcastID == podcastID {
			out = append(out, t)
		}
	}
	return out
}

// IsLoading reports whether a library flow is in flight.
func (v LibraryView) IsLoading() bool {
	return v.store.State().IsLoading
}

// Error returns the global error slot, empty when clear.
func (v LibraryView) Error() string {
	return v.store.State().Error
}

// LibraryStats summarizes the dashboard collections.
type LibraryStats struct {
	Podcasts     int
	Translations int
	Published    int
	InFlight     int
	Errored      int
}

// Stats counts podcasts and translations by status for the dashboard summary.
func (v LibraryView) Stats() LibraryStats {
	state := v.store.State()

	stats := LibraryStats{
		Podcasts:     len(state.Podcasts),
		Translations: len(state.Translations),
	}

	for _, t := range state.Translations {
		switch t.Status {
		case models.StatusPublished:
			stats.Published++
		case models.StatusProcessing, models.StatusInProgress:
			stats.InFlight++
		case models.StatusError:
			stats.Errored++
		}
	}

	return stats
}
