package store

import (
	"github.com/polyglotfm/plx/internal/models"
)

// Reduce applies one action to the prior state and returns the next state.
// It never reads the clock, storage, or network, and it never mutates its
// input: collections are copied before being changed.
func Reduce(state models.AppState, action Action) models.AppState {
	switch action.Kind {
	case ActionSetLoading:
		state.IsLoading = action.flag
		return state

	case ActionSetError:
		state.Error = action.message
		return state

	case ActionSetAuthLoading:
		state.Auth.IsLoading = action.flag
		return state

	case ActionSetAuthError:
		state.Auth.Error = action.message
		return state

	case ActionLoginSuccess:
		// Whole auth block replaced, never merged.
		state.Auth = models.AuthState{
			User:            action.user,
			IsAuthenticated: true,
			IsLoading:       false,
		}
		return state

	case ActionLogout:
		// Full reset, not just the auth slice.
		return models.InitialState()

	case ActionUpdateUser:
		state.Auth.User = action.user
		return state

	case ActionSetPodcasts:
		state.Podcasts = action.podcasts
		return state

	case ActionAddPodcast:
		podcasts := make([]models.Podcast, 0, len(state.Podcasts)+1)
		podcasts = append(podcasts, state.Podcasts...)
		state.Podcasts = append(podcasts, action.podcast)
		return state

	case ActionSetTranslations:
		state.Translations = action.translations
		return state

	case ActionUpdateTranslation:
		translations := make([]models.Translation, len(state.Translations))
		for i, t := range state.Translations {
			if t.ID == action.translation.ID {
				translations[i] = action.translation
			} else {
				translations[i] = t
			}
		}
		state.Translations = translations
		return state

	default:
		return state
	}
}
