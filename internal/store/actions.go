package store

import (
	"github.com/polyglotfm/plx/internal/models"
)

// ActionKind enumerates every state transition the store understands.
type ActionKind int

const (
	ActionSetLoading ActionKind = iota
	ActionSetError
	ActionSetAuthLoading
	ActionSetAuthError
	ActionLoginSuccess
	ActionLogout
	ActionUpdateUser
	ActionSetPodcasts
	ActionAddPodcast
	ActionSetTranslations
	ActionUpdateTranslation
)

// String returns the transition name for logging.
func (k ActionKind) String() string {
	switch k {
	case ActionSetLoading:
		return "SET_LOADING"
	case ActionSetError:
		return "SET_ERROR"
	case ActionSetAuthLoading:
		return "SET_AUTH_LOADING"
	case ActionSetAuthError:
		return "SET_AUTH_ERROR"
	case ActionLoginSuccess:
		return "LOGIN_SUCCESS"
	case ActionLogout:
		return "LOGOUT"
	case ActionUpdateUser:
		return "UPDATE_USER"
	case ActionSetPodcasts:
		return "SET_PODCASTS"
	case ActionAddPodcast:
		return "ADD_PODCAST"
	case ActionSetTranslations:
		return "SET_TRANSLATIONS"
	case ActionUpdateTranslation:
		return "UPDATE_TRANSLATION"
	default:
		return "UNKNOWN"
	}
}

// Action is a tagged variant carrying one transition and its payload.
// Values are built through the constructors below, never by hand, so the
// reducer can switch exhaustively on Kind.
type Action struct {
	Kind ActionKind

	flag         bool
	message      string
	user         *models.User
	podcast      models.Podcast
	podcasts     []models.Podcast
	translation  models.Translation
	translations []models.Translation
}

// SetLoading toggles the global loading flag.
func SetLoading(on bool) Action {
	return Action{Kind: ActionSetLoading, flag: on}
}

// SetError sets the global error slot; an empty message clears it.
func SetError(message string) Action {
	return Action{Kind: ActionSetError, message: message}
}

// SetAuthLoading toggles the auth loading flag.
func SetAuthLoading(on bool) Action {
	return Action{Kind: ActionSetAuthLoading, flag: on}
}

// SetAuthError sets the auth error slot; an empty message clears it.
func SetAuthError(message string) Action {
	return Action{Kind: ActionSetAuthError, message: message}
}

// LoginSuccess replaces the entire auth block with an authenticated user.
func LoginSuccess(user *models.User) Action {
	return Action{Kind: ActionLoginSuccess, user: user}
}

// Logout resets the whole state tree to its initial value.
func Logout() Action {
	return Action{Kind: ActionLogout}
}

// UpdateUser replaces the auth user, leaving the authenticated flag untouched.
func UpdateUser(user *models.User) Action {
	return Action{Kind: ActionUpdateUser, user: user}
}

// SetPodcasts replaces the podcast collection wholesale.
func SetPodcasts(podcasts []models.Podcast) Action {
	return Action{Kind: ActionSetPodcasts, podcasts: podcasts}
}

// AddPodcast appends a podcast to the collection. No uniqueness check is
// performed; callers are responsible for avoiding duplicate IDs.
func AddPodcast(podcast models.Podcast) Action {
	return Action{Kind: ActionAddPodcast, podcast: podcast}
}

// SetTranslations replaces the translation collection wholesale.
func SetTranslations(translations []models.Translation) Action {
	return Action{Kind: ActionSetTranslations, translations: translations}
}

// UpdateTranslation replaces the translation with a matching ID. When no entry
// matches, the action is silently dropped.
func UpdateTranslation(translation models.Translation) Action {
	return Action{Kind: ActionUpdateTranslation, translation: translation}
}
