package models

// TranslationStatus enumerates the lifecycle states reported by the backend
// for a translation job.
type TranslationStatus string

const (
	StatusProcessing TranslationStatus = "processing"
	StatusInProgress TranslationStatus = "in_progress"
	StatusPublished  TranslationStatus = "published"
	StatusError      TranslationStatus = "error"
)

// NotificationPreferences holds per-user notification switches.
type NotificationPreferences struct {
	EmailAlerts bool `json:"email_alerts"`
}

// User represents the authenticated account as returned by /user/me.
// The store replaces it wholesale; it is never partially mutated in place.
type User struct {
	ID                      int                     `json:"id"`
	FullName                string                  `json:"full_name"`
	Email                   string                  `json:"email"`
	OnboardingCompleted     bool                    `json:"onboarding_completed"`
	PreferredLanguages      []string                `json:"preferred_languages"`
	VoiceSampleURL          string                  `json:"voice_sample_url,omitempty"`
	NotificationPreferences NotificationPreferences `json:"notification_preferences"`
}

// Podcast represents a source podcast registered for translation.
type Podcast struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	OriginalLanguage string `json:"original_language"`
	CoverImage       string `json:"cover_image"`
	EpisodeCount     int    `json:"episode_count"`
	RSSFeedURL       string `json:"rss_feed_url"`
	CreatedDate      string `json:"created_date"`
	UpdatedDate      string `json:"updated_date"`
}

// Translation represents one target-language translation job for a podcast.
type Translation struct {
	ID             int               `json:"id"`
	PodcastID      int               `json:"podcast_id"`
	TargetLanguage string            `json:"target_language"`
	Status         TranslationStatus `json:"status"`
	Progress       int               `json:"progress"`
	EpisodeCount   int               `json:"episode_count"`
	CreatedDate    string            `json:"created_date"`
	UpdatedDate    string            `json:"updated_date"`
}

// EpisodeTranslation holds the translated text and audio for one language.
type EpisodeTranslation struct {
	Text     string `json:"text"`
	AudioURL string `json:"audio_url,omitempty"`
}

// Episode represents a single podcast episode. The store carries a placeholder
// episode collection that no current flow populates.
type Episode struct {
	ID            int                           `json:"id"`
	PodcastID     int                           `json:"podcast_id"`
	Title         string                        `json:"title"`
	Description   string                        `json:"description"`
	AudioURL      string                        `json:"audio_url"`
	Transcript    string                        `json:"transcript,omitempty"`
	Translations  map[string]EpisodeTranslation `json:"translations,omitempty"`
	PublishedDate string                        `json:"published_date"`
}

// AuthState is the authentication slice of the application state.
//
// Invariant: IsAuthenticated is true iff User was set by a successful
// login/registration and no logout has happened since.
type AuthState struct {
	User            *User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// AppState is the aggregate client state tree. It is only ever mutated by the
// store applying a named action; consumers receive snapshots.
type AppState struct {
	Auth         AuthState
	Podcasts     []Podcast
	Translations []Translation
	Episodes     []Episode
	IsLoading    bool
	Error        string
}

// InitialState returns the documented empty state: no user, empty collections,
// no loading flags, no errors.
func InitialState() AppState {
	return AppState{
		Podcasts:     []Podcast{},
		Translations: []Translation{},
		Episodes:     []Episode{},
	}
}

// Clone returns a snapshot of the state safe to hand to consumers: collection
// slices and the user are copied so later dispatches cannot alias into it.
func (s AppState) Clone() AppState {
	out := s

	if s.Auth.User != nil {
		user := *s.Auth.User
		user.PreferredLanguages = append([]string(nil), s.Auth.User.PreferredLanguages...)
		out.Auth.User = &user
	}

	out.Podcasts = append([]Podcast{}, s.Podcasts...)
	out.Translations = append([]Translation{}, s.Translations...)
	out.Episodes = append([]Episode{}, s.Episodes...)

	return out
}
