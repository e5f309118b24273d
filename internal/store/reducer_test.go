package store

import (
	"reflect"
	"testing"

	"github.com/polyglotfm/plx/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:                  1,
		FullName:            "Ada Example",
		Email:               "ada@example.com",
		OnboardingCompleted: true,
		PreferredLanguages:  []string{"es", "fr"},
	}
}

func testPodcast(id int) models.Podcast {
	return models.Podcast{
		ID:         id,
		Title:      "Test Podcast",
		RSSFeedURL: "https://example.com/feed.xml",
	}
}

func testTranslation(id, podcastID int, status models.TranslationStatus) models.Translation {
	return models.Translation{
		ID:             id,
		PodcastID:      podcastID,
		TargetLanguage: "es",
		Status:         status,
		Progress:       40,
	}
}

func TestReduce(t *testing.T) {
	t.Run("Loading And Error Flags", func(t *testing.T) {
		state := models.InitialState()

		state = Reduce(state, SetLoading(true))
		if !state.IsLoading {
			t.Error("expected global loading to be set")
		}

		state = Reduce(state, SetAuthLoading(true))
		if !state.Auth.IsLoading {
			t.Error("expected auth loading to be set")
		}

		state = Reduce(state, SetError("boom"))
		if state.Error != "boom" {
			t.Errorf("expected global error boom, got %q", state.Error)
		}

		state = Reduce(state, SetAuthError("denied"))
		if state.Auth.Error != "denied" {
			t.Errorf("expected auth error denied, got %q", state.Auth.Error)
		}

		state = Reduce(state, SetError(""))
		if state.Error != "" {
			t.Error("expected empty message to clear the global error")
		}
	})

	t.Run("LoginSuccess Replaces Auth Block", func(t *testing.T) {
		state := models.InitialState()
		state = Reduce(state, SetAuthLoading(true))
		state = Reduce(state, SetAuthError("stale"))

		state = Reduce(state, LoginSuccess(testUser()))

		if !state.Auth.IsAuthenticated {
			t.Error("expected authenticated after LOGIN_SUCCESS")
		}
		if state.Auth.User == nil || state.Auth.User.Email != "ada@example.com" {
			t.Error("expected user to be set")
		}
		if state.Auth.IsLoading {
			t.Error("expected auth loading cleared by LOGIN_SUCCESS")
		}
		if state.Auth.Error != "" {
			t.Error("expected auth error cleared by LOGIN_SUCCESS")
		}
	})

	t.Run("Authenticated Iff Login And No Logout Since", func(t *testing.T) {
		state := models.InitialState()
		if state.Auth.IsAuthenticated {
			t.Error("initial state must not be authenticated")
		}

		state = Reduce(state, LoginSuccess(testUser()))
		if !state.Auth.IsAuthenticated {
			t.Error("expected authenticated after login")
		}

		// Unrelated transitions must not flip the flag.
		state = Reduce(state, SetPodcasts([]models.Podcast{testPodcast(1)}))
		state = Reduce(state, SetError("transient"))
		state = Reduce(state, UpdateUser(testUser()))
		if !state.Auth.IsAuthenticated {
			t.Error("expected authenticated to survive unrelated transitions")
		}

		state = Reduce(state, Logout())
		if state.Auth.IsAuthenticated {
			t.Error("expected logout to clear the authenticated flag")
		}
	})

	t.Run("Logout Resets To Initial State", func(t *testing.T) {
		state := models.InitialState()
		state = Reduce(state, LoginSuccess(testUser()))
		state = Reduce(state, SetPodcasts([]models.Podcast{testPodcast(1), testPodcast(2)}))
		state = Reduce(state, SetTranslations([]models.Translation{testTranslation(1, 1, models.StatusProcessing)}))
		state = Reduce(state, SetError("old error"))
		state = Reduce(state, SetLoading(true))

		state = Reduce(state, Logout())

		if !reflect.DeepEqual(state, models.InitialState()) {
			t.Errorf("expected logout to yield the initial state, got %+v", state)
		}
	})

	t.Run("UpdateUser Leaves Authenticated Flag Untouched", func(t *testing.T) {
		state := models.InitialState()

		// No guard: applying UPDATE_USER while signed out keeps the flag false.
		state = Reduce(state, UpdateUser(testUser()))
		if state.Auth.IsAuthenticated {
			t.Error("UPDATE_USER must not authenticate")
		}
		if state.Auth.User == nil {
			t.Error("expected user replaced")
		}

		state = Reduce(state, LoginSuccess(testUser()))
		updated := testUser()
		updated.VoiceSampleURL = "https://s/v.mp3"
		state = Reduce(state, UpdateUser(updated))

		if !state.Auth.IsAuthenticated {
			t.Error("UPDATE_USER must not de-authenticate")
		}
		if state.Auth.User.VoiceSampleURL != "https://s/v.mp3" {
			t.Error("expected user replaced with updated value")
		}
	})

	t.Run("AddPodcast Appends Without Dedup", func(t *testing.T) {
		state := models.InitialState()
		state = Reduce(state, SetPodcasts([]models.Podcast{testPodcast(1), testPodcast(2)}))

		state = Reduce(state, AddPodcast(testPodcast(3)))
		if len(state.Podcasts) != 3 {
			t.Fatalf("expected 3 podcasts, got %d", len(state.Podcasts))
		}
		if state.Podcasts[2].ID != 3 {
			t.Error("expected the new podcast appended last")
		}

		// Same ID appended twice yields two entries; the store does not dedup.
		state = Reduce(state, AddPodcast(testPodcast(3)))
		if len(state.Podcasts) != 4 {
			t.Errorf("expected duplicate append to yield 4 entries, got %d", len(state.Podcasts))
		}
	})

	t.Run("SetPodcasts Replaces Wholesale", func(t *testing.T) {
		state := models.InitialState()
		state = Reduce(state, SetPodcasts([]models.Podcast{testPodcast(1), testPodcast(2)}))
		state = Reduce(state, SetPodcasts([]models.Podcast{testPodcast(9)}))

		if len(state.Podcasts) != 1 || state.Podcasts[0].ID != 9 {
			t.Errorf("expected wholesale replacement, got %+v", state.Podcasts)
		}
	})

	t.Run("UpdateTranslation Replaces Matching ID", func(t *testing.T) {
		state := models.InitialState()
		state = Reduce(state, SetTranslations([]models.Translation{
			testTranslation(1, 1, models.StatusProcessing),
			testTranslation(2, 1, models.StatusInProgress),
		}))

		done := testTranslation(2, 1, models.StatusPublished)
		done.Progress = 100
		state = Reduce(state, UpdateTranslation(done))

		if state.Translations[1].Status != models.StatusPublished {
			t.Error("expected matching translation replaced")
		}
		if state.Translations[0].Status != models.StatusProcessing {
			t.Error("expected other translations untouched")
		}
	})

	t.Run("UpdateTranslation With Unknown ID Is A NoOp", func(t *testing.T) {
		initial := []models.Translation{
			testTranslation(1, 1, models.StatusProcessing),
			testTranslation(2, 1, models.StatusInProgress),
		}
		state := models.InitialState()
		state = Reduce(state, SetTranslations(initial))

		state = Reduce(state, UpdateTranslation(testTranslation(99, 1, models.StatusPublished)))

		if !reflect.DeepEqual(state.Translations, initial) {
			t.Errorf("expected translations unchanged, got %+v", state.Translations)
		}
	})

	t.Run("Reduce Does Not Mutate Its Input", func(t *testing.T) {
		state := models.InitialState()
		state = Reduce(state, SetPodcasts([]models.Podcast{testPodcast(1)}))
		state = Reduce(state, SetTranslations([]models.Translation{testTranslation(1, 1, models.StatusProcessing)}))

		before := state.Clone()

		Reduce(state, AddPodcast(testPodcast(2)))
		Reduce(state, UpdateTranslation(testTranslation(1, 1, models.StatusPublished)))
		Reduce(state, Logout())

		if !reflect.DeepEqual(state, before) {
			t.Error("expected the prior state to be left untouched")
		}
	})

	t.Run("Reduce Is Deterministic", func(t *testing.T) {
		state := models.InitialState()
		action := AddPodcast(testPodcast(7))

		a := Reduce(state, action)
		b := Reduce(state, action)

		if !reflect.DeepEqual(a, b) {
			t.Error("expected identical output for identical input")
		}
	})
}
