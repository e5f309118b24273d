package flows

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/polyglotfm/plx/internal/api"
	"github.com/polyglotfm/plx/internal/models"
	"github.com/polyglotfm/plx/internal/store"
	tu "github.com/polyglotfm/plx/internal/testing"
)

func auditEngine(t *testing.T, handler http.Handler, podcasts []models.Podcast) *Engine {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s := store.New(nil)
	s.Dispatch(store.SetPodcasts(podcasts))

	return NewEngine(EngineOpts{
		API:    api.NewClient(server.URL, nil, nil),
		Tokens: tu.TempTokenStore(t),
		Store:  s,
	})
}

func TestAuditFeeds(t *testing.T) {
	t.Run("Tallies Verdicts", func(t *testing.T) {
		var calls atomic.Int32
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)

			var payload map[string]string
			json.NewDecoder(r.Body).Decode(&payload)
			url := payload["url"]

			switch {
			case strings.Contains(url, "boom"):
				w.WriteHeader(http.StatusInternalServerError)
			case strings.Contains(url, "dead"):
				json.NewEncoder(w).Encode(api.FeedValidation{IsValid: false, Error: "feed unreachable"})
			default:
				json.NewEncoder(w).Encode(api.FeedValidation{IsValid: true})
			}
		})

		podcasts := []models.Podcast{
			{ID: 1, Title: "Alive", RSSFeedURL: "https://a/feed.xml"},
			{ID: 2, Title: "Dead", RSSFeedURL: "https://dead.example/feed.xml"},
			{ID: 3, Title: "Flaky", RSSFeedURL: "https://boom.example/feed.xml"},
			{ID: 4, Title: "Also Alive", RSSFeedURL: "https://b/feed.xml"},
		}

		engine := auditEngine(t, handler, podcasts)
		result, err := engine.AuditFeeds(context.Background(), nil, AuditOpts{RateLimit: 1000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Total != 4 {
			t.Errorf("expected total 4, got %d", result.Total)
		}
		if result.Healthy != 2 || result.Unhealthy != 1 || result.Failed != 1 {
			t.Errorf("unexpected tally healthy=%d unhealthy=%d failed=%d",
				result.Healthy, result.Unhealthy, result.Failed)
		}
		if len(result.Results) != 4 {
			t.Errorf("expected a verdict per podcast, got %d", len(result.Results))
		}
		if got := calls.Load(); got != 4 {
			t.Errorf("expected one validation call per podcast, got %d", got)
		}
	})

	t.Run("Unhealthy Verdict Carries The Backend Detail", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(api.FeedValidation{IsValid: false, Error: "not an RSS document"})
		})

		engine := auditEngine(t, handler, []models.Podcast{
			{ID: 1, Title: "Broken", RSSFeedURL: "https://x/feed.xml"},
		})

		result, err := engine.AuditFeeds(context.Background(), nil, AuditOpts{RateLimit: 1000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Results[0].Detail != "not an RSS document" {
			t.Errorf("expected backend detail, got %q", result.Results[0].Detail)
		}
		if result.Results[0].Err != nil {
			t.Error("an unhealthy verdict is not a failure")
		}
	})

	t.Run("Empty Library Short Circuits", func(t *testing.T) {
		var calls atomic.Int32
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		})

		engine := auditEngine(t, handler, nil)
		result, err := engine.AuditFeeds(context.Background(), nil, AuditOpts{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 0 || calls.Load() != 0 {
			t.Errorf("expected no work for an empty library, total=%d calls=%d", result.Total, calls.Load())
		}
	})

	t.Run("Cancellation Returns Context Error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(api.FeedValidation{IsValid: true})
		})

		podcasts := make([]models.Podcast, 20)
		for i := range podcasts {
			podcasts[i] = models.Podcast{ID: i + 1, Title: "P", RSSFeedURL: "https://x/feed.xml"}
		}

		engine := auditEngine(t, handler, podcasts)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := engine.AuditFeeds(ctx, nil, AuditOpts{RateLimit: 0.5})
		if err == nil {
			t.Fatal("expected context error")
		}
	})

	t.Run("Progress Updates Never Block", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(api.FeedValidation{IsValid: true})
		})

		podcasts := make([]models.Podcast, 10)
		for i := range podcasts {
			podcasts[i] = models.Podcast{ID: i + 1, Title: "P", RSSFeedURL: "https://x/feed.xml"}
		}

		engine := auditEngine(t, handler, podcasts)

		// Unbuffered channel with no reader: every send must be dropped
		// rather than deadlock the audit.
		progress := make(chan ProgressUpdate)
		result, err := engine.AuditFeeds(context.Background(), progress, AuditOpts{RateLimit: 1000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Healthy != 10 {
			t.Errorf("expected all healthy, got %d", result.Healthy)
		}
	})

	t.Run("Progress Updates Are Received", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(api.FeedValidation{IsValid: true})
		})

		engine := auditEngine(t, handler, []models.Podcast{
			{ID: 1, Title: "Solo", RSSFeedURL: "https://x/feed.xml"},
		})

		progress := make(chan ProgressUpdate, 16)
		if _, err := engine.AuditFeeds(context.Background(), progress, AuditOpts{RateLimit: 1000}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		close(progress)

		var phases []Phase
		for update := range progress {
			phases = append(phases, update.Phase)
		}
		if len(phases) == 0 {
			t.Fatal("expected at least one progress update")
		}
		if phases[0] != FetchLibrary {
			t.Errorf("expected the sweep to open with %s, got %s", FetchLibrary, phases[0])
		}
	})
}
