// Package api wraps the podcast-translation backend's REST endpoints with
// bearer-token injection and uniform error translation.
//
// Endpoint shapes follow the backend contract: JSON bodies everywhere except
// the multipart voice-sample upload.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/polyglotfm/plx/internal/auth"
	"github.com/polyglotfm/plx/internal/models"
	"github.com/polyglotfm/plx/internal/shared"
)

// APIError is the single error kind produced for any non-2xx response. It
// carries the HTTP status and a best-effort human-readable message extracted
// from the response body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client translates domain calls into authenticated HTTP requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenStore
}

// NewClient creates a Client for the backend at baseURL, reading bearer
// tokens from the given store. A nil http client falls back to
// [http.DefaultClient].
func NewClient(baseURL string, tokens auth.TokenStore, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
		tokens:     tokens,
	}
}

// doRequest performs one JSON round trip. A stored token is injected as a
// bearer credential; an absent token is not an error, the server decides.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", shared.GenerateID())
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// authorize injects the stored bearer token, when one exists.
func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token, ok := c.tokens.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// normalizeError turns a non-2xx response into an *APIError. The message is
// taken from a structured {message|detail} JSON body when possible, then from
// the raw body text, then from the bare status. It never propagates a parse
// failure.
func normalizeError(resp *http.Response) error {
	message := fmt.Sprintf("HTTP %d", resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err == nil && len(bytes.TrimSpace(body)) > 0 {
		var structured struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		}
		switch {
		case json.Unmarshal(body, &structured) == nil && structured.Message != "":
			message = structured.Message
		case json.Unmarshal(body, &structured) == nil && structured.Detail != "":
			message = structured.Detail
		default:
			message = string(bytes.TrimSpace(body))
		}
	}

	return &APIError{Status: resp.StatusCode, Message: message}
}

// SessionResponse is the body returned by login and signup.
type SessionResponse struct {
	Token string `json:"token"`
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate is a partial user for PUT /user/me. Nil fields are omitted.
type UserUpdate struct {
	FullName                *string                         `json:"full_name,omitempty"`
	PreferredLanguages      *[]string                       `json:"preferred_languages,omitempty"`
	OnboardingCompleted     *bool                           `json:"onboarding_completed,omitempty"`
	VoiceSampleURL          *string                         `json:"voice_sample_url,omitempty"`
	NotificationPreferences *models.NotificationPreferences `json:"notification_preferences,omitempty"`
}

// CreatePodcastRequest is the payload for POST /podcasts.
type CreatePodcastRequest struct {
	RSSFeedURL  string `json:"rss_feed_url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// FeedValidation is the backend's verdict on an RSS feed. An invalid feed is
// a data value, not an error: the call succeeds and IsValid is false.
type FeedValidation struct {
	IsValid     bool   `json:"is_valid"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

// CreateTranslationRequest is the payload for POST /translations.
type CreateTranslationRequest struct {
	PodcastID       int      `json:"podcast_id"`
	TargetLanguages []string `json:"target_languages"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*SessionResponse, error) {
	payload := map[string]string{"email": email, "password": password}

	var session SessionResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Register creates an account and returns its bearer token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error) {
	var session SessionResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/signup", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout invalidates the session server-side. The response body is ignored.
func (c *Client) Logout(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// FetchUser retrieves the authenticated user's profile.
func (c *Client) FetchUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doRequest(ctx, http.MethodGet, "/user/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update and returns the server's full user.
func (c *Client) UpdateUser(ctx context.Context, update UserUpdate) (*models.User, error) {
	var user models.User
	if err := c.doRequest(ctx, http.MethodPut, "/user/me", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchPodcasts retrieves every podcast owned by the user.
func (c *Client) FetchPodcasts(ctx context.Context) ([]models.Podcast, error) {
	var podcasts []models.Podcast
	if err := c.doRequest(ctx, http.MethodGet, "/podcasts", nil, &podcasts); err != nil {
		return nil, err
	}
	return podcasts, nil
}

// CreatePodcast registers a new podcast from its RSS feed.
func (c *Client) CreatePodcast(ctx context.Context, req CreatePodcastRequest) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := c.doRequest(ctx, http.MethodPost, "/podcasts", req, &podcast); err != nil {
		return nil, err
	}
	return &podcast, nil
}

// ValidateRSSFeed asks the backend to validate a feed URL.
func (c *Client) ValidateRSSFeed(ctx context.Context, url string) (*FeedValidation, error) {
	payload := map[string]string{"url": url}

	var validation FeedValidation
	if err := c.doRequest(ctx, http.MethodPost, "/podcasts/validate-rss", payload, &validation); err != nil {
		return nil, err
	}
	return &validation, nil
}

// FetchTranslations retrieves every translation job for the user's podcasts.
func (c *Client) FetchTranslations(ctx context.Context) ([]models.Translation, error) {
	var translations []models.Translation
	if err := c.doRequest(ctx, http.MethodGet, "/translations", nil, &translations); err != nil {
		return nil, err
	}
	return translations, nil
}

// CreateTranslation starts translation jobs for a podcast.
func (c *Client) CreateTranslation(ctx context.Context, req CreateTranslationRequest) (*models.Translation, error) {
	var translation models.Translation
	if err := c.doRequest(ctx, http.MethodPost, "/translations", req, &translation); err != nil {
		return nil, err
	}
	return &translation, nil
}
