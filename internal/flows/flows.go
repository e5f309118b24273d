// Package flows orchestrates multi-step user intents: each flow sequences
// API calls and store dispatches, mirroring the product's web client.
//
// Flows are the only place that touches both the token store and the API
// client before dispatching. Most flows absorb failures into the state tree's
// error slots rather than returning them; CreatePodcast, CreateTranslation and
// UploadVoiceSample additionally return the failure so the invoking command
// can react locally. Two flows running concurrently are not serialized against
// each other: the last dispatch wins, as in the web client.
package flows

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/polyglotfm/plx/internal/api"
	"github.com/polyglotfm/plx/internal/auth"
	"github.com/polyglotfm/plx/internal/models"
	"github.com/polyglotfm/plx/internal/store"
)

// LibraryCache persists the last-fetched dashboard collections for offline
// use. Saves are best-effort: a failing cache never fails a flow.
type LibraryCache interface {
	SavePodcasts(podcasts []models.Podcast) error
	SaveTranslations(translations []models.Translation) error
	Clear() error
}

// Engine holds the dependencies every flow needs.
type Engine struct {
	api    *api.Client
	tokens auth.TokenStore
	store  *store.Store
	cache  LibraryCache
	logger *log.Logger
}

// EngineOpts contains the dependencies for creating an Engine. Cache and
// Logger are optional.
type EngineOpts struct {
	API    *api.Client
	Tokens auth.TokenStore
	Store  *store.Store
	Cache  LibraryCache
	Logger *log.Logger
}

// NewEngine creates an Engine with the provided dependencies.
func NewEngine(opts EngineOpts) *Engine {
	return &Engine{
		api:    opts.API,
		tokens: opts.Tokens,
		store:  opts.Store,
		cache:  opts.Cache,
		logger: opts.Logger,
	}
}

// Store exposes the engine's state store for read views.
func (e *Engine) Store() *store.Store {
	return e.store
}

// errMessage extracts a display message from a flow failure.
func errMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

// Login signs in, persists the session token, loads the user, and for
// onboarded users fetches podcasts and translations in parallel. Failures at
// any step land in the auth error slot; the auth loading flag is always
// cleared last.
func (e *Engine) Login(ctx context.Context, email, password string) {
	e.store.Dispatch(store.SetAuthLoading(true))
	e.store.Dispatch(store.SetAuthError(""))
	defer e.store.Dispatch(store.SetAuthLoading(false))

	session, err := e.api.Login(ctx, email, password)
	if err != nil {
		e.store.Dispatch(store.SetAuthError(errMessage(err, "Login failed")))
		return
	}

	if err := e.tokens.Set(session.Token); err != nil {
		e.store.Dispatch(store.SetAuthError(errMessage(err, "Login failed")))
		return
	}

	user, err := e.api.FetchUser(ctx)
	if err != nil {
		e.store.Dispatch(store.SetAuthError(errMessage(err, "Login failed")))
		return
	}

	e.store.Dispatch(store.LoginSuccess(user))

	if user.OnboardingCompleted {
		e.RefreshData(ctx)
	}
}

// Register creates an account and signs it in. A fresh account is always
// pre-onboarding, so no library fetch follows.
func (e *Engine) Register(ctx context.Context, req api.RegisterRequest) {
	e.store.Dispatch(store.SetAuthLoading(true))
	e.store.Dispatch(store.SetAuthError(""))
	defer e.store.Dispatch(store.SetAuthLoading(false))

	session, err := e.api.Register(ctx, req)
	if err != nil {
		e.store.Dispatch(store.SetAuthError(errMessage(err, "Registration failed")))
		return
	}

	if err := e.tokens.Set(session.Token); err != nil {
		e.store.Dispatch(store.SetAuthError(errMessage(err, "Registration failed")))
		return
	}

	user, err := e.api.FetchUser(ctx)
	if err != nil {
		e.store.Dispatch(store.SetAuthError(errMessage(err, "Registration failed")))
		return
	}

	e.store.Dispatch(store.LoginSuccess(user))
}

// Logout ends the session. The server call is best-effort: its failure is
// logged and the local session is torn down regardless.
func (e *Engine) Logout(ctx context.Context) {
	if err := e.api.Logout(ctx); err != nil && e.logger != nil {
		e.logger.Warn("logout request failed", "err", err)
	}

	if err := e.tokens.Clear(); err != nil && e.logger != nil {
		e.logger.Warn("failed to clear token", "err", err)
	}

	if e.cache != nil {
		if err := e.cache.Clear(); err != nil && e.logger != nil {
			e.logger.Warn("failed to clear cache", "err", err)
		}
	}

	e.store.Dispatch(store.Logout())
}

// FetchUser reloads the profile into the store. The returned error lets
// callers chain on the outcome; it has already been recorded in the auth
// error slot.
func (e *Engine) FetchUser(ctx context.Context) error {
	user, err := e.api.FetchUser(ctx)
	if err != nil {
		e.store.Dispatch(store.SetAuthError(errMessage(err, "Failed to fetch user")))
		return err
	}

	e.store.Dispatch(store.UpdateUser(user))
	return nil
}

// UpdateUser applies a partial profile update and stores the server's full
// returned user.
func (e *Engine) UpdateUser(ctx context.Context, update api.UserUpdate) {
	e.store.Dispatch(store.SetLoading(true))
	defer e.store.Dispatch(store.SetLoading(false))

	user, err := e.api.UpdateUser(ctx, update)
	if err != nil {
		e.store.Dispatch(store.SetError(errMessage(err, "Failed to update user")))
		return
	}

	e.store.Dispatch(store.UpdateUser(user))
}

// FetchPodcasts replaces the podcast collection and writes it through to the
// offline cache.
func (e *Engine) FetchPodcasts(ctx context.Context) {
	podcasts, err := e.api.FetchPodcasts(ctx)
	if err != nil {
		e.store.Dispatch(store.SetError(errMessage(err, "Failed to fetch podcasts")))
		return
	}

	e.store.Dispatch(store.SetPodcasts(podcasts))

	if e.cache != nil {
		if err := e.cache.SavePodcasts(podcasts); err != nil && e.logger != nil {
			e.logger.Warn("failed to cache podcasts", "err", err)
		}
	}
}

// FetchTranslations replaces the translation collection and writes it through
// to the offline cache.
func (e *Engine) FetchTranslations(ctx context.Context) {
	translations, err := e.api.FetchTranslations(ctx)
	if err != nil {
		e.store.Dispatch(store.SetError(errMessage(err, "Failed to fetch translations")))
		return
	}

	e.store.Dispatch(store.SetTranslations(translations))

	if e.cache != nil {
		if err := e.cache.SaveTranslations(translations); err != nil && e.logger != nil {
			e.logger.Warn("failed to cache translations", "err", err)
		}
	}
}

// RefreshData fetches podcasts and translations in parallel. Both requests
// are issued before either result is awaited; both results are applied
// whichever resolves first.
func (e *Engine) RefreshData(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		e.FetchPodcasts(ctx)
	}()
	go func() {
		defer wg.Done()
		e.FetchTranslations(ctx)
	}()

	wg.Wait()
}

// CreatePodcast registers a podcast, appends it to the store, then refreshes
// translations so jobs implied by the new podcast appear. The failure is both
// recorded in the global error slot and returned, so the invoking command can
// show it inline.
func (e *Engine) CreatePodcast(ctx context.Context, req api.CreatePodcastRequest) (*models.Podcast, error) {
	e.store.Dispatch(store.SetLoading(true))
	defer e.store.Dispatch(store.SetLoading(false))

	podcast, err := e.api.CreatePodcast(ctx, req)
	if err != nil {
		e.store.Dispatch(store.SetError(errMessage(err, "Failed to create podcast")))
		return nil, err
	}

	e.store.Dispatch(store.AddPodcast(*podcast))
	e.FetchTranslations(ctx)

	return podcast, nil
}

// CreateTranslation starts translation jobs for a podcast and refreshes the
// translation collection. Like CreatePodcast, failure is re-raised.
func (e *Engine) CreateTranslation(ctx context.Context, req api.CreateTranslationRequest) (*models.Translation, error) {
	e.store.Dispatch(store.SetLoading(true))
	defer e.store.Dispatch(store.SetLoading(false))

	translation, err := e.api.CreateTranslation(ctx, req)
	if err != nil {
		e.store.Dispatch(store.SetError(errMessage(err, "Failed to create translation")))
		return nil, err
	}

	e.FetchTranslations(ctx)

	return translation, nil
}

// ValidateFeed asks the backend for a verdict on an RSS feed URL. An invalid
// feed is data for the caller to branch on, not an error, so nothing is
// dispatched.
func (e *Engine) ValidateFeed(ctx context.Context, url string) (*api.FeedValidation, error) {
	return e.api.ValidateRSSFeed(ctx, url)
}

// UploadVoiceSample uploads the sample, overlays the returned file URL onto
// the current auth user, and returns the URL. Failure is recorded in the
// global error slot and re-raised.
func (e *Engine) UploadVoiceSample(ctx context.Context, filename string, sample io.Reader) (string, error) {
	e.store.Dispatch(store.SetLoading(true))
	defer e.store.Dispatch(store.SetLoading(false))

	upload, err := e.api.UploadVoiceSample(ctx, filename, sample)
	if err != nil {
		e.store.Dispatch(store.SetError(errMessage(err, "Failed to upload voice sample")))
		return "", err
	}

	if user := e.store.State().Auth.User; user != nil {
		updated := *user
		updated.VoiceSampleURL = upload.FileURL
		e.store.Dispatch(store.UpdateUser(&updated))
	}

	return upload.FileURL, nil
}

// Initialize restores a persisted session at startup. A token that fails the
// local expiry check is cleared without a round trip; otherwise the profile
// is fetched and, on failure, the token is cleared and the session reported
// expired. For an onboarded user the library is loaded as after login.
func (e *Engine) Initialize(ctx context.Context) {
	token, ok := e.tokens.Get()
	if !ok {
		return
	}

	if !auth.IsValid(token) {
		if err := e.tokens.Clear(); err != nil && e.logger != nil {
			e.logger.Warn("failed to clear token", "err", err)
		}
		e.store.Dispatch(store.SetAuthError("Session expired"))
		return
	}

	e.store.Dispatch(store.SetLoading(true))
	defer e.store.Dispatch(store.SetLoading(false))

	user, err := e.api.FetchUser(ctx)
	if err != nil {
		if err := e.tokens.Clear(); err != nil && e.logger != nil {
			e.logger.Warn("failed to clear token", "err", err)
		}
		e.store.Dispatch(store.SetAuthError("Session expired"))
		return
	}

	e.store.Dispatch(store.LoginSuccess(user))

	if user.OnboardingCompleted {
		e.RefreshData(ctx)
	}
}
