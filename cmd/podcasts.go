package main

import (
	"context"
	"fmt"

	"github.com/polyglotfm/plx/internal/api"
	"github.com/polyglotfm/plx/internal/flows"
	"github.com/polyglotfm/plx/internal/formatter"
	"github.com/polyglotfm/plx/internal/shared"
	"github.com/urfave/cli/v3"
)

// PodcastsList prints the registered podcasts as a table or JSON.
func (r *Runner) PodcastsList(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("offline") {
		return r.podcastsListOffline(cmd)
	}

	if err := r.requireSession(); err != nil {
		return err
	}

	r.engine.FetchPodcasts(ctx)
	if errText := r.library.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, errText)
	}

	podcasts := r.library.Podcasts()
	if cmd.Bool("json") {
		return r.writeJSON(podcasts, cmd.Bool("pretty"))
	}

	if len(podcasts) == 0 {
		return r.writePlain("No podcasts registered yet, run 'plx podcasts add'\n")
	}

	return r.writePlain("%s\n", formatter.PodcastTable(podcasts))
}

// podcastsListOffline renders the last cached collection without touching the
// backend.
func (r *Runner) podcastsListOffline(cmd *cli.Command) error {
	cache, cleanup, err := r.openCache()
	if err != nil {
		return err
	}
	defer cleanup()

	podcasts, err := cache.Podcasts.List()
	if err != nil {
		return fmt.Errorf("failed to read cache: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(podcasts, cmd.Bool("pretty"))
	}
	if len(podcasts) == 0 {
		return r.writePlain("Cache is empty, run 'plx translations refresh' while online\n")
	}

	fetched, err := cache.Podcasts.FetchedAt()
	if err == nil && !fetched.IsZero() {
		r.writePlain("Cached %s\n", fetched.Format("2006-01-02 15:04"))
	}
	return r.writePlain("%s\n", formatter.PodcastTable(podcasts))
}

// PodcastsAdd validates and registers a new podcast feed.
func (r *Runner) PodcastsAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	feed := cmd.String("feed")

	if !cmd.Bool("skip-validation") {
		r.logger.Info("validating feed", "url", feed)
		validation, err := r.engine.ValidateFeed(ctx, feed)
		if err != nil {
			return fmt.Errorf("validation request failed: %w", err)
		}
		if !validation.IsValid {
			return fmt.Errorf("%w: %s", shared.ErrFeedInvalid, validation.Error)
		}
		if validation.Title != "" {
			r.writePlain("Feed looks good: %s\n", validation.Title)
		}
	}

	podcast, err := r.engine.CreatePodcast(ctx, api.CreatePodcastRequest{RSSFeedURL: feed})
	if err != nil {
		return fmt.Errorf("failed to register podcast: %w", err)
	}

	r.writePlain("✓ Registered '%s' (id %d)\n", podcast.Title, podcast.ID)
	r.writePlain("Start a translation with 'plx translations create --podcast %d -l <lang>'\n", podcast.ID)
	return nil
}

// PodcastsValidate checks a single RSS feed without registering it.
func (r *Runner) PodcastsValidate(ctx context.Context, cmd *cli.Command) error {
	url := cmd.StringArg("url")
	if url == "" {
		return fmt.Errorf("%w: feed URL required", shared.ErrMissingArgument)
	}

	validation, err := r.engine.ValidateFeed(ctx, url)
	if err != nil {
		return fmt.Errorf("validation request failed: %w", err)
	}

	if !validation.IsValid {
		r.writePlain("✗ Feed is invalid: %s\n", validation.Error)
		return nil
	}

	r.writePlain("✓ Feed is valid\n")
	if validation.Title != "" {
		r.writePlain("Title: %s\n", validation.Title)
	}
	if validation.Description != "" {
		r.writePlain("Description: %s\n", validation.Description)
	}
	return nil
}

// PodcastsAudit re-validates every registered feed through the rate-limited
// worker pool and prints the tally.
func (r *Runner) PodcastsAudit(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	r.engine.FetchPodcasts(ctx)
	if errText := r.library.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, errText)
	}

	progress := make(chan flows.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.writePlain("%s\n", update.Message)
		}
	}()

	result, err := r.engine.AuditFeeds(ctx, progress, flows.AuditOpts{
		NumWorkers: int(cmd.Int("workers")),
		RateLimit:  cmd.Float("rate"),
	})
	close(progress)
	<-done

	if err != nil {
		return fmt.Errorf("audit aborted: %w", err)
	}

	r.writePlainln("Checked %d feeds: %d healthy, %d unhealthy, %d failed",
		result.Total, result.Healthy, result.Unhealthy, result.Failed)

	for _, verdict := range result.Results {
		switch {
		case verdict.Err != nil:
			r.writePlain("  ✗ %s: check failed (%v)\n", verdict.Podcast.Title, verdict.Err)
		case !verdict.Healthy:
			r.writePlain("  ✗ %s: %s\n", verdict.Podcast.Title, verdict.Detail)
		}
	}

	return nil
}

// PodcastsOpen opens a podcast's RSS feed in the default browser.
func (r *Runner) PodcastsOpen(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	id := int(cmd.Int("id"))

	r.engine.FetchPodcasts(ctx)
	for _, podcast := range r.library.Podcasts() {
		if podcast.ID != id {
			continue
		}
		r.logger.Info("opening feed", "url", podcast.RSSFeedURL)
		return shared.OpenBrowser(podcast.RSSFeedURL)
	}

	return fmt.Errorf("%w: id %d", shared.ErrPodcastNotFound, id)
}
