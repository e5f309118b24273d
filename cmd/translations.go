package main

import (
	"context"
	"fmt"

	"github.com/polyglotfm/plx/internal/api"
	"github.com/polyglotfm/plx/internal/formatter"
	"github.com/polyglotfm/plx/internal/models"
	"github.com/polyglotfm/plx/internal/shared"
	"github.com/urfave/cli/v3"
)

// TranslationsList prints translation jobs, optionally scoped to one podcast.
func (r *Runner) TranslationsList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	r.engine.RefreshData(ctx)
	if errText := r.library.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, errText)
	}

	var translations []models.Translation
	if podcastID := int(cmd.Int("podcast")); podcastID != 0 {
		translations = r.library.TranslationsFor(podcastID)
	} else {
		translations = r.library.Translations()
	}

	if cmd.Bool("json") {
		return r.writeJSON(translations, cmd.Bool("pretty"))
	}

	if len(translations) == 0 {
		return r.writePlain("No translations yet, run 'plx translations create'\n")
	}

	return r.writePlain("%s\n", formatter.TranslationTable(translations, r.library.Podcasts()))
}

// TranslationsCreate starts translating a podcast into the given languages.
func (r *Runner) TranslationsCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	translation, err := r.engine.CreateTranslation(ctx, api.CreateTranslationRequest{
		PodcastID:       int(cmd.Int("podcast")),
		TargetLanguages: cmd.StringSlice("language"),
	})
	if err != nil {
		return fmt.Errorf("failed to create translation: %w", err)
	}

	r.writePlain("✓ Translation started (id %d, status %s)\n", translation.ID, translation.Status)
	r.writePlain("Track progress with 'plx translations list --podcast %d'\n", translation.PodcastID)
	return nil
}

// TranslationsRefresh re-fetches both collections from the backend.
func (r *Runner) TranslationsRefresh(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	r.engine.RefreshData(ctx)
	if errText := r.library.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, errText)
	}

	stats := r.library.Stats()
	return r.writePlain("✓ Refreshed: %d podcasts, %d translations\n", stats.Podcasts, stats.Translations)
}

// TranslationsExport writes the library to CSV plus a metadata JSON file.
func (r *Runner) TranslationsExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	r.engine.RefreshData(ctx)
	if errText := r.library.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, errText)
	}

	result, err := formatter.WriteCSVExport(r.library.Podcasts(), r.library.Translations(), cmd.String("output"))
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.writePlain("✓ Exported library\n")
	r.writePlain("Translations: %s\n", result.TranslationsFile)
	r.writePlain("Metadata: %s\n", result.MetadataFile)
	return nil
}

// TranslationsStats prints the dashboard summary table.
func (r *Runner) TranslationsStats(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	r.engine.RefreshData(ctx)
	if errText := r.library.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, errText)
	}

	return r.writePlain("%s\n", formatter.StatsTable(r.library.Stats()))
}
