package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/polyglotfm/plx/internal/api"
	"github.com/polyglotfm/plx/internal/shared"
	"github.com/urfave/cli/v3"
)

// OnboardRSS registers the creator's podcast feed, the first onboarding step.
func (r *Runner) OnboardRSS(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	feed := cmd.String("feed")

	validation, err := r.engine.ValidateFeed(ctx, feed)
	if err != nil {
		return fmt.Errorf("validation request failed: %w", err)
	}
	if !validation.IsValid {
		return fmt.Errorf("%w: %s", shared.ErrFeedInvalid, validation.Error)
	}

	podcast, err := r.engine.CreatePodcast(ctx, api.CreatePodcastRequest{RSSFeedURL: feed})
	if err != nil {
		return fmt.Errorf("failed to register podcast: %w", err)
	}

	r.writePlain("✓ Registered '%s'\n", podcast.Title)
	r.writePlain("Next: upload a voice sample with 'plx onboard voice <file>'\n")
	return nil
}

// OnboardVoice uploads a voice sample used to clone the creator's narration.
func (r *Runner) OnboardVoice(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: voice sample file required", shared.ErrMissingArgument)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open sample: %w", err)
	}
	defer file.Close()

	r.logger.Info("uploading voice sample", "file", path)

	url, err := r.engine.UploadVoiceSample(ctx, filepath.Base(path), file)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	r.writePlain("✓ Voice sample uploaded: %s\n", url)
	r.writePlain("Next: pick target languages with 'plx onboard languages -l <lang>'\n")
	return nil
}

// OnboardLanguages stores the preferred target languages and marks
// onboarding complete.
func (r *Runner) OnboardLanguages(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	languages := cmd.StringSlice("language")
	completed := true

	r.engine.UpdateUser(ctx, api.UserUpdate{
		PreferredLanguages:  &languages,
		OnboardingCompleted: &completed,
	})
	if errText := r.library.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, errText)
	}

	r.writePlain("✓ Onboarding complete, translating into %v\n", languages)
	r.writePlain("Run 'plx tui' to open the dashboard\n")
	return nil
}
