package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/polyglotfm/plx/internal/api"
	"github.com/polyglotfm/plx/internal/models"
	"github.com/polyglotfm/plx/internal/shared"
	"github.com/urfave/cli/v3"
)

// AccountShow fetches and prints the signed-in profile.
func (r *Runner) AccountShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	if err := r.engine.FetchUser(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	user := r.authV.User()
	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}

	r.writePlain("Name: %s\n", user.FullName)
	r.writePlain("Email: %s\n", user.Email)
	r.writePlain("Languages: %s\n", strings.Join(user.PreferredLanguages, ", "))
	if user.VoiceSampleURL != "" {
		r.writePlain("Voice sample: %s\n", user.VoiceSampleURL)
	}
	if user.OnboardingCompleted {
		r.writePlain("Onboarding: ✓ complete\n")
	} else {
		r.writePlain("Onboarding: ✗ incomplete\n")
	}
	return nil
}

// AccountUpdate applies the provided profile changes.
func (r *Runner) AccountUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	update := api.UserUpdate{}
	if name := cmd.String("name"); name != "" {
		update.FullName = &name
	}
	if languages := cmd.StringSlice("language"); len(languages) > 0 {
		update.PreferredLanguages = &languages
	}

	if update.FullName == nil && update.PreferredLanguages == nil {
		return fmt.Errorf("%w: nothing to update", shared.ErrMissingArgument)
	}

	r.engine.UpdateUser(ctx, update)
	if errText := r.library.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, errText)
	}

	return r.writePlain("✓ Profile updated\n")
}

// AccountNotifications toggles email alerts.
func (r *Runner) AccountNotifications(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	prefs := models.NotificationPreferences{EmailAlerts: cmd.Bool("email-alerts")}
	r.engine.UpdateUser(ctx, api.UserUpdate{NotificationPreferences: &prefs})
	if errText := r.library.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, errText)
	}

	if prefs.EmailAlerts {
		return r.writePlain("✓ Email alerts enabled\n")
	}
	return r.writePlain("✓ Email alerts disabled\n")
}
