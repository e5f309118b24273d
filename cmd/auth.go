package main

import (
	"context"
	"fmt"

	"github.com/polyglotfm/plx/internal/api"
	"github.com/polyglotfm/plx/internal/auth"
	"github.com/polyglotfm/plx/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin signs in and persists the session token.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	r.logger.Info("signing in", "email", email)
	r.engine.Login(ctx, email, password)

	if errText := r.authV.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrAuthFailed, errText)
	}

	user := r.authV.User()
	r.writePlain("✓ Signed in as %s\n", user.Email)
	if !user.OnboardingCompleted {
		r.writePlain("Onboarding incomplete, run 'plx onboard rss' to continue\n")
		return nil
	}

	stats := r.library.Stats()
	r.writePlain("Library: %d podcasts, %d translations\n", stats.Podcasts, stats.Translations)
	return nil
}

// AuthRegister creates a new account and signs in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("registering account", "email", cmd.String("email"))

	r.engine.Register(ctx, api.RegisterRequest{
		FullName: cmd.String("name"),
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
	})

	if errText := r.authV.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrAuthFailed, errText)
	}

	r.writePlain("✓ Account created for %s\n", r.authV.User().Email)
	r.writePlain("Next: run 'plx onboard rss' to register your podcast\n")
	return nil
}

// AuthLogout ends the session and clears local state.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.engine.Logout(ctx)
	return r.writePlain("✓ Signed out\n")
}

// AuthStatus shows the current session without a network round trip.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	token, ok := r.tokens.Get()
	if !ok {
		return r.writePlain("✗ Not signed in\n")
	}

	if !auth.IsValid(token) {
		r.writePlain("✗ Session expired\n")
		r.writePlain("Run 'plx auth login' to sign in again\n")
		return nil
	}

	r.writePlain("✓ Session token present and unexpired\n")
	if user := r.authV.User(); user != nil {
		r.writePlain("Signed in as %s\n", user.Email)
	}
	return nil
}

// AuthImport extracts a bearer token from a browser cURL command and stores
// it as the session token.
func (r *Runner) AuthImport(ctx context.Context, cmd *cli.Command) error {
	curlCmd := cmd.String("curl")
	curlFile := cmd.String("curl-file")

	if curlCmd == "" && curlFile == "" {
		return fmt.Errorf("%w: either --curl or --curl-file must be provided", shared.ErrMissingArgument)
	}
	if curlCmd != "" && curlFile != "" {
		return fmt.Errorf("%w: cannot specify both --curl and --curl-file", shared.ErrInvalidArgument)
	}

	var headers *shared.CurlHeaders
	var err error

	if curlFile != "" {
		headers, err = shared.ParseCurlFile(curlFile)
	} else {
		headers, err = shared.ParseCurlCommand([]byte(curlCmd))
	}
	if err != nil {
		return fmt.Errorf("failed to parse cURL command: %w", err)
	}

	token := headers.BearerToken()
	if token == "" {
		return fmt.Errorf("%w: no Authorization bearer header in command", shared.ErrInvalidArgument)
	}
	if !auth.IsValid(token) {
		return fmt.Errorf("%w: imported token is expired", shared.ErrTokenExpired)
	}

	if err := r.tokens.Set(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	r.logger.Info("session token imported")

	// Prove the token works before declaring success.
	if err := r.engine.FetchUser(ctx); err != nil {
		r.tokens.Clear()
		return fmt.Errorf("%w: backend rejected the imported token", shared.ErrAuthFailed)
	}

	return r.writePlain("✓ Session imported for %s\n", r.authV.User().Email)
}
