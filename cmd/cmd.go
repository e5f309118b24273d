// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Sign in and manage the stored session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Full name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "logout",
				Usage:  "End the session and clear local state",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session",
				Action: r.AuthStatus,
			},
			{
				Name:  "import",
				Usage: "Import a session token from a browser cURL command",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "curl",
						Usage: "cURL command copied from the browser",
					},
					&cli.StringFlag{
						Name:  "curl-file",
						Usage: "File containing the cURL command",
					},
				},
				Action: r.AuthImport,
			},
		},
	}
}

// podcastsCommand handles podcast operations
func podcastsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "podcasts",
		Aliases: []string{"pods"},
		Usage:   "Browse and register podcasts",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List registered podcasts",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
					&cli.BoolFlag{
						Name:  "offline",
						Usage: "Read from the local cache instead of the backend",
					},
				},
				Action: r.PodcastsList,
			},
			{
				Name:  "add",
				Usage: "Register a podcast by RSS feed",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "feed",
						Aliases:  []string{"f"},
						Usage:    "RSS feed URL",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "skip-validation",
						Usage: "Register without validating the feed first",
					},
				},
				Action: r.PodcastsAdd,
			},
			{
				Name:  "validate",
				Usage: "Check whether an RSS feed parses",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "url",
					},
				},
				Action: r.PodcastsValidate,
			},
			{
				Name:  "audit",
				Usage: "Re-validate the feeds of every registered podcast",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent validations",
						Value: 4,
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Validation requests per second",
						Value: 5,
					},
				},
				Action: r.PodcastsAudit,
			},
			{
				Name:  "open",
				Usage: "Open a podcast's RSS feed in the browser",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Podcast ID",
						Required: true,
					},
				},
				Action: r.PodcastsOpen,
			},
		},
	}
}

// translationsCommand handles translation job operations
func translationsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "translations",
		Aliases: []string{"tr"},
		Usage:   "Inspect and create translation jobs",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List translation jobs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "podcast",
						Usage: "Only show translations of this podcast",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.TranslationsList,
			},
			{
				Name:  "create",
				Usage: "Start translating a podcast into new languages",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "podcast",
						Usage:    "Podcast ID",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "language",
						Aliases:  []string{"l"},
						Usage:    "Target language code (repeatable)",
						Required: true,
					},
				},
				Action: r.TranslationsCreate,
			},
			{
				Name:   "refresh",
				Usage:  "Re-fetch podcasts and translations from the backend",
				Action: r.TranslationsRefresh,
			},
			{
				Name:  "export",
				Usage: "Export the library to CSV with a metadata JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Base path for the export files",
					},
				},
				Action: r.TranslationsExport,
			},
			{
				Name:   "stats",
				Usage:  "Summarize the library by translation status",
				Action: r.TranslationsStats,
			},
		},
	}
}

// onboardCommand walks through the onboarding steps
func onboardCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "onboard",
		Usage: "Complete account onboarding",
		Commands: []*cli.Command{
			{
				Name:  "rss",
				Usage: "Register your podcast's RSS feed",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "feed",
						Aliases:  []string{"f"},
						Usage:    "RSS feed URL",
						Required: true,
					},
				},
				Action: r.OnboardRSS,
			},
			{
				Name:  "voice",
				Usage: "Upload a voice sample for cloned narration",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Action: r.OnboardVoice,
			},
			{
				Name:  "languages",
				Usage: "Choose target languages and finish onboarding",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "language",
						Aliases:  []string{"l"},
						Usage:    "Preferred language code (repeatable)",
						Required: true,
					},
				},
				Action: r.OnboardLanguages,
			},
		},
	}
}

// accountCommand handles profile settings
func accountCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "View and update the signed-in profile",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the current profile",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.AccountShow,
			},
			{
				Name:  "update",
				Usage: "Update profile fields",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "Full name",
					},
					&cli.StringSliceFlag{
						Name:    "language",
						Aliases: []string{"l"},
						Usage:   "Preferred language code (repeatable)",
					},
				},
				Action: r.AccountUpdate,
			},
			{
				Name:  "notifications",
				Usage: "Toggle email alerts",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:     "email-alerts",
						Usage:    "Enable or disable email alerts",
						Required: true,
					},
				},
				Action: r.AccountNotifications,
			},
		},
	}
}

// setupCommand handles local setup operations
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the local cache database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand launches the interactive dashboard
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"dashboard"},
		Usage:   "Launch the interactive dashboard",
		Action:  r.TUI,
	}
}
