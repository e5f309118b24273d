package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/polyglotfm/plx/internal/api"
	"github.com/polyglotfm/plx/internal/auth"
	"github.com/polyglotfm/plx/internal/flows"
	"github.com/polyglotfm/plx/internal/shared"
	"github.com/polyglotfm/plx/internal/store"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	api     *api.Client
	tokens  auth.TokenStore
	store   *store.Store
	engine  *flows.Engine
	logger  *log.Logger
	output  io.Writer
	authV   store.AuthView
	library store.LibraryView
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	API    *api.Client
	Tokens auth.TokenStore
	Store  *store.Store
	Cache  flows.LibraryCache
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Store == nil {
		opts.Store = store.New(opts.Logger)
	}
	if opts.Tokens == nil {
		opts.Tokens = auth.NewFileTokenStore(opts.Config.TokenPath())
	}
	if opts.API == nil {
		opts.API = api.NewClient(opts.Config.API.BaseURL, opts.Tokens, nil)
	}

	engine := flows.NewEngine(flows.EngineOpts{
		API:    opts.API,
		Tokens: opts.Tokens,
		Store:  opts.Store,
		Cache:  opts.Cache,
		Logger: opts.Logger,
	})

	return &Runner{
		config:  opts.Config,
		api:     opts.API,
		tokens:  opts.Tokens,
		store:   opts.Store,
		engine:  engine,
		logger:  opts.Logger,
		output:  opts.Output,
		authV:   store.NewAuthView(opts.Store),
		library: store.NewLibraryView(opts.Store),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		authCommand, podcastsCommand, translationsCommand, onboardCommand, accountCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger swaps the runner's logger, used by the TUI to redirect logs away
// from the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// requireSession ensures a locally valid token exists before a command talks
// to the backend.
func (r *Runner) requireSession() error {
	token, ok := r.tokens.Get()
	if !ok {
		return shared.ErrNotAuthenticated
	}
	if !auth.IsValid(token) {
		return fmt.Errorf("%w: stored token expired", shared.ErrSessionExpired)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
