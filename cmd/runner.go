package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertbloom/stockpix/internal/gallery"
	"github.com/desertbloom/stockpix/internal/models"
	"github.com/desertbloom/stockpix/internal/prefs"
	"github.com/desertbloom/stockpix/internal/services"
	"github.com/desertbloom/stockpix/internal/session"
	"github.com/desertbloom/stockpix/internal/shared"
	"github.com/desertbloom/stockpix/internal/staging"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	auth      services.AuthAPI
	gal       services.GalleryAPI
	store     *session.Store
	guard     *session.Guard
	engine    *gallery.Engine
	buffer    *staging.Buffer
	submitter *staging.Submitter
	prefs     *prefs.Store
	db        *sql.DB
	logger    *log.Logger
	output    io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Auth    services.AuthAPI
	Gallery services.GalleryAPI
	Logger  *log.Logger
	Output  io.Writer
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

	if opts.Auth == nil || opts.Gallery == nil {
		client := services.NewClient(services.ClientOpts{
			BaseURL:   opts.Config.Server.BaseURL,
			RateLimit: opts.Config.Client.RateLimit,
			Timeout:   time.Duration(opts.Config.Server.Timeout) * time.Second,
		})
		if opts.Auth == nil {
			opts.Auth = client
		}
		if opts.Gallery == nil {
			opts.Gallery = client
		}
	}

	store := session.NewStore(opts.Auth, opts.Logger)
	buffer := staging.NewBuffer(staging.BufferOpts{
		PreviewDir:        opts.Config.Upload.PreviewDir,
		TitleFromFilename: opts.Config.Upload.TitleFromFilename,
		Logger:            opts.Logger,
	})

	return &Runner{
		config:    opts.Config,
		auth:      opts.Auth,
		gal:       opts.Gallery,
		store:     store,
		guard:     session.NewGuard(store),
		engine:    gallery.NewEngine(opts.Gallery, opts.Logger),
		buffer:    buffer,
		submitter: staging.NewSubmitter(opts.Gallery, opts.Logger),
		logger:    opts.Logger,
		output:    opts.Output,
	}
}

// Close releases staged previews and the local database, if open.
func (r *Runner) Close() {
	r.buffer.Close()
	if r.db != nil {
		r.db.Close()
	}
}

// SetLogger swaps the Runner's logger, e.g. to a file logger for TUI mode.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, galleryCommand, uploadCommand, themeCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// openPrefs opens the local database and returns the preference store,
// creating the schema on first use.
func (r *Runner) openPrefs() (*prefs.Store, error) {
	if r.prefs != nil {
		return r.prefs, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	r.db = db
	r.prefs = prefs.NewStore(db)
	return r.prefs, nil
}

// ensureSession resolves the session, logging in with the command's
// email/password flags when the backend has no live session for us.
func (r *Runner) ensureSession(ctx context.Context, cmd *cli.Command) error {
	if r.store.Resolve(ctx) == session.Authenticated {
		return nil
	}

	email := cmd.String("email")
	password := cmd.String("password")
	if email == "" || password == "" {
		return r.guard.Require()
	}

	if err := r.auth.Login(ctx, email, password); err != nil {
		return err
	}

	user, err := r.auth.CheckAuth(ctx)
	if err != nil {
		// The login itself succeeded, only the profile fetch failed.
		r.logger.Debug("post-login session check failed", "err", err)
		r.store.Login(models.User{Email: email})
		return nil
	}

	r.store.Login(*user)
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
	text := fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
