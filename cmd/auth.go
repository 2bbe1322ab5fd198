package main

import (
	"context"
	"fmt"

	"github.com/desertbloom/stockpix/internal/models"
	"github.com/desertbloom/stockpix/internal/session"
	"github.com/desertbloom/stockpix/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin exchanges credentials for a session cookie and verifies it.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	r.logger.Info("logging in", "email", email)

	if err := r.auth.Login(ctx, email, password); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	user, err := r.auth.CheckAuth(ctx)
	if err != nil {
		r.logger.Debug("post-login session check failed", "err", err)
		r.store.Login(models.User{Email: email})
		return r.writePlain("✓ Logged in as %s\n", email)
	}

	r.store.Login(*user)
	return r.writePlain("✓ Logged in as %s (%s)\n", user.FullName, user.Email)
}

// AuthSignup creates a new account. Validation happens locally before any
// request is made.
func (r *Runner) AuthSignup(ctx context.Context, cmd *cli.Command) error {
	req := models.SignupRequest{
		FullName:    cmd.String("name"),
		Email:       cmd.String("email"),
		Password:    cmd.String("password"),
		PhoneNumber: cmd.String("phone"),
	}

	if err := req.Validate(); err != nil {
		return err
	}

	r.logger.Info("creating account", "email", req.Email)

	if err := r.auth.Signup(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrSignupFailed, err)
	}

	return r.writePlain("✓ Account created for %s, you can log in now\n", req.Email)
}

// AuthStatus reports whether the backend recognizes a live session.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	switch r.store.Resolve(ctx) {
	case session.Authenticated:
		user, _ := r.store.User()
		return r.writePlain("✓ Authenticated as %s\n", user.Email)
	case session.Unauthenticated:
		return r.writePlain("✗ Not authenticated\n")
	default:
		return fmt.Errorf("%w: session could not be resolved", shared.ErrServiceUnavailable)
	}
}

// AuthLogout ends the current session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.store.Logout(ctx)
	return r.writePlain("✓ Logged out\n")
}
