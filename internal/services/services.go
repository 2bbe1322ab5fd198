// package services defines interfaces for interacting with the StockImages HTTP API
//
// Authentication (session cookie) and gallery operations.
package services

import (
	"context"

	"github.com/desertbloom/stockpix/internal/models"
)

// AuthAPI defines the session endpoints of the backend.
//
// The backend issues an HTTP session cookie on login; the client carries it on
// every subsequent request via its cookie jar.
type AuthAPI interface {
	// CheckAuth asks the backend whether the current session cookie is valid.
	// Returns the user on a valid session, an error otherwise.
	CheckAuth(ctx context.Context) (*models.User, error)

	// Login exchanges form-encoded credentials for a session cookie.
	Login(ctx context.Context, email, password string) error

	// Signup creates a new account. The server replies 201 on success; error
	// bodies may carry a message intended for display.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Logout terminates the backend session.
	Logout(ctx context.Context) error
}

// UploadFile is one file of a batch upload, paired positionally with its title.
type UploadFile struct {
	Name    string
	Title   string
	Content []byte
}

// GalleryAPI defines the image collection endpoints of the backend.
type GalleryAPI interface {
	// ListImages retrieves the full collection. The server does not guarantee
	// sorted or contiguous order values.
	ListImages(ctx context.Context) ([]models.MediaItem, error)

	// UploadImages sends every file in a single multipart request, preserving
	// the positional pairing between files and titles.
	UploadImages(ctx context.Context, files []UploadFile) error

	// ReorderImages submits the full new ordering of the collection.
	ReorderImages(ctx context.Context, orders []models.ImageOrder) error

	// UpdateImage replaces the title of one image.
	UpdateImage(ctx context.Context, id, title string) error

	// DeleteImage removes one image from the collection.
	DeleteImage(ctx context.Context, id string) error
}
