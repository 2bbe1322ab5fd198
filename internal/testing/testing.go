// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/desertbloom/stockpix/internal/models"
	"github.com/desertbloom/stockpix/internal/services"
)

// MockAuthAPI is a configurable test double for [services.AuthAPI].
//
// Call counters record how many times each endpoint was hit so tests can
// assert that an operation made no network call at all.
type MockAuthAPI struct {
	CheckAuthUser *models.User
	CheckAuthErr  error
	LoginErr      error
	SignupErr     error
	LogoutErr     error

	CheckAuthCalls int
	LoginCalls     int
	SignupCalls    int
	LogoutCalls    int
}

func (m *MockAuthAPI) CheckAuth(ctx context.Context) (*models.User, error) {
	m.CheckAuthCalls++
	if m.CheckAuthErr != nil {
		return nil, m.CheckAuthErr
	}
	if m.CheckAuthUser == nil {
		return nil, errors.New("no session")
	}
	return m.CheckAuthUser, nil
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) error {
	m.LoginCalls++
	return m.LoginErr
}

func (m *MockAuthAPI) Signup(ctx context.Context, req models.SignupRequest) error {
	m.SignupCalls++
	return m.SignupErr
}

func (m *MockAuthAPI) Logout(ctx context.Context) error {
	m.LogoutCalls++
	return m.LogoutErr
}

// MockGalleryAPI is a configurable test double for [services.GalleryAPI].
//
// ListImages returns a fresh copy of Images on every call, standing in for
// the server's authoritative state during rollback tests.
type MockGalleryAPI struct {
	Images     []models.MediaItem
	ListErr    error
	UploadErr  error
	ReorderErr error
	UpdateErr  error
	DeleteErr  error

	ListCalls    int
	UploadCalls  int
	ReorderCalls int
	UpdateCalls  int
	DeleteCalls  int

	// LastUpload and LastReorder capture the most recent payloads.
	LastUpload  []services.UploadFile
	LastReorder []models.ImageOrder
}

func (m *MockGalleryAPI) ListImages(ctx context.Context) ([]models.MediaItem, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.MediaItem, len(m.Images))
	copy(out, m.Images)
	return out, nil
}

func (m *MockGalleryAPI) UploadImages(ctx context.Context, files []services.UploadFile) error {
	m.UploadCalls++
	m.LastUpload = files
	return m.UploadErr
}

func (m *MockGalleryAPI) ReorderImages(ctx context.Context, orders []models.ImageOrder) error {
	m.ReorderCalls++
	m.LastReorder = orders
	return m.ReorderErr
}

func (m *MockGalleryAPI) UpdateImage(ctx context.Context, id, title string) error {
	m.UpdateCalls++
	return m.UpdateErr
}

func (m *MockGalleryAPI) DeleteImage(ctx context.Context, id string) error {
	m.DeleteCalls++
	return m.DeleteErr
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func MustWriteFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileGone(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File still exists: %s", path)
	}
}
