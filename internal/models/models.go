// package models defines the data model for the stock image client
package models

import (
	"fmt"
	"strings"
)

// User represents the authenticated account as returned by the backend.
type User struct {
	ID          string `json:"_id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// MediaItem represents one persisted gallery image.
//
// Order is a positive integer, unique and contiguous within a user's
// collection once the collection has been normalized by a committed mutation.
type MediaItem struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Order    int    `json:"order"`
}

// ImageOrder pairs an image id with its target position for reorder requests.
type ImageOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// Validate checks that every required signup field is present.
// Runs client-side before any network call.
func (r SignupRequest) Validate() error {
	var missing []string
	for field, value := range map[string]string{
		"fullName":    r.FullName,
		"email":       r.Email,
		"password":    r.Password,
		"phoneNumber": r.PhoneNumber,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
