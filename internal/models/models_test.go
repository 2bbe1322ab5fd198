package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := SignupRequest{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		Password:    "hunter2",
		PhoneNumber: "5551234",
	}

	t.Run("complete request passes", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("expected valid request to pass: %v", err)
		}
	})

	t.Run("each missing field is reported", func(t *testing.T) {
		cases := []struct {
			field  string
			mutate func(*SignupRequest)
		}{
			{"fullName", func(r *SignupRequest) { r.FullName = "" }},
			{"email", func(r *SignupRequest) { r.Email = "" }},
			{"password", func(r *SignupRequest) { r.Password = "  " }},
			{"phoneNumber", func(r *SignupRequest) { r.PhoneNumber = "" }},
		}

		for _, tc := range cases {
			t.Run(tc.field, func(t *testing.T) {
				req := valid
				tc.mutate(&req)

				err := req.Validate()
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !strings.Contains(err.Error(), tc.field) {
					t.Errorf("expected %q in error, got %v", tc.field, err)
				}
			})
		}
	})
}

func TestBackendFieldNames(t *testing.T) {
	t.Run("media item uses _id", func(t *testing.T) {
		var item MediaItem
		payload := `{"_id":"abc","title":"Sunrise","imageUrl":"https://cdn.example.com/a.jpg","order":3}`
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if item.ID != "abc" || item.Order != 3 {
			t.Errorf("unexpected item: %+v", item)
		}
	})

	t.Run("image order uses plain id", func(t *testing.T) {
		data, err := json.Marshal(ImageOrder{ID: "abc", Order: 1})
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `{"id":"abc","order":1}` {
			t.Errorf("unexpected payload: %s", data)
		}
	})
}
