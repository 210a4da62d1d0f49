package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/gigwire/identity-go/internal/errors"
)

const maxPostBodyLen = 10000

// Post is a piece of content published under one of a person's profiles.
type Post struct {
	ID                string      `json:"id"                  db:"id"`
	AuthorProfileID   string      `json:"author_profile_id"   db:"author_profile_id"`
	AuthorProfileType ProfileType `json:"author_profile_type" db:"author_profile_type"`
	Body              string      `json:"body"                db:"body"`
	Placeholder       bool        `json:"placeholder,omitempty" db:"-"`
	CreatedAt         time.Time   `json:"created_at"          db:"created_at"`
}

// CreatePostRequest carries inputs for publishing content under the active profile.
type CreatePostRequest struct {
	Body string `json:"body"`
}

// Validate checks the request.
func (r *CreatePostRequest) Validate() error {
	r.Body = strings.TrimSpace(r.Body)
	if r.Body == "" {
		return apperrors.ValidationField("body", "post body is required")
	}
	if utf8.RuneCountInString(r.Body) > maxPostBodyLen {
		return apperrors.ValidationField("body", "post body is too long")
	}
	return nil
}
