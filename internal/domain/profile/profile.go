package profile

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

type ContactInfo struct {
	Phone            string `json:"phone,omitempty"`
	AlternativeEmail string `json:"alternative_email,omitempty"`
	Address          string `json:"address,omitempty"`
	Timezone         string `json:"timezone,omitempty"`
	Availability     string `json:"availability,omitempty"`
}

type SocialLinks struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Behance   string `json:"behance,omitempty"`
	Dribbble  string `json:"dribbble,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Website   string `json:"website,omitempty"`
}

type Profile struct {
	OwnerID              uuid.UUID   `json:"owner_id"`
	Name                 string      `json:"name"`
	Email                string      `json:"email"`
	Username             string      `json:"username"`
	ProfessionalTitle    string      `json:"professional_title"`
	ProfessionalCategory string      `json:"professional_category"`
	Bio                  string      `json:"bio"`
	Location             string      `json:"location"`
	ContactInfo          ContactInfo `json:"contact_info"`
	SocialLinks          SocialLinks `json:"social_links"`
	ProfilePictureURL    *string     `json:"profile_picture_url"`
	CVFileURL            *string     `json:"cv_file_url"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidUsername = errors.New("username only allows letters, numbers, hyphens, and underscores")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")
	usernameRegex       = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Username == "" {
		return errors.New("username is required")
	}
	if len(p.Username) < 3 {
		return ErrUsernameTooShort
	}
	if !usernameRegex.MatchString(p.Username) {
		return ErrInvalidUsername
	}
	return nil
}

type Repository interface {
	Upsert(ctx context.Context, p *Profile) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	FindByUsername(ctx context.Context, username string) ([]*Profile, error)
}
