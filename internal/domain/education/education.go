package education

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	School      string    `json:"school"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	Year        string    `json:"year"`
	GPA         *string   `json:"gpa"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrEducationNotFound = errors.New("education not found")

func (e *Education) Validate() error {
	if e.School == "" {
		return errors.New("school is required")
	}
	if e.Degree == "" {
		return errors.New("degree is required")
	}
	if e.Field == "" {
		return errors.New("field of study is required")
	}
	if e.Year == "" {
		return errors.New("year is required")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Education, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Education, error)
}
