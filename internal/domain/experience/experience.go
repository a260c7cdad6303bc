package experience

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	Current     bool      `json:"current"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrExperienceNotFound = errors.New("experience not found")
	ErrEndDateRequired    = errors.New("end date is required unless the position is current")
)

// Validate enforces the end-date rule: a current position carries no end
// date, a past position must have one.
func (e *Experience) Validate() error {
	if e.Company == "" {
		return errors.New("company is required")
	}
	if e.Role == "" {
		return errors.New("role is required")
	}
	if e.StartDate == "" {
		return errors.New("start date is required")
	}
	if e.Current {
		e.EndDate = nil
		return nil
	}
	if e.EndDate == nil || *e.EndDate == "" {
		return ErrEndDateRequired
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Experience, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Experience, error)
	ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Experience, error)
}
