package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

const (
	CategoryTechnical = "Technical"
	CategorySoft      = "Soft"
	CategoryLanguage  = "Language"
	CategoryCreative  = "Creative"
	CategoryBusiness  = "Business"
	CategoryOther     = "Other"
)

type Skill struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrSkillNotFound   = errors.New("skill not found")
	ErrInvalidLevel    = errors.New("invalid skill level")
	ErrInvalidCategory = errors.New("invalid skill category")
)

func (s *Skill) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	switch s.Level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:

	default:
		return ErrInvalidLevel
	}
	switch s.Category {
	case CategoryTechnical, CategorySoft, CategoryLanguage, CategoryCreative, CategoryBusiness, CategoryOther:

	default:
		return ErrInvalidCategory
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Skill, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Skill, error)
	ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Skill, error)
}
