package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"tech_stack"`
	ImageURL    *string   `json:"image_url"`
	GithubLink  *string   `json:"github_link"`
	DemoLink    *string   `json:"demo_link"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrProjectNotFound = errors.New("project not found")

func (p *Project) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Description == "" {
		return errors.New("description is required")
	}
	if len(p.TechStack) == 0 {
		return errors.New("tech stack is required")
	}
	return nil
}

// ParseStack splits a comma-separated tech list, trims each entry, and
// drops empties: "React, Node.js,  MongoDB ," -> [React Node.js MongoDB].
func ParseStack(raw string) []string {
	parts := strings.Split(raw, ",")
	stack := make([]string, 0, len(parts))
	for _, part := range parts {
		if tech := strings.TrimSpace(part); tech != "" {
			stack = append(stack, tech)
		}
	}
	return stack
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
	ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Project, error)
}
