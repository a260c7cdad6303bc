package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quangdng/folio-hub/internal/domain/project"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type ProjectUseCase struct {
	repo   project.Repository
	logger logger.Logger
}

func NewProjectUseCase(r project.Repository, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: r, logger: log}
}

type CreateProjectInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	// TechStackRaw is the comma-separated list as typed into the form.
	TechStackRaw string
	ImageURL     *string
	GithubLink   *string
	DemoLink     *string
	Featured     bool
}

func (uc *ProjectUseCase) Create(ctx context.Context, in CreateProjectInput) (*project.Project, error) {
	now := time.Now().UTC()
	p := &project.Project{
		ID:          uuid.New(),
		OwnerID:     in.OwnerID,
		Title:       in.Title,
		Description: in.Description,
		TechStack:   project.ParseStack(in.TechStackRaw),
		ImageURL:    in.ImageURL,
		GithubLink:  in.GithubLink,
		DemoLink:    in.DemoLink,
		Featured:    in.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

type UpdateProjectInput struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  string
	TechStackRaw string
	ImageURL     *string
	GithubLink   *string
	DemoLink     *string
	Featured     bool
}

func (uc *ProjectUseCase) Update(ctx context.Context, in UpdateProjectInput) (*project.Project, error) {
	p, err := uc.repo.FindByID(ctx, in.ID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Description = in.Description
	p.TechStack = project.ParseStack(in.TechStackRaw)
	p.ImageURL = in.ImageURL
	p.GithubLink = in.GithubLink
	p.DemoLink = in.DemoLink
	p.Featured = in.Featured

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return uc.repo.Delete(ctx, id, ownerID)
}

func (uc *ProjectUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
