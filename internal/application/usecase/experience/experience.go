package experience

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quangdng/folio-hub/internal/domain/experience"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type ExperienceUseCase struct {
	repo   experience.Repository
	logger logger.Logger
}

func NewExperienceUseCase(r experience.Repository, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r, logger: log}
}

type CreateExperienceInput struct {
	OwnerID     uuid.UUID
	Company     string
	Role        string
	StartDate   string
	EndDate     *string
	Current     bool
	Description string
}

func (uc *ExperienceUseCase) Create(ctx context.Context, in CreateExperienceInput) (*experience.Experience, error) {
	now := time.Now().UTC()
	e := &experience.Experience{
		ID:          uuid.New(),
		OwnerID:     in.OwnerID,
		Company:     in.Company,
		Role:        in.Role,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Current:     in.Current,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

type UpdateExperienceInput struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Company     string
	Role        string
	StartDate   string
	EndDate     *string
	Current     bool
	Description string
}

func (uc *ExperienceUseCase) Update(ctx context.Context, in UpdateExperienceInput) (*experience.Experience, error) {
	e, err := uc.repo.FindByID(ctx, in.ID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	e.Company = in.Company
	e.Role = in.Role
	e.StartDate = in.StartDate
	e.EndDate = in.EndDate
	e.Current = in.Current
	e.Description = in.Description

	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return uc.repo.Delete(ctx, id, ownerID)
}

func (uc *ExperienceUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
