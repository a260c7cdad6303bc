package education

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quangdng/folio-hub/internal/domain/education"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type EducationUseCase struct {
	repo   education.Repository
	logger logger.Logger
}

func NewEducationUseCase(r education.Repository, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{repo: r, logger: log}
}

type CreateEducationInput struct {
	OwnerID     uuid.UUID
	School      string
	Degree      string
	Field       string
	Year        string
	GPA         *string
	Description string
}

func (uc *EducationUseCase) Create(ctx context.Context, in CreateEducationInput) (*education.Education, error) {
	now := time.Now().UTC()
	e := &education.Education{
		ID:          uuid.New(),
		OwnerID:     in.OwnerID,
		School:      in.School,
		Degree:      in.Degree,
		Field:       in.Field,
		Year:        in.Year,
		GPA:         in.GPA,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

type UpdateEducationInput struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	School      string
	Degree      string
	Field       string
	Year        string
	GPA         *string
	Description string
}

func (uc *EducationUseCase) Update(ctx context.Context, in UpdateEducationInput) (*education.Education, error) {
	e, err := uc.repo.FindByID(ctx, in.ID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	e.School = in.School
	e.Degree = in.Degree
	e.Field = in.Field
	e.Year = in.Year
	e.GPA = in.GPA
	e.Description = in.Description

	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return uc.repo.Delete(ctx, id, ownerID)
}

func (uc *EducationUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
