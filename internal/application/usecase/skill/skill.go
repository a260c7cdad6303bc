package skill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quangdng/folio-hub/internal/domain/skill"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type SkillUseCase struct {
	repo   skill.Repository
	logger logger.Logger
}

func NewSkillUseCase(r skill.Repository, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: r, logger: log}
}

type CreateSkillInput struct {
	OwnerID  uuid.UUID
	Name     string
	Level    string
	Category string
}

func (uc *SkillUseCase) Create(ctx context.Context, in CreateSkillInput) (*skill.Skill, error) {
	now := time.Now().UTC()
	s := &skill.Skill{
		ID:        uuid.New(),
		OwnerID:   in.OwnerID,
		Name:      in.Name,
		Level:     in.Level,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

type UpdateSkillInput struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Name     string
	Level    string
	Category string
}

func (uc *SkillUseCase) Update(ctx context.Context, in UpdateSkillInput) (*skill.Skill, error) {
	s, err := uc.repo.FindByID(ctx, in.ID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	s.Name = in.Name
	s.Level = in.Level
	s.Category = in.Category

	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SkillUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return uc.repo.Delete(ctx, id, ownerID)
}

func (uc *SkillUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
