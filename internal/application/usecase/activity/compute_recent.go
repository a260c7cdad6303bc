package activity

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quangdng/folio-hub/internal/domain/activity"
	"github.com/quangdng/folio-hub/internal/domain/experience"
	"github.com/quangdng/folio-hub/internal/domain/project"
	"github.com/quangdng/folio-hub/internal/domain/skill"
	"github.com/quangdng/folio-hub/pkg/logger"
)

// Per-type candidate quotas and the final feed size. The quotas bound the
// candidate pool before the merge sort, so a type can never occupy more
// slots than its quota even when its newest entries would outrank the rest.
const (
	experienceQuota    = 3
	projectQuota       = 2
	skillQuota         = 2
	maxFeedSize        = 5
	descriptionPreview = 100
)

type ComputeRecentUseCase struct {
	experienceRepo experience.Repository
	projectRepo    project.Repository
	skillRepo      skill.Repository
	logger         logger.Logger
}

func NewComputeRecentUseCase(
	experienceRepo experience.Repository,
	projectRepo project.Repository,
	skillRepo skill.Repository,
	log logger.Logger,
) *ComputeRecentUseCase {
	return &ComputeRecentUseCase{
		experienceRepo: experienceRepo,
		projectRepo:    projectRepo,
		skillRepo:      skillRepo,
		logger:         log,
	}
}

type ComputeRecentInput struct {
	OwnerID uuid.UUID
}

type ComputeRecentOutput struct {
	Activities []activity.Activity
}

// Execute never fails hard: each fetch is guarded independently, and a
// failed collection simply contributes no activities.
func (uc *ComputeRecentUseCase) Execute(ctx context.Context, input ComputeRecentInput) (*ComputeRecentOutput, error) {
	activities := make([]activity.Activity, 0, experienceQuota+projectQuota+skillQuota)

	experiences, err := uc.experienceRepo.ListRecentByOwner(ctx, input.OwnerID, experienceQuota)
	if err != nil {
		uc.logger.Warn("Failed to fetch recent experiences for activity feed", zap.Error(err))
	}
	for _, e := range experiences {
		activities = append(activities, activity.Activity{
			ID:          e.ID,
			Type:        activity.TypeExperience,
			Title:       "Added experience at " + e.Company,
			Description: e.Role,
			Timestamp:   e.CreatedAt,
		})
	}

	projects, err := uc.projectRepo.ListRecentByOwner(ctx, input.OwnerID, projectQuota)
	if err != nil {
		uc.logger.Warn("Failed to fetch recent projects for activity feed", zap.Error(err))
	}
	for _, p := range projects {
		activities = append(activities, activity.Activity{
			ID:          p.ID,
			Type:        activity.TypeProject,
			Title:       "Added project: " + p.Title,
			Description: previewDescription(p.Description),
			Timestamp:   p.CreatedAt,
		})
	}

	skills, err := uc.skillRepo.ListRecentByOwner(ctx, input.OwnerID, skillQuota)
	if err != nil {
		uc.logger.Warn("Failed to fetch recent skills for activity feed", zap.Error(err))
	}
	for _, s := range skills {
		activities = append(activities, activity.Activity{
			ID:          s.ID,
			Type:        activity.TypeSkill,
			Title:       "Added skill: " + s.Name,
			Description: s.Level + " level",
			Timestamp:   s.CreatedAt,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > maxFeedSize {
		activities = activities[:maxFeedSize]
	}

	return &ComputeRecentOutput{Activities: activities}, nil
}

func previewDescription(desc string) string {
	runes := []rune(desc)
	if len(runes) > descriptionPreview {
		runes = runes[:descriptionPreview]
	}
	return string(runes) + "..."
}
