package dashboard

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/quangdng/folio-hub/internal/domain/education"
	"github.com/quangdng/folio-hub/internal/domain/experience"
	"github.com/quangdng/folio-hub/internal/domain/profile"
	"github.com/quangdng/folio-hub/internal/domain/project"
	"github.com/quangdng/folio-hub/internal/domain/skill"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

// Per-section completion steps: a section reaches 100% after
// 100/step entries (5 experiences, 4 educations, 10 skills, 5 projects).
const (
	experienceStep = 20
	educationStep  = 25
	skillStep      = 10
	projectStep    = 20
)

type ComputeStatsUseCase struct {
	profileRepo    profile.Repository
	experienceRepo experience.Repository
	educationRepo  education.Repository
	skillRepo      skill.Repository
	projectRepo    project.Repository
	logger         logger.Logger
}

func NewComputeStatsUseCase(
	profileRepo profile.Repository,
	experienceRepo experience.Repository,
	educationRepo education.Repository,
	skillRepo skill.Repository,
	projectRepo project.Repository,
	log logger.Logger,
) *ComputeStatsUseCase {
	return &ComputeStatsUseCase{
		profileRepo:    profileRepo,
		experienceRepo: experienceRepo,
		educationRepo:  educationRepo,
		skillRepo:      skillRepo,
		projectRepo:    projectRepo,
		logger:         log,
	}
}

type Stats struct {
	ProfileComplete    int `json:"profile_complete"`
	ExperienceComplete int `json:"experience_complete"`
	EducationComplete  int `json:"education_complete"`
	SkillsComplete     int `json:"skills_complete"`
	ProjectsComplete   int `json:"projects_complete"`
	ThemeComplete      int `json:"theme_complete"`
	OverallComplete    int `json:"overall_complete"`
}

type ComputeStatsInput struct {
	OwnerID uuid.UUID
}

type ComputeStatsOutput struct {
	Profile     *profile.Profile
	Experiences []*experience.Experience
	Educations  []*education.Education
	Skills      []*skill.Skill
	Projects    []*project.Project
	Stats       Stats
}

var tracer = otel.Tracer("dashboard_usecase")

// Execute issues the five reads concurrently and waits on all of them
// together: one failed fetch fails the whole computation, there is no
// partial stats object.
func (uc *ComputeStatsUseCase) Execute(ctx context.Context, input ComputeStatsInput) (*ComputeStatsOutput, error) {
	ctx, span := tracer.Start(ctx, "ComputeStats")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", input.OwnerID.String()))

	out := &ComputeStatsOutput{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := uc.profileRepo.FindByOwner(gctx, input.OwnerID)
		if err != nil {
			// Absence is a valid state (section scores 0), not a failure.
			if errors.Is(err, apperror.ErrNotFound) {
				return nil
			}
			return err
		}
		out.Profile = p
		return nil
	})
	g.Go(func() error {
		experiences, err := uc.experienceRepo.ListByOwner(gctx, input.OwnerID)
		if err != nil {
			return err
		}
		out.Experiences = experiences
		return nil
	})
	g.Go(func() error {
		educations, err := uc.educationRepo.ListByOwner(gctx, input.OwnerID)
		if err != nil {
			return err
		}
		out.Educations = educations
		return nil
	})
	g.Go(func() error {
		skills, err := uc.skillRepo.ListByOwner(gctx, input.OwnerID)
		if err != nil {
			return err
		}
		out.Skills = skills
		return nil
	})
	g.Go(func() error {
		projects, err := uc.projectRepo.ListByOwner(gctx, input.OwnerID)
		if err != nil {
			return err
		}
		out.Projects = projects
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	out.Stats = computeStats(out)
	return out, nil
}

func computeStats(out *ComputeStatsOutput) Stats {
	stats := Stats{
		ExperienceComplete: sectionScore(len(out.Experiences), experienceStep),
		EducationComplete:  sectionScore(len(out.Educations), educationStep),
		SkillsComplete:     sectionScore(len(out.Skills), skillStep),
		ProjectsComplete:   sectionScore(len(out.Projects), projectStep),
		// The default theme always counts as complete.
		ThemeComplete: 100,
	}
	if out.Profile != nil {
		stats.ProfileComplete = 100
	}

	sum := stats.ProfileComplete +
		stats.ExperienceComplete +
		stats.EducationComplete +
		stats.SkillsComplete +
		stats.ProjectsComplete +
		stats.ThemeComplete
	stats.OverallComplete = int(math.Round(float64(sum) / 6.0))

	return stats
}

func sectionScore(count, step int) int {
	score := count * step
	if score > 100 {
		return 100
	}
	return score
}
