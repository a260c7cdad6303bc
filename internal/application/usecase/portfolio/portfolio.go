package portfolio

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/quangdng/folio-hub/internal/domain/education"
	"github.com/quangdng/folio-hub/internal/domain/experience"
	"github.com/quangdng/folio-hub/internal/domain/profile"
	"github.com/quangdng/folio-hub/internal/domain/project"
	"github.com/quangdng/folio-hub/internal/domain/skill"
	"github.com/quangdng/folio-hub/internal/domain/theme"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

// PublicViewUseCase assembles the read-only portfolio served at
// /portfolio/:username.
type PublicViewUseCase struct {
	profileRepo    profile.Repository
	experienceRepo experience.Repository
	educationRepo  education.Repository
	skillRepo      skill.Repository
	projectRepo    project.Repository
	themeRepo      theme.Repository
	logger         logger.Logger
}

func NewPublicViewUseCase(
	profileRepo profile.Repository,
	experienceRepo experience.Repository,
	educationRepo education.Repository,
	skillRepo skill.Repository,
	projectRepo project.Repository,
	themeRepo theme.Repository,
	log logger.Logger,
) *PublicViewUseCase {
	return &PublicViewUseCase{
		profileRepo:    profileRepo,
		experienceRepo: experienceRepo,
		educationRepo:  educationRepo,
		skillRepo:      skillRepo,
		projectRepo:    projectRepo,
		themeRepo:      themeRepo,
		logger:         log,
	}
}

type PublicViewOutput struct {
	Profile     *profile.Profile
	Experiences []*experience.Experience
	Educations  []*education.Education
	Skills      []*skill.Skill
	Projects    []*project.Project
	Theme       *theme.Theme
}

func (uc *PublicViewUseCase) Execute(ctx context.Context, username string) (*PublicViewOutput, error) {
	matches, err := uc.profileRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, apperror.NewNotFound("portfolio", username)
	}
	// Usernames are unique by index; should legacy duplicates exist, the
	// first match resolves.
	p := matches[0]
	ownerID := p.OwnerID

	out := &PublicViewOutput{Profile: p}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		experiences, err := uc.experienceRepo.ListByOwner(gctx, ownerID)
		if err != nil {
			return err
		}
		out.Experiences = experiences
		return nil
	})
	g.Go(func() error {
		educations, err := uc.educationRepo.ListByOwner(gctx, ownerID)
		if err != nil {
			return err
		}
		out.Educations = educations
		return nil
	})
	g.Go(func() error {
		skills, err := uc.skillRepo.ListByOwner(gctx, ownerID)
		if err != nil {
			return err
		}
		out.Skills = skills
		return nil
	})
	g.Go(func() error {
		projects, err := uc.projectRepo.ListByOwner(gctx, ownerID)
		if err != nil {
			return err
		}
		out.Projects = projects
		return nil
	})
	g.Go(func() error {
		t, err := uc.themeRepo.FindByOwner(gctx, ownerID)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				out.Theme = theme.Default(ownerID)
				return nil
			}
			return err
		}
		out.Theme = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
