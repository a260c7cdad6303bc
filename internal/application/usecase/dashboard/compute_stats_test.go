package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangdng/folio-hub/internal/domain/education"
	"github.com/quangdng/folio-hub/internal/domain/experience"
	"github.com/quangdng/folio-hub/internal/domain/profile"
	"github.com/quangdng/folio-hub/internal/domain/project"
	"github.com/quangdng/folio-hub/internal/domain/skill"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type stubProfileRepo struct {
	p   *profile.Profile
	err error
}

func (r *stubProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error { return nil }
func (r *stubProfileRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.p == nil {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	return r.p, nil
}
func (r *stubProfileRepo) FindByUsername(ctx context.Context, username string) ([]*profile.Profile, error) {
	return nil, nil
}

type stubExperienceRepo struct {
	items []*experience.Experience
	err   error
}

func (r *stubExperienceRepo) Save(ctx context.Context, e *experience.Experience) error   { return nil }
func (r *stubExperienceRepo) Update(ctx context.Context, e *experience.Experience) error { return nil }
func (r *stubExperienceRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error    { return nil }
func (r *stubExperienceRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*experience.Experience, error) {
	return nil, apperror.NewNotFound("experience", id.String())
}
func (r *stubExperienceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return r.items, r.err
}
func (r *stubExperienceRepo) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*experience.Experience, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.items) > limit {
		return r.items[:limit], nil
	}
	return r.items, nil
}

type stubEducationRepo struct {
	items []*education.Education
	err   error
}

func (r *stubEducationRepo) Save(ctx context.Context, e *education.Education) error   { return nil }
func (r *stubEducationRepo) Update(ctx context.Context, e *education.Education) error { return nil }
func (r *stubEducationRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error  { return nil }
func (r *stubEducationRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*education.Education, error) {
	return nil, apperror.NewNotFound("education", id.String())
}
func (r *stubEducationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	return r.items, r.err
}

type stubSkillRepo struct {
	items []*skill.Skill
	err   error
}

func (r *stubSkillRepo) Save(ctx context.Context, s *skill.Skill) error              { return nil }
func (r *stubSkillRepo) Update(ctx context.Context, s *skill.Skill) error            { return nil }
func (r *stubSkillRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error     { return nil }
func (r *stubSkillRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*skill.Skill, error) {
	return nil, apperror.NewNotFound("skill", id.String())
}
func (r *stubSkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return r.items, r.err
}
func (r *stubSkillRepo) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*skill.Skill, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.items) > limit {
		return r.items[:limit], nil
	}
	return r.items, nil
}

type stubProjectRepo struct {
	items []*project.Project
	err   error
}

func (r *stubProjectRepo) Save(ctx context.Context, p *project.Project) error   { return nil }
func (r *stubProjectRepo) Update(ctx context.Context, p *project.Project) error { return nil }
func (r *stubProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return nil
}
func (r *stubProjectRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error) {
	return nil, apperror.NewNotFound("project", id.String())
}
func (r *stubProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return r.items, r.err
}
func (r *stubProjectRepo) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*project.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.items) > limit {
		return r.items[:limit], nil
	}
	return r.items, nil
}

func makeExperiences(n int) []*experience.Experience {
	out := make([]*experience.Experience, n)
	for i := range out {
		out[i] = &experience.Experience{ID: uuid.New()}
	}
	return out
}

func makeEducations(n int) []*education.Education {
	out := make([]*education.Education, n)
	for i := range out {
		out[i] = &education.Education{ID: uuid.New()}
	}
	return out
}

func makeSkills(n int) []*skill.Skill {
	out := make([]*skill.Skill, n)
	for i := range out {
		out[i] = &skill.Skill{ID: uuid.New()}
	}
	return out
}

func makeProjects(n int) []*project.Project {
	out := make([]*project.Project, n)
	for i := range out {
		out[i] = &project.Project{ID: uuid.New()}
	}
	return out
}

func newStatsUseCase(
	p *stubProfileRepo,
	e *stubExperienceRepo,
	ed *stubEducationRepo,
	s *stubSkillRepo,
	pr *stubProjectRepo,
) *ComputeStatsUseCase {
	return NewComputeStatsUseCase(p, e, ed, s, pr, logger.NewZapLogger("development"))
}

func TestComputeStats_EmptyAccount(t *testing.T) {
	uc := newStatsUseCase(&stubProfileRepo{}, &stubExperienceRepo{}, &stubEducationRepo{}, &stubSkillRepo{}, &stubProjectRepo{})

	out, err := uc.Execute(context.Background(), ComputeStatsInput{OwnerID: uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Stats.ProfileComplete)
	assert.Equal(t, 0, out.Stats.ExperienceComplete)
	assert.Equal(t, 0, out.Stats.EducationComplete)
	assert.Equal(t, 0, out.Stats.SkillsComplete)
	assert.Equal(t, 0, out.Stats.ProjectsComplete)
	assert.Equal(t, 100, out.Stats.ThemeComplete)
	// round(100/6) = 17
	assert.Equal(t, 17, out.Stats.OverallComplete)
}

func TestComputeStats_ProfileOnly(t *testing.T) {
	uc := newStatsUseCase(
		&stubProfileRepo{p: &profile.Profile{OwnerID: uuid.New(), Name: "Q", Username: "quang"}},
		&stubExperienceRepo{}, &stubEducationRepo{}, &stubSkillRepo{}, &stubProjectRepo{},
	)

	out, err := uc.Execute(context.Background(), ComputeStatsInput{OwnerID: uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, 100, out.Stats.ProfileComplete)
	// round(200/6) = 33
	assert.Equal(t, 33, out.Stats.OverallComplete)
}

func TestComputeStats_SectionSteps(t *testing.T) {
	uc := newStatsUseCase(
		&stubProfileRepo{},
		&stubExperienceRepo{items: makeExperiences(2)},
		&stubEducationRepo{items: makeEducations(3)},
		&stubSkillRepo{items: makeSkills(7)},
		&stubProjectRepo{items: makeProjects(1)},
	)

	out, err := uc.Execute(context.Background(), ComputeStatsInput{OwnerID: uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, 40, out.Stats.ExperienceComplete)
	assert.Equal(t, 75, out.Stats.EducationComplete)
	assert.Equal(t, 70, out.Stats.SkillsComplete)
	assert.Equal(t, 20, out.Stats.ProjectsComplete)
}

func TestComputeStats_SectionsCapAt100(t *testing.T) {
	uc := newStatsUseCase(
		&stubProfileRepo{p: &profile.Profile{OwnerID: uuid.New(), Name: "Q", Username: "quang"}},
		&stubExperienceRepo{items: makeExperiences(9)},
		&stubEducationRepo{items: makeEducations(6)},
		&stubSkillRepo{items: makeSkills(25)},
		&stubProjectRepo{items: makeProjects(8)},
	)

	out, err := uc.Execute(context.Background(), ComputeStatsInput{OwnerID: uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, 100, out.Stats.ExperienceComplete)
	assert.Equal(t, 100, out.Stats.EducationComplete)
	assert.Equal(t, 100, out.Stats.SkillsComplete)
	assert.Equal(t, 100, out.Stats.ProjectsComplete)
	assert.Equal(t, 100, out.Stats.OverallComplete)
}

func TestComputeStats_OverallNeverDecreasesWithMoreContent(t *testing.T) {
	prev := -1
	for n := 0; n <= 12; n++ {
		uc := newStatsUseCase(
			&stubProfileRepo{},
			&stubExperienceRepo{}, &stubEducationRepo{},
			&stubSkillRepo{items: makeSkills(n)},
			&stubProjectRepo{},
		)
		out, err := uc.Execute(context.Background(), ComputeStatsInput{OwnerID: uuid.New()})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, out.Stats.OverallComplete, prev, "overall dropped when skills grew to %d", n)
		prev = out.Stats.OverallComplete
	}
}

func TestComputeStats_MissingProfileIsNotAFailure(t *testing.T) {
	uc := newStatsUseCase(&stubProfileRepo{}, &stubExperienceRepo{items: makeExperiences(1)}, &stubEducationRepo{}, &stubSkillRepo{}, &stubProjectRepo{})

	out, err := uc.Execute(context.Background(), ComputeStatsInput{OwnerID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, out.Profile)
	assert.Equal(t, 0, out.Stats.ProfileComplete)
}

func TestComputeStats_FetchFailureAbortsComputation(t *testing.T) {
	boom := errors.New("connection reset")
	uc := newStatsUseCase(
		&stubProfileRepo{p: &profile.Profile{OwnerID: uuid.New(), Name: "Q", Username: "quang"}},
		&stubExperienceRepo{err: boom},
		&stubEducationRepo{}, &stubSkillRepo{}, &stubProjectRepo{},
	)

	out, err := uc.Execute(context.Background(), ComputeStatsInput{OwnerID: uuid.New()})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
}
