package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangdng/folio-hub/internal/domain/profile"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type stubProfileRepo struct {
	byOwner    *profile.Profile
	byUsername []*profile.Profile
	findErr    error
	upsertErr  error
	upserted   *profile.Profile
}

func (r *stubProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.upserted = p
	return nil
}

func (r *stubProfileRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	if r.byOwner == nil {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	return r.byOwner, nil
}

func (r *stubProfileRepo) FindByUsername(ctx context.Context, username string) ([]*profile.Profile, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.byUsername, nil
}

func newUseCase(repo *stubProfileRepo) *ProfileUseCase {
	return NewProfileUseCase(repo, logger.NewZapLogger("development"))
}

func TestCheckUsername_ShortNamesAreAvailable(t *testing.T) {
	uc := newUseCase(&stubProfileRepo{})

	for _, username := range []string{"", "a", "ab"} {
		available, err := uc.CheckUsername(context.Background(), username, uuid.New())
		require.NoError(t, err)
		assert.True(t, available, "expected %q to be reported available", username)
	}
}

func TestCheckUsername_Unclaimed(t *testing.T) {
	uc := newUseCase(&stubProfileRepo{})

	available, err := uc.CheckUsername(context.Background(), "quang", uuid.New())
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCheckUsername_OwnUsernameStaysAvailable(t *testing.T) {
	ownerID := uuid.New()
	uc := newUseCase(&stubProfileRepo{
		byUsername: []*profile.Profile{{OwnerID: ownerID, Username: "quang"}},
	})

	available, err := uc.CheckUsername(context.Background(), "quang", ownerID)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCheckUsername_TakenByAnotherOwner(t *testing.T) {
	uc := newUseCase(&stubProfileRepo{
		byUsername: []*profile.Profile{{OwnerID: uuid.New(), Username: "quang"}},
	})

	available, err := uc.CheckUsername(context.Background(), "quang", uuid.New())
	require.NoError(t, err)
	assert.False(t, available)
}

func TestCheckUsername_LookupFailure(t *testing.T) {
	uc := newUseCase(&stubProfileRepo{findErr: errors.New("connection reset")})

	available, err := uc.CheckUsername(context.Background(), "quang", uuid.New())
	require.Error(t, err)
	assert.False(t, available)
}

func TestUpsert_ValidatesUsername(t *testing.T) {
	uc := newUseCase(&stubProfileRepo{})

	_, err := uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:  uuid.New(),
		Name:     "Quang",
		Email:    "q@example.com",
		Username: "has spaces!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpsert_PropagatesConflict(t *testing.T) {
	conflict := apperror.NewConflict("profile", "username", "quang")
	uc := newUseCase(&stubProfileRepo{upsertErr: conflict})

	_, err := uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:  uuid.New(),
		Name:     "Quang",
		Email:    "q@example.com",
		Username: "quang",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestUpsert_PersistsAllFields(t *testing.T) {
	repo := &stubProfileRepo{}
	uc := newUseCase(repo)

	p, err := uc.Upsert(context.Background(), UpsertProfileInput{
		OwnerID:           uuid.New(),
		Name:              "Quang",
		Email:             "q@example.com",
		Username:          "quang",
		ProfessionalTitle: "Engineer",
		Bio:               "hello",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, "quang", repo.upserted.Username)
	assert.Equal(t, "Engineer", p.ProfessionalTitle)
	assert.False(t, p.UpdatedAt.IsZero())
}
