package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quangdng/folio-hub/internal/domain/profile"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type ProfileUseCase struct {
	repo   profile.Repository
	logger logger.Logger
}

func NewProfileUseCase(r profile.Repository, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{repo: r, logger: log}
}

func (uc *ProfileUseCase) Get(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	return uc.repo.FindByOwner(ctx, ownerID)
}

type UpsertProfileInput struct {
	OwnerID              uuid.UUID
	Name                 string
	Email                string
	Username             string
	ProfessionalTitle    string
	ProfessionalCategory string
	Bio                  string
	Location             string
	ContactInfo          profile.ContactInfo
	SocialLinks          profile.SocialLinks
	ProfilePictureURL    *string
	CVFileURL            *string
}

func (uc *ProfileUseCase) Upsert(ctx context.Context, in UpsertProfileInput) (*profile.Profile, error) {
	now := time.Now().UTC()
	p := &profile.Profile{
		OwnerID:              in.OwnerID,
		Name:                 in.Name,
		Email:                in.Email,
		Username:             in.Username,
		ProfessionalTitle:    in.ProfessionalTitle,
		ProfessionalCategory: in.ProfessionalCategory,
		Bio:                  in.Bio,
		Location:             in.Location,
		ContactInfo:          in.ContactInfo,
		SocialLinks:          in.SocialLinks,
		ProfilePictureURL:    in.ProfilePictureURL,
		CVFileURL:            in.CVFileURL,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("profile validation failed", err)
	}
	// The repository maps a username unique violation to a Conflict, which
	// is what actually closes the check-then-write race.
	if err := uc.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CheckUsername reports whether a username can be claimed by ownerID: it is
// available when nobody holds it, or when the only holder is the caller's
// own profile. Usernames shorter than three characters are reported as
// available; validation rejects them at save time anyway.
func (uc *ProfileUseCase) CheckUsername(ctx context.Context, username string, ownerID uuid.UUID) (bool, error) {
	if len(username) < 3 {
		return true, nil
	}

	matches, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}

	if len(matches) == 0 {
		return true, nil
	}
	if len(matches) == 1 && matches[0].OwnerID == ownerID {
		return true, nil
	}
	return false, nil
}
