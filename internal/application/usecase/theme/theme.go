package theme

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/quangdng/folio-hub/internal/domain/theme"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type ThemeUseCase struct {
	repo   theme.Repository
	logger logger.Logger
}

func NewThemeUseCase(r theme.Repository, log logger.Logger) *ThemeUseCase {
	return &ThemeUseCase{repo: r, logger: log}
}

// Get resolves the owner's theme, falling back to the default palette when
// none has been saved yet.
func (uc *ThemeUseCase) Get(ctx context.Context, ownerID uuid.UUID) (*theme.Theme, error) {
	t, err := uc.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return theme.Default(ownerID), nil
		}
		return nil, err
	}
	return t, nil
}

type UpdateThemeInput struct {
	OwnerID         uuid.UUID
	PrimaryColor    string
	SecondaryColor  string
	BackgroundColor string
	TextColor       string
	AccentColor     string
	FontFamily      string
	Layout          string
}

// Update merges the submitted fields over the owner's current theme (or the
// default) and persists the result, so a partial form never blanks colors.
func (uc *ThemeUseCase) Update(ctx context.Context, in UpdateThemeInput) (*theme.Theme, error) {
	current, err := uc.Get(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	patch := &theme.Theme{
		PrimaryColor:    in.PrimaryColor,
		SecondaryColor:  in.SecondaryColor,
		BackgroundColor: in.BackgroundColor,
		TextColor:       in.TextColor,
		AccentColor:     in.AccentColor,
		FontFamily:      in.FontFamily,
		Layout:          in.Layout,
	}
	merged := current.Merge(patch)
	merged.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Upsert(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}
