package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quangdng/folio-hub/internal/domain/theme"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type postgresThemeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresThemeRepo(db *pgxpool.Pool, logger logger.Logger) theme.Repository {
	return &postgresThemeRepo{db: db, logger: logger}
}

func (r *postgresThemeRepo) Upsert(ctx context.Context, t *theme.Theme) error {
	query := `
		INSERT INTO themes (owner_id, primary_color, secondary_color, background_color, text_color, accent_color, font_family, layout, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (owner_id) DO UPDATE SET
			primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			background_color = EXCLUDED.background_color,
			text_color = EXCLUDED.text_color,
			accent_color = EXCLUDED.accent_color,
			font_family = EXCLUDED.font_family,
			layout = EXCLUDED.layout,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		t.OwnerID, t.PrimaryColor, t.SecondaryColor, t.BackgroundColor,
		t.TextColor, t.AccentColor, t.FontFamily, t.Layout, t.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert theme", err)
	}
	return nil
}

func (r *postgresThemeRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*theme.Theme, error) {
	query := `
		SELECT owner_id, primary_color, secondary_color, background_color, text_color, accent_color, font_family, layout, updated_at
		FROM themes
		WHERE owner_id = $1
	`
	t := &theme.Theme{}
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&t.OwnerID, &t.PrimaryColor, &t.SecondaryColor, &t.BackgroundColor,
		&t.TextColor, &t.AccentColor, &t.FontFamily, &t.Layout, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("theme", ownerID.String())
		}
		return nil, apperror.NewInternal("failed to query theme", err)
	}
	return t, nil
}
