package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quangdng/folio-hub/internal/domain/asset"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type postgresAssetRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAssetRepo(db *pgxpool.Pool, logger logger.Logger) asset.Repository {
	return &postgresAssetRepo{db: db, logger: logger}
}

var psqlAsset = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const assetColumns = `id, owner_id, kind, provider, url, thumbnail_url, file_name, file_size, content_type, status, created_at, updated_at`

func scanAsset(row pgx.Row) (*asset.Asset, error) {
	a := &asset.Asset{}
	err := row.Scan(
		&a.ID, &a.OwnerID, &a.Kind, &a.Provider,
		&a.URL, &a.ThumbnailURL, &a.FileName, &a.FileSize,
		&a.ContentType, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("asset", "")
		}
		return nil, apperror.NewInternal("failed to scan asset row", err)
	}
	return a, nil
}

func (r *postgresAssetRepo) Save(ctx context.Context, a *asset.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.OwnerID, a.Kind, a.Provider,
		a.URL, a.ThumbnailURL, a.FileName, a.FileSize,
		a.ContentType, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save asset", err)
	}
	return nil
}

func (r *postgresAssetRepo) Update(ctx context.Context, a *asset.Asset) error {
	query := `
		UPDATE assets SET
			url = $2, thumbnail_url = $3, status = $4, updated_at = NOW()
		WHERE id = $1 AND owner_id = $5
	`
	cmdTag, err := r.db.Exec(ctx, query, a.ID, a.URL, a.ThumbnailURL, a.Status, a.OwnerID)
	if err != nil {
		return apperror.NewInternal("failed to update asset", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("asset", a.ID.String())
	}
	return nil
}

func (r *postgresAssetRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM assets WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete asset", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("asset", id.String())
	}
	return nil
}

func (r *postgresAssetRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*asset.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1 AND owner_id = $2`
	return scanAsset(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresAssetRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*asset.Asset, error) {
	builder := psqlAsset.Select(assetColumns).
		From("assets").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list assets query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query assets by owner", err)
	}
	defer rows.Close()

	assets := make([]*asset.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating asset rows", err)
	}
	return assets, nil
}
