package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quangdng/folio-hub/internal/domain/experience"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

var psqlExperience = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const experienceColumns = `id, owner_id, company, role, start_date, end_date, current, description, created_at, updated_at`

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Company, &e.Role,
		&e.StartDate, &e.EndDate, &e.Current, &e.Description,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("experience", "")
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}
	return e, nil
}

func scanExperiences(rows pgx.Rows) ([]*experience.Experience, error) {
	defer rows.Close()
	experiences := make([]*experience.Experience, 0)

	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return experiences, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	query := `
		INSERT INTO experiences (` + experienceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.OwnerID, e.Company, e.Role,
		e.StartDate, e.EndDate, e.Current, e.Description,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, e *experience.Experience) error {
	query := `
		UPDATE experiences SET
			company = $2, role = $3, start_date = $4, end_date = $5,
			current = $6, description = $7, updated_at = NOW()
		WHERE id = $1 AND owner_id = $8
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.Company, e.Role, e.StartDate, e.EndDate,
		e.Current, e.Description, e.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", e.ID.String())
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM experiences WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", id.String())
	}
	return nil
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*experience.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1 AND owner_id = $2`
	return scanExperience(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresExperienceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return r.list(ctx, ownerID, 0)
}

func (r *postgresExperienceRepo) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*experience.Experience, error) {
	return r.list(ctx, ownerID, limit)
}

func (r *postgresExperienceRepo) list(ctx context.Context, ownerID uuid.UUID, limit int) ([]*experience.Experience, error) {
	builder := psqlExperience.Select(experienceColumns).
		From("experiences").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experiences query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experiences by owner", err)
	}

	return scanExperiences(rows)
}
