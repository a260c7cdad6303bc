package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quangdng/folio-hub/internal/domain/education"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

var psqlEducation = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const educationColumns = `id, owner_id, school, degree, field, year, gpa, description, created_at, updated_at`

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.School, &e.Degree,
		&e.Field, &e.Year, &e.GPA, &e.Description,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	return e, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO educations (` + educationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.OwnerID, e.School, e.Degree,
		e.Field, e.Year, e.GPA, e.Description,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE educations SET
			school = $2, degree = $3, field = $4, year = $5,
			gpa = $6, description = $7, updated_at = NOW()
		WHERE id = $1 AND owner_id = $8
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.School, e.Degree, e.Field, e.Year,
		e.GPA, e.Description, e.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", e.ID.String())
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM educations WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", id.String())
	}
	return nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*education.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE id = $1 AND owner_id = $2`
	return scanEducation(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresEducationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	builder := psqlEducation.Select(educationColumns).
		From("educations").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list educations query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query educations by owner", err)
	}
	defer rows.Close()

	educations := make([]*education.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		educations = append(educations, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return educations, nil
}
