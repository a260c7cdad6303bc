package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/quangdng/folio-hub/internal/domain/profile"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

var psqlProfile = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const profileColumns = `owner_id, name, email, username, professional_title, professional_category, bio, location, contact_info, social_links, profile_picture_url, cv_file_url, created_at, updated_at`

func (r *postgresProfileRepo) scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	var contactBytes, socialBytes []byte

	err := row.Scan(
		&p.OwnerID,
		&p.Name,
		&p.Email,
		&p.Username,
		&p.ProfessionalTitle,
		&p.ProfessionalCategory,
		&p.Bio,
		&p.Location,
		&contactBytes,
		&socialBytes,
		&p.ProfilePictureURL,
		&p.CVFileURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}

	if err := json.Unmarshal(contactBytes, &p.ContactInfo); err != nil {
		r.logger.Warn("Failed to unmarshal contact_info", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.ContactInfo = profile.ContactInfo{}
	}
	if err := json.Unmarshal(socialBytes, &p.SocialLinks); err != nil {
		r.logger.Warn("Failed to unmarshal social_links", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.SocialLinks = profile.SocialLinks{}
	}

	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	contactBytes, err := json.Marshal(p.ContactInfo)
	if err != nil {
		return apperror.NewInternal("failed to marshal contact_info", err)
	}
	socialBytes, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return apperror.NewInternal("failed to marshal social_links", err)
	}

	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (owner_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			username = EXCLUDED.username,
			professional_title = EXCLUDED.professional_title,
			professional_category = EXCLUDED.professional_category,
			bio = EXCLUDED.bio,
			location = EXCLUDED.location,
			contact_info = EXCLUDED.contact_info,
			social_links = EXCLUDED.social_links,
			profile_picture_url = EXCLUDED.profile_picture_url,
			cv_file_url = EXCLUDED.cv_file_url,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query,
		p.OwnerID, p.Name, p.Email, p.Username,
		p.ProfessionalTitle, p.ProfessionalCategory, p.Bio, p.Location,
		contactBytes, socialBytes, p.ProfilePictureURL, p.CVFileURL,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		// The unique index on username is what actually guarantees
		// uniqueness; the pre-flight availability check is advisory only.
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("profile", "username", p.Username)
		}
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE owner_id = $1`
	return r.scanProfile(r.db.QueryRow(ctx, query, ownerID))
}

func (r *postgresProfileRepo) FindByUsername(ctx context.Context, username string) ([]*profile.Profile, error) {
	builder := psqlProfile.Select(profileColumns).
		From("profiles").
		Where(sq.Eq{"username": username})

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build find by username query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query profiles by username", err)
	}
	defer rows.Close()

	profiles := make([]*profile.Profile, 0)
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating profile rows", err)
	}
	return profiles, nil
}
