package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portfolioUC "github.com/quangdng/folio-hub/internal/application/usecase/portfolio"
	profileUC "github.com/quangdng/folio-hub/internal/application/usecase/profile"
	"github.com/quangdng/folio-hub/internal/domain/education"
	"github.com/quangdng/folio-hub/internal/domain/experience"
	"github.com/quangdng/folio-hub/internal/domain/profile"
	"github.com/quangdng/folio-hub/internal/domain/project"
	"github.com/quangdng/folio-hub/internal/domain/skill"
	"github.com/quangdng/folio-hub/internal/domain/theme"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/auth"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type stubTokenStore struct {
	revoked map[string]bool
}

func (s *stubTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	s.revoked[tokenID] = true
	return nil
}

func (s *stubTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], nil
}

type stubProfileRepo struct {
	profiles []*profile.Profile
}

func (r *stubProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error { return nil }
func (r *stubProfileRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	for _, p := range r.profiles {
		if p.OwnerID == ownerID {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("profile", ownerID.String())
}
func (r *stubProfileRepo) FindByUsername(ctx context.Context, username string) ([]*profile.Profile, error) {
	var matches []*profile.Profile
	for _, p := range r.profiles {
		if p.Username == username {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

type stubExperienceRepo struct{}

func (r *stubExperienceRepo) Save(ctx context.Context, e *experience.Experience) error   { return nil }
func (r *stubExperienceRepo) Update(ctx context.Context, e *experience.Experience) error { return nil }
func (r *stubExperienceRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error    { return nil }
func (r *stubExperienceRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*experience.Experience, error) {
	return nil, apperror.NewNotFound("experience", id.String())
}
func (r *stubExperienceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return nil, nil
}
func (r *stubExperienceRepo) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*experience.Experience, error) {
	return nil, nil
}

type stubEducationRepo struct{}

func (r *stubEducationRepo) Save(ctx context.Context, e *education.Education) error   { return nil }
func (r *stubEducationRepo) Update(ctx context.Context, e *education.Education) error { return nil }
func (r *stubEducationRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error  { return nil }
func (r *stubEducationRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*education.Education, error) {
	return nil, apperror.NewNotFound("education", id.String())
}
func (r *stubEducationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	return nil, nil
}

type stubSkillRepo struct{}

func (r *stubSkillRepo) Save(ctx context.Context, s *skill.Skill) error          { return nil }
func (r *stubSkillRepo) Update(ctx context.Context, s *skill.Skill) error        { return nil }
func (r *stubSkillRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error { return nil }
func (r *stubSkillRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*skill.Skill, error) {
	return nil, apperror.NewNotFound("skill", id.String())
}
func (r *stubSkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return nil, nil
}
func (r *stubSkillRepo) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*skill.Skill, error) {
	return nil, nil
}

type stubProjectRepo struct{}

func (r *stubProjectRepo) Save(ctx context.Context, p *project.Project) error      { return nil }
func (r *stubProjectRepo) Update(ctx context.Context, p *project.Project) error    { return nil }
func (r *stubProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error { return nil }
func (r *stubProjectRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error) {
	return nil, apperror.NewNotFound("project", id.String())
}
func (r *stubProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return nil, nil
}
func (r *stubProjectRepo) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*project.Project, error) {
	return nil, nil
}

type stubThemeRepo struct{}

func (r *stubThemeRepo) Upsert(ctx context.Context, t *theme.Theme) error { return nil }
func (r *stubThemeRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*theme.Theme, error) {
	return nil, apperror.NewNotFound("theme", ownerID.String())
}

type apiFixture struct {
	router  *gin.Engine
	jwtSvc  *auth.JWTService
	tokens  *stubTokenStore
	ownerID uuid.UUID
}

func newAPIFixture(t *testing.T, profiles []*profile.Profile) *apiFixture {
	t.Helper()

	appLogger := logger.NewZapLogger("development")
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	tokens := &stubTokenStore{revoked: map[string]bool{}}

	profileRepo := &stubProfileRepo{profiles: profiles}
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, appLogger)
	publicViewUseCase := portfolioUC.NewPublicViewUseCase(
		profileRepo, &stubExperienceRepo{}, &stubEducationRepo{},
		&stubSkillRepo{}, &stubProjectRepo{}, &stubThemeRepo{}, appLogger,
	)

	profileHandler := NewProfileHandler(profileUseCase)
	portfolioHandler := NewPortfolioHandler(publicViewUseCase)
	authMiddleware := AuthMiddleware(jwtSvc, tokens, appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/profile/username-check", profileHandler.CheckUsername)
		}
		api.GET("/portfolio/:username", portfolioHandler.GetPublicPortfolio)
	}

	return &apiFixture{router: router, jwtSvc: jwtSvc, tokens: tokens, ownerID: uuid.New()}
}

func (f *apiFixture) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestUsernameCheck_RequiresAuth(t *testing.T) {
	f := newAPIFixture(t, nil)

	rr := f.get(t, "/api/profile/username-check?username=quang", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUsernameCheck_RejectsRevokedToken(t *testing.T) {
	f := newAPIFixture(t, nil)

	token, err := f.jwtSvc.GenerateToken(f.ownerID)
	require.NoError(t, err)
	claims, err := f.jwtSvc.ValidateToken(token)
	require.NoError(t, err)
	f.tokens.revoked[claims.ID] = true

	rr := f.get(t, "/api/profile/username-check?username=quang", token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUsernameCheck_Availability(t *testing.T) {
	otherOwner := uuid.New()
	f := newAPIFixture(t, []*profile.Profile{
		{OwnerID: otherOwner, Username: "taken", Name: "Other"},
	})

	token, err := f.jwtSvc.GenerateToken(f.ownerID)
	require.NoError(t, err)

	rr := f.get(t, "/api/profile/username-check?username=free", token)
	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["available"])

	rr = f.get(t, "/api/profile/username-check?username=taken", token)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["available"])
}

func TestPublicPortfolio_UnknownUsernameIs404(t *testing.T) {
	f := newAPIFixture(t, nil)

	rr := f.get(t, "/api/portfolio/ghost", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "not found", body["error"])
}

func TestPublicPortfolio_ResolvesByUsername(t *testing.T) {
	ownerID := uuid.New()
	f := newAPIFixture(t, []*profile.Profile{
		{OwnerID: ownerID, Username: "quang", Name: "Quang"},
	})

	rr := f.get(t, "/api/portfolio/quang", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body PublicPortfolioDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "quang", body.Profile.Username)
	// Theme falls back to the default palette when nothing is saved.
	assert.Equal(t, "#10b981", body.Theme.PrimaryColor)
}
