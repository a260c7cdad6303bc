package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/quangdng/folio-hub/adapters/persistence"
	authUC "github.com/quangdng/folio-hub/internal/application/usecase/auth"
	"github.com/quangdng/folio-hub/internal/config"
	"github.com/quangdng/folio-hub/internal/domain/user"
	"github.com/quangdng/folio-hub/pkg/auth"
	"github.com/quangdng/folio-hub/pkg/logger"
)

type AuthE2ETestSuite struct {
	suite.Suite
	Router   *gin.Engine
	testUser user.User
	testPass string
}

func (s *AuthE2ETestSuite) SetupSuite() {

	cfg, err := config.LoadConfig("../..")
	if err != nil {
		s.T().Fatalf("Failed to load config for E2E test: %v", err)
	}

	dbPool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		s.T().Fatalf("E2E test failed to connect postgres: %v", err)
	}

	appLogger := logger.NewZapLogger("development")

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		s.T().Fatalf("E2E test failed to connect redis: %v", err)
	}

	s.testPass = "e2e_test_password_123"
	hash, _ := auth.HashPassword(s.testPass)
	s.testUser = user.User{
		ID:           uuid.New(),
		Email:        "e2e_test@example.com",
		Name:         "E2E",
		PasswordHash: hash,
	}
	query := `INSERT INTO users (id, email, name, password_hash) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET password_hash = $4`
	_, err = dbPool.Exec(context.Background(), query, s.testUser.ID, s.testUser.Email, s.testUser.Name, s.testUser.PasswordHash)
	if err != nil {
		s.T().Fatalf("E2E test failed to seed user: %v", err)
	}

	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	tokenStore := persistence.NewRedisTokenStore(redisClient)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	authUseCase := authUC.NewAuthUseCase(userRepo, jwtSvc, tokenStore, appLogger)
	authHandler := NewAuthHandler(authUseCase)
	authMiddleware := AuthMiddleware(jwtSvc, tokenStore, appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authMiddleware, authHandler.Logout)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/health-auth", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "OK"})
			})
		}
	}

	s.Router = router
}

func (s *AuthE2ETestSuite) TearDownSuite() {}

func TestAuthE2E(t *testing.T) {

	if os.Getenv("E2E_TESTS") == "" {
		t.Skip("Skipping E2E tests. Set E2E_TESTS=1 to run.")
	}
	suite.Run(t, new(AuthE2ETestSuite))
}

func (s *AuthE2ETestSuite) Test_Login_Logout_Flow() {

	bodyBad, _ := json.Marshal(gin.H{"email": s.testUser.Email, "password": "wrongpassword"})
	reqBad := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(bodyBad))
	reqBad.Header.Set("Content-Type", "application/json")

	rrBad := httptest.NewRecorder()
	s.Router.ServeHTTP(rrBad, reqBad)

	assert.Equal(s.T(), http.StatusUnauthorized, rrBad.Code)

	bodyGood, _ := json.Marshal(gin.H{"email": s.testUser.Email, "password": s.testPass})
	reqGood := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(bodyGood))
	reqGood.Header.Set("Content-Type", "application/json")

	rrGood := httptest.NewRecorder()
	s.Router.ServeHTTP(rrGood, reqGood)

	assert.Equal(s.T(), http.StatusOK, rrGood.Code)

	var loginResponse map[string]string
	json.Unmarshal(rrGood.Body.Bytes(), &loginResponse)
	accessToken := loginResponse["access_token"]
	assert.NotEmpty(s.T(), accessToken)

	reqAuthed := httptest.NewRequest(http.MethodGet, "/api/health-auth", nil)
	reqAuthed.Header.Set("Authorization", "Bearer "+accessToken)
	rrAuthed := httptest.NewRecorder()
	s.Router.ServeHTTP(rrAuthed, reqAuthed)
	assert.Equal(s.T(), http.StatusOK, rrAuthed.Code)

	reqLogout := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	reqLogout.Header.Set("Authorization", "Bearer "+accessToken)
	rrLogout := httptest.NewRecorder()
	s.Router.ServeHTTP(rrLogout, reqLogout)
	assert.Equal(s.T(), http.StatusOK, rrLogout.Code)

	// Same token is rejected once revoked.
	reqAfter := httptest.NewRequest(http.MethodGet, "/api/health-auth", nil)
	reqAfter.Header.Set("Authorization", "Bearer "+accessToken)
	rrAfter := httptest.NewRecorder()
	s.Router.ServeHTTP(rrAfter, reqAfter)
	assert.Equal(s.T(), http.StatusUnauthorized, rrAfter.Code)
}
