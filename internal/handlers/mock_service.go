package handlers

import (
	"context"
	"net/http"

	"github.com/harshjindal13/brainly-fullStack/internal/config"
	"github.com/harshjindal13/brainly-fullStack/internal/logger"
	"github.com/harshjindal13/brainly-fullStack/internal/models"
	"github.com/harshjindal13/brainly-fullStack/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockContents struct {
	createResp models.Content
	createErr  error
	listResp   []models.Content
	listErr    error
	deleteErr  error

	lastCreateUserID int
	lastCreateParams service.CreateContentParams
	lastListUserID   int
	lastListType     string
	lastDeleteUserID int
	lastDeleteID     string

	createCalls int
	listCalls   int
	deleteCalls int
}

func (m *mockContents) Create(ctx context.Context, userID int, p service.CreateContentParams) (models.Content, error) {
	m.createCalls++
	m.lastCreateUserID = userID
	m.lastCreateParams = p
	return m.createResp, m.createErr
}
func (m *mockContents) List(ctx context.Context, userID int, contentType string) ([]models.Content, error) {
	m.listCalls++
	m.lastListUserID = userID
	m.lastListType = contentType
	return m.listResp, m.listErr
}
func (m *mockContents) Delete(ctx context.Context, userID int, contentID string) error {
	m.deleteCalls++
	m.lastDeleteUserID = userID
	m.lastDeleteID = contentID
	return m.deleteErr
}

type mockSharing struct {
	setHash     string
	setErr      error
	resolveResp service.SharedBrain
	resolveErr  error

	lastSetUserID   int
	lastSetEnabled  bool
	lastResolveHash string

	setCalls     int
	resolveCalls int
}

func (m *mockSharing) SetSharing(ctx context.Context, userID int, enabled bool) (string, error) {
	m.setCalls++
	m.lastSetUserID = userID
	m.lastSetEnabled = enabled
	return m.setHash, m.setErr
}
func (m *mockSharing) Resolve(ctx context.Context, hash string) (service.SharedBrain, error) {
	m.resolveCalls++
	m.lastResolveHash = hash
	return m.resolveResp, m.resolveErr
}

// ---- Shared Test Helpers ----

func testConfig() *config.Config {
	return &config.Config{Env: logger.EnvLocal, Port: "8080"}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, testConfig())
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
