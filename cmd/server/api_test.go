package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jatin020403/quiz-api/internal/api/shared"
	"github.com/Jatin020403/quiz-api/internal/config"
	"github.com/Jatin020403/quiz-api/internal/domain"
	"github.com/Jatin020403/quiz-api/internal/generation"
	"github.com/Jatin020403/quiz-api/internal/mocks"
	"github.com/Jatin020403/quiz-api/internal/service/auth"
)

const testJWTSecret = "test-secret-that-is-long-enough-for-testing"

type testServer struct {
	handler http.Handler
	owners  *mocks.InMemoryOwnerStore
	model   *mocks.MockModelClient
	jwt     auth.JWTService
}

func newTestServer(t *testing.T, model *mocks.MockModelClient) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error", MaxUploadBytes: 1 << 20},
		Auth:   config.AuthConfig{JWTSecret: testJWTSecret, TokenLifetimeMinutes: 60, BCryptCost: 4},
	}
	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	app := &application{
		config:     cfg,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		jwtService: jwtService,
	}
	owners := mocks.NewInMemoryOwnerStore()
	require.NoError(t, app.wireServices(model, owners))

	return &testServer{handler: app.setupRouter(), owners: owners, model: model, jwt: jwtService}
}

func (s *testServer) post(t *testing.T, path string, form url.Values, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) seed(t *testing.T, username string) *domain.Owner {
	t.Helper()
	owner, err := domain.NewOwner(username, "hash", domain.RoleStudent)
	require.NoError(t, err)
	s.owners.Seed(owner)
	return owner
}

func messageBody(t *testing.T, rec *httptest.ResponseRecorder) shared.MessageResponse {
	t.Helper()
	var body shared.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHealthChecker(t *testing.T) {
	s := newTestServer(t, &mocks.MockModelClient{})

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/healthchecker", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := messageBody(t, rec)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "All Ok", body.Message)
	assert.NotEmpty(t, body.TraceID)
}

func TestCreateFlashStoresModelText(t *testing.T) {
	const points = `{"key_points_array":["a","b","c"],"number_of_key_points":3}`
	s := newTestServer(t, mocks.NewMockModelClientWithText(points))
	owner := s.seed(t, "u1")

	rec := s.post(t, "/api/create_flash", url.Values{
		"user_id": {owner.ID}, "topic": {"Photosynthesis"}, "count": {"3"},
	}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := messageBody(t, rec)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, points, body.Message)

	got, err := s.owners.GetByID(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Flashes, 1)
	assert.Equal(t, points, got.Flashes[0].Content)
	assert.Contains(t, s.model.Prompts()[0], "Photosynthesis")
}

func TestCreateFlashTransportFailureLeavesOwnerUnchanged(t *testing.T) {
	s := newTestServer(t, mocks.NewMockModelClientWithError(generation.ErrTransport))
	owner := s.seed(t, "u1")

	rec := s.post(t, "/api/create_flash", url.Values{
		"user_id": {owner.ID}, "topic": {"Photosynthesis"}, "count": {"3"},
	}, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "fail", messageBody(t, rec).Status)

	got, err := s.owners.GetByID(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Flashes)
}

func TestCreateQuizForMissingOwnerFails(t *testing.T) {
	s := newTestServer(t, mocks.NewMockModelClientWithText(`{"questions":[]}`))

	rec := s.post(t, "/api/create_quiz", url.Values{
		"user_id": {"missing-user"}, "topic": {"Topic"}, "count": {"2"},
	}, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "fail", messageBody(t, rec).Status)
	assert.Equal(t, 1, s.model.CallCount())
}

func TestRegisterLoginAndCreateWithToken(t *testing.T) {
	s := newTestServer(t, mocks.NewMockModelClientWithText("questions"))
	creds := url.Values{"username": {"ana"}, "password": {"s3cret"}}

	rec := s.post(t, "/api/add_student", creds, "")
	require.Equal(t, http.StatusOK, rec.Code)
	ownerID := messageBody(t, rec).Message

	rec = s.post(t, "/api/login", creds, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var login shared.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	require.Equal(t, "success", login.Status)
	assert.Equal(t, ownerID, login.UserID)

	claims, err := s.jwt.ValidateToken(context.Background(), login.Token)
	require.NoError(t, err)
	assert.Equal(t, ownerID, claims.OwnerID)
	assert.Equal(t, "student", claims.Role)

	rec = s.post(t, "/api/create_quiz", url.Values{"topic": {"Cells"}, "count": {"2"}}, login.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.post(t, "/api/create_quiz", url.Values{"user_id": {"other"}, "topic": {"Cells"}, "count": {"2"}}, login.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.post(t, "/api/create_quiz", url.Values{"topic": {"Cells"}, "count": {"2"}}, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	got, err := s.owners.GetByID(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, got.Quiz, 1)
}

func TestGenerateReturnsFullModelResponse(t *testing.T) {
	s := newTestServer(t, mocks.NewMockModelClientWithText("points"))

	rec := s.post(t, "/api/generate_flashcard", url.Values{
		"content_type": {"text"}, "request": {"r1"}, "content": {"Some notes"}, "count": {"2"},
	}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body shared.GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	text, err := generation.ExtractText(body.Response)
	require.NoError(t, err)
	assert.Equal(t, "points", text)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t, &mocks.MockModelClient{})

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/create_flash", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
