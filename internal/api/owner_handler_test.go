package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jatin020403/quiz-api/internal/api/shared"
	"github.com/Jatin020403/quiz-api/internal/domain"
	"github.com/Jatin020403/quiz-api/internal/mocks"
	"github.com/Jatin020403/quiz-api/internal/service"
	"github.com/Jatin020403/quiz-api/internal/service/auth"
)

func newOwnerHandler(t *testing.T, owners *mocks.InMemoryOwnerStore) *OwnerHandler {
	t.Helper()
	svc, err := service.NewOwnerService(owners, auth.NewBcryptHasher(bcrypt.MinCost),
		&mocks.MockJWTService{Token: "signed-token"}, discardLogger())
	require.NoError(t, err)
	return NewOwnerHandler(svc)
}

func TestRegisterAndLogin(t *testing.T) {
	owners := mocks.NewInMemoryOwnerStore()
	h := newOwnerHandler(t, owners)
	creds := url.Values{"username": {"ana"}, "password": {"s3cret"}}

	rec := httptest.NewRecorder()
	h.AddFaculty(rec, formRequest(t, "/api/add_faculty", creds))
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[shared.MessageResponse](t, rec)
	assert.Equal(t, shared.StatusSuccess, created.Status)
	require.NotEmpty(t, created.Message)

	stored, err := owners.GetByID(t.Context(), created.Message)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleFaculty, stored.Role)
	assert.NotEqual(t, "s3cret", stored.HashedPassword)
	assert.Empty(t, stored.Flashes)
	assert.Empty(t, stored.Quiz)

	rec = httptest.NewRecorder()
	h.AddStudent(rec, formRequest(t, "/api/add_student", creds))
	assert.Equal(t, http.StatusConflict, rec.Code)

	tests := []struct {
		name        string
		values      url.Values
		wantStatus  string
		wantMessage string
		wantToken   string
	}{
		{"success", creds, shared.StatusSuccess, "login successful", "signed-token"},
		{"wrong password", url.Values{"username": {"ana"}, "password": {"nope"}}, shared.StatusFail, "incorrect password", ""},
		{"unknown user", url.Values{"username": {"bob"}, "password": {"s3cret"}}, shared.StatusFail, "user does not exist", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Login(rec, formRequest(t, "/api/login", tt.values))

			assert.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody[shared.LoginResponse](t, rec)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantToken, body.Token)
			if tt.wantToken != "" {
				assert.Equal(t, created.Message, body.UserID)
			}
		})
	}
}

func TestRegisterRejectsBadForm(t *testing.T) {
	h := newOwnerHandler(t, mocks.NewInMemoryOwnerStore())

	rec := httptest.NewRecorder()
	h.AddStudent(rec, formRequest(t, "/api/add_student", url.Values{"username": {"ana"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[shared.MessageResponse](t, rec)
	assert.Equal(t, `invalid form input: password failed "required"`, body.Message)
}
