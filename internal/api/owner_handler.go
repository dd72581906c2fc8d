package api

import (
	"net/http"
	"strings"

	"github.com/Jatin020403/quiz-api/internal/api/shared"
	"github.com/Jatin020403/quiz-api/internal/domain"
	"github.com/Jatin020403/quiz-api/internal/service"
)

// OwnerHandler serves account registration and login.
type OwnerHandler struct {
	owners service.OwnerService
}

// NewOwnerHandler creates an OwnerHandler.
func NewOwnerHandler(owners service.OwnerService) *OwnerHandler {
	return &OwnerHandler{owners: owners}
}

// AddStudent handles POST /add_student.
func (h *OwnerHandler) AddStudent(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, domain.RoleStudent)
}

// AddFaculty handles POST /add_faculty.
func (h *OwnerHandler) AddFaculty(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, domain.RoleFaculty)
}

func (h *OwnerHandler) register(w http.ResponseWriter, r *http.Request, role domain.Role) {
	form, err := decodeCredentials(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err)
		return
	}

	id, err := h.owners.Register(r.Context(), form.Username, form.Password, role)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), err)
		return
	}

	shared.RespondWithMessage(w, r, id)
}

// Login handles POST /login. Every completed check answers 200; the
// outcome is in the body.
func (h *OwnerHandler) Login(w http.ResponseWriter, r *http.Request) {
	form, err := decodeCredentials(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err)
		return
	}

	result, err := h.owners.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), err)
		return
	}

	resp := shared.LoginResponse{
		Status:  shared.StatusFail,
		TraceID: shared.GetTraceID(r.Context()),
	}
	switch result.Outcome {
	case service.LoginSuccess:
		resp.Status = shared.StatusSuccess
		resp.Message = "login successful"
		resp.UserID = result.OwnerID
		resp.Token = result.Token
	case service.LoginUnknownUser:
		resp.Message = "user does not exist"
	default:
		resp.Message = "incorrect password"
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

func decodeCredentials(r *http.Request) (*CredentialsForm, error) {
	if err := shared.ParseForm(r, 1<<20); err != nil {
		return nil, err
	}
	form := &CredentialsForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
	if err := shared.ValidateRequest(form); err != nil {
		return nil, err
	}
	return form, nil
}
