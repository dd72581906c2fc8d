package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Jatin020403/quiz-api/internal/api/shared"
	"github.com/Jatin020403/quiz-api/internal/domain"
	"github.com/Jatin020403/quiz-api/internal/platform/logger"
	"github.com/Jatin020403/quiz-api/internal/platform/pdf"
	"github.com/Jatin020403/quiz-api/internal/redact"
	"github.com/Jatin020403/quiz-api/internal/service"
)

// uploadFields are the multipart keys checked for an uploaded document.
var uploadFields = []string{"file", "files"}

// ContentHandler serves the generate and create endpoints.
type ContentHandler struct {
	content        service.ContentService
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewContentHandler creates a ContentHandler. Uploads larger than
// maxUploadBytes are rejected.
func NewContentHandler(content service.ContentService, maxUploadBytes int64, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &ContentHandler{
		content:        content,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With("component", "content_handler"),
	}
}

// GenerateFlashcard handles POST /generate_flashcard.
func (h *ContentHandler) GenerateFlashcard(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, domain.KindFlashcard)
}

// GenerateQuiz handles POST /generate_quiz.
func (h *ContentHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, domain.KindQuiz)
}

// CreateFlash handles POST /create_flash.
func (h *ContentHandler) CreateFlash(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.KindFlashcard)
}

// CreateQuiz handles POST /create_quiz.
func (h *ContentHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.KindQuiz)
}

// limitBody caps the request body at the upload limit plus room for the
// text fields.
func (h *ContentHandler) limitBody(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+1<<20)
}

func (h *ContentHandler) generate(w http.ResponseWriter, r *http.Request, kind domain.ArtifactKind) {
	h.limitBody(w, r)
	if err := shared.ParseForm(r, h.maxUploadBytes); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err)
		return
	}

	form, err := h.decodeGenerateForm(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), err)
		return
	}

	h.log(r).InfoContext(r.Context(), "generate requested",
		"kind", kind.String(),
		"content_type", form.ContentType,
		"request", form.Request,
		"count", form.Count)

	// The model call outlives a disconnecting client; the model client's
	// own timeout still applies.
	ctx := context.WithoutCancel(r.Context())
	result, err := h.content.Generate(ctx, kind, form.Content, form.Count)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.GenerateResponse{
		Status:   shared.StatusSuccess,
		Response: result.Response,
		TraceID:  shared.GetTraceID(r.Context()),
	})
}

func (h *ContentHandler) decodeGenerateForm(r *http.Request) (*GenerateForm, error) {
	count, err := shared.FormInt(r, "count", 0)
	if err != nil {
		return nil, err
	}
	form := &GenerateForm{
		ContentType: strings.ToLower(strings.TrimSpace(r.FormValue("content_type"))),
		Request:     r.FormValue("request"),
		Content:     r.FormValue("content"),
		Count:       count,
	}
	if form.ContentType == "" {
		form.ContentType = ContentTypeText
	}
	if err := shared.ValidateRequest(form); err != nil {
		return nil, err
	}

	if form.ContentType == ContentTypePDF {
		text, err := h.readUploadedPDF(r)
		if err != nil {
			return nil, err
		}
		form.Content = text
	}

	if strings.TrimSpace(form.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", shared.ErrBadForm)
	}
	return form, nil
}

func (h *ContentHandler) readUploadedPDF(r *http.Request) (string, error) {
	for _, field := range uploadFields {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", shared.ErrBadForm, err)
		}
		defer file.Close()

		if header.Size > h.maxUploadBytes {
			return "", fmt.Errorf("%w: file exceeds %d bytes", shared.ErrBadForm, h.maxUploadBytes)
		}
		text, err := pdf.ExtractText(file, header.Size)
		if err != nil {
			h.log(r).WarnContext(r.Context(), "failed to extract pdf text",
				"filename", header.Filename,
				"size", header.Size,
				"error", redact.Error(err))
			return "", err
		}
		return text, nil
	}
	return "", fmt.Errorf("%w: content_type pdf requires a file", shared.ErrBadForm)
}

func (h *ContentHandler) create(w http.ResponseWriter, r *http.Request, kind domain.ArtifactKind) {
	h.limitBody(w, r)
	if err := shared.ParseForm(r, h.maxUploadBytes); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err)
		return
	}

	count, err := shared.FormInt(r, "count", 0)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err)
		return
	}
	form := CreateForm{
		UserID: strings.TrimSpace(r.FormValue("user_id")),
		Topic:  r.FormValue("topic"),
		Count:  count,
	}

	if tokenOwner, ok := shared.GetOwnerID(r.Context()); ok {
		if form.UserID == "" {
			form.UserID = tokenOwner
		} else if form.UserID != tokenOwner {
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, ErrForbidden)
			return
		}
	}

	if err := shared.ValidateRequest(form); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	artifact, err := h.content.Create(ctx, kind, form.UserID, form.Topic, form.Count)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), err)
		return
	}

	shared.RespondWithMessage(w, r, artifact.Text())
}

func (h *ContentHandler) log(r *http.Request) *slog.Logger {
	if l, ok := logger.FromContext(r.Context()); ok {
		return l.With("component", "content_handler")
	}
	return h.logger
}
