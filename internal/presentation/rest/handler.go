package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/usecase"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
)

const maxBodyBytes = 1 << 20

// UseCases groups the application use cases served over HTTP.
type UseCases struct {
	ListCompanies          *usecase.ListCompanies
	GetCompany             *usecase.GetCompany
	ListCompanyAssessments *usecase.ListCompanyAssessments
	CreateAssessment       *usecase.CreateAssessment
	GetAssessment          *usecase.GetAssessment
	ScoreAssessment        *usecase.ScoreAssessment
	ReviewAssessment       *usecase.ReviewAssessment
	PreviewScore           *usecase.PreviewScore
	GetReferenceData       *usecase.GetReferenceData
	GetSettings            *usecase.GetSettings
	ResetDemoData          *usecase.ResetDemoData
}

// Handler serves the JSON API.
type Handler struct {
	uc     UseCases
	logger *slog.Logger
}

// NewHandler creates a new REST handler.
func NewHandler(uc UseCases, logger *slog.Logger) *Handler {
	return &Handler{uc: uc, logger: logger}
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Reference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.uc.GetReferenceData.Execute())
}

// ListCompanies handles GET /api/v1/companies?search=.
func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.uc.ListCompanies.Execute(r.Context(), dto.ListCompaniesRequest{
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		h.writeDomainError(w, r, "ListCompanies", err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	c, err := h.uc.GetCompany.Execute(r.Context(), dto.GetCompanyRequest{CompanyID: chi.URLParam(r, "id")})
	if err != nil {
		h.writeDomainError(w, r, "GetCompany", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) ListCompanyAssessments(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListCompanyAssessments.Execute(r.Context(), dto.ListCompanyAssessmentsRequest{
		CompanyID: chi.URLParam(r, "id"),
	})
	if err != nil {
		h.writeDomainError(w, r, "ListCompanyAssessments", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// CreateAssessment handles POST /api/v1/companies/{id}/assessments. The
// company id in the path wins over any company_id in the body.
func (h *Handler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssessmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.CompanyID = chi.URLParam(r, "id")

	a, err := h.uc.CreateAssessment.Execute(r.Context(), req)
	if err != nil {
		h.writeDomainError(w, r, "CreateAssessment", err)
		return
	}
	w.Header().Set("Location", "/api/v1/assessments/"+a.ID)
	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	a, err := h.uc.GetAssessment.Execute(r.Context(), dto.GetAssessmentRequest{AssessmentID: chi.URLParam(r, "id")})
	if err != nil {
		h.writeDomainError(w, r, "GetAssessment", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) ScoreAssessment(w http.ResponseWriter, r *http.Request) {
	a, err := h.uc.ScoreAssessment.Execute(r.Context(), dto.ScoreAssessmentRequest{AssessmentID: chi.URLParam(r, "id")})
	if err != nil {
		h.writeDomainError(w, r, "ScoreAssessment", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) ReviewAssessment(w http.ResponseWriter, r *http.Request) {
	a, err := h.uc.ReviewAssessment.Execute(r.Context(), dto.ReviewAssessmentRequest{AssessmentID: chi.URLParam(r, "id")})
	if err != nil {
		h.writeDomainError(w, r, "ReviewAssessment", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// PreviewScore handles POST /api/v1/risk/score. Nothing is stored.
func (h *Handler) PreviewScore(w http.ResponseWriter, r *http.Request) {
	var req dto.PreviewScoreRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.uc.PreviewScore.Execute(r.Context(), req)
	if err != nil {
		h.writeDomainError(w, r, "PreviewScore", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.GetSettings.Execute(r.Context())
	if err != nil {
		h.writeDomainError(w, r, "GetSettings", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// ResetDemoData handles POST /api/v1/admin/reset. An empty body keeps the
// current dataset.
func (h *Handler) ResetDemoData(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetDemoDataRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}

	resp, err := h.uc.ResetDemoData.Execute(r.Context(), req)
	if err != nil {
		h.writeDomainError(w, r, "ResetDemoData", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "request body is required")
			return false
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// writeDomainError maps domain errors to HTTP status codes. Unexpected errors
// are logged and hidden behind a 500.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, model.ErrCompanyNotFound), errors.Is(err, model.ErrAssessmentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrInvalidTransition), errors.Is(err, model.ErrAssessmentExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg})
}
