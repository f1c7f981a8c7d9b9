package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/usecase"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
)

// Compile-time assertion that RiskAssessmentHandler implements RiskAssessmentServiceServer.
var _ RiskAssessmentServiceServer = (*RiskAssessmentHandler)(nil)

// UseCases groups the application use cases served over gRPC.
type UseCases struct {
	ListCompanies          *usecase.ListCompanies
	GetCompany             *usecase.GetCompany
	ListCompanyAssessments *usecase.ListCompanyAssessments
	CreateAssessment       *usecase.CreateAssessment
	GetAssessment          *usecase.GetAssessment
	ScoreAssessment        *usecase.ScoreAssessment
	ReviewAssessment       *usecase.ReviewAssessment
	PreviewScore           *usecase.PreviewScore
}

// RiskAssessmentHandler implements the gRPC RiskAssessmentServiceServer interface.
type RiskAssessmentHandler struct {
	UnimplementedRiskAssessmentServiceServer
	uc     UseCases
	logger *slog.Logger
}

// NewRiskAssessmentHandler creates a new gRPC handler.
func NewRiskAssessmentHandler(uc UseCases, logger *slog.Logger) *RiskAssessmentHandler {
	return &RiskAssessmentHandler{uc: uc, logger: logger}
}

func (h *RiskAssessmentHandler) ListCompanies(ctx context.Context, req *ListCompaniesRequest) (*ListCompaniesResponse, error) {
	companies, err := h.uc.ListCompanies.Execute(ctx, dto.ListCompaniesRequest{Search: req.Search})
	if err != nil {
		return nil, h.toStatus(ctx, "ListCompanies", err)
	}

	out := make([]*CompanyMsg, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyMsg(c))
	}
	return &ListCompaniesResponse{Companies: out}, nil
}

func (h *RiskAssessmentHandler) GetCompany(ctx context.Context, req *GetCompanyRequest) (*GetCompanyResponse, error) {
	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	c, err := h.uc.GetCompany.Execute(ctx, dto.GetCompanyRequest{CompanyID: req.ID})
	if err != nil {
		return nil, h.toStatus(ctx, "GetCompany", err)
	}
	return &GetCompanyResponse{Company: toCompanyMsg(c)}, nil
}

func (h *RiskAssessmentHandler) ListCompanyAssessments(ctx context.Context, req *ListCompanyAssessmentsRequest) (*ListCompanyAssessmentsResponse, error) {
	if req.CompanyID == "" {
		return nil, status.Error(codes.InvalidArgument, "company_id is required")
	}

	list, err := h.uc.ListCompanyAssessments.Execute(ctx, dto.ListCompanyAssessmentsRequest{CompanyID: req.CompanyID})
	if err != nil {
		return nil, h.toStatus(ctx, "ListCompanyAssessments", err)
	}

	out := make([]*AssessmentMsg, 0, len(list))
	for _, a := range list {
		out = append(out, toAssessmentMsg(a))
	}
	return &ListCompanyAssessmentsResponse{Assessments: out}, nil
}

// CreateAssessment opens a new assessment for a company.
func (h *RiskAssessmentHandler) CreateAssessment(ctx context.Context, req *CreateAssessmentRequest) (*CreateAssessmentResponse, error) {
	if req.CompanyID == "" {
		return nil, status.Error(codes.InvalidArgument, "company_id is required")
	}

	a, err := h.uc.CreateAssessment.Execute(ctx, dto.CreateAssessmentRequest{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Notes:       req.Notes,
		Country:     req.Country,
		RevenueBand: req.RevenueBand,
		RiskFactors: req.RiskFactors,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "CreateAssessment", err)
	}
	return &CreateAssessmentResponse{Assessment: toAssessmentMsg(a)}, nil
}

func (h *RiskAssessmentHandler) GetAssessment(ctx context.Context, req *GetAssessmentRequest) (*GetAssessmentResponse, error) {
	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	a, err := h.uc.GetAssessment.Execute(ctx, dto.GetAssessmentRequest{AssessmentID: req.ID})
	if err != nil {
		return nil, h.toStatus(ctx, "GetAssessment", err)
	}
	return &GetAssessmentResponse{Assessment: toAssessmentMsg(a)}, nil
}

// ScoreAssessment runs the scoring engine on a stored Open assessment.
func (h *RiskAssessmentHandler) ScoreAssessment(ctx context.Context, req *ScoreAssessmentRequest) (*ScoreAssessmentResponse, error) {
	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	a, err := h.uc.ScoreAssessment.Execute(ctx, dto.ScoreAssessmentRequest{AssessmentID: req.ID})
	if err != nil {
		return nil, h.toStatus(ctx, "ScoreAssessment", err)
	}
	return &ScoreAssessmentResponse{Assessment: toAssessmentMsg(a)}, nil
}

func (h *RiskAssessmentHandler) ReviewAssessment(ctx context.Context, req *ReviewAssessmentRequest) (*ReviewAssessmentResponse, error) {
	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	a, err := h.uc.ReviewAssessment.Execute(ctx, dto.ReviewAssessmentRequest{AssessmentID: req.ID})
	if err != nil {
		return nil, h.toStatus(ctx, "ReviewAssessment", err)
	}
	return &ReviewAssessmentResponse{Assessment: toAssessmentMsg(a)}, nil
}

func (h *RiskAssessmentHandler) PreviewScore(ctx context.Context, req *PreviewScoreRequest) (*PreviewScoreResponse, error) {
	r, err := h.uc.PreviewScore.Execute(ctx, dto.PreviewScoreRequest{
		Country:     req.Country,
		RevenueBand: req.RevenueBand,
		RiskFactors: req.RiskFactors,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "PreviewScore", err)
	}
	return &PreviewScoreResponse{
		RiskScore: int32(r.RiskScore),
		RiskTier:  r.RiskTier,
		Reasons:   r.Reasons,
		RedFlags:  r.RedFlags,
	}, nil
}

// toStatus maps domain errors to gRPC status codes. Unexpected errors are
// logged and hidden behind codes.Internal.
func (h *RiskAssessmentHandler) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, model.ErrCompanyNotFound), errors.Is(err, model.ErrAssessmentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrAssessmentExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	h.logger.ErrorContext(ctx, "request failed",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
	return status.Error(codes.Internal, "internal error")
}

func toCompanyMsg(c dto.CompanyResponse) *CompanyMsg {
	return &CompanyMsg{
		ID:            c.ID,
		Name:          c.Name,
		Industry:      c.Industry,
		Region:        c.Region,
		Size:          c.Size,
		Country:       c.Country,
		AnnualRevenue: c.AnnualRevenue,
		RevenueBand:   c.RevenueBand,
		FoundedYear:   int32(c.FoundedYear),
	}
}

func toAssessmentMsg(a dto.AssessmentResponse) *AssessmentMsg {
	msg := &AssessmentMsg{
		ID:          a.ID,
		CompanyID:   a.CompanyID,
		Name:        a.Name,
		Notes:       a.Notes,
		Country:     a.Country,
		RevenueBand: a.RevenueBand,
		Status:      a.Status,
		RiskTier:    a.RiskTier,
		RiskFactors: a.RiskFactors,
		Reasons:     a.Reasons,
		RedFlags:    a.RedFlags,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		Version:     int32(a.Version),
	}
	if a.RiskScore != nil {
		score := int32(*a.RiskScore)
		msg.RiskScore = &score
	}
	if a.ScoredAt != nil {
		msg.ScoredAt = a.ScoredAt.Format(time.RFC3339)
	}
	if a.ReviewedAt != nil {
		msg.ReviewedAt = a.ReviewedAt.Format(time.RFC3339)
	}
	return msg
}
