package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/port"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// CreateAssessment is the use case for opening an assessment against a company.
type CreateAssessment struct {
	companies   port.CompanyRepository
	assessments port.AssessmentRepository
	publisher   port.EventPublisher
	clock       Clock
	logger      *slog.Logger
}

// NewCreateAssessment creates a new CreateAssessment use case.
func NewCreateAssessment(
	companies port.CompanyRepository,
	assessments port.AssessmentRepository,
	publisher port.EventPublisher,
	clock Clock,
	logger *slog.Logger,
) *CreateAssessment {
	return &CreateAssessment{
		companies:   companies,
		assessments: assessments,
		publisher:   publisher,
		clock:       clock,
		logger:      logger,
	}
}

// Execute validates the request, fills defaults from the company and stores
// an Open assessment.
func (uc *CreateAssessment) Execute(ctx context.Context, req dto.CreateAssessmentRequest) (dto.AssessmentResponse, error) {
	ctx, span := tracer.Start(ctx, "CreateAssessment")
	defer span.End()
	span.SetAttributes(attribute.String("company.id", req.CompanyID))

	// 1. The company must exist; it supplies the defaults.
	company, err := uc.companies.FindByID(ctx, req.CompanyID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to find company: %w", err)
	}

	factors, err := parseFactors(req.RiskFactors)
	if err != nil {
		return dto.AssessmentResponse{}, err
	}

	country := strings.TrimSpace(req.Country)
	if country == "" {
		country = company.Country
	}

	band := valueobject.DefaultBand
	if company.AnnualRevenue.IsPositive() {
		band = company.RevenueBand()
	}
	if req.RevenueBand != "" {
		band = valueobject.RevenueBand(req.RevenueBand)
		if !band.Known() {
			return dto.AssessmentResponse{}, fmt.Errorf("%w: unknown revenue band %q", model.ErrValidation, req.RevenueBand)
		}
	}

	// 2. Build the aggregate.
	assessment, err := model.NewAssessment(
		uuid.NewString(),
		company.ID,
		req.Name,
		req.Notes,
		country,
		band,
		factors,
		uc.clock(),
	)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	// 3. Persist.
	if err := uc.assessments.Create(ctx, assessment); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to save assessment: %w", err)
	}

	// 4. Publish domain events.
	publishEvents(ctx, uc.publisher, uc.logger, assessment.DomainEvents())

	return dto.FromModel(assessment), nil
}

// parseFactors accepts only known factors, each at most once.
func parseFactors(labels []string) ([]valueobject.RiskFactor, error) {
	factors := make([]valueobject.RiskFactor, 0, len(labels))
	seen := make(map[valueobject.RiskFactor]bool, len(labels))
	for _, label := range labels {
		f := valueobject.RiskFactor(label)
		if !f.Known() {
			return nil, fmt.Errorf("%w: unknown risk factor %q", model.ErrValidation, label)
		}
		if seen[f] {
			return nil, fmt.Errorf("%w: risk factor %q selected more than once", model.ErrValidation, label)
		}
		seen[f] = true
		factors = append(factors, f)
	}
	return factors, nil
}
