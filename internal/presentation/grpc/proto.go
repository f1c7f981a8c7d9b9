package grpc

// proto.go holds the RiskAssessmentService contract: message structs, the
// server interface and its service descriptor. Messages travel with the JSON
// codec registered in codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "fraudscout.v1.RiskAssessmentService"

// Full method names, used for auth and role configuration.
const (
	MethodListCompanies          = "/" + ServiceName + "/ListCompanies"
	MethodGetCompany             = "/" + ServiceName + "/GetCompany"
	MethodListCompanyAssessments = "/" + ServiceName + "/ListCompanyAssessments"
	MethodCreateAssessment       = "/" + ServiceName + "/CreateAssessment"
	MethodGetAssessment          = "/" + ServiceName + "/GetAssessment"
	MethodScoreAssessment        = "/" + ServiceName + "/ScoreAssessment"
	MethodReviewAssessment       = "/" + ServiceName + "/ReviewAssessment"
	MethodPreviewScore           = "/" + ServiceName + "/PreviewScore"
)

// CompanyMsg represents a company.
type CompanyMsg struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Industry      string `json:"industry"`
	Region        string `json:"region"`
	Size          string `json:"size"`
	Country       string `json:"country"`
	AnnualRevenue string `json:"annual_revenue"`
	RevenueBand   string `json:"revenue_band"`
	FoundedYear   int32  `json:"founded_year"`
}

// AssessmentMsg represents an assessment. Scoring fields are empty while the
// assessment is Open; timestamps are RFC 3339.
type AssessmentMsg struct {
	RiskScore   *int32   `json:"risk_score,omitempty"`
	ID          string   `json:"id"`
	CompanyID   string   `json:"company_id"`
	Name        string   `json:"name"`
	Notes       string   `json:"notes"`
	Country     string   `json:"country"`
	RevenueBand string   `json:"revenue_band"`
	Status      string   `json:"status"`
	RiskTier    string   `json:"risk_tier,omitempty"`
	CreatedAt   string   `json:"created_at"`
	ScoredAt    string   `json:"scored_at,omitempty"`
	ReviewedAt  string   `json:"reviewed_at,omitempty"`
	RiskFactors []string `json:"risk_factors"`
	Reasons     []string `json:"reasons,omitempty"`
	RedFlags    []string `json:"red_flags,omitempty"`
	Version     int32    `json:"version"`
}

type ListCompaniesRequest struct {
	Search string `json:"search"`
}

type ListCompaniesResponse struct {
	Companies []*CompanyMsg `json:"companies"`
}

type GetCompanyRequest struct {
	ID string `json:"id"`
}

type GetCompanyResponse struct {
	Company *CompanyMsg `json:"company"`
}

type ListCompanyAssessmentsRequest struct {
	CompanyID string `json:"company_id"`
}

type ListCompanyAssessmentsResponse struct {
	Assessments []*AssessmentMsg `json:"assessments"`
}

type CreateAssessmentRequest struct {
	CompanyID   string   `json:"company_id"`
	Name        string   `json:"name"`
	Notes       string   `json:"notes"`
	Country     string   `json:"country"`
	RevenueBand string   `json:"revenue_band"`
	RiskFactors []string `json:"risk_factors"`
}

type CreateAssessmentResponse struct {
	Assessment *AssessmentMsg `json:"assessment"`
}

type GetAssessmentRequest struct {
	ID string `json:"id"`
}

type GetAssessmentResponse struct {
	Assessment *AssessmentMsg `json:"assessment"`
}

type ScoreAssessmentRequest struct {
	ID string `json:"id"`
}

type ScoreAssessmentResponse struct {
	Assessment *AssessmentMsg `json:"assessment"`
}

type ReviewAssessmentRequest struct {
	ID string `json:"id"`
}

type ReviewAssessmentResponse struct {
	Assessment *AssessmentMsg `json:"assessment"`
}

type PreviewScoreRequest struct {
	Country     string   `json:"country"`
	RevenueBand string   `json:"revenue_band"`
	RiskFactors []string `json:"risk_factors"`
}

type PreviewScoreResponse struct {
	RiskTier  string   `json:"risk_tier"`
	Reasons   []string `json:"reasons"`
	RedFlags  []string `json:"red_flags"`
	RiskScore int32    `json:"risk_score"`
}

// RiskAssessmentServiceServer is the server API for RiskAssessmentService.
type RiskAssessmentServiceServer interface {
	ListCompanies(context.Context, *ListCompaniesRequest) (*ListCompaniesResponse, error)
	GetCompany(context.Context, *GetCompanyRequest) (*GetCompanyResponse, error)
	ListCompanyAssessments(context.Context, *ListCompanyAssessmentsRequest) (*ListCompanyAssessmentsResponse, error)
	CreateAssessment(context.Context, *CreateAssessmentRequest) (*CreateAssessmentResponse, error)
	GetAssessment(context.Context, *GetAssessmentRequest) (*GetAssessmentResponse, error)
	ScoreAssessment(context.Context, *ScoreAssessmentRequest) (*ScoreAssessmentResponse, error)
	ReviewAssessment(context.Context, *ReviewAssessmentRequest) (*ReviewAssessmentResponse, error)
	PreviewScore(context.Context, *PreviewScoreRequest) (*PreviewScoreResponse, error)
	mustEmbedUnimplementedRiskAssessmentServiceServer()
}

// UnimplementedRiskAssessmentServiceServer provides forward-compatible default implementations.
type UnimplementedRiskAssessmentServiceServer struct{}

func (UnimplementedRiskAssessmentServiceServer) ListCompanies(context.Context, *ListCompaniesRequest) (*ListCompaniesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCompanies not implemented")
}
func (UnimplementedRiskAssessmentServiceServer) GetCompany(context.Context, *GetCompanyRequest) (*GetCompanyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCompany not implemented")
}
func (UnimplementedRiskAssessmentServiceServer) ListCompanyAssessments(context.Context, *ListCompanyAssessmentsRequest) (*ListCompanyAssessmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCompanyAssessments not implemented")
}
func (UnimplementedRiskAssessmentServiceServer) CreateAssessment(context.Context, *CreateAssessmentRequest) (*CreateAssessmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateAssessment not implemented")
}
func (UnimplementedRiskAssessmentServiceServer) GetAssessment(context.Context, *GetAssessmentRequest) (*GetAssessmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAssessment not implemented")
}
func (UnimplementedRiskAssessmentServiceServer) ScoreAssessment(context.Context, *ScoreAssessmentRequest) (*ScoreAssessmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreAssessment not implemented")
}
func (UnimplementedRiskAssessmentServiceServer) ReviewAssessment(context.Context, *ReviewAssessmentRequest) (*ReviewAssessmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewAssessment not implemented")
}
func (UnimplementedRiskAssessmentServiceServer) PreviewScore(context.Context, *PreviewScoreRequest) (*PreviewScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewScore not implemented")
}
func (UnimplementedRiskAssessmentServiceServer) mustEmbedUnimplementedRiskAssessmentServiceServer() {}

// RegisterRiskAssessmentServiceServer registers the service with the gRPC server.
func RegisterRiskAssessmentServiceServer(s grpclib.ServiceRegistrar, srv RiskAssessmentServiceServer) {
	s.RegisterService(&riskAssessmentServiceDesc, srv)
}

var riskAssessmentServiceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RiskAssessmentServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ListCompanies", Handler: unaryHandler(MethodListCompanies, RiskAssessmentServiceServer.ListCompanies)},
		{MethodName: "GetCompany", Handler: unaryHandler(MethodGetCompany, RiskAssessmentServiceServer.GetCompany)},
		{MethodName: "ListCompanyAssessments", Handler: unaryHandler(MethodListCompanyAssessments, RiskAssessmentServiceServer.ListCompanyAssessments)},
		{MethodName: "CreateAssessment", Handler: unaryHandler(MethodCreateAssessment, RiskAssessmentServiceServer.CreateAssessment)},
		{MethodName: "GetAssessment", Handler: unaryHandler(MethodGetAssessment, RiskAssessmentServiceServer.GetAssessment)},
		{MethodName: "ScoreAssessment", Handler: unaryHandler(MethodScoreAssessment, RiskAssessmentServiceServer.ScoreAssessment)},
		{MethodName: "ReviewAssessment", Handler: unaryHandler(MethodReviewAssessment, RiskAssessmentServiceServer.ReviewAssessment)},
		{MethodName: "PreviewScore", Handler: unaryHandler(MethodPreviewScore, RiskAssessmentServiceServer.PreviewScore)},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "fraudscout/v1/risk_assessment.proto",
}

// unaryHandler adapts a typed server method to grpc.MethodDesc, running the
// server's interceptor chain the way generated code does.
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(RiskAssessmentServiceServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpclib.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
		req := new(Req)
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RiskAssessmentServiceServer), ctx, req)
		}
		info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RiskAssessmentServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, req, info, handler)
	}
}
