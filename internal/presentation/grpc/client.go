package grpc

import (
	"context"

	grpclib "google.golang.org/grpc"
)

// Client is a typed RiskAssessmentService client. Every call uses the JSON codec.
type Client struct {
	cc grpclib.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpclib.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, req any, opts []grpclib.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCompanies(ctx context.Context, req *ListCompaniesRequest, opts ...grpclib.CallOption) (*ListCompaniesResponse, error) {
	return invoke[ListCompaniesResponse](ctx, c, MethodListCompanies, req, opts)
}

func (c *Client) GetCompany(ctx context.Context, req *GetCompanyRequest, opts ...grpclib.CallOption) (*GetCompanyResponse, error) {
	return invoke[GetCompanyResponse](ctx, c, MethodGetCompany, req, opts)
}

func (c *Client) ListCompanyAssessments(ctx context.Context, req *ListCompanyAssessmentsRequest, opts ...grpclib.CallOption) (*ListCompanyAssessmentsResponse, error) {
	return invoke[ListCompanyAssessmentsResponse](ctx, c, MethodListCompanyAssessments, req, opts)
}

func (c *Client) CreateAssessment(ctx context.Context, req *CreateAssessmentRequest, opts ...grpclib.CallOption) (*CreateAssessmentResponse, error) {
	return invoke[CreateAssessmentResponse](ctx, c, MethodCreateAssessment, req, opts)
}

func (c *Client) GetAssessment(ctx context.Context, req *GetAssessmentRequest, opts ...grpclib.CallOption) (*GetAssessmentResponse, error) {
	return invoke[GetAssessmentResponse](ctx, c, MethodGetAssessment, req, opts)
}

func (c *Client) ScoreAssessment(ctx context.Context, req *ScoreAssessmentRequest, opts ...grpclib.CallOption) (*ScoreAssessmentResponse, error) {
	return invoke[ScoreAssessmentResponse](ctx, c, MethodScoreAssessment, req, opts)
}

func (c *Client) ReviewAssessment(ctx context.Context, req *ReviewAssessmentRequest, opts ...grpclib.CallOption) (*ReviewAssessmentResponse, error) {
	return invoke[ReviewAssessmentResponse](ctx, c, MethodReviewAssessment, req, opts)
}

func (c *Client) PreviewScore(ctx context.Context, req *PreviewScoreRequest, opts ...grpclib.CallOption) (*PreviewScoreResponse, error) {
	return invoke[PreviewScoreResponse](ctx, c, MethodPreviewScore, req, opts)
}
