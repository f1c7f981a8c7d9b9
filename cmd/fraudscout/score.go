package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/usecase"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/service"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
	grpcpresentation "github.com/georgchimion-oss/fraud-scout-lite/internal/presentation/grpc"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/tlsutil"
)

// exitCodeThreshold is returned when --fail-on is met.
const exitCodeThreshold = 2

type scoreFlags struct {
	factors  []string
	country  string
	band     string
	format   string
	failOn   string
	server   string
	caFile   string
	token    string
	useTLS   bool
	insecure bool
	timeout  time.Duration
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score risk factors, country and revenue band without storing anything",
		Example: `  fraudscout score --factor "Offshore Entities" --factor "Regulatory Issues" \
    --country "Cayman Islands" --band '$100M - $1B'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd.Context(), cmd.OutOrStdout(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&f.factors, "factor", nil, "Risk factor (may be repeated; duplicates are scored twice)")
	flags.StringVar(&f.country, "country", "", "Country of operations")
	flags.StringVar(&f.band, "band", "", "Revenue band, e.g. '$10M - $100M'")
	flags.StringVar(&f.format, "format", "text", "Output format: text or json")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit with code 2 when the tier is at least this one (Low, Medium, High, Critical)")
	flags.StringVar(&f.server, "server", "", "Score on a running fraudscoutd gRPC endpoint instead of locally")
	flags.StringVar(&f.caFile, "ca", "", "CA certificate for --server over TLS")
	flags.StringVar(&f.token, "token", "", "Bearer token for --server")
	flags.BoolVar(&f.useTLS, "tls", false, "Use TLS for --server")
	flags.BoolVar(&f.insecure, "insecure-skip-verify", false, "Skip TLS certificate verification (development only)")
	flags.DurationVar(&f.timeout, "timeout", 10*time.Second, "Timeout for --server calls")

	return cmd
}

func runScore(ctx context.Context, out io.Writer, f *scoreFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if f.format != "text" && f.format != "json" {
		return exitError(3, "unsupported format %q", f.format)
	}

	var threshold valueobject.RiskTier
	if f.failOn != "" {
		var err error
		if threshold, err = valueobject.RiskTierFromString(f.failOn); err != nil {
			return exitError(3, "invalid --fail-on: %v", err)
		}
	}

	req := dto.PreviewScoreRequest{
		Country:     f.country,
		RevenueBand: f.band,
		RiskFactors: f.factors,
	}

	var (
		result dto.ScoringResultResponse
		err    error
	)
	if f.server != "" {
		result, err = scoreRemote(ctx, f, req)
	} else {
		result, err = usecase.NewPreviewScore(service.NewScoringEngine()).Execute(ctx, req)
	}
	if err != nil {
		return err
	}

	if err := renderResult(out, f.format, result); err != nil {
		return err
	}

	if !threshold.IsZero() {
		tier, err := valueobject.RiskTierFromString(result.RiskTier)
		if err != nil {
			return err
		}
		if tier.Rank() >= threshold.Rank() {
			return exitError(exitCodeThreshold, "risk tier %s meets --fail-on %s", tier, threshold)
		}
	}
	return nil
}

func scoreRemote(ctx context.Context, f *scoreFlags, req dto.PreviewScoreRequest) (dto.ScoringResultResponse, error) {
	var creds credentials.TransportCredentials = insecure.NewCredentials()
	if f.useTLS || f.caFile != "" {
		var err error
		if creds, err = tlsutil.ClientTLSConfig(f.caFile, f.insecure); err != nil {
			return dto.ScoringResultResponse{}, err
		}
	}

	conn, err := grpclib.NewClient(f.server, grpclib.WithTransportCredentials(creds))
	if err != nil {
		return dto.ScoringResultResponse{}, fmt.Errorf("failed to dial %s: %w", f.server, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	if f.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+f.token)
	}

	resp, err := grpcpresentation.NewClient(conn).PreviewScore(ctx, &grpcpresentation.PreviewScoreRequest{
		Country:     req.Country,
		RevenueBand: req.RevenueBand,
		RiskFactors: req.RiskFactors,
	})
	if err != nil {
		return dto.ScoringResultResponse{}, fmt.Errorf("remote score: %w", err)
	}
	return dto.ScoringResultResponse{
		RiskScore: int(resp.RiskScore),
		RiskTier:  resp.RiskTier,
		Reasons:   resp.Reasons,
		RedFlags:  resp.RedFlags,
	}, nil
}

func renderResult(out io.Writer, format string, r dto.ScoringResultResponse) error {
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Risk score: %d (%s)\n", r.RiskScore, r.RiskTier)
	b.WriteString("Reasons:\n")
	for _, reason := range r.Reasons {
		fmt.Fprintf(&b, "  - %s\n", reason)
	}
	if len(r.RedFlags) == 0 {
		b.WriteString("Red flags: none\n")
	} else {
		b.WriteString("Red flags:\n")
		for _, flag := range r.RedFlags {
			fmt.Fprintf(&b, "  ! %s\n", flag)
		}
	}
	_, err := io.WriteString(out, b.String())
	return err
}
