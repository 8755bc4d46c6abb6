// Package grpc exposes the identity and invitation services over gRPC using
// the taskhub.identity.v1 protobuf API. The access token travels in the
// "access_token" metadata key.
package grpc

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/logging"
	pb "github.com/dmitrijs2005/taskhub/internal/proto"
	"github.com/dmitrijs2005/taskhub/internal/server/auth"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// CredentialService is the account and session API the server calls.
type CredentialService interface {
	Register(ctx context.Context, req services.RegisterRequest) (*services.RegistrationAck, error)
	GenerateOtp(ctx context.Context, req services.EmailRequest) (*services.RegistrationAck, error)
	VerifyOtp(ctx context.Context, req services.VerifyOtpRequest) (*models.Profile, error)
	Login(ctx context.Context, req services.LoginRequest) (*services.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	Logout(ctx context.Context, userID string) error
	ForgotPassword(ctx context.Context, req services.EmailRequest) (*services.Ack, error)
	ResetPassword(ctx context.Context, req services.ResetPasswordRequest) (*services.Ack, error)
	ResendVerificationEmail(ctx context.Context, req services.EmailRequest) (*services.Ack, error)
	VerifyEmail(ctx context.Context, token string) (*models.Profile, error)
}

// InvitationService is the invitation API the server calls.
type InvitationService interface {
	InviteMembers(ctx context.Context, req services.InviteRequest) ([]services.InviteOutcome, error)
	VerifyInvitation(ctx context.Context, token string) (*services.InvitationPreview, error)
	AcceptInvitation(ctx context.Context, token, userID string) (*services.AcceptResult, error)
	AcceptInvitationByID(ctx context.Context, id, userID string) (*services.AcceptResult, error)
	DeclineInvitation(ctx context.Context, token string) error
	ListUserInvitations(ctx context.Context, email string) ([]*services.InvitationPreview, error)
}

// AccessTokenParser validates access tokens. *auth.Issuer satisfies it.
type AccessTokenParser interface {
	ParseAccess(token string) (*auth.Claims, error)
}

type GRPCServer struct {
	pb.UnimplementedIdentityServiceServer

	address     string
	credentials CredentialService
	invitations InvitationService
	tokens      AccessTokenParser
	logger      logging.Logger
}

var _ pb.IdentityServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, cs CredentialService, is InvitationService, tp AccessTokenParser) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		credentials: cs,
		invitations: is,
		tokens:      tp,
	}
}

// newServer builds the grpc.Server with the identity and health services
// registered.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)

	pb.RegisterIdentityServiceServer(srv, s)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.IdentityService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv, hs
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start).String(),
	)
	return resp, err
}
