// Package client is a Go client for the taskhub identity service. It keeps
// the session tokens returned by Login and transparently refreshes an
// expired access token once before giving up on a call.
package client

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/taskhub/internal/common"
	pb "github.com/dmitrijs2005/taskhub/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.IdentityServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string

	// refreshMu serializes token rotation so concurrent calls that all saw
	// the same expired token refresh only once.
	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.Tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || method == pb.IdentityService_RefreshToken_FullMethodName || refresh == "" || !isTokenExpired(err) {
		return err
	}

	if rerr := s.refreshExpired(ctx, access); rerr != nil {
		return err
	}

	access, _ = s.Tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

// refreshExpired rotates the session unless another call already replaced
// the expired access token while this one waited for refreshMu.
func (s *GRPCClient) refreshExpired(ctx context.Context, expired string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	if access, _ := s.Tokens(); access != expired {
		return nil
	}
	_, err := s.Refresh(ctx)
	return err
}

// NewIdentityClient connects to endpointURL. Extra dial options are appended
// after the defaults (insecure transport, token interceptor).
func NewIdentityClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewIdentityServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Tokens returns the current session tokens.
func (s *GRPCClient) Tokens() (access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

// SetTokens restores a session saved from an earlier Tokens call.
func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx, &pb.PingRequest{})
	return mapError(err)
}

func (s *GRPCClient) Register(ctx context.Context, email, password, name string) (*pb.RegistrationResponse, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) GenerateOtp(ctx context.Context, email string) (*pb.RegistrationResponse, error) {
	resp, err := s.client.GenerateOtp(ctx, &pb.GenerateOtpRequest{Email: email})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) VerifyOtp(ctx context.Context, email, code string) (*pb.UserProfile, error) {
	resp, err := s.client.VerifyOtp(ctx, &pb.VerifyOtpRequest{Email: email, Code: code})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetUser(), nil
}

// Login starts a session; later calls carry its access token.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (*pb.UserProfile, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	s.SetTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return resp.GetUser(), nil
}

// Refresh rotates the session tokens.
func (s *GRPCClient) Refresh(ctx context.Context) (*pb.RefreshTokenResponse, error) {
	_, refresh := s.Tokens()
	if refresh == "" {
		return nil, ErrNotLoggedIn
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return nil, mapError(err)
	}
	s.SetTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return resp, nil
}

// Logout ends the session on the server and forgets the local tokens.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{}); err != nil {
		return mapError(err)
	}
	s.SetTokens("", "")
	return nil
}

func (s *GRPCClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	resp, err := s.client.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: email})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetMessage(), nil
}

func (s *GRPCClient) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	resp, err := s.client.ResetPassword(ctx, &pb.ResetPasswordRequest{Token: token, NewPassword: newPassword})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetMessage(), nil
}

func (s *GRPCClient) ResendVerificationEmail(ctx context.Context, email string) (string, error) {
	resp, err := s.client.ResendVerificationEmail(ctx, &pb.ResendVerificationEmailRequest{Email: email})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetMessage(), nil
}

func (s *GRPCClient) VerifyEmail(ctx context.Context, token string) (*pb.UserProfile, error) {
	resp, err := s.client.VerifyEmail(ctx, &pb.VerifyEmailRequest{Token: token})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetUser(), nil
}

func (s *GRPCClient) InviteMembers(ctx context.Context, projectID string, emails ...string) ([]*pb.InviteOutcome, error) {
	resp, err := s.client.InviteMembers(ctx, &pb.InviteMembersRequest{ProjectId: projectID, Emails: emails})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetResults(), nil
}

func (s *GRPCClient) VerifyInvitation(ctx context.Context, token string) (*pb.Invitation, error) {
	resp, err := s.client.VerifyInvitation(ctx, &pb.InvitationTokenRequest{Token: token})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetInvitation(), nil
}

// AcceptInvitation accepts as the logged-in user, or reports that the
// invitee has to register first when there is no session.
func (s *GRPCClient) AcceptInvitation(ctx context.Context, token string) (*pb.AcceptInvitationResponse, error) {
	resp, err := s.client.AcceptInvitation(ctx, &pb.InvitationTokenRequest{Token: token})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) AcceptInvitationByID(ctx context.Context, id string) (*pb.AcceptInvitationResponse, error) {
	resp, err := s.client.AcceptInvitationById(ctx, &pb.AcceptInvitationByIdRequest{Id: id})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) DeclineInvitation(ctx context.Context, token string) error {
	_, err := s.client.DeclineInvitation(ctx, &pb.InvitationTokenRequest{Token: token})
	return mapError(err)
}

func (s *GRPCClient) ListMyInvitations(ctx context.Context) ([]*pb.Invitation, error) {
	resp, err := s.client.ListMyInvitations(ctx, &pb.ListMyInvitationsRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetInvitations(), nil
}
