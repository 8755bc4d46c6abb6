package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/taskhub/internal/proto"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/services"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegistrationResponse, error) {
	s.logger.Info(ctx, "registration request")

	ack, err := s.credentials.Register(ctx, services.RegisterRequest{
		Email: req.GetEmail(), Password: req.GetPassword(), Name: req.GetName(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return registrationToPB(ack), nil
}

func (s *GRPCServer) GenerateOtp(ctx context.Context, req *pb.GenerateOtpRequest) (*pb.RegistrationResponse, error) {
	ack, err := s.credentials.GenerateOtp(ctx, services.EmailRequest{Email: req.GetEmail()})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return registrationToPB(ack), nil
}

func (s *GRPCServer) VerifyOtp(ctx context.Context, req *pb.VerifyOtpRequest) (*pb.UserResponse, error) {
	profile, err := s.credentials.VerifyOtp(ctx, services.VerifyOtpRequest{Email: req.GetEmail(), Code: req.GetCode()})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UserResponse{User: profileToPB(profile)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	res, err := s.credentials.Login(ctx, services.LoginRequest{Email: req.GetEmail(), Password: req.GetPassword()})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "logged in", "user_id", res.User.ID)
	return &pb.LoginResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		User:         profileToPB(&res.User),
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	pair, err := s.credentials.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RefreshTokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.MessageResponse, error) {
	claims, err := requireClaims(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.credentials.Logout(ctx, claims.UserID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: "logged out"}, nil
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, req *pb.ForgotPasswordRequest) (*pb.MessageResponse, error) {
	ack, err := s.credentials.ForgotPassword(ctx, services.EmailRequest{Email: req.GetEmail()})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: ack.Message}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.MessageResponse, error) {
	ack, err := s.credentials.ResetPassword(ctx, services.ResetPasswordRequest{Token: req.GetToken(), NewPassword: req.GetNewPassword()})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: ack.Message}, nil
}

func (s *GRPCServer) ResendVerificationEmail(ctx context.Context, req *pb.ResendVerificationEmailRequest) (*pb.MessageResponse, error) {
	ack, err := s.credentials.ResendVerificationEmail(ctx, services.EmailRequest{Email: req.GetEmail()})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: ack.Message}, nil
}

func (s *GRPCServer) VerifyEmail(ctx context.Context, req *pb.VerifyEmailRequest) (*pb.UserResponse, error) {
	profile, err := s.credentials.VerifyEmail(ctx, req.GetToken())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UserResponse{User: profileToPB(profile)}, nil
}

func (s *GRPCServer) InviteMembers(ctx context.Context, req *pb.InviteMembersRequest) (*pb.InviteMembersResponse, error) {
	claims, err := requireClaims(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.invitations.InviteMembers(ctx, services.InviteRequest{
		ProjectID: req.GetProjectId(), InviterID: claims.UserID, Emails: req.GetEmails(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.InviteMembersResponse{Results: outcomesToPB(out)}, nil
}

func (s *GRPCServer) VerifyInvitation(ctx context.Context, req *pb.InvitationTokenRequest) (*pb.VerifyInvitationResponse, error) {
	preview, err := s.invitations.VerifyInvitation(ctx, req.GetToken())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.VerifyInvitationResponse{Invitation: invitationToPB(preview)}, nil
}

// AcceptInvitation works with or without an access token; without one the
// caller is asked to register first.
func (s *GRPCServer) AcceptInvitation(ctx context.Context, req *pb.InvitationTokenRequest) (*pb.AcceptInvitationResponse, error) {
	var userID string
	if claims, ok := ClaimsFromContext(ctx); ok {
		userID = claims.UserID
	}

	res, err := s.invitations.AcceptInvitation(ctx, req.GetToken(), userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return acceptToPB(res), nil
}

func (s *GRPCServer) AcceptInvitationById(ctx context.Context, req *pb.AcceptInvitationByIdRequest) (*pb.AcceptInvitationResponse, error) {
	claims, err := requireClaims(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.invitations.AcceptInvitationByID(ctx, req.GetId(), claims.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return acceptToPB(res), nil
}

func (s *GRPCServer) DeclineInvitation(ctx context.Context, req *pb.InvitationTokenRequest) (*pb.MessageResponse, error) {
	if err := s.invitations.DeclineInvitation(ctx, req.GetToken()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: string(models.InvitationDeclined)}, nil
}

func (s *GRPCServer) ListMyInvitations(ctx context.Context, _ *pb.ListMyInvitationsRequest) (*pb.ListMyInvitationsResponse, error) {
	claims, err := requireClaims(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.invitations.ListUserInvitations(ctx, claims.Email)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListMyInvitationsResponse{Invitations: invitationsToPB(list)}, nil
}
