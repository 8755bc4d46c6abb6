package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/taskhub/internal/proto"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timestampOf leaves unset times out of the message.
func timestampOf(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func profileToPB(p *models.Profile) *pb.UserProfile {
	if p == nil {
		return nil
	}
	return &pb.UserProfile{
		Id:              p.ID,
		Email:           p.Email,
		Name:            p.Name,
		Role:            p.Role,
		IsEmailVerified: p.IsEmailVerified,
		CreatedAt:       timestampOf(p.CreatedAt),
	}
}

func registrationToPB(ack *services.RegistrationAck) *pb.RegistrationResponse {
	return &pb.RegistrationResponse{
		Email:     ack.Email,
		ExpiresAt: timestampOf(ack.ExpiresAt),
		OtpSent:   ack.OtpSent,
	}
}

func invitationToPB(p *services.InvitationPreview) *pb.Invitation {
	if p == nil {
		return nil
	}
	return &pb.Invitation{
		Id:                 p.ID,
		Email:              p.Email,
		Status:             string(p.Status),
		ExpiresAt:          timestampOf(p.ExpiresAt),
		ProjectId:          p.ProjectID,
		ProjectName:        p.ProjectName,
		ProjectDescription: p.ProjectDescription,
		InviterName:        p.InviterName,
		CreatedAt:          timestampOf(p.CreatedAt),
	}
}

func projectToPB(p *models.Project) *pb.Project {
	if p == nil {
		return nil
	}
	return &pb.Project{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerId:     p.OwnerID,
		CreatedAt:   timestampOf(p.CreatedAt),
	}
}

func acceptToPB(r *services.AcceptResult) *pb.AcceptInvitationResponse {
	return &pb.AcceptInvitationResponse{
		Success:              r.Success,
		RequiresRegistration: r.RequiresRegistration,
		Invitation:           invitationToPB(r.Invitation),
		Project:              projectToPB(r.Project),
	}
}

func outcomesToPB(out []services.InviteOutcome) []*pb.InviteOutcome {
	res := make([]*pb.InviteOutcome, 0, len(out))
	for _, o := range out {
		res = append(res, &pb.InviteOutcome{
			Email:        o.Email,
			Status:       string(o.Status),
			InvitationId: o.InvitationID,
			Notified:     o.Notified,
		})
	}
	return res
}

func invitationsToPB(list []*services.InvitationPreview) []*pb.Invitation {
	res := make([]*pb.Invitation, 0, len(list))
	for _, p := range list {
		res = append(res, invitationToPB(p))
	}
	return res
}
