package grpc

import (
	"context"

	"github.com/dmitrijs2005/taskhub/internal/common"
	pb "github.com/dmitrijs2005/taskhub/internal/proto"
	"github.com/dmitrijs2005/taskhub/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// Methods that need an access token.
var protectedMethods = map[string]bool{
	pb.IdentityService_Logout_FullMethodName:               true,
	pb.IdentityService_InviteMembers_FullMethodName:        true,
	pb.IdentityService_AcceptInvitationById_FullMethodName: true,
	pb.IdentityService_ListMyInvitations_FullMethodName:    true,
}

// Methods that use an access token when one is sent.
var optionalAuthMethods = map[string]bool{
	pb.IdentityService_AcceptInvitation_FullMethodName: true,
}

// ClaimsFromContext returns the claims stored by the access token
// interceptor.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok && c != nil
}

func requireClaims(ctx context.Context) (*auth.Claims, error) {
	c, ok := ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}
	return c, nil
}

func accessTokenFrom(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	required := protectedMethods[info.FullMethod]
	if !required && !optionalAuthMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := accessTokenFrom(ctx)
	if accessToken == "" {
		if required {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}
		return handler(ctx, req)
	}

	claims, err := s.tokens.ParseAccess(accessToken)
	if err != nil {
		s.logger.Debug(ctx, "access token rejected", "method", info.FullMethod, "error", err.Error())
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return handler(context.WithValue(ctx, claimsKey, claims), req)
}
