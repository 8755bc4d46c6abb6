package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/logging"
	pb "github.com/dmitrijs2005/taskhub/internal/proto"
	"github.com/dmitrijs2005/taskhub/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestIssuer() *auth.Issuer {
	return auth.NewIssuer("access-secret", "refresh-secret", time.Hour, 24*time.Hour, nil)
}

// helper to build server
func newTestServer(issuer *auth.Issuer) *GRPCServer {
	return NewGRPCServer("", logging.Nop{}, nil, nil, issuer)
}

func withToken(token string) context.Context {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_UnprotectedAllowsWithoutToken(t *testing.T) {
	s := newTestServer(newTestIssuer())

	called := false
	h := func(ctx context.Context, req any) (any, error) {
		called = true
		_, ok := ClaimsFromContext(ctx)
		assert.False(t, ok)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: pb.IdentityService_Login_FullMethodName}, h)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_ProtectedMissingToken(t *testing.T) {
	s := newTestServer(newTestIssuer())

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	for method := range protectedMethods {
		_, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: method}, h)
		require.Error(t, err, method)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
		assert.Equal(t, "missing token", status.Convert(err).Message())
	}
}

func TestInterceptor_ProtectedInvalidToken(t *testing.T) {
	issuer := newTestIssuer()
	s := newTestServer(issuer)

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(withToken("not-a-valid-jwt"), nil, &grpc.UnaryServerInfo{FullMethod: pb.IdentityService_Logout_FullMethodName}, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	// a refresh token is signed with the other secret
	pair, err := issuer.IssuePair(auth.Identity{UserID: "u1"})
	require.NoError(t, err)
	_, err = s.accessTokenInterceptor(withToken(pair.RefreshToken), nil, &grpc.UnaryServerInfo{FullMethod: pb.IdentityService_Logout_FullMethodName}, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptor_ValidTokenSetsClaims(t *testing.T) {
	issuer := newTestIssuer()
	s := newTestServer(issuer)

	pair, err := issuer.IssuePair(auth.Identity{UserID: "user-123", Email: "bob@x.com", Role: "member"})
	require.NoError(t, err)

	var got *auth.Claims
	h := func(ctx context.Context, req any) (any, error) {
		got, _ = ClaimsFromContext(ctx)
		return "ok", nil
	}

	_, err = s.accessTokenInterceptor(withToken(pair.AccessToken), nil, &grpc.UnaryServerInfo{FullMethod: pb.IdentityService_ListMyInvitations_FullMethodName}, h)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-123", got.UserID)
	assert.Equal(t, "bob@x.com", got.Email)
}

func TestInterceptor_OptionalToken(t *testing.T) {
	issuer := newTestIssuer()
	s := newTestServer(issuer)
	info := &grpc.UnaryServerInfo{FullMethod: pb.IdentityService_AcceptInvitation_FullMethodName}

	var hadClaims bool
	h := func(ctx context.Context, req any) (any, error) {
		_, hadClaims = ClaimsFromContext(ctx)
		return "ok", nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	require.NoError(t, err)
	assert.False(t, hadClaims)

	pair, err := issuer.IssuePair(auth.Identity{UserID: "u1"})
	require.NoError(t, err)
	_, err = s.accessTokenInterceptor(withToken(pair.AccessToken), nil, info, h)
	require.NoError(t, err)
	assert.True(t, hadClaims)

	_, err = s.accessTokenInterceptor(withToken("garbage"), nil, info, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
