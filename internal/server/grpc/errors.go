package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// codeOf maps a domain error kind onto a gRPC status code.
func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return codes.NotFound
	case errors.Is(err, common.ErrorConflict):
		return codes.AlreadyExists
	case errors.Is(err, common.ErrorUnauthorized):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrorBadRequest):
		return codes.InvalidArgument
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// toStatus converts a service error to a status error. Internal failures
// are logged and their text is not sent to the client.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	code := codeOf(err)
	if code == codes.Internal {
		s.logger.Error(ctx, "request failed", "error", err.Error())
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}
