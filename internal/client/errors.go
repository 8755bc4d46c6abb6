package client

import (
	"errors"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotLoggedIn = errors.New("not logged in")
)

// RPCError is a failed call. It unwraps to the matching common.Error* kind so
// callers can use errors.Is against the same sentinels the server uses.
type RPCError struct {
	Code    codes.Code
	Message string
	kind    error
}

func (e *RPCError) Error() string { return e.Message }

func (e *RPCError) Unwrap() error { return e.kind }

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var kind error
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Unauthenticated, codes.PermissionDenied:
		kind = common.ErrorUnauthorized
	case codes.NotFound:
		kind = common.ErrorNotFound
	case codes.AlreadyExists:
		kind = common.ErrorConflict
	case codes.InvalidArgument:
		kind = common.ErrorBadRequest
	default:
		kind = common.ErrorInternal
	}
	return &RPCError{Code: st.Code(), Message: st.Message(), kind: kind}
}
