package grpc

import (
	"errors"

	"github.com/dmitrijs2005/dailylog/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus translates a service error into a gRPC status. Domain errors
// keep their message; infrastructure failures are reported generically.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrInvalidCredential):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrExpired):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrNotVerified):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrInfrastructure):
		return status.Error(codes.Unavailable, "service temporarily unavailable, retry later")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
