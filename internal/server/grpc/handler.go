package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/dailylog/internal/common"
	pb "github.com/dmitrijs2005/dailylog/internal/proto"
	"github.com/dmitrijs2005/dailylog/internal/server/models"
	"github.com/dmitrijs2005/dailylog/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toAccount(v models.View) *pb.Account {
	a := &pb.Account{
		Id:          v.ID,
		Email:       v.Email,
		DisplayName: v.DisplayName,
		AvatarUrl:   v.AvatarURL,
		Verified:    v.Verified,
		Provider:    v.Provider,
	}
	if !v.CreatedAt.IsZero() {
		a.CreatedAt = timestamppb.New(v.CreatedAt)
	}
	return a
}

func toSession(s *services.Session) *pb.SessionResponse {
	return &pb.SessionResponse{
		Account:      toAccount(s.Account),
		AccessToken:  s.Tokens.AccessToken,
		RefreshToken: s.Tokens.RefreshToken,
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	id, err := s.auth.Register(ctx, req.Email, req.DisplayName, req.Secret)
	if err != nil {
		// The account exists even though the code was not sent.
		if id != "" && errors.Is(err, common.ErrInfrastructure) {
			s.logger.Warn(ctx, "registered without code delivery", "account_id", id, "error", err)
			return &pb.RegisterResponse{AccountId: id, CodeDelivered: false}, nil
		}
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "account_id", id)
	return &pb.RegisterResponse{AccountId: id, CodeDelivered: true}, nil
}

func (s *GRPCServer) ResendCode(ctx context.Context, req *pb.ResendCodeRequest) (*pb.ResendCodeResponse, error) {
	if err := s.auth.ResendCode(ctx, req.AccountId); err != nil {
		return nil, toStatus(err)
	}
	return &pb.ResendCodeResponse{}, nil
}

func (s *GRPCServer) VerifyCode(ctx context.Context, req *pb.VerifyCodeRequest) (*pb.SessionResponse, error) {
	session, err := s.auth.VerifyCode(ctx, req.AccountId, req.Code)
	if err != nil {
		return nil, toStatus(err)
	}
	return toSession(session), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.SessionResponse, error) {
	session, err := s.auth.Login(ctx, req.Email, req.Secret)
	if err != nil {
		return nil, toStatus(err)
	}
	return toSession(session), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.auth.Logout(ctx, userID); err != nil {
		return nil, toStatus(err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.RefreshResponse, error) {
	pair, err := s.auth.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RefreshResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) ResetSecret(ctx context.Context, req *pb.ResetSecretRequest) (*pb.ResetSecretResponse, error) {
	if err := s.auth.ResetSecret(ctx, req.Email, req.NewSecret, req.ConfirmSecret); err != nil {
		return nil, toStatus(err)
	}
	return &pb.ResetSecretResponse{}, nil
}

func (s *GRPCServer) LinkOrCreate(ctx context.Context, req *pb.LinkOrCreateRequest) (*pb.SessionResponse, error) {
	p := services.ExternalProfile{
		Provider:    req.Provider,
		SubjectID:   req.SubjectId,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarUrl,
	}

	session, err := s.auth.LinkOrCreate(ctx, p, services.Mode(req.Mode))
	if err != nil {
		return nil, toStatus(err)
	}
	return toSession(session), nil
}
