package client

import (
	"context"

	pb "github.com/dmitrijs2005/dailylog/internal/proto"
)

type Client interface {
	Close() error
	Register(ctx context.Context, email, displayName, secret string) (*pb.RegisterResponse, error)
	ResendCode(ctx context.Context, accountID string) error
	VerifyCode(ctx context.Context, accountID, code string) (*pb.Account, error)
	Login(ctx context.Context, email, secret string) (*pb.Account, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	ResetSecret(ctx context.Context, email, newSecret, confirmSecret string) error
	LinkOrCreate(ctx context.Context, req *pb.LinkOrCreateRequest) (*pb.Account, error)
	Ping(ctx context.Context) error
	LoggedIn() bool
}
