package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/dailylog/internal/logging"
	pb "github.com/dmitrijs2005/dailylog/internal/proto"
	"github.com/dmitrijs2005/dailylog/internal/server/auth"
	"github.com/dmitrijs2005/dailylog/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AuthService is the lifecycle API the transport exposes.
type AuthService interface {
	Register(ctx context.Context, email, displayName, secret string) (string, error)
	ResendCode(ctx context.Context, accountRef string) error
	VerifyCode(ctx context.Context, accountRef, code string) (*services.Session, error)
	Login(ctx context.Context, email, secret string) (*services.Session, error)
	Logout(ctx context.Context, accountID string) error
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	ResetSecret(ctx context.Context, email, newSecret, confirmSecret string) error
	LinkOrCreate(ctx context.Context, p services.ExternalProfile, mode services.Mode) (*services.Session, error)
	Authenticate(ctx context.Context, accessToken string) (*auth.Claims, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	auth    AuthService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as AuthService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
	}
}

// newServer builds the grpc.Server with interceptors, the auth service and
// the standard health service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterAuthServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.AuthService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
