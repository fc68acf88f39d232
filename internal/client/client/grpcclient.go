package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dailylog/internal/common"
	pb "github.com/dmitrijs2005/dailylog/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type healthChecker interface {
	Check(ctx context.Context, in *healthpb.HealthCheckRequest, opts ...grpc.CallOption) (*healthpb.HealthCheckResponse, error)
}

type GRPCClient struct {
	endpointURL  string
	timeout      time.Duration
	conn         *grpc.ClientConn
	client       pb.AuthServiceClient
	health       healthChecker
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" || method == pb.AuthService_Refresh_FullMethodName {
			return err
		}

		refreshResponse, err := s.client.Refresh(ctx, &pb.RefreshRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshResponse.AccessToken
		s.refreshToken = refreshResponse.RefreshToken

		// retry once with the new access token
		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

// NewGRPCClient dials endpointURL lazily. Every call gets its own deadline of
// timeout unless timeout is zero.
func NewGRPCClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) startSession(resp *pb.SessionResponse) *pb.Account {
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	return resp.GetAccount()
}

// LoggedIn reports whether the client holds a session.
func (s *GRPCClient) LoggedIn() bool {
	return s.accessToken != ""
}

func (s *GRPCClient) Register(ctx context.Context, email, displayName, secret string) (*pb.RegisterResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.RegisterRequest{Email: email, DisplayName: displayName, Secret: secret}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ResendCode(ctx context.Context, accountID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.ResendCode(ctx, &pb.ResendCodeRequest{AccountId: accountID}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) VerifyCode(ctx context.Context, accountID, code string) (*pb.Account, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.VerifyCode(ctx, &pb.VerifyCodeRequest{AccountId: accountID, Code: code})
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.startSession(resp), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, secret string) (*pb.Account, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Secret: secret})
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.startSession(resp), nil
}

// Logout ends the session on the server and forgets the local tokens.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{}); err != nil {
		return s.mapError(err)
	}

	s.accessToken = ""
	s.refreshToken = ""
	return nil
}

// Refresh rotates the token pair explicitly.
func (s *GRPCClient) Refresh(ctx context.Context) error {
	if s.refreshToken == "" {
		return ErrNotLoggedIn
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Refresh(ctx, &pb.RefreshRequest{RefreshToken: s.refreshToken})
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	return nil
}

func (s *GRPCClient) ResetSecret(ctx context.Context, email, newSecret, confirmSecret string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.ResetSecretRequest{Email: email, NewSecret: newSecret, ConfirmSecret: confirmSecret}
	if _, err := s.client.ResetSecret(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) LinkOrCreate(ctx context.Context, req *pb.LinkOrCreateRequest) (*pb.Account, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.LinkOrCreate(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.startSession(resp), nil
}

// Ping asks the standard health service whether the auth service is serving.
func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.AuthService_ServiceDesc.ServiceName})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrNotVerified
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrConflict
	case codes.FailedPrecondition:
		return ErrExpired
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
