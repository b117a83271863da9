package server

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	"tictactoe/internal/view"
)

const serviceName = "tictactoe.v1.GameService"

// CreateSessionRequest starts a new session
type CreateSessionRequest struct{}

// SessionRequest addresses an existing session
type SessionRequest struct {
	SessionID string `json:"session_id"`
}

// PlayRequest places the next mark at a cell (0-8, row-major)
type PlayRequest struct {
	SessionID string `json:"session_id"`
	Cell      int32  `json:"cell"`
}

// JumpToRequest moves the session to a recorded step
type JumpToRequest struct {
	SessionID string `json:"session_id"`
	Step      int32  `json:"step"`
}

// Session is the state of a session as seen by its client
type Session struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Game      view.Game `json:"game"`
}

// GameServiceServer is the server API for the GameService
type GameServiceServer interface {
	CreateSession(context.Context, *CreateSessionRequest) (*Session, error)
	GetSession(context.Context, *SessionRequest) (*Session, error)
	Play(context.Context, *PlayRequest) (*Session, error)
	JumpTo(context.Context, *JumpToRequest) (*Session, error)
	ToggleOrder(context.Context, *SessionRequest) (*Session, error)
	DeleteSession(context.Context, *SessionRequest) (*emptypb.Empty, error)
}

// RegisterGameServiceServer registers srv on s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&gameServiceDesc, srv)
}

var gameServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateSession", Handler: unaryHandler("CreateSession", GameServiceServer.CreateSession)},
		{MethodName: "GetSession", Handler: unaryHandler("GetSession", GameServiceServer.GetSession)},
		{MethodName: "Play", Handler: unaryHandler("Play", GameServiceServer.Play)},
		{MethodName: "JumpTo", Handler: unaryHandler("JumpTo", GameServiceServer.JumpTo)},
		{MethodName: "ToggleOrder", Handler: unaryHandler("ToggleOrder", GameServiceServer.ToggleOrder)},
		{MethodName: "DeleteSession", Handler: unaryHandler("DeleteSession", GameServiceServer.DeleteSession)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tictactoe/v1/game_service",
}

func fullMethod(method string) string {
	return "/" + serviceName + "/" + method
}

// unaryHandler adapts a GameServiceServer method to a grpc.MethodHandler
func unaryHandler[Req, Resp any](method string, call func(GameServiceServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GameServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GameServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls the GameService over a gRPC connection using the JSON codec
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on cc
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "CreateSession", in, opts)
}

func (c *Client) GetSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "GetSession", in, opts)
}

func (c *Client) Play(ctx context.Context, in *PlayRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "Play", in, opts)
}

func (c *Client) JumpTo(ctx context.Context, in *JumpToRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "JumpTo", in, opts)
}

func (c *Client) ToggleOrder(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "ToggleOrder", in, opts)
}

func (c *Client) DeleteSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "DeleteSession", in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
