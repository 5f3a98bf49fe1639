package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey     = "coach"
	serviceName      = "watchtrainer.coach.v1.Coach"
	jsonCodecName    = "json"
	methodDescribe   = "/" + serviceName + "/Describe"
	methodGenerate   = "/" + serviceName + "/Generate"
	protocolMetadata = "watchtrainer/coach/v1"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "WATCHTRAINER_COACH_PLUGIN",
	MagicCookieValue: "coach",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Description struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Kinds   []string `json:"kinds"`
}

type Weather struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
}

type GenerateRequest struct {
	Kind        string   `json:"kind"`
	Prompt      string   `json:"prompt"`
	State       string   `json:"state"`
	WorkoutType string   `json:"workout_type"`
	Steps       int      `json:"steps"`
	HeartRate   int      `json:"heart_rate"`
	Calories    float64  `json:"calories"`
	Weather     *Weather `json:"weather,omitempty"`
}

type GenerateResponse struct {
	Text string `json:"text"`
}

type CoachServer interface {
	Describe(ctx context.Context, in *Empty) (*Description, error)
	Generate(ctx context.Context, in *GenerateRequest) (*GenerateResponse, error)
}

type CoachClient interface {
	Describe(ctx context.Context) (*Description, error)
	Generate(ctx context.Context, in *GenerateRequest) (*GenerateResponse, error)
}

type coachClient struct {
	conn *grpc.ClientConn
}

func NewCoachClient(conn *grpc.ClientConn) CoachClient {
	return &coachClient{conn: conn}
}

func (c *coachClient) Describe(ctx context.Context) (*Description, error) {
	out := &Description{}
	if err := c.conn.Invoke(ctx, methodDescribe, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coachClient) Generate(ctx context.Context, in *GenerateRequest) (*GenerateResponse, error) {
	out := &GenerateResponse{}
	if err := c.conn.Invoke(ctx, methodGenerate, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterCoachServer(server grpc.ServiceRegistrar, impl CoachServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*CoachServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "Describe",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Describe(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodDescribe}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Describe(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "Generate",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &GenerateRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Generate(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGenerate}
					handler := func(ctx context.Context, req any) (any, error) {
						request, ok := req.(*GenerateRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Generate(ctx, request)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: protocolMetadata,
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl CoachServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterCoachServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewCoachClient(conn), nil
}

func PluginMap(impl CoachServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
