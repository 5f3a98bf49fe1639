package out

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	coachrpc "watchtrainer/internal/modules/coach/adapter/out/rpc"
	"watchtrainer/internal/modules/coach/domain"
	coachout "watchtrainer/internal/modules/coach/port/out"
)

const defaultStartTimeout = 3 * time.Second

var ErrGeneratorTimeout = errors.New("coach generator timed out")

// GRPCGenerator launches the plugin binary for each request and kills it afterwards.
type GRPCGenerator struct {
	binary       string
	startTimeout time.Duration
}

func NewGRPCGenerator(binary string) coachout.Generator {
	return &GRPCGenerator{binary: binary, startTimeout: defaultStartTimeout}
}

func (g *GRPCGenerator) Generate(ctx context.Context, request domain.Request) (string, error) {
	client, closeFn, err := g.connect()
	if err != nil {
		return "", err
	}
	defer closeFn()

	response, err := client.Generate(ctx, toRPC(request))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s", ErrGeneratorTimeout, request.Kind)
		}
		return "", fmt.Errorf("generate %s: %w", request.Kind, err)
	}
	return response.Text, nil
}

// Describe reports the plugin's self-description; the CLI uses it to check an install.
func (g *GRPCGenerator) Describe(ctx context.Context) (coachrpc.Description, error) {
	client, closeFn, err := g.connect()
	if err != nil {
		return coachrpc.Description{}, err
	}
	defer closeFn()

	description, err := client.Describe(ctx)
	if err != nil {
		return coachrpc.Description{}, fmt.Errorf("describe: %w", err)
	}
	return *description, nil
}

func (g *GRPCGenerator) connect() (coachrpc.CoachClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  coachrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          coachrpc.PluginMap(nil),
		Cmd:              exec.Command(g.binary),
		Managed:          true,
		StartTimeout:     g.startTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start coach plugin: %w", err)
	}
	raw, err := rpcClient.Dispense(coachrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense coach plugin: %w", err)
	}
	typed, ok := raw.(coachrpc.CoachClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("coach plugin client type mismatch")
	}
	return typed, closeFn, nil
}

func toRPC(request domain.Request) *coachrpc.GenerateRequest {
	out := &coachrpc.GenerateRequest{
		Kind:        string(request.Kind),
		Prompt:      request.Prompt,
		State:       request.Context.State,
		WorkoutType: request.Context.WorkoutType,
		Steps:       request.Context.Steps,
		HeartRate:   request.Context.HeartRate,
		Calories:    request.Context.Calories,
	}
	if w := request.Context.Weather; w != nil {
		out.Weather = &coachrpc.Weather{
			Temperature: w.Temperature,
			FeelsLike:   w.FeelsLike,
			Humidity:    w.Humidity,
			Description: w.Description,
		}
	}
	return out
}
