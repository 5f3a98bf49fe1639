package main

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-plugin"

	coachrpc "watchtrainer/internal/modules/coach/adapter/out/rpc"
)

// server answers from its own phrase tables; swap Generate for a model call
// to get generated coaching.
type server struct{}

func (s *server) Describe(_ context.Context, _ *coachrpc.Empty) (*coachrpc.Description, error) {
	return &coachrpc.Description{
		Name:    "reference-coach",
		Version: "1.0.0",
		Kinds:   []string{"message", "tip", "quote"},
	}, nil
}

func (s *server) Generate(_ context.Context, in *coachrpc.GenerateRequest) (*coachrpc.GenerateResponse, error) {
	switch in.Kind {
	case "message":
		return &coachrpc.GenerateResponse{Text: message(in)}, nil
	case "tip":
		return &coachrpc.GenerateResponse{Text: fmt.Sprintf("Warm up for five minutes before %s. 🔥", in.WorkoutType)}, nil
	case "quote":
		return &coachrpc.GenerateResponse{Text: "Small steps, big changes! 👣"}, nil
	default:
		return nil, fmt.Errorf("unknown kind: %s", in.Kind)
	}
}

func message(in *coachrpc.GenerateRequest) string {
	weather := ""
	if in.Weather != nil {
		weather = fmt.Sprintf(" It's %.0f°C out.", in.Weather.Temperature)
	}
	switch in.State {
	case "active":
		return fmt.Sprintf("%d bpm and %d steps, you're flying!%s", in.HeartRate, in.Steps, weather)
	case "paused":
		return "Catch your breath, then let's go again!" + weather
	default:
		return fmt.Sprintf("%d steps so far. Time for a %s session?%s", in.Steps, in.WorkoutType, weather)
	}
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: coachrpc.HandshakeConfig,
		Plugins:         coachrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
