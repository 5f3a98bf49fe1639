package out_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	coachadapter "watchtrainer/internal/modules/coach/adapter/out"
	"watchtrainer/internal/modules/coach/domain"
)

func TestGRPCGeneratorReferencePlugin(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the reference plugin")
	}
	binPath := buildReferencePlugin(t)
	gen := coachadapter.NewGRPCGenerator(binPath).(*coachadapter.GRPCGenerator)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	description, err := gen.Describe(ctx)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if description.Name != "reference-coach" || len(description.Kinds) != 3 {
		t.Fatalf("unexpected description: %+v", description)
	}

	text, err := gen.Generate(ctx, domain.Request{
		Kind:    domain.KindMessage,
		Context: domain.Context{State: "active", HeartRate: 128, Steps: 2100, Weather: &domain.Weather{Temperature: 17}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, want := range []string{"128 bpm", "2100 steps", "17°C"} {
		if !strings.Contains(text, want) {
			t.Fatalf("generated text %q missing %q", text, want)
		}
	}

	if _, err := gen.Generate(ctx, domain.Request{Kind: "poem"}); err == nil {
		t.Fatal("expected unknown kind to fail")
	}
}

func buildReferencePlugin(t *testing.T) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "coach-plugin")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/coach")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build coach plugin: %v\n%s", err, string(out))
	}
	return binPath
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
