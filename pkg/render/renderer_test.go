// pkg/render/renderer_test.go
package render

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/logging"
)

func TestNullRenderer_LogsEveryNth(t *testing.T) {
	var buf bytes.Buffer
	r := NewNullRenderer(context.Background(), logging.NewLoggerWithWriter(&buf, slog.LevelDebug), 3)

	for i := uint64(1); i <= 7; i++ {
		if err := r.Render(engine.Snapshot{Tick: i}); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
	}

	if got := r.Rendered(); got != 7 {
		t.Errorf("Rendered() = %d, expected 7", got)
	}
	if got := strings.Count(buf.String(), "render snapshot"); got != 2 {
		t.Errorf("logged %d snapshots, expected 2\n%s", got, buf.String())
	}
}

func TestNullRenderer_LogsCompletion(t *testing.T) {
	var buf bytes.Buffer
	r := NewNullRenderer(context.Background(), logging.NewLoggerWithWriter(&buf, slog.LevelInfo), 100)

	snap := engine.Snapshot{Level: "yard", Tick: 12, Status: engine.StatusLevelComplete}
	if err := r.Render(snap); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(buf.String(), "render level complete") {
		t.Errorf("completion not logged: %s", buf.String())
	}
}

func TestNullRenderer_ZeroEveryLogsAll(t *testing.T) {
	r := NewNullRenderer(context.Background(), logging.Discard(), 0)
	if r.every != 1 {
		t.Errorf("every = %d, expected 1", r.every)
	}
}
