package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.trai.ch/webassets/internal/adapters/logger"
)

func newCaptured(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	l, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("New did not return a *logger.Logger")
	}
	var out bytes.Buffer
	l.SetOutput(&out)
	return l, &out
}

func TestInfo(t *testing.T) {
	l, out := newCaptured(t)

	l.Info("serving assets")

	if !strings.Contains(out.String(), "serving assets") {
		t.Errorf("message missing from output %q", out.String())
	}
	if !strings.Contains(out.String(), "level=INFO") {
		t.Errorf("level missing from output %q", out.String())
	}
}

func TestError_UsesErrorMessage(t *testing.T) {
	l, out := newCaptured(t)

	l.Error(errors.New("cache entry vanished"))

	if !strings.Contains(out.String(), "cache entry vanished") {
		t.Errorf("error text missing from output %q", out.String())
	}
	if !strings.Contains(out.String(), "level=ERROR") {
		t.Errorf("level missing from output %q", out.String())
	}
}

func TestSetLevel_SuppressesBelowThreshold(t *testing.T) {
	l, out := newCaptured(t)
	l.SetLevel(slog.LevelWarn)

	l.Info("chatty detail")
	l.Warn("still important")

	if strings.Contains(out.String(), "chatty detail") {
		t.Errorf("info record emitted despite warn threshold: %q", out.String())
	}
	if !strings.Contains(out.String(), "still important") {
		t.Errorf("warn record missing from output %q", out.String())
	}
}
