package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"smart-reminders/pkg/log"
)

func TestInit(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "bogus", Mode: "", Encoding: ""},
	} {
		if l := log.Init(cfg); l == nil {
			t.Errorf("Init(%+v) returned nil", cfg)
		}
	}
}

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewWithCore(core)

	ctx := log.WithRequestID(context.Background(), "req-123")
	l.Infof(ctx, "parsed %d reminders", 2)
	l.Info(context.Background(), "no request")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "parsed 2 reminders" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-123" {
		t.Errorf("request_id = %v, want req-123", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("request_id should be absent without a request ID in context")
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
	ctx := log.WithRequestID(context.Background(), "")
	if got := log.RequestIDFromContext(ctx); got != "" {
		t.Errorf("empty ID should not be stored, got %q", got)
	}
}
