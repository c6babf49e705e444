package logging

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
)

func TestLoggerDefaultNonNil(t *testing.T) {
	if Logger() == nil {
		t.Fatal("default logger should not be nil")
	}
}

func TestSetLoggerOverrides(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)
	custom := slog.New(handler)
	SetLogger(custom)

	if got := Logger(); got != custom {
		t.Fatalf("Logger() mismatch; want %p got %p", custom, got)
	}

	Logger().Info("test")
	if buf.Len() == 0 {
		t.Fatal("expected log output to custom handler")
	}
}

func TestDiscardLoggingReplacesLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	DiscardLogging()
	if Logger() == nil {
		t.Fatal("discard logger should still be non-nil")
	}
	if Logger() == prev {
		t.Fatal("discard logging should replace existing logger")
	}
}

func TestConfigureLevels(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	if err := Configure("warn", "json", &buf); err != nil {
		t.Fatal(err)
	}
	Logger().Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	Logger().Warn("shown", "k", "v")
	if !bytes.Contains(buf.Bytes(), []byte(`"msg":"shown"`)) {
		t.Fatalf("expected json warn record, got %q", buf.String())
	}
}

func TestConfigureTextFormat(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	if err := Configure("DEBUG", "text", &buf); err != nil {
		t.Fatal(err)
	}
	Logger().Debug("dbg")
	if !bytes.Contains(buf.Bytes(), []byte("msg=dbg")) {
		t.Fatalf("expected text record, got %q", buf.String())
	}
}

func TestConfigureOffDiscards(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	if err := Configure("off", "json", &buf); err != nil {
		t.Fatal(err)
	}
	Logger().Error("nothing")
	if buf.Len() != 0 {
		t.Fatalf("off should discard, got %q", buf.String())
	}
}

func TestConfigureRejectsBadInput(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	if err := Configure("loud", "json", io.Discard); err == nil {
		t.Fatal("expected invalid level error")
	}
	if err := Configure("info", "xml", io.Discard); err == nil {
		t.Fatal("expected invalid format error")
	}
}
