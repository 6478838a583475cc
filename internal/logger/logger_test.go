package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{in: "debug", want: DebugLevel},
		{in: " WARN ", want: WarnLevel},
		{in: "error", want: ErrorLevel},
		{in: "info", want: InfoLevel},
		{in: "verbose", want: InfoLevel},
		{in: "", want: InfoLevel},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: InfoLevel, Output: &buf})

	l.Debug("hidden message")
	l.Info("visible message", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Fatalf("debug message should be filtered at info level: %s", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "key=value") {
		t.Fatalf("expected info message with key/value, got %s", out)
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: DebugLevel, Output: &buf})

	ctx := ContextWithLogger(context.Background(), l)
	if got := FromContext(ctx); got != l {
		t.Fatalf("expected logger from context")
	}

	if got := FromContext(context.Background()); got != defaultLogger {
		t.Fatalf("expected default logger when context has none")
	}

	ctx = context.WithValue(context.Background(), ctxKey{}, "not a logger")
	if got := FromContext(ctx); got != defaultLogger {
		t.Fatalf("expected default logger for wrong value type")
	}
}

func TestJSONFormatAndSetDefault(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: InfoLevel, Output: &buf, JSON: true})

	orig := defaultLogger
	t.Cleanup(func() { defaultLogger = orig })
	SetDefault(l)
	SetDefault(nil)

	FromContext(context.Background()).Info("json message", "file", "Foo.cs")

	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "{") || !strings.Contains(out, "json message") || !strings.Contains(out, "Foo.cs") {
		t.Fatalf("expected JSON log line from default logger, got %s", out)
	}
}
