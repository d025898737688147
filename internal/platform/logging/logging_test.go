package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-planfix/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "json", format: "json", want: `"level":"INFO"`},
		{name: "text", format: "text", want: "level=INFO"},
		{name: "unknown falls back to json", format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		log     func(*slog.Logger)
		visible bool
	}{
		{name: "debug shows debug", level: "debug", log: func(l *slog.Logger) { l.Debug("m") }, visible: true},
		{name: "uppercase level", level: "DEBUG", log: func(l *slog.Logger) { l.Debug("m") }, visible: true},
		{name: "info hides debug", level: "info", log: func(l *slog.Logger) { l.Debug("m") }, visible: false},
		{name: "error hides warn", level: "error", log: func(l *slog.Logger) { l.Warn("m") }, visible: false},
		{name: "unknown defaults to info", level: "verbose", log: func(l *slog.Logger) { l.Info("m") }, visible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, "json", &buf))

			if got := buf.Len() > 0; got != tt.visible {
				t.Errorf("visible = %v, want %v (output %q)", got, tt.visible, buf.String())
			}
		})
	}
}

func TestNew_DebugLevelIncludesSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("debug", "json", &buf).Debug("with source")

	if !strings.Contains(buf.String(), `"source"`) {
		t.Errorf("output = %q, want it to contain '\"source\"' at debug level", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)
	ctx := logging.WithLogger(context.Background(), logger)

	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext returned different logger than the one stored with WithLogger")
	}
	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext on bare context returned something other than slog.Default()")
	}
}

func TestDiscard_WritesNothing(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() logger reports enabled at error level")
	}
}

func TestNew_RedactsSecrets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization field", attr: slog.String("authorization", "Bearer pf-token-123"), secret: "pf-token-123"},
		{name: "token field", attr: slog.String("token", "pf-raw-token"), secret: "pf-raw-token"},
		{name: "bearer in arbitrary field", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "inline api key", attr: slog.String("note", "api_key=abcdef"), secret: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, missing [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_DoesNotRedactNonSensitiveFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("event",
		slog.Int64("task_id", 1491743),
		slog.String("path", "task/1491743/comments/"),
	)

	out := buf.String()
	if !strings.Contains(out, "1491743") {
		t.Error("log output missing task_id, non-sensitive field should not be redacted")
	}
	if !strings.Contains(out, "task/1491743/comments/") {
		t.Error("log output missing path, non-sensitive field should not be redacted")
	}
}

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"Authorization": {"Bearer secret-token"},
		"Accept":        {"application/json"},
		"X-Request-Id":  {"req-1", "req-2"},
	}

	attr := logging.RedactHeaders(headers)
	if attr.Key != "headers" {
		t.Fatalf("Key = %q, want \"headers\"", attr.Key)
	}

	got := make(map[string]string)
	for _, a := range attr.Value.Group() {
		got[a.Key] = a.Value.String()
	}

	if got["Authorization"] != "[REDACTED]" {
		t.Errorf("Authorization = %q, want [REDACTED]", got["Authorization"])
	}
	if got["Accept"] != "application/json" {
		t.Errorf("Accept = %q, want application/json", got["Accept"])
	}
	if got["X-Request-Id"] != "req-1,req-2" {
		t.Errorf("X-Request-Id = %q, want joined values", got["X-Request-Id"])
	}
}
