package logging_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-static-i18n/internal/logging"
	"github.com/goliatone/go-static-i18n/internal/logging/console"
)

func TestModuleLoggerDefaultsToNoOp(t *testing.T) {
	t.Parallel()

	logger := logging.ModuleLogger(nil, "i18n.files")
	// Must not panic and must swallow output.
	logger.Info("ignored", "key", "value")
	logger.Error("ignored")
}

func TestModuleLoggerScopesModuleField(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	provider := console.NewProvider(console.Options{
		Writer:   buf,
		TimeFunc: func() time.Time { return time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC) },
	})

	logger := logging.FilesLogger(provider)
	logger.Info("resolved", "path", "guide/intro.fr.md")

	out := buf.String()
	if !strings.Contains(out, "module=i18n.files") {
		t.Errorf("output missing module field: %q", out)
	}
	if !strings.Contains(out, "path=guide/intro.fr.md") {
		t.Errorf("output missing path field: %q", out)
	}
}

func TestWithFileContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	provider := console.NewProvider(console.Options{Writer: buf})

	logger := logging.WithFileContext(logging.DiscoveryLogger(provider), "index.md", "fr", "requested")
	logger.Debug("added")

	out := buf.String()
	for _, want := range []string{"path=index.md", "locale=fr", "match=requested", "module=i18n.discovery"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestContextFieldsMerge(t *testing.T) {
	t.Parallel()

	ctx := logging.ContextWithFields(t.Context(), map[string]any{"build": "abc"})
	ctx = logging.ContextWithFields(ctx, map[string]any{"locale": "fr"})

	fields := logging.ContextFields(ctx)
	if fields["build"] != "abc" || fields["locale"] != "fr" {
		t.Fatalf("merged fields = %v", fields)
	}

	// Mutating the returned copy must not leak into the context.
	fields["build"] = "mutated"
	if again := logging.ContextFields(ctx); again["build"] != "abc" {
		t.Fatalf("context fields mutated: %v", again)
	}
}
