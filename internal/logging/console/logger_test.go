package console

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
}

func TestConsoleLoggerFormatsEntry(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	provider := NewProvider(Options{Writer: buf, TimeFunc: fixedClock})

	logger := provider.GetLogger("i18n")
	logger.Info("build complete", "files", 12, "locale", "fr")

	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "2026-08-30T09:30:00Z INFO build complete") {
		t.Fatalf("unexpected prefix: %q", out)
	}
	for _, want := range []string{"files=12", "locale=fr", "logger=i18n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestConsoleLoggerHonorsMinLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	min := LevelWarn
	provider := NewProvider(Options{Writer: buf, TimeFunc: fixedClock, MinLevel: &min})

	logger := provider.GetLogger("i18n")
	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("below-threshold entries leaked: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestConsoleLoggerQuotesAwkwardValues(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	provider := NewProvider(Options{Writer: buf, TimeFunc: fixedClock})

	logger := provider.GetLogger("i18n")
	logger.Info("entry", "path", "my doc.md", "empty", "")

	out := buf.String()
	if !strings.Contains(out, `path="my doc.md"`) {
		t.Errorf("spaced value not quoted: %q", out)
	}
	if !strings.Contains(out, `empty=""`) {
		t.Errorf("empty value not quoted: %q", out)
	}
}

func TestConsoleLoggerDanglingArg(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	provider := NewProvider(Options{Writer: buf, TimeFunc: fixedClock})

	provider.GetLogger("i18n").Info("entry", "odd")
	if !strings.Contains(buf.String(), "field_0=odd") {
		t.Errorf("dangling argument dropped: %q", buf.String())
	}
}
