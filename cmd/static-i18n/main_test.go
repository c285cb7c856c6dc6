package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunResolvesAndWritesManifest(t *testing.T) {
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	writeFile(t, filepath.Join(docs, "index.md"), "# Home")
	writeFile(t, filepath.Join(docs, "index.fr.md"), "# Accueil")
	writeFile(t, filepath.Join(docs, "guide", "intro.md"), "# Intro")

	configPath := filepath.Join(dir, "i18n.yml")
	writeFile(t, configPath, strings.Join([]string{
		"locale: fr",
		"default_locale: en",
		"locales: [en, fr]",
		"docs_dir: " + docs,
		"site_dir: " + filepath.Join(dir, "site"),
		"logging:",
		"  enabled: false",
	}, "\n"))

	manifestPath := filepath.Join(dir, "site", ".i18n-manifest.json")
	out := &bytes.Buffer{}
	err := run([]string{
		"-config", configPath,
		"-manifest", manifestPath,
	}, out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.Contains(out.String(), "index.fr.md") {
		t.Errorf("output missing resolved source:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "fr/guide/intro/") {
		t.Errorf("output missing resolved URL:\n%s", out.String())
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	if !strings.Contains(string(data), `"locale": "fr"`) {
		t.Errorf("manifest missing locale:\n%s", data)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "i18n.yml")
	writeFile(t, configPath, "locale: FRENCH\n")

	if err := run([]string{"-config", configPath}, &bytes.Buffer{}); err == nil {
		t.Fatal("run accepted a malformed locale")
	}
}

func TestRunLocaleOverride(t *testing.T) {
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	writeFile(t, filepath.Join(docs, "index.md"), "# Home")

	configPath := filepath.Join(dir, "i18n.yml")
	writeFile(t, configPath, strings.Join([]string{
		"locale: en",
		"default_locale: en",
		"locales: [en, fr]",
		"docs_dir: " + docs,
		"site_dir: " + filepath.Join(dir, "site"),
		"logging:",
		"  enabled: false",
	}, "\n"))

	out := &bytes.Buffer{}
	if err := run([]string{"-config", configPath, "-locale", "fr"}, out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "fr/") {
		t.Errorf("override locale not reflected in output:\n%s", out.String())
	}

	// Without -manifest the snapshot lands at its conventional site location.
	defaultManifest := filepath.Join(dir, "site", ".i18n-manifest.json")
	if _, err := os.Stat(defaultManifest); err != nil {
		t.Errorf("default manifest not written: %v", err)
	}
}
