package main

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hyperifyio/pagetext/internal/app"
	"github.com/hyperifyio/pagetext/internal/clean"
	"github.com/hyperifyio/pagetext/internal/fetch"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PAGETEXT_CONFIG", "PAGETEXT_URL", "PAGETEXT_USER_AGENT", "PAGETEXT_TIMEOUT", "PAGETEXT_CHARSET", "PAGETEXT_FORMAT", "PAGETEXT_CLEAN", "PAGETEXT_STRICT", "PAGETEXT_VERBOSE"} {
		t.Setenv(k, "")
	}
}

// Smoke test: run against a local server writes both sequences.
func TestRun_WritesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><p>Hello\nWorld</p><img src=\"a.png\"><img></body></html>"))
	}))
	defer srv.Close()

	cfg := app.DefaultConfig()
	cfg.URL = srv.URL
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if out.String() != "[\"HelloWorld\"]\n[\"a.png\"]\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestParseConfig_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "pagetext.yaml")
	body := "url: https://file.example/page\noutput:\n  format: yaml\nhttp:\n  userAgent: file-agent\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PAGETEXT_FORMAT", "json")

	cfg, _, err := parseConfig([]string{"-config", path, "-ua", "flag-agent", "-clean", "spaced", "-timeout", "4s"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.URL != "https://file.example/page" {
		t.Fatalf("file url not applied: %q", cfg.URL)
	}
	if cfg.Format != app.FormatJSON {
		t.Fatalf("env should override file format, got %q", cfg.Format)
	}
	if cfg.UserAgent != "flag-agent" || cfg.CleanMode != clean.ModeSpaced || cfg.Timeout != 4*time.Second {
		t.Fatalf("flags should win: %+v", cfg)
	}
}

func TestParseConfig_DefaultsAndErrors(t *testing.T) {
	clearEnv(t)
	cfg, _, err := parseConfig(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg != app.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if _, _, err := parseConfig([]string{"-format", "xml"}); err == nil {
		t.Fatalf("expected invalid format error")
	}
	if _, _, err := parseConfig([]string{"-url", ""}); !errors.Is(err, app.ErrNoURL) {
		t.Fatalf("expected ErrNoURL, got %v", err)
	}
	if _, _, err := parseConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected missing config error")
	}
	if _, _, err := parseConfig([]string{"-nope"}); err == nil {
		t.Fatalf("expected unknown flag error")
	}
	if _, v, err := parseConfig([]string{"-version"}); err != nil || !v {
		t.Fatalf("expected version request, got v=%v err=%v", v, err)
	}
}

func TestExitCode(t *testing.T) {
	fe := &fetch.Error{URL: "http://x", Op: "do", Err: errors.New("refused")}
	lenient := app.DefaultConfig()
	strict := app.DefaultConfig()
	strict.Strict = true

	if got := exitCode(lenient, nil); got != exitOK {
		t.Fatalf("nil error: got %d", got)
	}
	if got := exitCode(lenient, fe); got != exitOK {
		t.Fatalf("lenient fetch failure: got %d", got)
	}
	if got := exitCode(strict, fe); got != exitFetchFailed {
		t.Fatalf("strict fetch failure: got %d", got)
	}
	if got := exitCode(lenient, errors.New("render: broken pipe")); got != exitFetchFailed {
		t.Fatalf("other failure: got %d", got)
	}
}

func TestRun_UnreachableHost(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	cfg := app.DefaultConfig()
	cfg.URL = "http://" + addr
	cfg.Timeout = 2 * time.Second
	var out bytes.Buffer
	err = run(context.Background(), cfg, &out)
	var fe *fetch.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if out.String() != "[]\n[]\n" {
		t.Fatalf("expected empty results, got %q", out.String())
	}
	if exitCode(cfg, err) != exitOK {
		t.Fatalf("lenient mode should exit 0")
	}
}
