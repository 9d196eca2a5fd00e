package config

import (
	"reflect"
	"testing"
	"time"
)

// --- MustLoad ---

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose") // invalid -> Load() error
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

// --- Load success + normalization + parsing ---

func TestLoad_Success_DefaultsAndOverrides(t *testing.T) {
	// Server timeouts / sizes (valid)
	t.Setenv("PORT", "8088")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("READ_HEADER_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "3s")
	t.Setenv("IDLE_TIMEOUT", "4s")
	t.Setenv("MAX_HEADER_BYTES", "8192")
	t.Setenv("GIN_MODE", "weird") // will normalize to "release"

	// Logging / Docs
	t.Setenv("LOG_LEVEL", "warning") // will normalize to "warn"
	t.Setenv("LOG_PRETTY", "yes")
	t.Setenv("SWAGGER_ENABLED", "on")
	t.Setenv("API_BASE_PATH", "api/v1/") // no leading slash + trailing slash -> "/api/v1"

	// App
	t.Setenv("DB_PATH", "trivia.sqlite")
	t.Setenv("QUESTIONS_PER_PAGE", "25")

	// Rate limiting (use invalids for parse to fall back to defaults)
	t.Setenv("RATE_RPS", "x")      // -> default 5.0
	t.Setenv("RATE_BURST", "nope") // -> default 10

	// Web protection
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.com , , http://b ")
	t.Setenv("ENABLE_HSTS", "TRUE")
	t.Setenv("HSTS_MAX_AGE", "24h")

	// OTEL
	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "0")
	t.Setenv("OTEL_SERVICE_NAME", "svc")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.75")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "8088" ||
		cfg.ReadTimeout != 2*time.Second ||
		cfg.ReadHeaderTimeout != 1*time.Second ||
		cfg.WriteTimeout != 3*time.Second ||
		cfg.IdleTimeout != 4*time.Second ||
		cfg.MaxHeaderBytes != 8192 ||
		cfg.GinMode != "release" {
		t.Fatalf("server fields unexpected: %+v", cfg)
	}

	if cfg.LogLevel != "warn" || !cfg.LogPretty || !cfg.SwaggerEnabled || cfg.APIBasePath != "/api/v1" {
		t.Fatalf("logging/docs fields unexpected: %+v", cfg)
	}

	if cfg.DBPath != "trivia.sqlite" || cfg.PageSize != 25 {
		t.Fatalf("app fields unexpected: %+v", cfg)
	}

	if cfg.RateRPS != 5.0 || cfg.RateBurst != 10 {
		t.Fatalf("rate fields unexpected: %+v", cfg)
	}

	wantOrigins := []string{"https://a.com", "http://b"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, wantOrigins) {
		t.Fatalf("CORS origins = %v, want %v", cfg.CORS.AllowedOrigins, wantOrigins)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Fatalf("security fields unexpected: %+v", cfg.Security)
	}

	if !cfg.OTEL.Enabled || cfg.OTEL.Endpoint != "otel:4317" || cfg.OTEL.Insecure ||
		cfg.OTEL.ServiceName != "svc" || cfg.OTEL.SampleRatio != 0.75 {
		t.Fatalf("otel fields unexpected: %+v", cfg.OTEL)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8080" || cfg.GinMode != "release" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DBPath != "trivia.db" || cfg.PageSize != 10 {
		t.Fatalf("unexpected app defaults: %+v", cfg)
	}
	if cfg.APIBasePath != "/" {
		t.Fatalf("APIBasePath = %q, want /", cfg.APIBasePath)
	}
	if cfg.OTEL.Enabled || cfg.OTEL.SampleRatio != 1.0 {
		t.Fatalf("unexpected otel defaults: %+v", cfg.OTEL)
	}
}

// --- Validation failures ---

func TestLoad_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"bad log level", "LOG_LEVEL", "chatty"},
		{"negative read timeout", "READ_TIMEOUT", "-1s"},
		{"zero page size", "QUESTIONS_PER_PAGE", "0"},
		{"negative rps", "RATE_RPS", "-1"},
		{"zero burst", "RATE_BURST", "0"},
		{"sampler out of range", "OTEL_TRACES_SAMPLER_ARG", "1.5"},
		{"negative header bytes", "MAX_HEADER_BYTES", "-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("Load() accepted %s=%s", tc.key, tc.val)
			}
		})
	}
}

// --- Helpers ---

func TestGetboolAndSplitCSV(t *testing.T) {
	t.Setenv("FLAG", "On")
	if !getbool("FLAG", false) {
		t.Fatal("getbool did not accept 'On'")
	}
	t.Setenv("FLAG", "garbage")
	if !getbool("FLAG", true) {
		t.Fatal("getbool did not keep default on garbage")
	}

	if got := splitCSV(""); got != nil {
		t.Fatalf("splitCSV empty = %v", got)
	}
	if got := splitCSV("a, ,b"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("splitCSV = %v", got)
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":        "/",
		"/":       "/",
		"api":     "/api",
		"/api/":   "/api",
		"api/v1/": "/api/v1",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Errorf("normalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}
