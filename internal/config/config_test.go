package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	// PORT is commonly exported by dev shells and CI runners.
	os.Unsetenv("PORT")
	os.Exit(m.Run())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8080" || cfg.GinMode != "release" || cfg.APIBasePath != "/api/v1" {
		t.Fatalf("server defaults: port=%q mode=%q base=%q", cfg.Port, cfg.GinMode, cfg.APIBasePath)
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.DSN() != "platcon.db" || !cfg.DB.AutoMigrate || cfg.DB.MaxOpenConns != 10 {
		t.Fatalf("db defaults: %+v", cfg.DB)
	}
	if !cfg.LogRedact || cfg.BodyLimitBytes != 1<<20 || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("misc defaults: redact=%v body=%d shutdown=%v", cfg.LogRedact, cfg.BodyLimitBytes, cfg.ShutdownTimeout)
	}
	if cfg.IdempotencyTTL != 24*time.Hour || cfg.IdempotencySweep != time.Hour {
		t.Fatalf("idempotency defaults: ttl=%v sweep=%v", cfg.IdempotencyTTL, cfg.IdempotencySweep)
	}
	if cfg.OTEL.Enabled || cfg.OTEL.ServiceName != "platcon-api" || cfg.OTEL.SampleRatio != 1 {
		t.Fatalf("otel defaults: %+v", cfg.OTEL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	for k, v := range map[string]string{
		"PORT":                        "8088",
		"READ_TIMEOUT":                "2s",
		"READ_HEADER_TIMEOUT":         "1s",
		"WRITE_TIMEOUT":               "3s",
		"IDLE_TIMEOUT":                "4s",
		"MAX_HEADER_BYTES":            "8192",
		"GIN_MODE":                    "weird",
		"LOG_LEVEL":                   "warning",
		"LOG_PRETTY":                  "yes",
		"LOG_REDACT":                  "off",
		"SWAGGER_ENABLED":             "on",
		"API_BASE_PATH":               "platcon/",
		"BODY_LIMIT_BYTES":            "2048",
		"SHUTDOWN_TIMEOUT":            "5s",
		"DB_DRIVER":                   "Postgres",
		"DB_PATH":                     "ignored.db",
		"DATABASE_URL":                "postgres://app:secret@db:5432/platcon?sslmode=disable",
		"DB_MAX_OPEN_CONNS":           "25",
		"DB_AUTO_MIGRATE":             "false",
		"RATE_RPS":                    "x",
		"RATE_BURST":                  "nope",
		"CORS_ALLOWED_ORIGINS":        " https://a.com , , http://b ",
		"ENABLE_HSTS":                 "TRUE",
		"HSTS_MAX_AGE":                "24h",
		"IDEMPOTENCY_TTL":             "48h",
		"IDEMPOTENCY_SWEEP":           "0s",
		"OTEL_ENABLED":                "1",
		"OTEL_EXPORTER_OTLP_ENDPOINT": "otel:4317",
		"OTEL_EXPORTER_OTLP_INSECURE": "0",
		"OTEL_SERVICE_NAME":           "svc",
		"OTEL_TRACES_SAMPLER_ARG":     "0.75",
	} {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := Config{
		Port:              "8088",
		ReadTimeout:       2 * time.Second,
		ReadHeaderTimeout: time.Second,
		WriteTimeout:      3 * time.Second,
		IdleTimeout:       4 * time.Second,
		MaxHeaderBytes:    8192,
		GinMode:           "release",
		BodyLimitBytes:    2048,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "warn",
		LogPretty:         true,
		LogRedact:         false,
		SwaggerEnabled:    true,
		APIBasePath:       "/platcon",
		DB: DBConfig{
			Driver:       "postgres",
			Path:         "ignored.db",
			URL:          "postgres://app:secret@db:5432/platcon?sslmode=disable",
			MaxOpenConns: 25,
			AutoMigrate:  false,
		},
		RateRPS:          5,
		RateBurst:        10,
		CORS:             CORSConfig{AllowedOrigins: []string{"https://a.com", "http://b"}},
		Security:         SecurityConfig{EnableHSTS: true, HSTSMaxAge: 24 * time.Hour},
		IdempotencyTTL:   48 * time.Hour,
		IdempotencySweep: 0,
		OTEL: OTELConfig{
			Enabled:     true,
			Endpoint:    "otel:4317",
			Insecure:    false,
			ServiceName: "svc",
			SampleRatio: 0.75,
		},
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("config mismatch:\n got %+v\nwant %+v", cfg, want)
	}
	if cfg.DB.DSN() != want.DB.URL {
		t.Fatalf("postgres DSN = %q", cfg.DB.DSN())
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"blank port", map[string]string{"PORT": "   "}, "PORT must not be empty"},
		{"zero timeout", map[string]string{"READ_TIMEOUT": "0s"}, "timeouts must be positive"},
		{"header bytes", map[string]string{"MAX_HEADER_BYTES": "0"}, "MAX_HEADER_BYTES"},
		{"blank db path", map[string]string{"DB_PATH": "   "}, "DB_PATH must not be empty"},
		{"postgres without url", map[string]string{"DB_DRIVER": "postgres", "DATABASE_URL": ""}, "DATABASE_URL is required"},
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}, "DB_DRIVER"},
		{"pool size", map[string]string{"DB_MAX_OPEN_CONNS": "0"}, "DB_MAX_OPEN_CONNS"},
		{"body limit", map[string]string{"BODY_LIMIT_BYTES": "0"}, "BODY_LIMIT_BYTES"},
		{"shutdown timeout", map[string]string{"SHUTDOWN_TIMEOUT": "0s"}, "SHUTDOWN_TIMEOUT"},
		{"negative sweep", map[string]string{"IDEMPOTENCY_SWEEP": "-1m"}, "IDEMPOTENCY_SWEEP"},
		{"negative rps", map[string]string{"RATE_RPS": "-1"}, "RATE_RPS"},
		{"zero burst", map[string]string{"RATE_BURST": "0"}, "RATE_BURST"},
		{"negative hsts", map[string]string{"HSTS_MAX_AGE": "-1s"}, "HSTS_MAX_AGE"},
		{"zero ttl", map[string]string{"IDEMPOTENCY_TTL": "0s"}, "IDEMPOTENCY_TTL"},
		{"sample ratio", map[string]string{"OTEL_TRACES_SAMPLER_ARG": "1.5"}, "OTEL_TRACES_SAMPLER_ARG"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load() error = %v; want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestMustLoad(t *testing.T) {
	if cfg := MustLoad(); cfg.APIBasePath == "" {
		t.Fatalf("MustLoad returned an empty base path")
	}

	t.Setenv("DB_DRIVER", "oracle")
	defer func() {
		if recover() == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

func TestEnvParsers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("F_OK", "3.14")
	t.Setenv("I_OK", "42")
	t.Setenv("D_OK", "150ms")
	t.Setenv("BAD", "zzz")
	t.Setenv("EMPTY", "")

	if getenv("EMPTY", "d") != "d" || getenv("F_OK", "d") != "3.14" {
		t.Fatalf("getenv")
	}
	if getfloat("F_OK", 0) != 3.14 || getfloat("BAD", 1.5) != 1.5 {
		t.Fatalf("getfloat")
	}
	if getint("I_OK", 0) != 42 || getint("BAD", 7) != 7 {
		t.Fatalf("getint")
	}
	if getdur("D_OK", 0) != 150*time.Millisecond || getdur("BAD", time.Second) != time.Second {
		t.Fatalf("getdur")
	}
}

func TestGetbool(t *testing.T) {
	for i, v := range []string{"1", "true", "TRUE", " yes ", "Y", "on", "On"} {
		k := "B_T_" + strconv.Itoa(i)
		t.Setenv(k, v)
		if !getbool(k, false) {
			t.Fatalf("getbool(%q) = false", v)
		}
	}
	for i, v := range []string{"0", "false", "FALSE", " no ", "N", "off", "Off"} {
		k := "B_F_" + strconv.Itoa(i)
		t.Setenv(k, v)
		if getbool(k, true) {
			t.Fatalf("getbool(%q) = true", v)
		}
	}
	t.Setenv("B_EMPTY", "")
	if !getbool("B_EMPTY", true) || getbool("B_EMPTY", false) {
		t.Fatalf("empty value should yield the default")
	}
	t.Setenv("B_JUNK", "maybe")
	if !getbool("B_JUNK", true) {
		t.Fatalf("unparseable value should yield the default")
	}
}

func TestSplitCSV(t *testing.T) {
	if splitCSV("") != nil {
		t.Fatalf("empty input should give nil")
	}
	if got := splitCSV(" a, ,b ,  c  ,"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("splitCSV = %#v", got)
	}
}

func TestNormalizeBasePath(t *testing.T) {
	for in, want := range map[string]string{
		"":        "/",
		" / ":     "/",
		"v1":      "/v1",
		"/v1/":    "/v1",
		"api/v2/": "/api/v2",
	} {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestDBConfig_DSN(t *testing.T) {
	sqlite := DBConfig{Driver: "sqlite", Path: "data/app.db", URL: "postgres://ignored"}
	if sqlite.DSN() != "data/app.db" {
		t.Fatalf("sqlite DSN = %q", sqlite.DSN())
	}
	pg := DBConfig{Driver: "postgres", Path: "x.db", URL: "postgres://u@h/db"}
	if pg.DSN() != "postgres://u@h/db" {
		t.Fatalf("postgres DSN = %q", pg.DSN())
	}
}
