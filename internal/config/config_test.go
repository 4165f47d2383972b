package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// clearEnv blanks every HLTV_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvEndpoint, EnvUserAgent, EnvOutputPath, EnvTableClass, EnvTimeout} {
		t.Setenv(key, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	want := Config{
		Endpoint:   "https://www.hltv.org/stats/players?startDate=2025-05-08&endDate=2025-08-08&maps=de_ancient&rankingFilter=Top30&side=TERRORIST",
		UserAgent:  "Mozilla/5.0",
		OutputPath: "data/hltv_players.csv",
		TableClass: "stats-table",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestFromMap(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		want    func(Config) Config
		wantErr bool
	}{
		{
			name:   "empty map keeps defaults",
			values: map[string]string{},
			want:   func(c Config) Config { return c },
		},
		{
			name: "all keys",
			values: map[string]string{
				EnvEndpoint:   "http://localhost:8080/stats",
				EnvUserAgent:  "test-agent",
				EnvOutputPath: "/tmp/out.csv",
				EnvTableClass: "player-ratings-table",
				EnvTimeout:    "45s",
			},
			want: func(c Config) Config {
				c.Endpoint = "http://localhost:8080/stats"
				c.UserAgent = "test-agent"
				c.OutputPath = "/tmp/out.csv"
				c.TableClass = "player-ratings-table"
				c.Timeout = 45 * time.Second
				return c
			},
		},
		{
			name:   "empty values ignored",
			values: map[string]string{EnvUserAgent: ""},
			want:   func(c Config) Config { return c },
		},
		{
			name:    "bad timeout",
			values:  map[string]string{EnvTimeout: "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromMap(tt.values)
			if tt.wantErr {
				if err == nil {
					t.Fatal("FromMap() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("FromMap() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want(Default()), got); diff != "" {
				t.Errorf("FromMap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_EnvFileAndEnvironment(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := strings.Join([]string{
		"HLTV_ENDPOINT=http://example.test/stats",
		"HLTV_OUTPUT=out/players.csv",
		"HLTV_USER_AGENT=from-file",
	}, "\n")
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	t.Setenv(EnvUserAgent, "from-env")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Endpoint != "http://example.test/stats" {
		t.Errorf("Endpoint = %q, want value from file", cfg.Endpoint)
	}
	if cfg.OutputPath != "out/players.csv" {
		t.Errorf("OutputPath = %q, want value from file", cfg.OutputPath)
	}
	if cfg.UserAgent != "from-env" {
		t.Errorf("UserAgent = %q, process environment should win over file", cfg.UserAgent)
	}
	if cfg.TableClass != DefaultTableClass {
		t.Errorf("TableClass = %q, want default", cfg.TableClass)
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	if err != nil {
		t.Fatalf("Load() error for missing file: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty endpoint", func(c *Config) { c.Endpoint = "" }, "endpoint is required"},
		{"ftp endpoint", func(c *Config) { c.Endpoint = "ftp://example.com/x" }, "scheme"},
		{"missing host", func(c *Config) { c.Endpoint = "http:///stats" }, "missing host"},
		{"empty output", func(c *Config) { c.OutputPath = "" }, "output path"},
		{"empty table class", func(c *Config) { c.TableClass = "" }, "table class"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
		{"zero timeout allowed", func(c *Config) { c.Timeout = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
