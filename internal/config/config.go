package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint   = "https://www.hltv.org/stats/players?startDate=2025-05-08&endDate=2025-08-08&maps=de_ancient&rankingFilter=Top30&side=TERRORIST"
	DefaultUserAgent  = "Mozilla/5.0"
	DefaultOutputPath = "data/hltv_players.csv"
	DefaultTableClass = "stats-table"
)

// Environment variables read by Load.
const (
	EnvEndpoint   = "HLTV_ENDPOINT"
	EnvUserAgent  = "HLTV_USER_AGENT"
	EnvOutputPath = "HLTV_OUTPUT"
	EnvTableClass = "HLTV_TABLE_CLASS"
	EnvTimeout    = "HLTV_TIMEOUT"
)

// Config is the full set of parameters for one extraction run.
type Config struct {
	Endpoint   string
	UserAgent  string
	OutputPath string
	TableClass string
	// Timeout bounds the HTTP request. Zero means no timeout.
	Timeout time.Duration
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Endpoint:   DefaultEndpoint,
		UserAgent:  DefaultUserAgent,
		OutputPath: DefaultOutputPath,
		TableClass: DefaultTableClass,
	}
}

// Load returns the defaults overlaid with values from envFile and then the process
// environment. A missing envFile is ignored; an empty envFile skips the file.
func Load(envFile string) (Config, error) {
	values := map[string]string{}

	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading env file %s: %w", envFile, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	for _, key := range []string{EnvEndpoint, EnvUserAgent, EnvOutputPath, EnvTableClass, EnvTimeout} {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			values[key] = v
		}
	}

	return FromMap(values)
}

// FromMap applies the HLTV_* keys in values on top of Default. Empty values are ignored.
func FromMap(values map[string]string) (Config, error) {
	cfg := Default()

	if v := values[EnvEndpoint]; v != "" {
		cfg.Endpoint = v
	}
	if v := values[EnvUserAgent]; v != "" {
		cfg.UserAgent = v
	}
	if v := values[EnvOutputPath]; v != "" {
		cfg.OutputPath = v
	}
	if v := values[EnvTableClass]; v != "" {
		cfg.TableClass = v
	}
	if v := values[EnvTimeout]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint scheme %q (must be http or https)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", c.Endpoint)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if c.TableClass == "" {
		return fmt.Errorf("table class is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", c.Timeout)
	}
	return nil
}
