package netcheck

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the knobs for every network probe. Build it once at
// startup and hand it to NewValidator; the engine keeps no global state.
type Config struct {
	DNSTimeout   time.Duration
	DNSServer    string // optional "host:port" override, e.g. "8.8.8.8:53"
	TLSTimeout   time.Duration
	WhoisTimeout time.Duration
	GeoTimeout   time.Duration
	GeoAPIURL    string // base URL of the ip-api style geolocation service
}

func DefaultConfig() Config {
	return Config{
		DNSTimeout:   3 * time.Second,
		TLSTimeout:   5 * time.Second,
		WhoisTimeout: 5 * time.Second,
		GeoTimeout:   5 * time.Second,
		GeoAPIURL:    "http://ip-api.com",
	}
}

// ConfigFromEnv loads .env if present and applies VET_* overrides on top of
// the defaults.
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv("VET_DNS_SERVER"); v != "" {
		cfg.DNSServer = v
	}
	if v := os.Getenv("VET_GEO_API_URL"); v != "" {
		cfg.GeoAPIURL = v
	}
	cfg.DNSTimeout = envDuration("VET_DNS_TIMEOUT", cfg.DNSTimeout)
	cfg.TLSTimeout = envDuration("VET_TLS_TIMEOUT", cfg.TLSTimeout)
	cfg.WhoisTimeout = envDuration("VET_WHOIS_TIMEOUT", cfg.WhoisTimeout)
	cfg.GeoTimeout = envDuration("VET_GEO_TIMEOUT", cfg.GeoTimeout)
	return cfg
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
