package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel string
	// Probe timeout in ms (DNS/TCP/TLS measurement cap).
	ProbeTimeoutMs int
	// Timeout for the real HTTP request in ms. 0 disables the bound.
	RequestTimeoutMs int
	// Max characters of a rendered body preview before truncation.
	PreviewMaxBytes int
	// Width in cells of the waterfall chart's full timeline.
	WaterfallWidth int
	// Show raw values of sensitive headers instead of masking them.
	ExposeSensitiveHeaders bool
	InsecureTLS            bool
	NoColor                bool
	// If set, a Prometheus /metrics listener is started on this address.
	MetricsAddr string
}

func FromEnv() Config {
	cfg := Config{
		LogLevel:         getEnv("AHC_LOG_LEVEL", "warn"),
		ProbeTimeoutMs:   getEnvInt("AHC_PROBE_TIMEOUT_MS", 5000),
		RequestTimeoutMs: getEnvInt("AHC_REQUEST_TIMEOUT_MS", 30000),
		PreviewMaxBytes:  getEnvInt("AHC_PREVIEW_MAX_BYTES", 1000),
		WaterfallWidth:   getEnvInt("AHC_WATERFALL_WIDTH", 40),
		MetricsAddr:      getEnv("AHC_METRICS_ADDR", ""),
	}
	if v := os.Getenv("AHC_EXPOSE_SENSITIVE_HEADERS"); v == "1" || v == "true" {
		cfg.ExposeSensitiveHeaders = true
	}
	if v := os.Getenv("AHC_INSECURE_TLS"); v == "1" || v == "true" {
		cfg.InsecureTLS = true
	}
	if v := os.Getenv("AHC_NO_COLOR"); v == "1" || v == "true" {
		cfg.NoColor = true
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
