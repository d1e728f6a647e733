package cli

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildConfigDefaultsScheme(t *testing.T) {
	cfg, err := BuildConfig("example.com/api", "get", nil, nil, "")
	if err != nil {
		t.Fatalf("BuildConfig: %v", err)
	}
	if cfg.URL != "http://example.com/api" {
		t.Fatalf("url = %q", cfg.URL)
	}
	if cfg.OriginalURL != "example.com/api" {
		t.Fatalf("originalUrl = %q", cfg.OriginalURL)
	}
	if cfg.Method != "GET" {
		t.Fatalf("method = %q", cfg.Method)
	}
}

func TestBuildConfigRejectsBadMethod(t *testing.T) {
	if _, err := BuildConfig("http://x.test", "YEET", nil, nil, ""); err == nil {
		t.Fatalf("unknown method must be rejected")
	}
}

func TestBuildConfigHeaderLastWriteWins(t *testing.T) {
	cfg, err := BuildConfig("http://x.test", "GET", []string{"X-Token: a", "x-token: b"}, nil, "")
	if err != nil {
		t.Fatalf("BuildConfig: %v", err)
	}
	if len(cfg.Headers) != 1 {
		t.Fatalf("headers = %v", cfg.Headers)
	}
	if v, _ := cfg.Header("X-TOKEN"); v != "b" {
		t.Fatalf("last write must win, got %q", v)
	}
}

func TestCommandRoundTrip(t *testing.T) {
	cfg, err := BuildConfig(
		"https://api.example.com/items",
		"POST",
		[]string{"Content-Type: application/json", "X-Trace: abc 123"},
		[]string{"page=2", "sort=name desc"},
		`{"name":"thing","count":3}`,
	)
	if err != nil {
		t.Fatalf("BuildConfig: %v", err)
	}

	encoded := EncodeCommand(cfg)
	if !strings.HasPrefix(encoded, "ahc quick") {
		t.Fatalf("encoded = %q", encoded)
	}

	back, err := ParseCommand(encoded)
	if err != nil {
		t.Fatalf("ParseCommand(%q): %v", encoded, err)
	}
	if back.URL != cfg.URL || back.Method != cfg.Method {
		t.Fatalf("url/method mismatch: %+v vs %+v", back, cfg)
	}
	if !reflect.DeepEqual(back.Headers, cfg.Headers) {
		t.Fatalf("headers mismatch: %v vs %v", back.Headers, cfg.Headers)
	}
	if !reflect.DeepEqual(back.Params, cfg.Params) {
		t.Fatalf("params mismatch: %v vs %v", back.Params, cfg.Params)
	}
	if !reflect.DeepEqual(back.Data, cfg.Data) {
		t.Fatalf("data mismatch: %#v vs %#v", back.Data, cfg.Data)
	}
}

func TestCommandRoundTripRawBody(t *testing.T) {
	cfg, err := BuildConfig("http://x.test", "PUT", nil, nil, "plain text body")
	if err != nil {
		t.Fatalf("BuildConfig: %v", err)
	}
	back, err := ParseCommand(EncodeCommand(cfg))
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if back.Data != "plain text body" {
		t.Fatalf("data = %#v", back.Data)
	}
}

func TestParseCommandUnknownFlag(t *testing.T) {
	if _, err := ParseCommand("ahc quick --bogus http://x.test"); err == nil {
		t.Fatalf("unknown flag must error")
	}
}

func TestEncodeCommandExcludesOriginalURL(t *testing.T) {
	cfg, _ := BuildConfig("x.test/path", "GET", nil, nil, "")
	encoded := EncodeCommand(cfg)
	if !strings.Contains(encoded, "http://x.test/path") {
		t.Fatalf("encoded command must carry the resolved url: %q", encoded)
	}
	back, err := ParseCommand(encoded)
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	// the pre-augmentation url is display-only and not reconstructed
	if back.OriginalURL != "" {
		t.Fatalf("originalUrl should not round-trip, got %q", back.OriginalURL)
	}
}
