package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
)

// BuildConfig assembles a RequestConfig from CLI-shaped inputs. A URL
// without a scheme gets "http://" prepended; the value as typed is kept as
// OriginalURL for display.
func BuildConfig(rawURL, method string, headers, queries []string, data string) (domain.RequestConfig, error) {
	m, err := domain.NormalizeMethod(method)
	if err != nil {
		return domain.RequestConfig{}, err
	}
	full := strings.TrimSpace(rawURL)
	if full == "" {
		return domain.RequestConfig{}, &domain.InvalidURLError{URL: rawURL, Err: fmt.Errorf("empty url")}
	}
	if !strings.Contains(full, "://") {
		full = "http://" + full
	}
	cfg := domain.RequestConfig{URL: full, Method: m}
	if full != rawURL {
		cfg.OriginalURL = rawURL
	}
	for _, h := range headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return domain.RequestConfig{}, fmt.Errorf("malformed header %q, want 'Name: Value'", h)
		}
		cfg.SetHeader(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	for _, q := range queries {
		name, value, ok := strings.Cut(q, "=")
		if !ok {
			return domain.RequestConfig{}, fmt.Errorf("malformed query param %q, want 'name=value'", q)
		}
		cfg.AddParam(strings.TrimSpace(name), value)
	}
	if data != "" {
		if json.Valid([]byte(data)) {
			var v any
			_ = json.Unmarshal([]byte(data), &v)
			cfg.Data = v
		} else {
			cfg.Data = data
		}
	}
	return cfg, nil
}

// EncodeCommand renders cfg as a reusable `ahc quick` invocation. The
// pre-augmentation OriginalURL is deliberately not reconstructed.
func EncodeCommand(cfg domain.RequestConfig) string {
	args := []string{"ahc", "quick", "-X", cfg.Method}
	for k, v := range cfg.Headers {
		args = append(args, "-H", k+": "+v)
	}
	for _, p := range cfg.Params {
		args = append(args, "-q", p.Name+"="+p.Value)
	}
	if cfg.Data != nil {
		switch d := cfg.Data.(type) {
		case string:
			args = append(args, "-d", d)
		default:
			b, err := json.Marshal(d)
			if err == nil {
				args = append(args, "-d", string(b))
			}
		}
	}
	args = append(args, cfg.URL)
	return shellquote.Join(args...)
}

// ParseCommand reverses EncodeCommand: it tokenizes a quick invocation and
// rebuilds the equivalent RequestConfig.
func ParseCommand(command string) (domain.RequestConfig, error) {
	tokens, err := shellquote.Split(command)
	if err != nil {
		return domain.RequestConfig{}, fmt.Errorf("parse command: %w", err)
	}
	// skip the "ahc quick" prefix when present
	for len(tokens) > 0 && (tokens[0] == "ahc" || tokens[0] == "quick") {
		tokens = tokens[1:]
	}
	var (
		rawURL  string
		method  string
		headers []string
		queries []string
		data    string
	)
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		needsValue := func() (string, error) {
			if i+1 >= len(tokens) {
				return "", fmt.Errorf("flag %s needs a value", t)
			}
			i++
			return tokens[i], nil
		}
		switch t {
		case "-X", "--method":
			if method, err = needsValue(); err != nil {
				return domain.RequestConfig{}, err
			}
		case "-H", "--header":
			v, verr := needsValue()
			if verr != nil {
				return domain.RequestConfig{}, verr
			}
			headers = append(headers, v)
		case "-q", "--query":
			v, verr := needsValue()
			if verr != nil {
				return domain.RequestConfig{}, verr
			}
			queries = append(queries, v)
		case "-d", "--data":
			if data, err = needsValue(); err != nil {
				return domain.RequestConfig{}, err
			}
		default:
			if strings.HasPrefix(t, "-") {
				return domain.RequestConfig{}, fmt.Errorf("unknown flag %s", t)
			}
			rawURL = t
		}
	}
	if rawURL == "" {
		return domain.RequestConfig{}, fmt.Errorf("command has no url")
	}
	return BuildConfig(rawURL, method, headers, queries, data)
}
