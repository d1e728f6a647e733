// Package httpclient adapts net/http to the executor's Doer contract: it
// builds the outbound request from a RequestConfig, performs it, and shapes
// the result into a ResponseRecord. Any HTTP status is a completed response;
// only transport failures return errors.
package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
)

type Client struct {
	hc     *http.Client
	logger *zerolog.Logger
}

// New builds a client. timeout bounds the whole request (0 means unbounded);
// insecure disables certificate validation, mirroring the probe behavior for
// hosts with self-signed certificates.
func New(timeout time.Duration, insecure bool, logger *zerolog.Logger) *Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &Client{hc: &http.Client{Transport: tr, Timeout: timeout}, logger: logger}
}

func (c *Client) Do(ctx context.Context, cfg domain.RequestConfig) (*domain.ResponseRecord, error) {
	target, err := buildURL(cfg)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	contentType := ""
	if cfg.Data != nil {
		switch d := cfg.Data.(type) {
		case string:
			body = strings.NewReader(d)
			if json.Valid([]byte(d)) {
				contentType = "application/json"
			} else {
				contentType = "text/plain"
			}
		default:
			b, merr := json.Marshal(d)
			if merr != nil {
				return nil, fmt.Errorf("encode body: %w", merr)
			}
			body = bytes.NewReader(b)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, cfg.Method, target, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		// redirect-policy failures hand back the last response (body
		// already closed) next to the error; surface what it carried
		if resp != nil {
			return &domain.ResponseRecord{
				Status:     resp.StatusCode,
				StatusText: statusText(resp),
				Headers:    lowerHeaders(resp.Header),
			}, err
		}
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	rec := &domain.ResponseRecord{
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		Headers:    lowerHeaders(resp.Header),
		RawBody:    raw,
		Data:       parseBody(resp.Header.Get("Content-Type"), raw),
	}
	if resp.TLS != nil {
		rec.TLS = tlsInfo(resp.TLS)
	}
	return rec, nil
}

// buildURL appends cfg.Params to the query string in insertion order,
// keeping any query already present in the URL.
func buildURL(cfg domain.RequestConfig) (string, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return "", &domain.InvalidURLError{URL: cfg.URL, Err: err}
	}
	if len(cfg.Params) == 0 {
		return u.String(), nil
	}
	var sb strings.Builder
	sb.WriteString(u.RawQuery)
	for _, p := range cfg.Params {
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	u.RawQuery = sb.String()
	return u.String(), nil
}

// lowerHeaders flattens response headers to lower-cased keys, first value
// wins, matching how the record is consumed downstream.
func lowerHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) == 0 {
			continue
		}
		lk := strings.ToLower(k)
		if _, exists := out[lk]; !exists {
			out[lk] = vs[0]
		}
	}
	return out
}

// parseBody decodes JSON payloads into structured values; everything else
// stays a string.
func parseBody(contentType string, raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	if strings.Contains(strings.ToLower(contentType), "json") {
		var v any
		if err := json.Unmarshal(raw, &v); err == nil {
			return v
		}
	}
	return string(raw)
}

func statusText(resp *http.Response) string {
	if i := strings.IndexByte(resp.Status, ' '); i >= 0 {
		return resp.Status[i+1:]
	}
	return http.StatusText(resp.StatusCode)
}

func tlsInfo(state *tls.ConnectionState) *domain.TLSInfo {
	info := &domain.TLSInfo{
		Version:     tls.VersionName(state.Version),
		CipherSuite: tls.CipherSuiteName(state.CipherSuite),
		ALPN:        state.NegotiatedProtocol,
	}
	for _, cert := range state.PeerCertificates {
		info.PeerCerts = append(info.PeerCerts, fmt.Sprintf("%s (issuer %s)", cert.Subject.CommonName, cert.Issuer.CommonName))
	}
	return info
}
