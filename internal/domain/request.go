package domain

import (
	"fmt"
	"strings"
)

// Methods supported by the CLI. Matching is case-insensitive.
var Methods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}

// NormalizeMethod upper-cases m and validates it against Methods.
// An empty method defaults to GET.
func NormalizeMethod(m string) (string, error) {
	if strings.TrimSpace(m) == "" {
		return "GET", nil
	}
	up := strings.ToUpper(strings.TrimSpace(m))
	for _, known := range Methods {
		if up == known {
			return up, nil
		}
	}
	return "", fmt.Errorf("unsupported method %q", m)
}

// QueryParam is a single name/value pair appended to the URL query string.
// Params keep insertion order, so they live in a slice rather than a map.
type QueryParam struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RequestConfig describes a single outbound request. It is built once by the
// CLI (interactive or quick mode) and treated as read-only afterwards.
type RequestConfig struct {
	URL    string `json:"url"`
	Method string `json:"method"`
	// OriginalURL is the URL as entered by the user, before query-param
	// augmentation. Display only; not used for the actual request.
	OriginalURL string            `json:"originalUrl,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Params      []QueryParam      `json:"params,omitempty"`
	// Data is the optional request body: a structured value (map/slice) or a
	// raw string. nil means no body.
	Data any `json:"data,omitempty"`
}

// SetHeader stores a header with case-insensitive last-write-wins semantics:
// an existing key differing only in case is replaced.
func (c *RequestConfig) SetHeader(name, value string) {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	for k := range c.Headers {
		if strings.EqualFold(k, name) {
			delete(c.Headers, k)
		}
	}
	c.Headers[name] = value
}

// Header looks up a header value case-insensitively.
func (c *RequestConfig) Header(name string) (string, bool) {
	for k, v := range c.Headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// AddParam appends a query parameter, preserving insertion order.
func (c *RequestConfig) AddParam(name, value string) {
	c.Params = append(c.Params, QueryParam{Name: name, Value: value})
}

func (c *RequestConfig) HasBody() bool { return c.Data != nil }

// DisplayURL prefers the URL as the user typed it.
func (c *RequestConfig) DisplayURL() string {
	if c.OriginalURL != "" {
		return c.OriginalURL
	}
	return c.URL
}
