package redact

import (
	"encoding/json"
	"strings"
)

const mask = "***"

var sensitiveKeys = []string{"authorization", "cookie", "set-cookie", "access_token", "id_token", "session", "apikey"}

var sensitivePatterns = []string{"token", "secret", "api-key", "apikey"}

// SensitiveHeader reports whether a header name should be masked in output.
func SensitiveHeader(name string) bool {
	ln := strings.ToLower(name)
	for _, k := range sensitiveKeys {
		if ln == k {
			return true
		}
	}
	for _, p := range sensitivePatterns {
		if strings.Contains(ln, p) {
			return true
		}
	}
	return false
}

// HeaderValue masks value when its header name is sensitive.
func HeaderValue(name, value string) string {
	if SensitiveHeader(name) {
		return mask
	}
	return value
}

// JSON masks sensitive fields in a JSON string best-effort; anything that is
// not valid JSON is returned unchanged.
func JSON(s string) string {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	redactNode(&v)
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return s
	}
	return string(b)
}

func redactNode(n *any) {
	switch t := (*n).(type) {
	case map[string]any:
		for k, v := range t {
			if SensitiveHeader(k) {
				t[k] = mask
				continue
			}
			vv := any(v)
			redactNode(&vv)
			t[k] = vv
		}
	case []any:
		for i := range t {
			vv := any(t[i])
			redactNode(&vv)
			t[i] = vv
		}
	}
}
