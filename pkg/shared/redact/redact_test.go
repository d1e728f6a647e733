package redact

import (
	"strings"
	"testing"
)

func TestSensitiveHeader(t *testing.T) {
	for _, name := range []string{"Authorization", "cookie", "Set-Cookie", "X-Api-Key", "X-Auth-Token"} {
		if !SensitiveHeader(name) {
			t.Fatalf("%s should be sensitive", name)
		}
	}
	for _, name := range []string{"Content-Type", "Cache-Control", "Location"} {
		if SensitiveHeader(name) {
			t.Fatalf("%s should not be sensitive", name)
		}
	}
}

func TestHeaderValue(t *testing.T) {
	if HeaderValue("Authorization", "Bearer xyz") != "***" {
		t.Fatalf("authorization not masked")
	}
	if HeaderValue("Content-Type", "text/html") != "text/html" {
		t.Fatalf("plain header must pass through")
	}
}

func TestJSONMasksNestedFields(t *testing.T) {
	out := JSON(`{"user":"bob","auth":{"access_token":"abc123"}}`)
	if strings.Contains(out, "abc123") {
		t.Fatalf("token leaked: %s", out)
	}
	if !strings.Contains(out, "bob") {
		t.Fatalf("plain field dropped: %s", out)
	}
}

func TestJSONLeavesNonJSONAlone(t *testing.T) {
	if out := JSON("not json at all"); out != "not json at all" {
		t.Fatalf("out = %q", out)
	}
}
