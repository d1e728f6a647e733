package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
)

// contentTypeKinds maps content-type substrings to data types, first match
// wins, so order matters (e.g. "application/xml" must not match "json").
var contentTypeKinds = []struct {
	needle string
	kind   domain.DataType
}{
	{"json", domain.DataTypeJSON},
	{"html", domain.DataTypeHTML},
	{"xml", domain.DataTypeXML},
	{"text/plain", domain.DataTypePlainText},
	{"image", domain.DataTypeImage},
	{"pdf", domain.DataTypePDF},
}

// securityHeaders is the fixed checklist inspected by Analyze.
var securityHeaders = []string{
	"strict-transport-security",
	"x-frame-options",
	"x-content-type-options",
	"x-xss-protection",
	"content-security-policy",
}

const maxTopLevelKeys = 10

// Performance rating thresholds on total milliseconds.
const (
	ratingExcellentBelowMs = 500
	ratingGoodBelowMs      = 2000
	ratingModerateBelowMs  = 5000
)

// Analyze derives the informational view of a completed response. Pure: no
// I/O, never mutates rec.
func Analyze(rec *domain.ResponseRecord) domain.AnalysisResult {
	return domain.AnalysisResult{
		DataType:       classifyContentType(rec),
		Size:           measureSize(rec),
		Structure:      summarizeStructure(rec),
		Performance:    ratePerformance(rec),
		Security:       checkSecurityHeaders(rec),
		Caching:        summarizeCaching(rec),
		StatusCategory: domain.CategoryOf(rec.Status),
	}
}

func classifyContentType(rec *domain.ResponseRecord) domain.DataType {
	ct, ok := rec.Header("content-type")
	if !ok {
		return domain.DataTypeUnknown
	}
	ct = strings.ToLower(ct)
	for _, k := range contentTypeKinds {
		if strings.Contains(ct, k.needle) {
			return k.kind
		}
	}
	return domain.DataTypeUnknown
}

// measureSize prefers the content-length header verbatim; without it the
// parsed body is serialized to approximate a byte count (Estimated=true).
func measureSize(rec *domain.ResponseRecord) domain.SizeInfo {
	if cl, ok := rec.Header("content-length"); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(cl), 10, 64); err == nil && n >= 0 {
			return domain.SizeInfo{Bytes: n, Formatted: humanize.Bytes(uint64(n)), Estimated: false}
		}
	}
	var n int64
	if len(rec.RawBody) > 0 {
		n = int64(len(rec.RawBody))
	} else if rec.Data != nil {
		if s, ok := rec.Data.(string); ok {
			n = int64(len(s))
		} else if b, err := json.Marshal(rec.Data); err == nil {
			n = int64(len(b))
		}
	}
	return domain.SizeInfo{Bytes: n, Formatted: humanize.Bytes(uint64(n)), Estimated: true}
}

func summarizeStructure(rec *domain.ResponseRecord) domain.Structure {
	switch v := rec.Data.(type) {
	case nil:
		return domain.Structure{Type: "empty"}
	case []any:
		first := "unknown"
		if len(v) > 0 {
			first = typeName(v[0])
		}
		return domain.Structure{Type: "array", Length: len(v), FirstItemType: first}
	case map[string]any:
		keys := topLevelKeys(rec.RawBody, v)
		if len(keys) > maxTopLevelKeys {
			keys = keys[:maxTopLevelKeys]
		}
		return domain.Structure{Type: "object", Keys: len(v), TopLevelKeys: keys}
	default:
		s := fmt.Sprintf("%v", v)
		return domain.Structure{Type: typeName(v), Length: len(s)}
	}
}

// topLevelKeys recovers original JSON key order from the raw body when
// possible; map iteration order would otherwise randomize the listing.
func topLevelKeys(raw []byte, m map[string]any) []string {
	if keys := scanObjectKeys(raw); keys != nil {
		return keys
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func scanObjectKeys(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}
	var keys []string
	depth := 0
	expectKey := true
	for dec.More() || depth > 0 {
		tok, err = dec.Token()
		if err != nil {
			return nil
		}
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
			if depth == 0 {
				expectKey = true
			}
		case string:
			if depth == 0 && expectKey {
				keys = append(keys, t)
				expectKey = false
			} else if depth == 0 {
				expectKey = true
			}
		default:
			if depth == 0 {
				expectKey = true
			}
		}
		if depth < 0 {
			break
		}
	}
	return keys
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

func ratePerformance(rec *domain.ResponseRecord) domain.Performance {
	total := rec.Timing.TotalMs
	var rating string
	switch {
	case total < ratingExcellentBelowMs:
		rating = "excellent"
	case total < ratingGoodBelowMs:
		rating = "good"
	case total <= ratingModerateBelowMs:
		rating = "moderate"
	default:
		rating = "slow"
	}

	var recs []string
	if total > ratingGoodBelowMs {
		recs = append(recs, "Consider optimizing server response time")
	}
	if rec.Status >= 400 {
		recs = append(recs, "Check request configuration and endpoint availability")
	}
	if _, ok := rec.Header("cache-control"); !ok {
		recs = append(recs, "Add caching headers to improve repeat-request performance")
	}
	return domain.Performance{Rating: rating, Recommendations: recs}
}

func checkSecurityHeaders(rec *domain.ResponseRecord) domain.SecurityReport {
	rep := domain.SecurityReport{Present: []string{}, Missing: []string{}}
	for _, h := range securityHeaders {
		if _, ok := rec.Header(h); ok {
			rep.Present = append(rep.Present, h)
		} else {
			rep.Missing = append(rep.Missing, h)
		}
	}
	return rep
}

func summarizeCaching(rec *domain.ResponseRecord) domain.CachingReport {
	get := func(name string) string {
		if v, ok := rec.Header(name); ok {
			return v
		}
		return "Not set"
	}
	cc, hasCC := rec.Header("cache-control")
	return domain.CachingReport{
		CacheControl: get("cache-control"),
		ETag:         get("etag"),
		LastModified: get("last-modified"),
		Expires:      get("expires"),
		Cacheable:    hasCC && !strings.Contains(strings.ToLower(cc), "no-cache"),
	}
}
