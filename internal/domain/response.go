package domain

import "strings"

// StatusCategory is the standard HTTP status-class bucketing.
type StatusCategory string

const (
	CategoryInformational StatusCategory = "informational"
	CategorySuccess       StatusCategory = "success"
	CategoryRedirect      StatusCategory = "redirect"
	CategoryClientError   StatusCategory = "client_error"
	CategoryServerError   StatusCategory = "server_error"
	CategoryUnknown       StatusCategory = "unknown"
)

// CategoryOf buckets an HTTP status code into its class.
func CategoryOf(status int) StatusCategory {
	switch {
	case status >= 100 && status < 200:
		return CategoryInformational
	case status >= 200 && status < 300:
		return CategorySuccess
	case status >= 300 && status < 400:
		return CategoryRedirect
	case status >= 400 && status < 500:
		return CategoryClientError
	case status >= 500 && status < 600:
		return CategoryServerError
	}
	return CategoryUnknown
}

// TLSInfo summarizes the negotiated TLS session of an https response.
type TLSInfo struct {
	Version     string   `json:"version"`
	CipherSuite string   `json:"cipherSuite"`
	ALPN        string   `json:"alpn,omitempty"`
	PeerCerts   []string `json:"peerCertificates,omitempty"`
}

// ResponseRecord is one completed request/response exchange. It is created by
// the executor, read by the analyzer and renderer, and discarded afterwards.
type ResponseRecord struct {
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
	// Headers holds response headers with lower-cased keys, first value wins.
	Headers map[string]string `json:"headers"`
	// Data is the parsed body: map/slice for JSON payloads, string otherwise.
	Data any `json:"data,omitempty"`
	// RawBody is the body as received, kept for size estimation and for
	// structure inspection that needs original JSON key order.
	RawBody []byte         `json:"-"`
	TLS     *TLSInfo       `json:"tls,omitempty"`
	Timing  TimingSnapshot `json:"timing"`
}

// Header looks up a response header case-insensitively.
func (r *ResponseRecord) Header(name string) (string, bool) {
	v, ok := r.Headers[strings.ToLower(name)]
	return v, ok
}
