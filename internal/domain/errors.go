package domain

import "fmt"

// InvalidURLError reports a URL that could not be parsed into
// scheme/host/port. Raised before any network activity happens.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid url %q: %v", e.URL, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// TransportError wraps a network-level failure of the real HTTP request
// (probe failures never raise). It carries whatever TimingSnapshot was
// accumulated before the failure so the renderer can still show partial
// diagnostics. If a response was nonetheless obtained on the error path,
// Status and Data are populated.
type TransportError struct {
	Err    error
	Timing TimingSnapshot
	Status int
	Data   any
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// InvalidStateError signals internal misuse of the request timer, e.g.
// ending it before starting it. A programming defect, not recoverable.
type InvalidStateError struct {
	Op string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("timer: %s called in invalid state", e.Op)
}
