package llm

import (
	"context"
	"errors"
	"fmt"
)

// Analyzer produces a plain-text analysis for a prompt.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Kind classifies an upstream failure. Retryable kinds may be attempted
// again under backoff; the rest are terminal.
type Kind int

const (
	// KindResponseParse means the upstream answered with a success status
	// but the payload was missing the expected structure.
	KindResponseParse Kind = iota
	// KindUpstreamHTTP is a non-429 failure status from the upstream.
	KindUpstreamHTTP
	// KindUpstreamRateLimited is an upstream 429.
	KindUpstreamRateLimited
	// KindTransport is a network-level failure, including per-attempt timeouts.
	KindTransport
	// KindRetryExhausted means every attempt was consumed without success.
	KindRetryExhausted
)

func (k Kind) String() string {
	switch k {
	case KindResponseParse:
		return "response_parse"
	case KindUpstreamHTTP:
		return "upstream_http"
	case KindUpstreamRateLimited:
		return "upstream_rate_limited"
	case KindTransport:
		return "transport"
	case KindRetryExhausted:
		return "retry_exhausted"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// APIError is the classified outcome of a failed upstream call.
type APIError struct {
	Kind   Kind
	Status int    // upstream HTTP status, when one was received
	Detail string
	Cause  error // last failure, set on KindRetryExhausted
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("llm: %s (status %d): %s", e.Kind, e.Status, e.Detail)
	}
	return fmt.Sprintf("llm: %s: %s", e.Kind, e.Detail)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// Retryable reports whether the failure is transient.
func (e *APIError) Retryable() bool {
	return e.Kind == KindUpstreamRateLimited || e.Kind == KindTransport
}

// AsAPIError extracts the classified error, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
