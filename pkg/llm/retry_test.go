package llm

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type scriptedAnalyzer struct {
	outcomes []error
	calls    int
}

func (s *scriptedAnalyzer) Name() string {
	return "scripted"
}

func (s *scriptedAnalyzer) Analyze(_ context.Context, _ string) (string, error) {
	err := s.outcomes[s.calls]
	s.calls++
	if err != nil {
		return "", err
	}
	return "analysis text", nil
}

func newTestRetrier(analyzer Analyzer, sleeps *[]time.Duration) *Retrier {
	return NewRetrier(analyzer, RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second},
		WithSleep(func(_ context.Context, d time.Duration) error {
			*sleeps = append(*sleeps, d)
			return nil
		}))
}

func TestRetrier_SucceedsAfterRetryableFailures(t *testing.T) {
	analyzer := &scriptedAnalyzer{outcomes: []error{
		&APIError{Kind: KindTransport, Detail: "connection reset"},
		&APIError{Kind: KindUpstreamRateLimited, Status: 429, Detail: "quota"},
		nil,
	}}

	var sleeps []time.Duration
	retrier := newTestRetrier(analyzer, &sleeps)

	text, err := retrier.Analyze(context.Background(), "prompt")
	assert.Equal(t, nil, err)
	assert.Equal(t, "analysis text", text)
	assert.Equal(t, 3, analyzer.calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeps)
}

func TestRetrier_Exhaustion(t *testing.T) {
	analyzer := &scriptedAnalyzer{outcomes: []error{
		&APIError{Kind: KindTransport, Detail: "timeout"},
		&APIError{Kind: KindTransport, Detail: "timeout"},
		&APIError{Kind: KindTransport, Detail: "timeout"},
	}}

	var sleeps []time.Duration
	retrier := newTestRetrier(analyzer, &sleeps)

	_, err := retrier.Analyze(context.Background(), "prompt")

	apiErr, ok := AsAPIError(err)
	assert.Equal(t, true, ok)
	assert.Equal(t, KindRetryExhausted, apiErr.Kind)
	assert.Equal(t, 3, analyzer.calls)
	// The final failed attempt does not wait again.
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeps)

	cause, ok := AsAPIError(apiErr.Cause)
	assert.Equal(t, true, ok)
	assert.Equal(t, KindTransport, cause.Kind)
}

func TestRetrier_TerminalErrorNotRetried(t *testing.T) {
	analyzer := &scriptedAnalyzer{outcomes: []error{
		&APIError{Kind: KindUpstreamHTTP, Status: 500, Detail: "internal"},
	}}

	var sleeps []time.Duration
	retrier := newTestRetrier(analyzer, &sleeps)

	_, err := retrier.Analyze(context.Background(), "prompt")

	apiErr, ok := AsAPIError(err)
	assert.Equal(t, true, ok)
	assert.Equal(t, KindUpstreamHTTP, apiErr.Kind)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, 1, analyzer.calls)
	assert.Equal(t, 0, len(sleeps))
}

func TestRetrier_ParseErrorNotRetried(t *testing.T) {
	analyzer := &scriptedAnalyzer{outcomes: []error{
		&APIError{Kind: KindResponseParse, Detail: "missing candidates"},
	}}

	var sleeps []time.Duration
	retrier := newTestRetrier(analyzer, &sleeps)

	_, err := retrier.Analyze(context.Background(), "prompt")

	apiErr, ok := AsAPIError(err)
	assert.Equal(t, true, ok)
	assert.Equal(t, KindResponseParse, apiErr.Kind)
	assert.Equal(t, 1, analyzer.calls)
	assert.Equal(t, 0, len(sleeps))
}

func TestRetrier_CanceledDuringBackoff(t *testing.T) {
	analyzer := &scriptedAnalyzer{outcomes: []error{
		&APIError{Kind: KindTransport, Detail: "timeout"},
		nil,
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	retrier := NewRetrier(analyzer, RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second})

	_, err := retrier.Analyze(ctx, "prompt")
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 1, analyzer.calls)
}

func TestAPIError_Retryable(t *testing.T) {
	assert.Equal(t, true, (&APIError{Kind: KindTransport}).Retryable())
	assert.Equal(t, true, (&APIError{Kind: KindUpstreamRateLimited}).Retryable())
	assert.Equal(t, false, (&APIError{Kind: KindUpstreamHTTP}).Retryable())
	assert.Equal(t, false, (&APIError{Kind: KindResponseParse}).Retryable())
	assert.Equal(t, false, (&APIError{Kind: KindRetryExhausted}).Retryable())
}
