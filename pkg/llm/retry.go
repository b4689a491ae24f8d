package llm

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
)

// RetryPolicy bounds the retry loop. Between attempt n (0-indexed) and n+1
// the retrier waits BaseDelay * 2^n; the final failed attempt does not wait.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: DefaultMaxAttempts, BaseDelay: DefaultBaseDelay}
}

// Backoff returns the wait inserted after a retryable failure of attempt n.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	return p.BaseDelay * (1 << attempt)
}

// Retrier wraps an Analyzer with bounded exponential backoff. Terminal
// failures surface immediately; retryable ones are re-attempted until the
// policy is exhausted.
type Retrier struct {
	analyzer Analyzer
	policy   RetryPolicy
	sleep    func(ctx context.Context, d time.Duration) error
}

type RetrierOption func(*Retrier)

// WithSleep overrides the backoff wait, used by tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) RetrierOption {
	return func(r *Retrier) { r.sleep = sleep }
}

func NewRetrier(analyzer Analyzer, policy RetryPolicy, opts ...RetrierOption) *Retrier {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = DefaultMaxAttempts
	}
	if policy.BaseDelay <= 0 {
		policy.BaseDelay = DefaultBaseDelay
	}
	r := &Retrier{
		analyzer: analyzer,
		policy:   policy,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Retrier) Name() string {
	return r.analyzer.Name()
}

// Analyze runs at most MaxAttempts calls against the wrapped analyzer.
func (r *Retrier) Analyze(ctx context.Context, prompt string) (string, error) {
	var last *APIError

	for attempt := 0; attempt < r.policy.MaxAttempts; attempt++ {
		text, err := r.analyzer.Analyze(ctx, prompt)
		if err == nil {
			return text, nil
		}

		apiErr, ok := AsAPIError(err)
		if !ok || !apiErr.Retryable() {
			return "", err
		}

		last = apiErr
		if attempt == r.policy.MaxAttempts-1 {
			break
		}
		if err := r.sleep(ctx, r.policy.Backoff(attempt)); err != nil {
			return "", err
		}
	}

	return "", &APIError{
		Kind:   KindRetryExhausted,
		Detail: fmt.Sprintf("gave up after %d attempts: %s", r.policy.MaxAttempts, last.Detail),
		Cause:  last,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
