package ratelimit

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultWindow      = 60 * time.Second
	DefaultMaxRequests = 5
)

var ErrEmptyIdentity = errors.New("ratelimit: empty identity")

// Decision is the outcome of an admit check. RetryAfter is only meaningful
// when Allowed is false.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// RetryAfterSeconds returns the retry hint as whole seconds, clamped to >= 0.
func (d Decision) RetryAfterSeconds() int {
	if d.RetryAfter < 0 {
		return 0
	}
	return int(d.RetryAfter / time.Second)
}

// Limiter admits at most maxRequests requests per identity within a fixed
// window. The window is anchored at the first admitted request after a reset.
type Limiter struct {
	store       Store
	window      time.Duration
	maxRequests int
	now         func() time.Time
}

type Option func(*Limiter)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(store Store, window time.Duration, maxRequests int, opts ...Option) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	l := &Limiter{
		store:       store,
		window:      window,
		maxRequests: maxRequests,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Admit decides whether a request from identity may proceed. The decision is
// final once made: a rejection does not consume a slot, and an admission is
// never rolled back.
func (l *Limiter) Admit(ctx context.Context, identity string) (Decision, error) {
	if identity == "" {
		return Decision{}, ErrEmptyIdentity
	}

	for {
		old, err := l.store.Get(ctx, identity)
		if err != nil {
			return Decision{}, err
		}

		now := l.now()
		next := old
		if old.IsZero() || now.Sub(old.WindowStart) > l.window {
			next = Record{WindowStart: now}
		}

		if next.Count >= l.maxRequests {
			remaining := l.window - now.Sub(next.WindowStart)
			if remaining < 0 {
				remaining = 0
			}
			return Decision{Allowed: false, RetryAfter: remaining}, nil
		}

		next.Count++
		ok, err := l.store.CompareAndSwap(ctx, identity, old, next)
		if err != nil {
			return Decision{}, err
		}
		if ok {
			return Decision{Allowed: true}, nil
		}
		// Lost a race with a concurrent admit for the same identity; re-read.
	}
}
