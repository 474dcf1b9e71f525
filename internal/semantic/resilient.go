package semantic

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/bulkhead"
	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/ratelimit"
	"github.com/felixgeelhaar/fortify/retry"
)

// ResilientValidator wraps a Validator with resilience patterns from fortify
type ResilientValidator struct {
	inner          Validator
	circuitBreaker circuitbreaker.CircuitBreaker[*Result]
	retrier        retry.Retry[*Result]
	bulkhead       bulkhead.Bulkhead[*Result]
	rateLimit      ratelimit.RateLimiter
	logger         *slog.Logger
}

// ResilientConfig holds configuration for the resilience wrapper
type ResilientConfig struct {
	EnableCircuitBreaker bool
	EnableRetry          bool
	EnableBulkhead       bool
	EnableRateLimit      bool

	// MaxConcurrent for bulkhead (default: 8)
	MaxConcurrent int

	// RatePerSecond for rate limiting (default: 5)
	RatePerSecond int

	Logger *slog.Logger
}

// DefaultResilientConfig returns sensible defaults for the validator call
func DefaultResilientConfig() ResilientConfig {
	return ResilientConfig{
		EnableCircuitBreaker: true,
		EnableRetry:          true,
		EnableBulkhead:       true,
		EnableRateLimit:      true,
		MaxConcurrent:        8,
		RatePerSecond:        5,
	}
}

// NewResilientValidator wraps a validator with fortify resilience patterns
func NewResilientValidator(inner Validator, cfg ResilientConfig) *ResilientValidator {
	rv := &ResilientValidator{
		inner:  inner,
		logger: cfg.Logger,
	}

	if cfg.EnableCircuitBreaker {
		rv.circuitBreaker = circuitbreaker.New[*Result](circuitbreaker.Config{
			MaxRequests: 2,
			Interval:    10 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(from, to circuitbreaker.State) {
				if rv.logger != nil {
					rv.logger.Warn("semantic validator circuit state change",
						"from", from.String(),
						"to", to.String())
				}
			},
		})
	}

	if cfg.EnableRetry {
		rv.retrier = retry.New[*Result](retry.Config{
			MaxAttempts:   3,
			InitialDelay:  500 * time.Millisecond,
			MaxDelay:      5 * time.Second,
			Multiplier:    2.0,
			BackoffPolicy: retry.BackoffExponential,
			Jitter:        true,
			IsRetryable: func(err error) bool {
				return isRetryableHTTPError(err)
			},
		})
	}

	if cfg.EnableBulkhead {
		maxConcurrent := cfg.MaxConcurrent
		if maxConcurrent <= 0 {
			maxConcurrent = 8
		}
		rv.bulkhead = bulkhead.New[*Result](bulkhead.Config{
			MaxConcurrent: maxConcurrent,
			MaxQueue:      maxConcurrent * 2,
			QueueTimeout:  10 * time.Second,
		})
	}

	if cfg.EnableRateLimit {
		rate := cfg.RatePerSecond
		if rate <= 0 {
			rate = 5
		}
		rv.rateLimit = ratelimit.New(&ratelimit.Config{
			Rate:     rate,
			Burst:    rate * 2,
			Interval: time.Second,
		})
	}

	return rv
}

// Review applies the configured resilience patterns around the inner call
func (v *ResilientValidator) Review(ctx context.Context, req *Request) (*Result, error) {
	if v.rateLimit != nil {
		if !v.rateLimit.Allow(ctx, "semantic") {
			return nil, fmt.Errorf("semantic validator rate limit exceeded")
		}
	}

	operation := func(ctx context.Context) (*Result, error) {
		return v.inner.Review(ctx, req)
	}

	if v.bulkhead != nil {
		inner := operation
		operation = func(ctx context.Context) (*Result, error) {
			return v.bulkhead.Execute(ctx, inner)
		}
	}

	if v.circuitBreaker != nil && v.retrier != nil {
		return v.circuitBreaker.Execute(ctx, func(ctx context.Context) (*Result, error) {
			return v.retrier.Do(ctx, operation)
		})
	}
	if v.circuitBreaker != nil {
		return v.circuitBreaker.Execute(ctx, operation)
	}
	if v.retrier != nil {
		return v.retrier.Do(ctx, operation)
	}
	return operation(ctx)
}

// Close releases resources held by the wrapper
func (v *ResilientValidator) Close() error {
	if v.rateLimit != nil {
		return v.rateLimit.Close()
	}
	return nil
}

// isRetryableHTTPError checks whether an error is retryable by HTTP semantics
func isRetryableHTTPError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, code := range []int{
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
	} {
		if strings.Contains(msg, fmt.Sprintf("status %d", code)) {
			return true
		}
	}
	return false
}
