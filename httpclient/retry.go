package httpclient

import (
	"errors"
	"fmt"
	"time"
)

// attemptFunc runs a single attempt. The attempt counter starts at 1.
type attemptFunc func(attempt int) (*Response, error)

// backoffFunc returns the delay to sleep after the given number of failed
// attempts, before the next attempt is made.
type backoffFunc func(failures int) time.Duration

// sleepFunc pauses between attempts; injected so tests can record delays.
type sleepFunc func(time.Duration)

// linearBackoff returns base*failures: with a 2s base the sequence is 2s, 4s, 6s.
func linearBackoff(base time.Duration) backoffFunc {
	return func(failures int) time.Duration {
		return base * time.Duration(failures)
	}
}

// transportFailure marks an error as a transport-level failure, the only
// kind the retry loop will attempt again.
type transportFailure struct {
	wrapped error
}

func (e *transportFailure) Error() string {
	return fmt.Sprintf("transport failure: %v", e.wrapped)
}

func (e *transportFailure) Unwrap() error {
	return e.wrapped
}

// isTransportFailure reports whether err came from a failed HTTP round trip
// rather than a completed response.
func isTransportFailure(err error) bool {
	var tf *transportFailure
	return errors.As(err, &tf)
}

// runWithRetry executes fn up to maxAttempts times, sleeping backoff(n)
// after the n-th transport failure. Non-transport errors (bad status,
// validation) surface immediately. When all attempts fail at the transport
// level the last underlying error is wrapped in a RequestFailed error.
func runWithRetry(maxAttempts int, backoff backoffFunc, sleep sleepFunc, fn attemptFunc) (*Response, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := fn(attempt)
		if err == nil {
			return resp, nil
		}
		if !isTransportFailure(err) {
			return resp, err
		}
		lastErr = err
		if attempt < maxAttempts {
			sleep(backoff(attempt))
		}
	}

	return nil, NewRequestFailedError(
		fmt.Sprintf("all %d attempts failed", maxAttempts),
		maxAttempts,
		errors.Unwrap(lastErr),
	)
}
