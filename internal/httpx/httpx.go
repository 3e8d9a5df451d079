package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// HTTPError carries status/body for non-2xx responses so callers can decide
// whether the failure is a portal-side hiccup or a real contract violation.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 900))
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// RetryConfig controls retry behavior for portal requests.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryConfig is tuned for the student portal, which answers slowly
// and throws intermittent 5xx during the matrícula window.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 5,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    15 * time.Second,
	}
}

// DoWithRetry executes a request (rebuilt by buildReq per attempt) retrying
// transient failures: timeouts, connection drops, 5xx and 429. It always
// reads the full body so the transport can reuse the connection.
func DoWithRetry(
	ctx context.Context,
	client *http.Client,
	buildReq func(context.Context) (*http.Request, error),
	cfg RetryConfig,
) (*http.Response, []byte, error) {
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultRetryConfig()
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		req, err := buildReq(ctx)
		if err != nil {
			return nil, nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			if !isRetryableNetErr(err) || attempt == cfg.MaxAttempts {
				return nil, nil, err
			}
			lastErr = err
			if err := sleepBackoff(ctx, attempt, cfg, 0); err != nil {
				return nil, nil, err
			}
			continue
		}

		body, readErr := readAndClose(resp.Body)
		if readErr != nil {
			if !isRetryableNetErr(readErr) || attempt == cfg.MaxAttempts {
				return resp, body, readErr
			}
			lastErr = readErr
			if err := sleepBackoff(ctx, attempt, cfg, 0); err != nil {
				return nil, nil, err
			}
			continue
		}

		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return resp, body, nil
		}

		herr := &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       body,
		}
		if attempt == cfg.MaxAttempts {
			return resp, body, herr
		}
		lastErr = herr
		if err := sleepBackoff(ctx, attempt, cfg, retryAfter(resp)); err != nil {
			return nil, nil, err
		}
	}

	if lastErr != nil {
		return nil, nil, lastErr
	}
	return nil, nil, errors.New("httpx: request failed")
}

func readAndClose(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	return io.ReadAll(rc)
}

func sleepBackoff(ctx context.Context, attempt int, cfg RetryConfig, after time.Duration) error {
	sleep := after
	if sleep <= 0 {
		sleep = cfg.BaseDelay * time.Duration(1<<(attempt-1))
		if sleep > cfg.MaxDelay {
			sleep = cfg.MaxDelay
		}
		sleep += time.Duration(rand.Intn(300)) * time.Millisecond
	}

	t := time.NewTimer(sleep)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isRetryableNetErr(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "eof")
}

// retryAfter parses a Retry-After header given in seconds. The portal never
// sends HTTP-date values.
func retryAfter(resp *http.Response) time.Duration {
	v := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
