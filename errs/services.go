package errs

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Notification errors never reach a client; they are logged by the caller.
var (
	ErrNotifierUnconfigured = errors.New("notifier not configured")
	ErrNotifierFailed       = errors.New("notification failed")
	ErrTimeout              = errors.New("timeout")
)

// Configuration & Environment Errors
var (
	ErrConfigMissing = errors.New("configuration missing")
	ErrConfigInvalid = errors.New("configuration invalid")
)

// NewNotifierError wraps a transport failure of one notification channel
func NewNotifierError(channel string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrNotifierFailed,
		Details:    fmt.Sprintf("%s notification failed", channel),
		Cause:      cause,
		Field:      channel,
	}
}

func NewNotifierUnconfiguredError(channel, missing string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrNotifierUnconfigured,
		Details:    fmt.Sprintf("%s requires %s", channel, missing),
		Field:      channel,
	}
}

func NewTimeoutError(operation string, timeout time.Duration) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusGatewayTimeout,
		err:        ErrTimeout,
		Details:    fmt.Sprintf("%s did not finish within %v", operation, timeout),
	}
}

func NewConfigMissingError(key string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("%s is not set", key),
		Field:      key,
	}
}

func NewConfigInvalidError(key, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigInvalid,
		Details:    fmt.Sprintf("%s: %s", key, reason),
		Field:      key,
	}
}

func IsNotifierUnconfigured(err error) bool {
	return errors.Is(err, ErrNotifierUnconfigured)
}

func IsNotifierFailed(err error) bool {
	return errors.Is(err, ErrNotifierFailed)
}

func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

func IsConfigMissing(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}
