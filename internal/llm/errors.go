package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrRateLimit indicates the provider rejected the call for quota or
// rate-limit reasons (HTTP 429 or a quota indicator in the message).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema, or returned no usable content at all.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, overloaded,
// or unreachable (HTTP >= 500 or an overload indicator in the message).
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrRetriesExhausted is the consolidated failure returned after the
// retry wrapper gives up on a retryable error class. Op is the purpose
// label of the failed operation (e.g. "grade", "transcribe-document").
type ErrRetriesExhausted struct {
	Op       string
	Attempts int
	Err      error
}

func (e *ErrRetriesExhausted) Error() string {
	return fmt.Sprintf("%s failed after %d attempts: %v", e.Op, e.Attempts, e.Err)
}

func (e *ErrRetriesExhausted) Unwrap() error { return e.Err }

// UserMessage returns a message suitable for direct display,
// distinguishing quota exhaustion from generic failure.
func (e *ErrRetriesExhausted) UserMessage() string {
	var rl *ErrRateLimit
	if errors.As(e.Err, &rl) {
		return "Usage limit exceeded. Please wait a moment and try again."
	}
	return fmt.Sprintf("The %s request failed: %v", e.Op, e.Err)
}

// quotaIndicators are message fragments that mark an error as
// quota-related even when no HTTP status is available.
var quotaIndicators = []string{"quota", "resource_exhausted", "rate limit"}

// overloadIndicators mark an error as transient server trouble.
var overloadIndicators = []string{"overloaded", "unavailable", "internal", "try again"}

func messageIndicates(err error, indicators []string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, ind := range indicators {
		if strings.Contains(msg, ind) {
			return true
		}
	}
	return false
}

// classifyMessage falls back to message sniffing when the provider SDK
// exposes no structured status. Unrecognized errors stay fatal.
func classifyMessage(err error) error {
	switch {
	case messageIndicates(err, quotaIndicators):
		return &ErrRateLimit{Err: err}
	case messageIndicates(err, overloadIndicators):
		return &ErrProviderUnavailable{Err: err}
	default:
		return err
	}
}
