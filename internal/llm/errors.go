package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Transport failure kinds. Each is wrapped in a domain API error.
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrUnavailable   = errors.New("provider unavailable")
	ErrTimeout       = errors.New("request timed out")
	ErrBadResponse   = errors.New("malformed provider response")
	ErrEmptyResponse = errors.New("empty completion")
)

// classifyStatus maps a non-200 status code to a transport failure kind
func classifyStatus(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden: // 401, 403
		return ErrUnauthorized
	case http.StatusPaymentRequired, http.StatusTooManyRequests: // 402, 429
		return ErrQuotaExceeded
	case http.StatusRequestTimeout, http.StatusGatewayTimeout: // 408, 504
		return ErrTimeout
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: HTTP %d", ErrBadResponse, statusCode)
	}
}

// classifyTransportError tags deadline and cancellation failures so logs say why the call was abandoned
func classifyTransportError(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}

// Reason returns a short label for a completion failure, for logs and fallback reporting.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return "auth"
	case errors.Is(err, ErrQuotaExceeded):
		return "quota"
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrEmptyResponse), errors.Is(err, ErrBadResponse):
		return "bad_response"
	default:
		return "network"
	}
}
