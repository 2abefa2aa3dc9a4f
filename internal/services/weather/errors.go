package weather

import (
	"context"
	"errors"
	"net"
	"syscall"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

var (
	ErrInvalidInput        = errors.New("invalid location query")
	ErrTimeout             = errors.New("request timed out")
	ErrNetworkUnreachable  = errors.New("network unreachable")
	ErrUpstreamRejected    = errors.New("provider rejected the request")
	ErrUpstreamUnavailable = errors.New("provider unavailable")
)

const (
	MsgInvalidInput        = models.MsgNoLocation
	MsgTimeout             = "Request timed out, try again later."
	MsgNetworkUnreachable  = "Network problem, check your internet connection."
	MsgUpstreamRejected    = "Invalid city name or coordinates."
	MsgUpstreamUnavailable = "Unable to fetch weather data at the moment. Please try again later."
)

// Classify maps an error from the transport or the client onto one of the
// taxonomy sentinels. Unknown errors count as ErrUpstreamUnavailable.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidInput), errors.Is(err, models.ErrNoLocation):
		return ErrInvalidInput
	case errors.Is(err, ErrUpstreamRejected):
		return ErrUpstreamRejected
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return ErrTimeout
	case errors.Is(err, ErrNetworkUnreachable), isNetworkFailure(err):
		return ErrNetworkUnreachable
	default:
		return ErrUpstreamUnavailable
	}
}

// Message is the user-facing text for err.
func Message(err error) string {
	switch Classify(err) {
	case ErrInvalidInput:
		return MsgInvalidInput
	case ErrTimeout:
		return MsgTimeout
	case ErrNetworkUnreachable:
		return MsgNetworkUnreachable
	case ErrUpstreamRejected:
		return MsgUpstreamRejected
	default:
		return MsgUpstreamUnavailable
	}
}

// Kind is a short label of the taxonomy member, used in logs and metrics.
func Kind(err error) string {
	switch Classify(err) {
	case nil:
		return "ok"
	case ErrInvalidInput:
		return "invalid_input"
	case ErrTimeout:
		return "timeout"
	case ErrNetworkUnreachable:
		return "network"
	case ErrUpstreamRejected:
		return "rejected"
	default:
		return "unavailable"
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetworkFailure(err error) bool {
	var (
		opErr  *net.OpError
		dnsErr *net.DNSError
	)
	return errors.As(err, &opErr) ||
		errors.As(err, &dnsErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH)
}
