package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
)

var (
	// ErrUnreachable covers timeouts, DNS failures and lost or refused connections
	ErrUnreachable = errors.New("transport: host unreachable")
	// ErrNoData is returned for a 2xx response with an empty body
	ErrNoData = errors.New("transport: response has no data")

	errClosed = errors.New("transport: result channel closed without a value")
)

// ClientError wraps any transport failure that is not classified as unreachable
type ClientError struct {
	Err error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("transport: client error: %v", e.Err)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// ServerError is returned for any status outside 200-299
type ServerError struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("transport: server error: %s", e.Status)
}

// DecodingError wraps a JSON syntax or schema failure on a 2xx body
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("transport: decoding error: %v", e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

type Kind int

const (
	KindUnreachable Kind = iota + 1
	KindClient
	KindServer
	KindNoData
	KindDecoding
)

func (k Kind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	case KindNoData:
		return "no_data"
	case KindDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// KindOf reports which transport error kind err carries, if any
func KindOf(err error) (Kind, bool) {
	var (
		clientErr   *ClientError
		serverErr   *ServerError
		decodingErr *DecodingError
	)

	switch {
	case err == nil:
		return 0, false
	case errors.Is(err, ErrUnreachable):
		return KindUnreachable, true
	case errors.Is(err, ErrNoData):
		return KindNoData, true
	case errors.As(err, &serverErr):
		return KindServer, true
	case errors.As(err, &decodingErr):
		return KindDecoding, true
	case errors.As(err, &clientErr):
		return KindClient, true
	}

	return 0, false
}

// converted normalizes an error returned by the HTTP round trip
func converted(err error) error {
	if isUnreachable(err) {
		return ErrUnreachable
	}
	return &ClientError{Err: err}
}

func isUnreachable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETDOWN) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	return false
}
