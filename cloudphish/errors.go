package cloudphish

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cloudphish/internal/config"
	"github.com/go-resty/resty/v2"
)

// Configuration errors, re-exported from the config loader.
var (
	ErrConfiguration   = config.ErrConfiguration
	ErrNoConfigFiles   = config.ErrNoConfigFiles
	ErrProfileNotFound = config.ErrProfileNotFound
	ErrInvalidProfile  = config.ErrInvalidProfile
)

// ConfigurationError is returned when the configuration cannot produce a
// usable client.
type ConfigurationError = config.ConfigurationError

var (
	// ErrRemote matches every *RemoteError via errors.Is.
	ErrRemote = errors.New("cloudphish remote error")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// RemoteError is returned by [Client.Get] when the server answers with a
// status other than 200 OK.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("received status code %d message: '%s'", e.StatusCode, e.Body)
}

// Is reports whether target is ErrRemote.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

// Unwrap returns the status class sentinel (ErrNotFound for 404, ...), or
// nil for statuses without one.
func (e *RemoteError) Unwrap() error {
	if e == nil {
		return nil
	}

	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	return &RemoteError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
}
