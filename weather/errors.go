package weather

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

var (
	// ErrMissingAPIKey is returned before any request when no key is configured.
	ErrMissingAPIKey = errors.New("API Key Missing")
	// ErrTooManyRedirects stops a lookup that keeps being redirected.
	ErrTooManyRedirects = errors.New("too many redirects")
	// ErrEmptyCity rejects a lookup for a blank city name.
	ErrEmptyCity = errors.New("Please enter a city name")
	// ErrBusy rejects a lookup while another one is still running.
	ErrBusy = errors.New("A lookup is already in progress")
	// ErrBadResponse marks a 2xx response whose body could not be decoded.
	ErrBadResponse = errors.New("malformed weather response")
)

// StatusError is a non-2xx response from the weather API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather API error: status %d", e.Code)
}

// APIError is a 2xx response whose body reports a failure.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

var statusMessages = map[int]string{
	400: "Bad request\nPlease Check Your Input",
	401: "Unauthorized\nCheck Your API Key",
	403: "Forbidden\nCheck Your API Key",
	404: "Not Found\nCity Not Found",
	500: "Internal Server Error\nTry Again Later",
	502: "Bad Gateway\nTry Again Later",
	503: "Service Unavailable\nTry Again Later",
	504: "Gateway Timeout\nTry Again Later",
}

// Describe turns a lookup error into the message shown to the user.
func Describe(err error) string {
	var (
		statusErr *StatusError
		apiErr    *APIError
		netErr    net.Error
		opErr     *net.OpError
		urlErr    *url.Error
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingAPIKey):
		return ErrMissingAPIKey.Error()
	case errors.Is(err, ErrEmptyCity):
		return ErrEmptyCity.Error()
	case errors.Is(err, ErrBusy):
		return ErrBusy.Error()
	case errors.As(err, &statusErr):
		if msg, ok := statusMessages[statusErr.Code]; ok {
			return msg
		}
		return "Unknown Error"
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.As(err, &netErr) && netErr.Timeout():
		return "Timeout Error\nTry Again Later"
	case errors.Is(err, ErrTooManyRedirects):
		return "Too Many Redirects\nPlease Try Again Later"
	case errors.As(err, &opErr):
		return "Connection Error\nCheck Your Internet Connection"
	case errors.As(err, &urlErr), errors.Is(err, ErrBadResponse):
		return "An Error Occurred\nPlease Try Again"
	default:
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}
}
