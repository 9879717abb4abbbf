// ABOUTME: HTTP client for the remote theme registry with bounded timeouts
// ABOUTME: Caps redirects and honours proxy environment variables

package http

import (
	"errors"
	"net/http"
	"time"
)

// DefaultTimeout applies when SecureHTTPClient is given a non-positive timeout.
const DefaultTimeout = 15 * time.Second

// maxRedirects bounds redirect chains followed for a single request.
const maxRedirects = 5

// ErrTooManyRedirects is returned when a request exceeds maxRedirects.
var ErrTooManyRedirects = errors.New("too many redirects")

// SecureHTTPClient creates an HTTP client whose requests give up after timeout.
func SecureHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			IdleConnTimeout:       30 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
		},
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return ErrTooManyRedirects
			}
			return nil
		},
	}
}
