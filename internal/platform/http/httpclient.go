// Package http builds the HTTP client shared by external API adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates a client tuned for outbound API calls.
// http.DefaultClient has no timeout, so every adapter gets one of these.
// The transport caps dial and TLS handshake times and keeps a pool of
// idle connections for reuse.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
