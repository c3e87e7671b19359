package app

import (
	"net"
	"net/http"
	"time"
)

// newPipelineHTTPClient returns the HTTP client shared by the page fetcher
// and the OpenAI-compatible transport. Timeouts are kept reasonable to avoid
// hangs; per-call bounds come from the fetch and answer timeouts.
func newPipelineHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   120 * time.Second,
	}
}
