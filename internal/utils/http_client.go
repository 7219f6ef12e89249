package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is the outbound HTTP client of the vault client. It embeds
// *resty.Client to expose its full API while keeping a single place to hang
// application-wide client behavior on.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient with its own connection
// pool and configuration.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
