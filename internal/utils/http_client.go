package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the client to the backend.
const UserAgent = "code-historian-client"

// HTTPClient wraps a resty.Client preconfigured for the historian JSON API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client rooted at baseURL. Every
// request accepts JSON and carries [UserAgent]. A zero timeout disables the
// per-request deadline.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
