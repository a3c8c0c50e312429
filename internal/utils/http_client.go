// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient pointed at baseURL. A positive timeout
// bounds every request; JSON is requested by default.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.example.com", 15*time.Second)
//	resp, err := client.R().Delete("/rest/v1/meals")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithStaticHeaders sets headers sent with every request and returns the
// receiver for chaining.
func (c *HTTPClient) WithStaticHeaders(headers map[string]string) *HTTPClient {
	for name, value := range headers {
		if value != "" {
			c.SetHeader(name, value)
		}
	}
	return c
}
