// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client and remembers the normalised base URL so
// that other transports (the realtime websocket) can derive their endpoint.
type HTTPClient struct {
	*resty.Client

	baseURL *url.URL
}

// NewHTTPClient returns a client bound to address. A missing scheme
// defaults to http. The bearer token is attached to every request.
func NewHTTPClient(address, token string, timeout time.Duration) (*HTTPClient, error) {
	baseURL, err := NormalizeBaseURL(address)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(baseURL.String()).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if token = strings.TrimSpace(token); token != "" {
		client.SetAuthToken(token)
	}

	return &HTTPClient{Client: client, baseURL: baseURL}, nil
}

// BaseURL returns a copy of the normalised base URL.
func (c *HTTPClient) BaseURL() url.URL {
	return *c.baseURL
}

// NormalizeBaseURL parses address, defaulting the scheme to http and
// dropping a trailing slash.
func NormalizeBaseURL(address string) (*url.URL, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("empty address")
	}

	if !strings.Contains(address, "://") {
		address = "http://" + address
	}

	u, err := url.Parse(address)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("address must include host and scheme")
	}

	u.Path = strings.TrimRight(u.Path, "/")
	return u, nil
}
