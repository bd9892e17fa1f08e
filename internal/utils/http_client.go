// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client. One instance is shared by every remote
// client and the connectivity probe of a backend.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. Resty's own retry loop is
// disabled since retries are driven by the caller.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetRetryCount(0)}
}
