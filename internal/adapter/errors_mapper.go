// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps the status codes of the auth and REST APIs to sentinels.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrBackendUnavailable,
	http.StatusGatewayTimeout:      ErrBackendUnavailable,
}

// deletionError turns the response of a DELETE into an error. When gone is
// set, 404 and 410 mean the resource was already deleted and yield nil.
func deletionError(resp *resty.Response, gone bool) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}
	if gone && (code == http.StatusNotFound || code == http.StatusGone) {
		return nil
	}

	detail := responseDetail(resp)
	if code == http.StatusTooManyRequests {
		if after := resp.Header().Get("Retry-After"); after != "" {
			detail += " (retry after " + after + ")"
		}
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("http %d: %s", code, detail)
}

// responseDetail extracts the message of a JSON error body ("msg" from the
// auth API, "message" from the REST API) and falls back to the raw body or
// the status text.
func responseDetail(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var payload struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	if json.Unmarshal([]byte(body), &payload) == nil {
		switch {
		case payload.Msg != "":
			return payload.Msg
		case payload.Message != "":
			return payload.Message
		}
	}

	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
