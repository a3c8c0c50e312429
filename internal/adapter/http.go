// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-health-guard/internal/config"
	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/utils"
	"github.com/MKhiriev/go-health-guard/models"
)

const (
	adminUsersPath = "/auth/v1/admin/users/"
	restPath       = "/rest/v1/"
)

type httpRemoteStore struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs the HTTP implementation of [RemoteStore].
// Every request carries the apikey header; the bearer token defaults to
// cfg.AccessToken and can be replaced with SetToken.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPRemoteStore(cfg config.Adapter, log *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout).
		WithStaticHeaders(map[string]string{"apikey": cfg.APIKey})

	return &httpRemoteStore{
		client: client,
		token:  normalizeToken(cfg.AccessToken),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteStore].
func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = normalizeToken(token)
}

// normalizeToken accepts a raw token or a full "Bearer <token>" header value.
func normalizeToken(raw string) string {
	raw = strings.TrimSpace(raw)
	if token, err := utils.ParseBearerToken(raw); err == nil {
		return token
	}
	return raw
}

// DeleteUserAccount implements [RemoteStore]. It sends
// DELETE /auth/v1/admin/users/{id}. An account the backend no longer knows
// counts as deleted.
func (h *httpRemoteStore) DeleteUserAccount(ctx context.Context, userID string) error {
	req, err := h.authedRequest(ctx, userID)
	if err != nil {
		return err
	}

	resp, err := req.Delete(adminUsersPath + url.PathEscape(userID))
	if err != nil {
		h.logger.Err(err).Str("func", "httpRemoteStore.DeleteUserAccount").Msg("request failed")
		return fmt.Errorf("delete account request: %w", err)
	}

	return deletionError(resp, true)
}

// DeleteUserData implements [RemoteStore]. It sends
// DELETE /rest/v1/{table}?user_id=eq.{id}.
func (h *httpRemoteStore) DeleteUserData(ctx context.Context, userID string, category models.DataCategory) error {
	table, ok := category.Table()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	req, err := h.authedRequest(ctx, userID)
	if err != nil {
		return err
	}

	resp, err := req.
		SetQueryParam("user_id", "eq."+userID).
		Delete(restPath + table)
	if err != nil {
		h.logger.Err(err).Str("func", "httpRemoteStore.DeleteUserData").Str("table", table).Msg("request failed")
		return fmt.Errorf("delete %s request: %w", table, err)
	}

	return deletionError(resp, false)
}

// authedRequest builds a request carrying the bearer token. When a token is
// present its subject must be userID.
func (h *httpRemoteStore) authedRequest(ctx context.Context, userID string) (*resty.Request, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	req := h.client.R().SetContext(ctx)
	if token == "" {
		return req, nil
	}

	sub, err := utils.SubjectFromJWT(token)
	if err != nil {
		return nil, fmt.Errorf("inspect access token: %w", err)
	}
	if sub != userID {
		return nil, ErrSubjectMismatch
	}

	return req.SetAuthToken(token), nil
}

// NewRemoteStore returns the HTTP store when cfg names a backend and the
// disabled store otherwise.
func NewRemoteStore(cfg config.Adapter, log *logger.Logger) (RemoteStore, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		log.Info().Str("func", "NewRemoteStore").Msg("no backend configured, cloud deletion disabled")
		return NewDisabledRemoteStore(), nil
	}
	return NewHTTPRemoteStore(cfg, log)
}

type disabledRemoteStore struct{}

// NewDisabledRemoteStore returns a [RemoteStore] whose operations fail with
// [ErrRemoteDisabled].
func NewDisabledRemoteStore() RemoteStore {
	return disabledRemoteStore{}
}

func (disabledRemoteStore) SetToken(string) {}

func (disabledRemoteStore) DeleteUserAccount(context.Context, string) error {
	return ErrRemoteDisabled
}

func (disabledRemoteStore) DeleteUserData(context.Context, string, models.DataCategory) error {
	return ErrRemoteDisabled
}
