// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-adv-board/internal/logger"
	"github.com/MKhiriev/go-adv-board/internal/utils"
	"github.com/MKhiriev/go-adv-board/models"
)

const (
	userPath          = "/api/user/"
	advertisementPath = "/api/adv/"
)

type httpAdvertisementAPI struct {
	client *utils.HTTPClient

	mu       sync.RWMutex
	login    string
	password string

	logger *logger.Logger
}

// NewHTTPAdvertisementAPI returns an [AdvertisementAPI] for the server at
// address. A missing scheme defaults to http.
func NewHTTPAdvertisementAPI(address string, timeout time.Duration, logger *logger.Logger) (AdvertisementAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpAdvertisementAPI{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdvertisementAPI) SetCredentials(login, password string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.login = login
	h.password = password

	h.logger.Debug().Str("login", login).Msg("credentials set")
}

// authedRequest attaches the stored credentials. Without credentials the
// request is sent anonymously and the server answers 401.
func (h *httpAdvertisementAPI) authedRequest(ctx context.Context) *resty.Request {
	h.mu.RLock()
	login, password := h.login, h.password
	h.mu.RUnlock()

	req := h.client.R().SetContext(ctx)
	if login != "" {
		req.SetBasicAuth(login, password)
	}
	return req
}

func (h *httpAdvertisementAPI) RegisterUser(ctx context.Context, req models.CreateUserRequest) (int64, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(userPath)
	if err != nil {
		return 0, fmt.Errorf("register request: %w", err)
	}

	return decodeCreated(resp)
}

func (h *httpAdvertisementAPI) CreateAdvertisement(ctx context.Context, req models.CreateAdvertisementRequest) (int64, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(advertisementPath)
	if err != nil {
		return 0, fmt.Errorf("create advertisement request: %w", err)
	}

	return decodeCreated(resp)
}

func (h *httpAdvertisementAPI) GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(advertisementURL(id))
	if err != nil {
		return models.Advertisement{}, fmt.Errorf("get advertisement request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Advertisement{}, err
	}

	var adv models.Advertisement
	if err = json.Unmarshal(resp.Body(), &adv); err != nil {
		return models.Advertisement{}, fmt.Errorf("decode advertisement: %w", err)
	}

	return adv, nil
}

func (h *httpAdvertisementAPI) UpdateAdvertisement(ctx context.Context, id int64, update models.AdvertisementUpdate) error {
	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("encode advertisement update: %w", err)
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Patch(advertisementURL(id))
	if err != nil {
		return fmt.Errorf("update advertisement request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAdvertisementAPI) DeleteAdvertisement(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(advertisementURL(id))
	if err != nil {
		return fmt.Errorf("delete advertisement request: %w", err)
	}

	return mapHTTPError(resp)
}

func advertisementURL(id int64) string {
	return advertisementPath + strconv.FormatInt(id, 10)
}

func decodeCreated(resp *resty.Response) (int64, error) {
	if err := mapHTTPError(resp); err != nil {
		return 0, err
	}

	var created models.CreatedResponse
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return 0, fmt.Errorf("decode created id: %w", err)
	}

	return created.ID, nil
}
