// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-mirror-sync/internal/config"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/utils"
	"github.com/MKhiriev/go-mirror-sync/models"
	"github.com/go-resty/resty/v2"
)

// Response headers carrying collection metadata alongside a storage page.
const (
	headerLastModified = "X-Last-Modified"
	headerNextOffset   = "X-Next-Offset"
)

type httpCollectionClient struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPCollectionClient constructs an HTTP implementation of
// [CollectionClient]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPCollectionClient(adapterCfg config.ClientAdapter, log *logger.Logger) (CollectionClient, error) {
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.SetBaseURL(baseURL)

	return &httpCollectionClient{
		client: client,
		token:  strings.TrimSpace(adapterCfg.Token),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// SetToken implements [CollectionClient]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// requests.
func (c *httpCollectionClient) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

func (c *httpCollectionClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+c.token)
	}
	return req
}

// InfoCollections implements [CollectionClient].
func (c *httpCollectionClient) InfoCollections(ctx context.Context) (models.ServerInfo, error) {
	var collections map[string]models.Timestamp

	resp, err := c.request(ctx).
		SetResult(&collections).
		Get("/info/collections")
	if err != nil {
		return models.ServerInfo{}, fmt.Errorf("request info/collections: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.ServerInfo{}, fmt.Errorf("info/collections: %w", err)
	}

	return models.ServerInfo{Collections: collections}, nil
}

// FetchSince implements [CollectionClient].
func (c *httpCollectionClient) FetchSince(ctx context.Context, collection string, since models.Timestamp, limit int, offset string) (*models.FetchResponse, error) {
	var records []models.Record

	req := c.request(ctx).
		SetResult(&records).
		SetQueryParam("full", "1").
		SetQueryParam("newer", strconv.FormatUint(uint64(since), 10)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("sort", "newest")
	if offset != "" {
		req.SetQueryParam("offset", offset)
	}

	resp, err := req.Get("/storage/" + url.PathEscape(collection))
	if err != nil {
		return nil, fmt.Errorf("request storage/%s: %w", collection, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("storage/%s: %w", collection, err)
	}

	for i := range records {
		records[i].Collection = collection
	}

	out := &models.FetchResponse{
		Records:    records,
		NextOffset: resp.Header().Get(headerNextOffset),
	}

	if raw := resp.Header().Get(headerLastModified); raw != "" {
		lastModified, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("storage/%s: bad %s header %q: %w", collection, headerLastModified, raw, err)
		}
		out.LastModified = models.Timestamp(lastModified)
	}

	c.logger.Debug().
		Str("collection", collection).
		Int("records", len(records)).
		Str("next_offset", out.NextOffset).
		Msg("fetched storage page")

	return out, nil
}
