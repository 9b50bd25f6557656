// Package notion is the record store client: it reads and writes remitter and
// beneficiary records kept in two Notion databases.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/sony/gobreaker"

	"github.com/radhian/remittance-docgen/config"
	"github.com/radhian/remittance-docgen/consts"
	"github.com/radhian/remittance-docgen/infra/cache"
)

const (
	maxAssetBytes   = 10 << 20
	maxErrorBody    = 64 << 10
	queryPageSize   = 100
	breakerFailures = 5
)

// APIError is a non 2xx answer of the Notion API.
type APIError struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("notion: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("notion: HTTP %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return consts.ErrNotFound
	case e.StatusCode == http.StatusBadRequest:
		return consts.ErrInvalidRequest
	default:
		return consts.ErrUpstream
	}
}

// clientFault reports whether err was caused by the request rather than the
// upstream, so it must not count against the circuit breaker.
func clientFault(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError && apiErr.StatusCode != http.StatusTooManyRequests
}

type Client struct {
	baseURL       string
	token         string
	version       string
	timeout       time.Duration
	remitterDB    string
	beneficiaryDB string

	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	schema     cache.SchemaCache
	schemaTTL  time.Duration

	assetClient      *http.Client
	allowLocalAssets bool
}

func NewClient(cfg config.Config, schemaCache cache.SchemaCache) *Client {
	if schemaCache == nil {
		schemaCache = cache.NewMemoryCache()
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.NotionBaseURL, "/"),
		token:         cfg.NotionToken,
		version:       cfg.NotionVersion,
		timeout:       cfg.NotionTimeout,
		remitterDB:    cfg.RemitterDatabaseID,
		beneficiaryDB: cfg.BeneficiaryDatabaseID,
		httpClient:    &http.Client{Timeout: cfg.NotionTimeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "notion",
			MaxRequests: 1,
			Timeout:     cfg.NotionTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerFailures
			},
			IsSuccessful: func(err error) bool {
				return err == nil || clientFault(err)
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Warnf("[Notion] circuit breaker %s: %s -> %s", name, from, to)
			},
		}),
		schema:    schemaCache,
		schemaTTL: cfg.SchemaCacheTTL,

		assetClient:      newAssetClient(cfg.NotionTimeout, cfg.AllowLocalAssets),
		allowLocalAssets: cfg.AllowLocalAssets,
	}
}

// do sends one API request. body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("notion: encode request: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Notion-Version", c.version)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", consts.ErrUpstream, method, path, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, decodeAPIError(resp)
		}
		if out == nil {
			return nil, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("%w: decode %s %s: %v", consts.ErrUpstream, method, path, err)
		}
		return nil, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", consts.ErrUpstream, err)
	}
	return err
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(raw, apiErr)
	apiErr.StatusCode = resp.StatusCode
	return apiErr
}

func (c *Client) GetDatabase(ctx context.Context, dbID string) (Database, error) {
	var db Database
	if err := c.do(ctx, http.MethodGet, "/databases/"+dbID, nil, &db); err != nil {
		if errors.Is(err, consts.ErrNotFound) {
			return db, fmt.Errorf("database not found or not shared: %s: %w", dbID, err)
		}
		return db, err
	}
	return db, nil
}

// QueryAll follows the query cursor until every page of dbID is read.
func (c *Client) QueryAll(ctx context.Context, dbID string) ([]Page, error) {
	var (
		pages  []Page
		cursor string
	)
	for {
		body := map[string]interface{}{"page_size": queryPageSize}
		if cursor != "" {
			body["start_cursor"] = cursor
		}

		var res queryResponse
		if err := c.do(ctx, http.MethodPost, "/databases/"+dbID+"/query", body, &res); err != nil {
			return nil, err
		}
		pages = append(pages, res.Results...)

		if !res.HasMore || res.NextCursor == "" {
			return pages, nil
		}
		cursor = res.NextCursor
	}
}

func (c *Client) GetPage(ctx context.Context, pageID string) (Page, error) {
	var page Page
	err := c.do(ctx, http.MethodGet, "/pages/"+url.PathEscape(pageID), nil, &page)
	return page, err
}

func (c *Client) CreatePage(ctx context.Context, dbID string, properties map[string]interface{}) (Page, error) {
	body := map[string]interface{}{
		"parent":     map[string]interface{}{"database_id": dbID},
		"properties": properties,
	}
	var page Page
	err := c.do(ctx, http.MethodPost, "/pages", body, &page)
	return page, err
}

func (c *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]interface{}) (Page, error) {
	body := map[string]interface{}{"properties": properties}
	var page Page
	err := c.do(ctx, http.MethodPatch, "/pages/"+url.PathEscape(pageID), body, &page)
	return page, err
}

// TitleProperty returns the name of the title property of dbID, "Name" when
// the schema declares none.
func (c *Client) TitleProperty(ctx context.Context, dbID string) (string, error) {
	key := "title:" + dbID
	if name, ok := c.schema.Get(ctx, key); ok {
		return name, nil
	}

	db, err := c.GetDatabase(ctx, dbID)
	if err != nil {
		return "", err
	}

	name := "Name"
	for propName, prop := range db.Properties {
		if prop.Type == string(KindTitle) {
			name = propName
			break
		}
	}

	c.schema.Set(ctx, key, name, c.schemaTTL)
	return name, nil
}
