package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/anvilforge/storefront/internal/domain/model"
)

// Client exposes operations to fetch the external catalog store.
type Client interface {
	Fetch(ctx context.Context) (*model.Catalog, error)
}

// HTTPClient retrieves the static catalog JSON documents over HTTP.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP catalog client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Fetch downloads both catalog documents and returns them as one snapshot.
func (c *HTTPClient) Fetch(ctx context.Context) (*model.Catalog, error) {
	var components map[string][]model.Component
	if err := c.getJSON(ctx, "components.json", &components); err != nil {
		return nil, err
	}

	var systems []model.System
	if err := c.getJSON(ctx, "systems.json", &systems); err != nil {
		return nil, err
	}

	return &model.Catalog{Components: components, Systems: systems}, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, name string, dest any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("catalog request failed",
			slog.String("document", name),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return fmt.Errorf("catalog error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
