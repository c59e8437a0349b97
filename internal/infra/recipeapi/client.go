// Package recipeapi is the HTTP adapter for the recipe backend.
package recipeapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/recipedeck/internal/domain"
	"github.com/aalvaropc/recipedeck/internal/infra/httpclient"
	"github.com/aalvaropc/recipedeck/internal/ports"
)

const (
	recipesPath = "/api/recipes"

	// maxErrorBody bounds how much of a failed response ends up in an error message.
	maxErrorBody = 512
)

type Client struct {
	baseURL  string
	exec     *httpclient.Executor
	selector string
	log      *slog.Logger
}

type Option func(*Client)

func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) { c.exec = e }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithListSelector sets a JSONPath locating the recipe array inside the list response.
// "$" (the default) means the response is the array itself.
func WithListSelector(expr string) Option {
	return func(c *Client) { c.selector = strings.TrimSpace(expr) }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, &domain.OpError{
			Op:   "recipeapi.new",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("api base url is empty"),
		}
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, &domain.OpError{
			Op:   "recipeapi.new",
			Kind: domain.KindInvalidConfig,
			Path: base,
			Err:  err,
		}
	}

	c := &Client{
		baseURL:  base,
		selector: "$",
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.exec == nil {
		c.exec = httpclient.NewExecutor()
	}
	return c, nil
}

var _ ports.RecipeAPI = (*Client)(nil)

// ListRecipes fetches every recipe owned by userID, in server order.
func (c *Client) ListRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	const op = "recipeapi.list"
	u := c.baseURL + recipesPath + "/" + url.PathEscape(userID)

	body, err := c.do(ctx, op, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	recipes, err := c.decodeList(body)
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindDecode, Path: u, Err: err}
	}
	return recipes, nil
}

// CreateRecipe posts a new recipe and returns the stored record.
func (c *Client) CreateRecipe(ctx context.Context, in domain.NewRecipe) (domain.Recipe, error) {
	const op = "recipeapi.create"
	u := c.baseURL + recipesPath

	body, err := c.do(ctx, op, http.MethodPost, u, in)
	if err != nil {
		return domain.Recipe{}, err
	}

	var out domain.Recipe
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.Recipe{}, &domain.OpError{Op: op, Kind: domain.KindDecode, Path: u, Err: err}
	}
	if out.ID == "" {
		return domain.Recipe{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindDecode,
			Path: u,
			Err:  errors.New("created recipe has no _id"),
		}
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, op, method, u string, payload any) ([]byte, error) {
	req, err := httpclient.BuildJSONRequest(ctx, method, u, payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		c.log.Debug("http.request.failed", "op", op, "method", method, "url", u,
			"duration_ms", resp.Duration.Milliseconds(), "err", err)
		return nil, &domain.OpError{Op: op, Kind: domain.KindTransport, Path: u, Err: err}
	}
	c.log.Debug("http.response", "op", op, "method", method, "url", u,
		"status", resp.Status,
		"content_type", resp.Headers.Get("Content-Type"),
		"bytes", len(resp.BodyBytes),
		"truncated", resp.Truncated,
		"duration_ms", resp.Duration.Milliseconds(),
	)
	if !resp.OK() {
		return nil, &domain.OpError{
			Op:   op,
			Kind: domain.KindHTTPStatus,
			Path: u,
			Err: &domain.StatusError{
				StatusCode: resp.Status,
				Body:       clip(strings.TrimSpace(string(resp.BodyBytes)), maxErrorBody),
			},
		}
	}
	if resp.Truncated {
		return nil, &domain.OpError{Op: op, Kind: domain.KindDecode, Path: u, Err: errors.New("response body too large")}
	}
	return resp.BodyBytes, nil
}

func (c *Client) decodeList(body []byte) ([]domain.Recipe, error) {
	if c.selector == "" || c.selector == "$" {
		var out []domain.Recipe
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, err
		}
		if out == nil {
			out = []domain.Recipe{}
		}
		return out, nil
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	sel, err := jsonpath.Get(c.selector, doc)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(sel)
	if err != nil {
		return nil, err
	}

	var out []domain.Recipe
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Recipe{}
	}
	return out, nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
