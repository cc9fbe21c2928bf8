package dummyjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dishflow/dishflow-web/internal/models"
	apperrors "github.com/dishflow/dishflow-web/pkg/errors"
	"github.com/dishflow/dishflow-web/pkg/httpclient"
	"github.com/dishflow/dishflow-web/pkg/logger"
	"github.com/dishflow/dishflow-web/pkg/metrics"
	"go.uber.org/zap"
)

const serviceName = "dummyjson"

// Client talks to the hosted recipe/auth REST service. Every operation maps
// 1:1 to an HTTP verb on the upstream API; a failed request surfaces once as
// an error, there is no retry and no circuit breaking.
type Client struct {
	http    httpclient.Client
	baseURL string
}

// NewClient creates an upstream client against the given base URL
func NewClient(baseURL string, hc httpclient.Client) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("empty upstream base URL provided")
	}
	if hc == nil {
		hc = httpclient.NewStandardClient()
	}

	logger.Info("Upstream recipe client initialized", zap.String("base_url", baseURL))

	return &Client{
		http:    hc,
		baseURL: baseURL,
	}, nil
}

// Login exchanges credentials for a profile plus an opaque bearer token.
// Any upstream rejection is reported as invalid credentials.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	var result models.LoginResult
	err := c.do(ctx, request{
		operation: "login",
		method:    http.MethodPost,
		path:      "/auth/login",
		body:      creds,
	}, &result)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUpstream) || apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.UnauthorizedError("invalid credentials")
		}
		return nil, err
	}
	return &result, nil
}

// CurrentUser fetches the profile belonging to a bearer token. Used when a
// persisted token survives a restart but the profile was never fetched.
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, request{
		operation: "currentUser",
		method:    http.MethodGet,
		path:      "/auth/me",
		token:     token,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListRecipes fetches one page of recipes. A non-empty filter query routes
// to the search endpoint; both forms carry limit, skip, sortBy and order.
func (c *Client) ListRecipes(ctx context.Context, filter models.ListFilter) (*models.RecipePage, error) {
	filter = filter.Normalize()

	params := url.Values{}
	params.Set("limit", strconv.Itoa(filter.Limit))
	params.Set("skip", strconv.Itoa(filter.Skip))
	params.Set("sortBy", filter.SortField)
	params.Set("order", filter.SortOrder)

	path := "/recipes"
	operation := "listRecipes"
	if filter.Query != "" {
		path = "/recipes/search"
		operation = "searchRecipes"
		params.Set("q", filter.Query)
	}

	var page models.RecipePage
	err := c.do(ctx, request{
		operation: operation,
		method:    http.MethodGet,
		path:      path,
		query:     params,
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetRecipe fetches a single recipe by ID
func (c *Client) GetRecipe(ctx context.Context, id int) (*models.Recipe, error) {
	var recipe models.Recipe
	err := c.do(ctx, request{
		operation: "getRecipe",
		method:    http.MethodGet,
		path:      fmt.Sprintf("/recipes/%d", id),
	}, &recipe)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe submits a new recipe; the upstream service assigns the ID
func (c *Client) CreateRecipe(ctx context.Context, payload models.RecipePayload) (*models.Recipe, error) {
	var recipe models.Recipe
	err := c.do(ctx, request{
		operation: "createRecipe",
		method:    http.MethodPost,
		path:      "/recipes/add",
		body:      payload,
	}, &recipe)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe submits changed fields for an existing recipe
func (c *Client) UpdateRecipe(ctx context.Context, id int, payload models.RecipePayload) (*models.Recipe, error) {
	var recipe models.Recipe
	err := c.do(ctx, request{
		operation: "updateRecipe",
		method:    http.MethodPut,
		path:      fmt.Sprintf("/recipes/%d", id),
		body:      payload,
	}, &recipe)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe removes a recipe and returns the upstream acknowledgement
func (c *Client) DeleteRecipe(ctx context.Context, id int) (*models.DeleteResult, error) {
	var result models.DeleteResult
	err := c.do(ctx, request{
		operation: "deleteRecipe",
		method:    http.MethodDelete,
		path:      fmt.Sprintf("/recipes/%d", id),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type request struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
	token     string
}

// do executes a single upstream request and decodes the JSON response.
func (c *Client) do(ctx context.Context, r request, out any) error {
	start := time.Now()

	err := c.execute(ctx, r, out)

	duration := metrics.MeasureDuration(start)
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.UpstreamRequestDuration.WithLabelValues(r.operation, status).Observe(duration)
	metrics.UpstreamRequestTotal.WithLabelValues(r.operation, status).Inc()

	if err != nil {
		logger.LogAPICall(serviceName, r.operation, "error", duration, zap.Error(err))
		return err
	}

	logger.LogAPICall(serviceName, r.operation, "success", duration)
	return nil
}

func (c *Client) execute(ctx context.Context, r request, out any) error {
	fullURL := c.baseURL + r.path
	if len(r.query) > 0 {
		fullURL += "?" + r.query.Encode()
	}

	var bodyReader *bytes.Reader
	if r.body != nil {
		encoded, err := json.Marshal(r.body)
		if err != nil {
			return apperrors.InternalError(fmt.Sprintf("failed to encode %s request: %v", r.operation, err))
		}
		bodyReader = bytes.NewReader(encoded)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, fullURL, bodyReader)
	if err != nil {
		return apperrors.InternalError(fmt.Sprintf("failed to build %s request: %v", r.operation, err))
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.UpstreamError(fmt.Sprintf("%s request failed: %v", r.operation, err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFoundError(r.operation + " target")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return apperrors.UpstreamError(fmt.Sprintf("%s returned status %d", r.operation, resp.StatusCode))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.UpstreamError(fmt.Sprintf("failed to decode %s response: %v", r.operation, err))
		}
	}
	return nil
}
