package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rnand/qkart-v2/internal/client/models"
)

// statusResponse is the backend's failure envelope, also returned by
// register on success.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// loginResponse is the body of a successful POST /auth/login.
// Balance arrives as a JSON number.
type loginResponse struct {
	Success  bool        `json:"success"`
	Token    string      `json:"token"`
	Username string      `json:"username"`
	Balance  json.Number `json:"balance"`
}

// RESTClient implements Client against the QKart REST backend.
//
// Every request carries an X-Request-Id for correlation; cart operations
// additionally carry the bearer token. The embedded http.Client timeout
// is the transport boundary mandated for hung requests: on expiry the
// call surfaces as ErrUnavailable rather than blocking forever.
type RESTClient struct {
	endpointURL string
	httpClient  *http.Client
}

// NewRESTClient returns a RESTClient bound to the given endpoint URL
// (scheme://host[:port]/basepath, no trailing slash required).
func NewRESTClient(endpointURL string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		endpointURL: strings.TrimSuffix(endpointURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// do issues one JSON request and decodes a successful body into out.
// Failure mapping:
//   - transport errors            -> ErrUnavailable
//   - non-2xx with {message} body -> *ServerError
//   - non-2xx with malformed body -> ErrUnavailable
func (c *RESTClient) do(ctx context.Context, method, path string, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var sr statusResponse
		if err := json.Unmarshal(raw, &sr); err != nil || sr.Message == "" {
			return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
		}
		return &ServerError{Status: resp.StatusCode, Message: sr.Message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
		}
	}
	return nil
}

// Products fetches the full catalog via GET /products.
func (c *RESTClient) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts fetches the catalog filtered by value via
// GET /products/search?value=<text>. A zero-length result is returned
// as an empty slice, not an error.
func (c *RESTClient) SearchProducts(ctx context.Context, value string) ([]models.Product, error) {
	var products []models.Product
	path := "/products/search?value=" + url.QueryEscape(value)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Login authenticates via POST /auth/login and returns the token,
// username, and wallet balance issued by the backend.
func (c *RESTClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var lr loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &lr); err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:    lr.Token,
		Username: lr.Username,
		Balance:  lr.Balance.String(),
	}, nil
}

// Register creates an account via POST /auth/register.
func (c *RESTClient) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", "", body, nil)
}

// Cart fetches the authoritative line-item list via GET /cart.
func (c *RESTClient) Cart(ctx context.Context, token string) ([]models.CartLineItem, error) {
	var items []models.CartLineItem
	if err := c.do(ctx, http.MethodGet, "/cart", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// PostCart upserts one line item via POST /cart and returns the full
// updated list. The endpoint overwrites the quantity to the given value;
// it does not increment.
func (c *RESTClient) PostCart(ctx context.Context, token, productID string, qty int) ([]models.CartLineItem, error) {
	body := map[string]any{"productId": productID, "qty": qty}
	var items []models.CartLineItem
	if err := c.do(ctx, http.MethodPost, "/cart", token, body, &items); err != nil {
		return nil, err
	}
	return items, nil
}
