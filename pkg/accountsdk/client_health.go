package accountsdk

import "context"

// GetLiveness checks the liveness endpoint. A running service always
// answers 200 here regardless of dependency health.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.getJSON(ctx, "/livez", &resp, 200); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetReadiness checks the readiness endpoint, which pings the store.
// A degraded service answers 503, surfaced as an *APIError.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.getJSON(ctx, "/readyz", &resp, 200); err != nil {
		return nil, err
	}
	return &resp, nil
}
