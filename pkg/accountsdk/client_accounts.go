package accountsdk

import (
	"context"
	"net/url"
)

// Signup registers a new account. A duplicate identity comes back as an
// *APIError with status 409.
func (c *Client) Signup(ctx context.Context, identity, secret string) error {
	var resp Response
	return c.postJSON(ctx, "/api/signup",
		SignupRequest{Identity: identity, Secret: secret},
		&resp, 201)
}

// Login authenticates an identity/secret pair. Invalid credentials are a
// soft failure: err is nil and the result has Success=false with a generic
// message that does not reveal whether the identity exists.
func (c *Client) Login(ctx context.Context, identity, secret string) (*Response, error) {
	var resp Response
	err := c.postJSON(ctx, "/api/login",
		LoginRequest{Identity: identity, Secret: secret},
		&resp, 200)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfile fetches the sanitized profile for an identity.
func (c *Client) GetProfile(ctx context.Context, identity string) (*Profile, error) {
	var resp ProfileResponse
	path := "/api/profile?identity=" + url.QueryEscape(identity)
	if err := c.getJSON(ctx, path, &resp, 200); err != nil {
		return nil, err
	}
	return resp.Profile, nil
}

// UpdateProfile replaces the whitelisted profile fields with req and returns
// the resulting profile. Omitted fields are cleared (full overwrite).
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Profile, error) {
	var resp ProfileResponse
	if err := c.postJSON(ctx, "/api/profile", req, &resp, 200); err != nil {
		return nil, err
	}
	return resp.Profile, nil
}

// ChangePassword rotates an account's secret after verifying the current one.
// A wrong current secret comes back as an *APIError with status 400.
func (c *Client) ChangePassword(ctx context.Context, identity, currentSecret, newSecret string) error {
	var resp Response
	return c.postJSON(ctx, "/api/change-password",
		ChangePasswordRequest{
			Identity:      identity,
			CurrentSecret: currentSecret,
			NewSecret:     newSecret,
		},
		&resp, 200)
}
