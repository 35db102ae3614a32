package api

import (
	"context"

	"mentorlane/internal/errors"
	"mentorlane/internal/session"
)

// LoginRequest is the credentials payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend. On success the auth cookie is
// captured by the jar and the signed-in user profile is returned.
func (c *Client) Login(ctx context.Context, email, password string) (*session.User, error) {
	if email == "" || password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	var user session.User
	if err := c.post(ctx, "/auth/login", LoginRequest{Email: email, Password: password}, &user); err != nil {
		return nil, err
	}
	if user.ID == "" || !user.Role.Valid() {
		return nil, errors.NewAPIError("login response missing user profile", nil).WithEndpoint("/auth/login")
	}

	c.log.Info("logged in", "user_id", user.ID, "role", user.Role)
	return &user, nil
}

// Logout invalidates the backend session. A failed call is logged but not
// fatal; the local session is cleared regardless.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}

// Me fetches the current user's profile, validating that the persisted
// session cookie is still accepted.
func (c *Client) Me(ctx context.Context) (*session.User, error) {
	var user session.User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
