package upstream

import (
	"context"

	"careerconnect/gateway/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the user payload raw: the upstream is loose about
// its field names and normalizing into the canonical snapshot is the
// session service's job, not this client's.
type LoginResult struct {
	Token string         `json:"token"`
	User  map[string]any `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, "POST", "/auth/login", nil, loginRequest{Email: email, Password: password}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, "POST", "/auth/register", nil, req, nil)
}
