package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/internal/domain/user"
)

// Login authenticates an account. Unlike the read normalizers this is
// strict: a malformed success payload is an error, because proceeding
// without a token would strand the session half-initialized.
func (c *Client) Login(ctx context.Context, params user.LoginParams) (*user.Credentials, error) {
	v, err := c.send(ctx, http.MethodPost, "/api/user/login", nil, params)
	if err != nil {
		return nil, err
	}

	data, ok := dataOf(v).(map[string]any)
	if !ok {
		return nil, &apierr.TransportError{Op: "POST /api/user/login", Err: fmt.Errorf("malformed login payload: %T", dataOf(v))}
	}

	token := str(data, "token")
	if token == "" {
		return nil, &apierr.TransportError{Op: "POST /api/user/login", Err: fmt.Errorf("login payload carries no token")}
	}

	return &user.Credentials{
		Identity: user.Identity{
			Account:  str(data, "account"),
			Username: strOr(data, "username", str(data, "account")),
			UserType: strOr(data, "userType", user.TypeCustomer),
		},
		Token: token,
	}, nil
}

// Register creates a new customer account. The backend returns no
// payload worth keeping; success is the absence of an error.
func (c *Client) Register(ctx context.Context, params user.RegisterParams) error {
	_, err := c.send(ctx, http.MethodPost, "/api/user/register", nil, params)
	return err
}

// UserInfo fetches the authenticated account's own profile.
func (c *Client) UserInfo(ctx context.Context) (*user.AdminUser, error) {
	v, err := c.get(ctx, "/api/user/info", nil)
	if err != nil {
		return nil, err
	}

	data := objectOf(v)
	if data == nil {
		return nil, &apierr.TransportError{Op: "GET /api/user/info", Err: fmt.Errorf("malformed profile payload")}
	}

	u := buildAdminUser(data)
	return &u, nil
}

// Logout invalidates the server-side session. Failures are reported but
// the caller evicts the local session regardless; a dead token on the
// server is not worth keeping a live one on the client for.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.send(ctx, http.MethodPost, "/api/user/logout", nil, nil)
	return err
}
