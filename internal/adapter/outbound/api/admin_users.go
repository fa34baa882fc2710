package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hqh-mall/mallclient/internal/domain/admin"
	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/internal/domain/page"
	"github.com/hqh-mall/mallclient/internal/domain/user"
)

// buildAdminUser rebuilds one user row field by field. Every field goes
// through a coercion rule; nothing is trusted to have its documented type.
func buildAdminUser(m map[string]any) user.AdminUser {
	return user.AdminUser{
		UserID:     integer(m, "userId"),
		Account:    str(m, "account"),
		Password:   str(m, "password"),
		UserType:   strOr(m, "userType", user.TypeCustomer),
		Status:     strOr(m, "status", user.StatusActive),
		Username:   nullableStr(m, "username"),
		Gender:     nullableStr(m, "gender"),
		Birthday:   nullableStr(m, "birthday"),
		Phone:      nullableStr(m, "phone"),
		Email:      nullableStr(m, "email"),
		AvatarURL:  str(m, "avatarUrl"),
		CreateTime: str(m, "createTime"),
		UpdateTime: str(m, "updateTime"),
	}
}

// buildPendingMerchant is buildAdminUser with the status default flipped:
// a pending merchant with no reported status is locked, not active, so a
// backend omission can never make an unaudited account look approved.
func buildPendingMerchant(m map[string]any) user.AdminUser {
	u := buildAdminUser(m)
	if toString(m["status"]) == "" {
		u.Status = user.StatusLocked
	}
	return u
}

func userListQuery(params user.ListParams) url.Values {
	q := url.Values{}
	q.Set("pageNum", strconv.Itoa(orDefault(params.PageNum, page.DefaultPageNum)))
	q.Set("pageSize", strconv.Itoa(orDefault(params.PageSize, page.DefaultPageSize)))
	if params.UserID != 0 {
		q.Set("userId", strconv.FormatInt(params.UserID, 10))
	}
	if params.Account != "" {
		q.Set("account", params.Account)
	}
	if params.Username != "" {
		q.Set("username", params.Username)
	}
	if params.UserType != "" {
		q.Set("userType", params.UserType)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	return q
}

func orDefault(n, def int) int {
	if n > 0 {
		return n
	}
	return def
}

// listUsers is the shared normalizer behind the four admin user listings.
// It never returns an error: any anomaly degrades to an empty page.
func (c *Client) listUsers(ctx context.Context, path string, params user.ListParams, build func(map[string]any) user.AdminUser) page.ListPage[user.AdminUser] {
	v, err := c.get(ctx, path, userListQuery(params))
	if err != nil {
		c.fallback(path, err)
		return page.Empty[user.AdminUser]()
	}
	return pageOf(dataOf(v), build)
}

// AdminUsers lists all accounts regardless of type.
func (c *Client) AdminUsers(ctx context.Context, params user.ListParams) page.ListPage[user.AdminUser] {
	return c.listUsers(ctx, "/api/admin/user/list", params, buildAdminUser)
}

// AdminCustomers lists customer accounts.
func (c *Client) AdminCustomers(ctx context.Context, params user.ListParams) page.ListPage[user.AdminUser] {
	params.UserType = user.TypeCustomer
	return c.listUsers(ctx, "/api/admin/user/list", params, buildAdminUser)
}

// AdminMerchants lists approved merchant accounts.
func (c *Client) AdminMerchants(ctx context.Context, params user.ListParams) page.ListPage[user.AdminUser] {
	params.UserType = user.TypeMerchant
	return c.listUsers(ctx, "/api/admin/user/list", params, buildAdminUser)
}

// AdminPendingMerchants lists merchant accounts awaiting audit. Rows with
// no status come back locked.
func (c *Client) AdminPendingMerchants(ctx context.Context, params user.ListParams) page.ListPage[user.AdminUser] {
	return c.listUsers(ctx, "/api/admin/merchant/pending", params, buildPendingMerchant)
}

// AdminUserDetail fetches a single account. The detail route is missing
// on some deployments; when compensation is enabled a 404 synthesizes a
// minimal row from the requested id so the detail page still renders.
func (c *Client) AdminUserDetail(ctx context.Context, id int64) (*user.AdminUser, error) {
	path := "/api/admin/user/detail/" + strconv.FormatInt(id, 10)
	v, err := c.get(ctx, path, nil)
	if err != nil {
		if c.compensateRoutes && apierr.IsRouteNotFound(err) {
			c.logger.Warn("user detail route missing, synthesizing default row", "userId", id)
			return &user.AdminUser{
				UserID:   id,
				UserType: user.TypeCustomer,
				Status:   user.StatusActive,
			}, nil
		}
		return nil, err
	}

	data := objectOf(v)
	if data == nil {
		c.fallback(path, errors.New("malformed user detail payload"))
		return &user.AdminUser{UserID: id, UserType: user.TypeCustomer, Status: user.StatusActive}, nil
	}

	u := buildAdminUser(data)
	if u.UserID == 0 {
		u.UserID = id
	}
	return &u, nil
}

// UpdateUserStatus activates, deactivates, or locks an account. Also the
// audit action for pending merchants. The route is missing on some
// deployments; compensation synthesizes a simulated success.
func (c *Client) UpdateUserStatus(ctx context.Context, id int64, status string) (*admin.WriteResult, error) {
	q := url.Values{}
	q.Set("status", status)
	path := "/api/admin/user/status/" + strconv.FormatInt(id, 10)

	v, err := c.send(ctx, http.MethodPut, path, q, nil)
	if err != nil {
		if c.compensateRoutes && apierr.IsRouteNotFound(err) {
			c.logger.Warn("user status route missing, simulating success", "userId", id, "status", status)
			return &admin.WriteResult{Message: "Status updated", Simulated: true}, nil
		}
		return nil, err
	}

	return writeResult(v, "Status updated"), nil
}

// AuditMerchant resolves a pending merchant account: active approves,
// inactive rejects, locked re-locks. The route is missing on some
// deployments; compensation synthesizes a simulated success.
func (c *Client) AuditMerchant(ctx context.Context, params admin.AuditParams) (*admin.WriteResult, error) {
	q := url.Values{}
	q.Set("id", strconv.FormatInt(params.ID, 10))
	q.Set("status", params.Status)

	v, err := c.send(ctx, http.MethodPut, "/api/admin/user/merchant/audit", q, nil)
	if err != nil {
		if c.compensateRoutes && apierr.IsRouteNotFound(err) {
			c.logger.Warn("merchant audit route missing, simulating success", "userId", params.ID, "status", params.Status)
			return &admin.WriteResult{Message: "Merchant audited", Simulated: true}, nil
		}
		return nil, err
	}

	return writeResult(v, "Merchant audited"), nil
}

// UpdateUser replaces an account's editable profile fields.
func (c *Client) UpdateUser(ctx context.Context, id int64, u user.AdminUser) (*admin.WriteResult, error) {
	path := "/api/admin/user/update/" + strconv.FormatInt(id, 10)

	v, err := c.send(ctx, http.MethodPut, path, nil, u)
	if err != nil {
		if c.compensateRoutes && apierr.IsRouteNotFound(err) {
			c.logger.Warn("user update route missing, simulating success", "userId", id)
			return &admin.WriteResult{Message: "User updated", Simulated: true}, nil
		}
		return nil, err
	}

	return writeResult(v, "User updated"), nil
}

// UploadUserAvatar uploads an avatar image for an account. The form field
// name is fixed by the backend.
func (c *Client) UploadUserAvatar(ctx context.Context, id int64, filename string, r io.Reader) (*admin.WriteResult, error) {
	form := NewForm()
	form.AddField("userId", strconv.FormatInt(id, 10))
	form.AddFile("avatar", filename, r)

	v, err := c.sendForm(ctx, "/api/admin/user/avatar", nil, form)
	if err != nil {
		if c.compensateRoutes && apierr.IsRouteNotFound(err) {
			c.logger.Warn("avatar upload route missing, simulating success", "userId", id)
			return &admin.WriteResult{Message: "Avatar updated", Simulated: true}, nil
		}
		return nil, err
	}

	return writeResult(v, "Avatar updated"), nil
}

// writeResult normalizes a successful write response into a WriteResult,
// falling back to the given message when the envelope carries none.
func writeResult(v any, def string) *admin.WriteResult {
	res := &admin.WriteResult{Message: def}
	if m, ok := v.(map[string]any); ok {
		if s, ok := m["msg"].(string); ok && s != "" {
			res.Message = s
		} else if s, ok := m["message"].(string); ok && s != "" {
			res.Message = s
		}
	}
	return res
}
