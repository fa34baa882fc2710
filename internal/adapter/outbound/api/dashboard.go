package api

import (
	"context"
	"errors"

	"github.com/hqh-mall/mallclient/internal/domain/admin"
)

// AdminDashboard fetches the admin home page counters. Never errors: any
// anomaly degrades to all-zero counters so the page renders.
func (c *Client) AdminDashboard(ctx context.Context) admin.Dashboard {
	const path = "/api/admin/dashboard"
	v, err := c.get(ctx, path, nil)
	if err != nil {
		c.fallback(path, err)
		return admin.Dashboard{}
	}

	data := objectOf(v)
	if data == nil {
		c.fallback(path, errors.New("malformed dashboard payload"))
		return admin.Dashboard{}
	}

	return admin.Dashboard{
		NewUserCount:           integer(data, "newUserCount"),
		TodayTransactionAmount: num(data, "todayTransactionAmount"),
		NewOrderCount:          integer(data, "newOrderCount"),
		CompletedOrderCount:    integer(data, "completedOrderCount"),
	}
}
