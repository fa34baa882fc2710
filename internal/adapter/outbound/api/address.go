package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/hqh-mall/mallclient/internal/domain/address"
)

func buildAddress(m map[string]any) address.Address {
	return address.Address{
		AddressID:     integer(m, "addressId"),
		UserID:        integer(m, "userId"),
		RecipientName: str(m, "recipientName"),
		Phone:         str(m, "phone"),
		FullAddress:   str(m, "fullAddress"),
		IsDefault:     boolean(m, "isDefault"),
		CreateTime:    str(m, "createTime"),
		UpdateTime:    str(m, "updateTime"),
	}
}

// Addresses lists the account's address book. Never errors; anomalies
// degrade to an empty book.
func (c *Client) Addresses(ctx context.Context) []address.Address {
	const path = "/api/address/list"

	v, err := c.get(ctx, path, nil)
	if err != nil {
		c.fallback(path, err)
		return []address.Address{}
	}

	list := listOf(dataOf(v))
	out := make([]address.Address, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, buildAddress(m))
	}
	return out
}

// DefaultAddress fetches the account's default address, nil when none is
// set. Having no default is a normal state, not an error.
func (c *Client) DefaultAddress(ctx context.Context) (*address.Address, error) {
	v, err := c.get(ctx, "/api/address/default", nil)
	if err != nil {
		return nil, err
	}

	m := objectOf(v)
	if m == nil {
		return nil, nil
	}
	a := buildAddress(m)
	return &a, nil
}

// AddressByID fetches one address. Strict: checkout fills the shipping
// fields from it, so a malformed payload is an error.
func (c *Client) AddressByID(ctx context.Context, id int64) (*address.Address, error) {
	v, err := c.get(ctx, "/api/address/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}

	m := objectOf(v)
	if m == nil {
		return nil, errors.New("malformed address payload")
	}

	a := buildAddress(m)
	if a.AddressID == 0 {
		a.AddressID = id
	}
	return &a, nil
}

// AddAddress saves a new address and returns it as the backend stored it,
// nil when the backend acknowledged without echoing the row.
func (c *Client) AddAddress(ctx context.Context, params address.CreateParams) (*address.Address, error) {
	v, err := c.send(ctx, http.MethodPost, "/api/address/add", nil, params)
	if err != nil {
		return nil, err
	}

	m := objectOf(v)
	if m == nil {
		return nil, nil
	}
	a := buildAddress(m)
	return &a, nil
}

// UpdateAddress replaces an existing address's fields.
func (c *Client) UpdateAddress(ctx context.Context, params address.UpdateParams) error {
	_, err := c.send(ctx, http.MethodPut, "/api/address/update", nil, params)
	return err
}

// SetDefaultAddress marks one address as the checkout default.
func (c *Client) SetDefaultAddress(ctx context.Context, id int64) error {
	_, err := c.send(ctx, http.MethodPut, "/api/address/set-default/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}

// DeleteAddress removes an address from the book.
func (c *Client) DeleteAddress(ctx context.Context, id int64) error {
	_, err := c.send(ctx, http.MethodDelete, "/api/address/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}
