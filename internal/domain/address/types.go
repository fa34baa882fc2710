// Package address defines customer shipping addresses.
package address

// Address is a saved shipping address. At most one address per account is
// the default; checkout preselects it.
type Address struct {
	AddressID     int64  `json:"addressId"`
	UserID        int64  `json:"userId"`
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	FullAddress   string `json:"fullAddress"`
	IsDefault     bool   `json:"isDefault"`
	CreateTime    string `json:"createTime"`
	UpdateTime    string `json:"updateTime"`
}

// CreateParams add a new address to the account's address book.
type CreateParams struct {
	FullAddress   string `json:"fullAddress"`
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	IsDefault     bool   `json:"isDefault,omitempty"`
}

// UpdateParams replace an existing address's fields.
type UpdateParams struct {
	AddressID int64 `json:"addressId"`
	CreateParams
}
