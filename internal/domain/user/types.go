// Package user defines account and identity types shared by the shopper,
// merchant, and admin surfaces.
package user

import "github.com/hqh-mall/mallclient/internal/domain/page"

// User types as the backend reports them.
const (
	TypeCustomer = "customer"
	TypeMerchant = "merchant"
	TypeAdmin    = "admin"
)

// Account statuses. Pending merchants are created locked and unlocked by
// an admin audit.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusLocked   = "locked"
)

// Identity is the minimal cached identity attached to a session. It is
// persisted to durable storage alongside the token and rehydrated at
// startup.
type Identity struct {
	Account  string `json:"account"`
	Username string `json:"username"`
	UserType string `json:"userType"`
}

// Credentials is a successful login result: the identity plus the bearer
// token the pipeline attaches to subsequent requests.
type Credentials struct {
	Identity
	Token string `json:"token"`
}

// LoginParams are the credentials sent to the login endpoint.
type LoginParams struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// RegisterParams creates a new customer account.
type RegisterParams struct {
	Account  string `json:"account"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// AdminUser is a user row as the admin listings see it. Nullable fields
// stay nil when the backend did not supply them; an empty string is a
// supplied-but-empty value and the two are not interchangeable.
type AdminUser struct {
	UserID     int64   `json:"userId"`
	Account    string  `json:"account"`
	Password   string  `json:"password"` // the backend leaks this into listings; kept so callers can detect and mask it
	UserType   string  `json:"userType"`
	Status     string  `json:"status"`
	Username   *string `json:"username"`
	Gender     *string `json:"gender"`
	Birthday   *string `json:"birthday"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	AvatarURL  string  `json:"avatarUrl"`
	CreateTime string  `json:"createTime"`
	UpdateTime string  `json:"updateTime"`
}

// ListParams filter the admin user listings.
type ListParams struct {
	page.Query
	UserID   int64
	Account  string
	Username string
	UserType string
	Status   string
}
