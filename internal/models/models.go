package models

import "time"

// AccountStatus is the lifecycle state of a customer account.
// The only legal transition is Active -> Inactive (soft delete); an inactive
// account is never reactivated or mutated.
type AccountStatus string

const (
	StatusActive   AccountStatus = "ACTIVE"
	StatusInactive AccountStatus = "INACTIVE"
)

// Valid reports whether s is one of the known statuses.
func (s AccountStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Account is the customer account record. It is both the persistence model
// and the snapshot serialised into cache entries and event payloads.
type Account struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	NationalID string        `json:"nationalId"`
	Status     AccountStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// Order controls listing order by creation time.
type Order string

const (
	OrderAscending  Order = "asc"
	OrderDescending Order = "desc"
)

// ParseOrder normalises a raw order flag, defaulting to newest-first.
func ParseOrder(raw string) Order {
	if raw == string(OrderAscending) {
		return OrderAscending
	}
	return OrderDescending
}

// PageSize is fixed for all account listings.
const PageSize = 10

// Pagination describes the page window of a listing result.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	PageCount  int `json:"pageCount"`
	TotalCount int `json:"totalCount"`
}

// AccountPage is one page of a filtered account listing.
// Recomputed per query, never persisted.
type AccountPage struct {
	Accounts []Account  `json:"accounts"`
	Paginate Pagination `json:"paginate"`
}
