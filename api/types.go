package api

import "time"

// User is the seller account profile as returned by the remote API.
type User struct {
	ID        string    `json:"_id,omitempty"`       // Unique identifier for the user
	Username  string    `json:"username,omitempty"`  // Unique username
	Email     string    `json:"email,omitempty"`     // User's email address
	Photo     string    `json:"photo,omitempty"`     // Avatar URL
	CreatedAt time.Time `json:"createdAt,omitempty"` // When the account was registered
	UpdatedAt time.Time `json:"updatedAt,omitempty"` // Last profile change
}

// Merchant is a tenant/store profile scoping products, orders and settings.
// A user may exist without owning a merchant yet.
type Merchant struct {
	ID            string    `json:"_id,omitempty"`
	MerchantName  string    `json:"merchantName,omitempty"`
	MerchantCode  string    `json:"merchantCode,omitempty"` // Short code used in resource paths
	MerchantEmail string    `json:"merchantEmail,omitempty"`
	Currency      string    `json:"currency,omitempty"` // ISO currency code, e.g. "NGN"
	Description   string    `json:"description,omitempty"`
	Logo          string    `json:"logo,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

type Product struct {
	ID          string    `json:"_id,omitempty"`
	Name        string    `json:"name,omitempty"`
	Slug        string    `json:"slug,omitempty"` // URL-safe handle, unique per merchant
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Category    string    `json:"category,omitempty"`
	Price       float64   `json:"price,omitempty"`
	Quantity    int       `json:"quantity,omitempty"`
	InStock     bool      `json:"inStock,omitempty"`
	IsActive    bool      `json:"isActive,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

type Category struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type Discount struct {
	ID            string    `json:"_id,omitempty"`
	DiscountCode  string    `json:"discountCode,omitempty"`
	DiscountValue float64   `json:"discountValue,omitempty"` // Percentage off
	Quantity      int       `json:"quantity,omitempty"`      // Remaining redemptions
	StartDate     time.Time `json:"startDate,omitempty"`
	EndDate       time.Time `json:"endDate,omitempty"`
	Enabled       bool      `json:"enabled,omitempty"`
}

// TaxAddress is the jurisdiction a tax rate applies to.
type TaxAddress struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

type TaxRate struct {
	StandardRate float64 `json:"standardRate,omitempty"` // Percentage applied at checkout
}

type Tax struct {
	ID      string     `json:"_id,omitempty"`
	Address TaxAddress `json:"address,omitempty"`
	Rate    TaxRate    `json:"rate,omitempty"`
	Enabled bool       `json:"enabled,omitempty"`
}

type ShippingRate struct {
	ID      string  `json:"_id,omitempty"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country,omitempty"`
	Fee     float64 `json:"fee,omitempty"`
}

type OrderItem struct {
	Name     string  `json:"name,omitempty"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

type ShippingDetails struct {
	Address string `json:"address,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type Order struct {
	ID              string          `json:"_id,omitempty"`
	OrderItems      []OrderItem     `json:"orderItems,omitempty"`
	ShippingDetails ShippingDetails `json:"shippingDetails,omitempty"`
	Total           float64         `json:"total,omitempty"`
	OrderStatus     string          `json:"orderStatus,omitempty"` // open, processing, shipped, delivered
	IsPaid          bool            `json:"isPaid,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `json:"isDelivered,omitempty"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt,omitempty"`
}

type Customer struct {
	ID          string  `json:"_id,omitempty"`
	Username    string  `json:"username,omitempty"`
	Email       string  `json:"email,omitempty"`
	Photo       string  `json:"photo,omitempty"`
	TotalOrders int     `json:"totalOrders,omitempty"`
	TotalSpent  float64 `json:"totalSpent,omitempty"`
}

// SalesSummary is the merchant dashboard aggregate.
type SalesSummary struct {
	TotalSales    float64 `json:"totalSales,omitempty"`
	TotalOrders   int     `json:"totalOrders,omitempty"`
	TotalProducts int     `json:"totalProducts,omitempty"`
}

// Paginated list containers. Every list endpoint reports count and
// totalPages alongside the page of items.

type ProductPage struct {
	Products    []Product `json:"products"`
	Count       int       `json:"count"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}

type OrderPage struct {
	Orders      []Order `json:"orders"`
	Count       int     `json:"count"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
}

type CustomerPage struct {
	Customers   []Customer `json:"customers"`
	Count       int        `json:"count"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Msg          string `json:"msg,omitempty"`
}

// TokenResponse is returned by the refresh-token exchange.
type TokenResponse struct {
	AccessToken string `json:"accessToken,omitempty"`
}

// MessageResponse carries a human-readable acknowledgement.
type MessageResponse struct {
	Msg string `json:"msg,omitempty"`
}
