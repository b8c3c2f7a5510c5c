package fakestore

import (
	"strconv"
	"strings"
)

// Sort orders accepted by the products endpoints.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Rating is the aggregated review score of a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a catalog item.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// ProductQuery narrows a product listing. Zero value lists everything in
// API order.
type ProductQuery struct {
	Category string
	Sort     string
}

// Validate checks the sort order.
func (q ProductQuery) Validate() error {
	switch q.Sort {
	case "", SortAsc, SortDesc:
		return nil
	default:
		return ErrInvalidSort
	}
}

// Name is a user's personal name.
type Name struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Geolocation is an address coordinate pair encoded as strings.
type Geolocation struct {
	Lat  string `json:"lat"`
	Long string `json:"long"`
}

// Address is a postal address.
type Address struct {
	City        string      `json:"city"`
	Street      string      `json:"street"`
	Number      int         `json:"number"`
	Zipcode     string      `json:"zipcode"`
	Geolocation Geolocation `json:"geolocation"`
}

// PlaceholderAddress is sent for users created without an address.
func PlaceholderAddress() Address {
	return Address{
		City:        "N/A",
		Street:      "N/A",
		Number:      0,
		Zipcode:     "00000",
		Geolocation: Geolocation{Lat: "0", Long: "0"},
	}
}

// User is a store account.
type User struct {
	ID       int     `json:"id,omitempty"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Password string  `json:"password,omitempty"`
	Name     Name    `json:"name"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
}

// CartLine is a product entry of a remote cart.
type CartLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Cart is a historical order as stored by the API.
type Cart struct {
	ID       int        `json:"id"`
	UserID   int        `json:"userId"`
	Date     string     `json:"date"`
	Products []CartLine `json:"products"`
}

// TotalQuantity sums the quantities of all lines.
func (c Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.Products {
		total += l.Quantity
	}
	return total
}

// ParseUserID parses a positive integer user id.
func ParseUserID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, ErrInvalidUserID
	}
	return id, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
