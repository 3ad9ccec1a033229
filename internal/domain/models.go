package domain

import "time"

// CartLine represents one catalog item plus a quantity in the cart
type CartLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// Subtotal is the line's unit price times quantity
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// MenuItem represents an orderable catalog entry
type MenuItem struct {
	ID       int     `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

// MenuEntry represents a descriptive entry on the full menu
type MenuEntry struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Vegetarian  bool    `json:"vegetarian"`
	SpiceLevel  int     `json:"spice_level"`
}

// ContactDetails holds the reservation contact fields
type ContactDetails struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// DeliveryDetails holds the order delivery fields
type DeliveryDetails struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Instructions string `json:"instructions,omitempty"`
}

// BookingSummary is the read-only confirmation view of a completed booking
type BookingSummary struct {
	Guests  int            `json:"guests"`
	Date    time.Time      `json:"date"`
	Time    string         `json:"time"`
	Contact ContactDetails `json:"contact"`
}

// OrderSummary is the read-only confirmation view of a placed order
type OrderSummary struct {
	OrderID           string          `json:"order_id"`
	Delivery          DeliveryDetails `json:"delivery"`
	Lines             []CartLine      `json:"lines"`
	Total             float64         `json:"total"`
	EstimatedDelivery string          `json:"estimated_delivery"`
}

// Testimonial represents a guest review
type Testimonial struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

// Offer represents a running promotional offer
type Offer struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Discount    string `json:"discount"`
	Validity    string `json:"validity"`
	Code        string `json:"code"`
}

// FestivalSpecial represents a seasonal festival menu item
type FestivalSpecial struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Available   string `json:"available"`
}
