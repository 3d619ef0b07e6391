package model

import "time"

// OrderStatus is a stage in the fixed fulfillment progression.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusBuilding   OrderStatus = "building"
	OrderStatusTesting    OrderStatus = "testing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// StatusProgression lists fulfillment stages in advancement order.
func StatusProgression() []OrderStatus {
	return []OrderStatus{
		OrderStatusProcessing,
		OrderStatusBuilding,
		OrderStatusTesting,
		OrderStatusShipped,
		OrderStatusDelivered,
	}
}

// Ordinal returns the zero-based position of the status in the progression.
// Unknown values map to the first stage.
func (s OrderStatus) Ordinal() int {
	for i, status := range StatusProgression() {
		if s == status {
			return i
		}
	}
	return 0
}

// ShippingInfo carries the checkout shipping form fields. The ledger treats
// them as opaque.
type ShippingInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// PaymentDetails is the raw checkout payment input. It is validated and then
// discarded; nothing beyond the last four card digits survives placement.
type PaymentDetails struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// PaymentRecord is what an order retains about payment.
type PaymentRecord struct {
	Method string `json:"method"`
	Last4  string `json:"last4"`
}

// Order is an immutable record created once at checkout. Items and totals are
// deep snapshots; they are never recomputed even if pricing rules change.
type Order struct {
	ID       string        `json:"id"`
	Items    []CartItem    `json:"items"`
	Shipping ShippingInfo  `json:"shipping"`
	Payment  PaymentRecord `json:"payment"`
	Totals   Totals        `json:"totals"`
	Date     time.Time     `json:"date"`
	Status   OrderStatus   `json:"status"`
}
