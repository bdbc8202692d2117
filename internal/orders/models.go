package orders

import "time"

// CashOnDelivery is the payment reference recorded when no payment id is supplied.
const CashOnDelivery = "cash on delivery"

// Item is one line of an order, snapshotted by value at placement time.
type Item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type Order struct {
	ID               int64           `json:"id"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	Items            map[string]Item `json:"items"`
	PickupDate       string          `json:"pickup_date"`
	PickupSlot       string          `json:"pickup_slot"`
	Status           Status          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	PaymentReference string          `json:"payment_reference"`
}

// IsCashOnDelivery reports whether the order is to be paid at pickup.
func (o Order) IsCashOnDelivery() bool {
	return o.PaymentReference == CashOnDelivery
}

// PlaceOrderInput is the customer-supplied part of an order.
type PlaceOrderInput struct {
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	Items      map[string]Item `json:"items"`
	PickupDate string          `json:"pickup_date"`
	PickupSlot string          `json:"pickup_slot"`
	PaymentID  string          `json:"payment_id,omitempty"`
}
