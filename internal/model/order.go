package model

import (
	"strconv"
	"time"
)

// Order status codes as stored in business_order_status and item_status.
const (
	StatusPending = iota
	StatusAssigned
	StatusAccepted
	StatusPacked
	StatusShipped
	StatusDelivered
	StatusCancelled
	StatusReturned
	StatusReturnedCollected
	StatusReturnedReceived
)

// StatusOption is one entry of the order status picker.
type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var statusLabels = []string{
	"Pending",
	"Assigned",
	"Accepted",
	"Packed",
	"Shipped",
	"Delivered",
	"Cancelled",
	"Returned",
	"Returned Collected",
	"Returned Received",
}

// StatusOptions returns the ten order statuses in code order.
func StatusOptions() []StatusOption {
	out := make([]StatusOption, len(statusLabels))
	for i, l := range statusLabels {
		out[i] = StatusOption{Value: strconv.Itoa(i), Label: l}
	}
	return out
}

// StatusLabel returns the label for code, or "" for unknown codes.
func StatusLabel(code int) string {
	if code < 0 || code >= len(statusLabels) {
		return ""
	}
	return statusLabels[code]
}

// Order is a row of business__orders joined with its business name.
type Order struct {
	BusinessOrderID int64     `json:"business_order_id"`
	SecretOrderID   *string   `json:"secret_order_id"`
	BusinessID      int64     `json:"business_order_business_id"`
	BusinessName    *string   `json:"business_name"`
	Status          int       `json:"business_order_status"`
	StatusLabel     string    `json:"business_order_status_label"`
	GrandTotal      float64   `json:"business_order_grand_total"`
	OrderDate       time.Time `json:"business_order_date"`
	AddressID       *int64    `json:"business_order_address_id"`
	OrderBy         *int64    `json:"order_by"`
}

// SalesmanOrder is an order joined with the salesman of its business.
type SalesmanOrder struct {
	Order
	SalesmanID   *int64  `json:"business_salesman_id"`
	SalesmanName *string `json:"business_salesmen_name"`
}

// OrderDetail is an order with the name of the user that placed it.
type OrderDetail struct {
	Order
	OrderByName *string `json:"order_by_name"`
}

// OrderItem is a row of business__orders_items.
type OrderItem struct {
	ItemID     int64   `json:"business_order_item_id"`
	OrderID    int64   `json:"business_order_id"`
	PartNumber *string `json:"item_part_number"`
	PartName   *string `json:"item_part_name"`
	Price      float64 `json:"item_price"`
	Qty        int     `json:"item_qty"`
	Status     int     `json:"item_status"`
	SubTotal   float64 `json:"business_order_sub_total"`
}

// LineAmount is price times quantity.
func (i OrderItem) LineAmount() float64 {
	return i.Price * float64(i.Qty)
}

// Address is a row of business__addresses.
type Address struct {
	AddressID   int64   `json:"business_address_id"`
	BusinessID  *int64  `json:"business_id"`
	Name        *string `json:"business_address_name"`
	Line        *string `json:"business_address"`
	City        *string `json:"business_address_city"`
	Country     *string `json:"business_address_country"`
	PhoneNumber *string `json:"business_address_phone"`
}

// OrderInfo is the full view of one order.
type OrderInfo struct {
	Order   *OrderDetail `json:"data"`
	Items   []OrderItem  `json:"items"`
	Address *Address     `json:"order_address"`
}

// OrderWithItems is an order and every one of its items.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// OrderReport is an order line of the order report.
type OrderReport struct {
	OrderWithItems
	CorrectedTotal        float64 `json:"corrected_total"`
	CorrectedTotalDisplay string  `json:"corrected_total_display"`
}
