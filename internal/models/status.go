package models

import "fmt"

// OrderStatus is the order lifecycle state. The intended progression is
// PENDING -> RECEIVED -> ORDERED -> DELIVERED, though no transition is blocked.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusReceived  OrderStatus = "RECEIVED"
	StatusOrdered   OrderStatus = "ORDERED"
	StatusDelivered OrderStatus = "DELIVERED"
)

var validStatuses = map[OrderStatus]struct{}{
	StatusPending:   {},
	StatusReceived:  {},
	StatusOrdered:   {},
	StatusDelivered: {},
}

// ParseStatus converts a raw string into an OrderStatus, rejecting anything
// outside the four recognized values.
func ParseStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validStatuses[status]; !ok {
		return "", fmt.Errorf("unrecognized order status: %q", s)
	}
	return status, nil
}

// Statuses returns the recognized status values.
func Statuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusReceived, StatusOrdered, StatusDelivered}
}
