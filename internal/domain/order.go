package domain

import "time"

// OrderStatus is a closed enumeration. Transitions only move forward; see
// CanTransitionTo.
type OrderStatus string

const (
	StatusPending      OrderStatus = "PENDING"
	StatusProcessing   OrderStatus = "PROCESSING"
	StatusAwaitPayment OrderStatus = "AWAIT_PAYMENT"
	StatusShipped      OrderStatus = "SHIPPED"
	StatusDelivered    OrderStatus = "DELIVERED"
	StatusCompleted    OrderStatus = "COMPLETED"
	StatusCanceled     OrderStatus = "CANCELED"
	StatusReturned     OrderStatus = "RETURNED"
)

// orderTransitions is the allowed forward-transition table. CANCELED and
// RETURNED are reachable from every non-terminal state and are themselves
// terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:      {StatusProcessing, StatusCanceled, StatusReturned},
	StatusProcessing:   {StatusAwaitPayment, StatusShipped, StatusCanceled, StatusReturned},
	StatusAwaitPayment: {StatusDelivered, StatusCanceled, StatusReturned},
	StatusShipped:      {StatusDelivered, StatusCanceled, StatusReturned},
	StatusDelivered:    {StatusCompleted, StatusCanceled, StatusReturned},
	StatusCompleted:    nil,
	StatusCanceled:     nil,
	StatusReturned:     nil,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	targets, ok := orderTransitions[s]
	return ok && len(targets) == 0
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	CartID     *string     `json:"cartId,omitempty"`
	Status     OrderStatus `json:"status"`
	OrderDate  time.Time   `json:"orderDate"`
	DeliveryAt *time.Time  `json:"deliveryDate,omitempty"`
}
