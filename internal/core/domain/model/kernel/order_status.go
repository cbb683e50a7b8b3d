package kernel

import (
	"fmt"
	"strings"

	"dietrack/internal/pkg/errs"
)

// OrderStatus is the lifecycle shared by production orders and work orders.
//
//	Waiting ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴────────> Cancelled
//
// Completed and Cancelled are terminal.
type OrderStatus int

const (
	// UnknownOrderStatus catches uninitialised values.
	UnknownOrderStatus OrderStatus = iota
	OrderWaiting
	OrderInProgress
	OrderCompleted
	OrderCancelled
)

func orderStatusNames() map[OrderStatus]string {
	return map[OrderStatus]string{
		UnknownOrderStatus: "Unknown",
		OrderWaiting:       "Waiting",
		OrderInProgress:    "InProgress",
		OrderCompleted:     "Completed",
		OrderCancelled:     "Cancelled",
	}
}

// ParseOrderStatus converts the boundary representation ("Waiting", "InProgress", ...)
// into an OrderStatus. Matching is case-insensitive; "Unknown" is never accepted.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	for status, name := range orderStatusNames() {
		if status != UnknownOrderStatus && strings.EqualFold(name, strings.TrimSpace(raw)) {
			return status, nil
		}
	}
	return UnknownOrderStatus, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid order status", raw),
	)
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	if name, ok := orderStatusNames()[s]; ok {
		return name
	}
	return "Unknown"
}

// Validate rejects UnknownOrderStatus and out-of-range values.
func (s OrderStatus) Validate() error {
	if s <= UnknownOrderStatus || s > OrderCancelled {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// Start moves a Waiting order to InProgress. InProgress is accepted again so that
// operator driven PATCHes stay idempotent.
func (s OrderStatus) Start() (OrderStatus, error) {
	if s != OrderWaiting && s != OrderInProgress {
		return UnknownOrderStatus, invalidOrderTransition(s, OrderInProgress)
	}
	return OrderInProgress, nil
}

// Complete finishes an InProgress order.
func (s OrderStatus) Complete() (OrderStatus, error) {
	if s != OrderInProgress {
		return UnknownOrderStatus, invalidOrderTransition(s, OrderCompleted)
	}
	return OrderCompleted, nil
}

// Cancel is allowed from any non-terminal status.
func (s OrderStatus) Cancel() (OrderStatus, error) {
	if s.Validate() != nil || s.IsTerminal() {
		return UnknownOrderStatus, invalidOrderTransition(s, OrderCancelled)
	}
	return OrderCancelled, nil
}

// TransitionTo dispatches to Start, Complete or Cancel.
func (s OrderStatus) TransitionTo(target OrderStatus) (OrderStatus, error) {
	switch target {
	case OrderInProgress:
		return s.Start()
	case OrderCompleted:
		return s.Complete()
	case OrderCancelled:
		return s.Cancel()
	case OrderWaiting:
		if s == OrderWaiting {
			return OrderWaiting, nil
		}
	case UnknownOrderStatus:
	}
	return UnknownOrderStatus, invalidOrderTransition(s, target)
}

func invalidOrderTransition(from, to OrderStatus) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("cannot change status from %s to %s", from, to),
	)
}
