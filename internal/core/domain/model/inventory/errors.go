package inventory

import (
	"errors"
	"fmt"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError reports a debit larger than the lot's remaining quantity.
type InsufficientStockError struct {
	CertificateNumber string
	RequestedKg       float64
	RemainingKg       float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: lot %s has %.3f kg remaining, %.3f kg requested",
		ErrInsufficientStock, e.CertificateNumber, e.RemainingKg, e.RequestedKg)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
