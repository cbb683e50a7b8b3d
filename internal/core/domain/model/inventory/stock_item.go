package inventory

import (
	"errors"
	"fmt"
	"strings"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var ErrStockItemIsNotConstructed = errors.New("StockItem must be created via NewStockItem constructor")

// StockItem is a catalogued steel bar: an alloy in one diameter. Lots are deliveries of a
// stock item and die components name the stock item they are cut from.
//
// Invariants:
//   - alloy is required; alloy and diameter are unique together (enforced by storage)
//   - diameter is a positive whole number of millimetres
type StockItem struct {
	id            kernel.UUID
	alloy         string
	diameterMm    int
	description   string
	isConstructed bool
}

// NewStockItem registers a bar stock.
//
// Example:
//
//	item, err := inventory.NewStockItem(kernel.NewUUID(), "1.2344 (H13)", 250, "ESR, annealed")
func NewStockItem(id kernel.UUID, alloy string, diameterMm int, description string) (*StockItem, error) {
	item := &StockItem{
		description:   strings.TrimSpace(description),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setAlloy(alloy),
		item.setDiameter(diameterMm),
	); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *StockItem) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockItemIsNotConstructed
	}
	return nil
}

func (s *StockItem) ID() kernel.UUID     { return s.id }
func (s *StockItem) Alloy() string       { return s.alloy }
func (s *StockItem) DiameterMm() int     { return s.diameterMm }
func (s *StockItem) Description() string { return s.description }

// Label names the bar the way it is stamped on delivery notes ("H13 Ø250").
func (s *StockItem) Label() string {
	return fmt.Sprintf("%s Ø%d", s.alloy, s.diameterMm)
}

func (s *StockItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *StockItem) setAlloy(alloy string) error {
	alloy = strings.TrimSpace(alloy)
	if alloy == "" {
		return errs.NewValueIsRequiredError("alloy")
	}
	if len(alloy) > 100 {
		return errs.NewValueIsOutOfRangeError("alloy length", len(alloy), 1, 100)
	}
	s.alloy = alloy
	return nil
}

func (s *StockItem) setDiameter(diameterMm int) error {
	if diameterMm <= 0 {
		return errs.NewValueIsOutOfRangeError("diameter mm", diameterMm, 1, "unbounded")
	}
	s.diameterMm = diameterMm
	return nil
}
