package commands

import (
	"errors"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrReceiveLotCommandIsNotConstructed = errors.New(
	"ReceiveLotCommand must be created via NewReceiveLotCommand constructor",
)

// ReceiveLotCommand books a delivered lot of a catalogued stock item. The full gross weight
// is available.
type ReceiveLotCommand struct { //nolint:recvcheck //using for validation
	lotID             kernel.UUID
	stockItemID       kernel.UUID
	certificateNumber string
	supplier          string
	lengthMm          float64
	grossWeightKg     float64
	receivedDate      time.Time

	guard guard.ConstructorGuard
}

func NewReceiveLotCommand(
	lotID, stockItemID kernel.UUID,
	certificateNumber, supplier string,
	lengthMm, grossWeightKg float64,
	receivedDate time.Time,
) (ReceiveLotCommand, error) {
	if err := errors.Join(lotID.Validate(), stockItemID.Validate()); err != nil {
		return ReceiveLotCommand{}, err
	}
	if receivedDate.IsZero() {
		receivedDate = time.Now()
	}
	return ReceiveLotCommand{
		lotID:             lotID,
		stockItemID:       stockItemID,
		certificateNumber: certificateNumber,
		supplier:          supplier,
		lengthMm:          lengthMm,
		grossWeightKg:     grossWeightKg,
		receivedDate:      receivedDate,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c ReceiveLotCommand) Validate() error {
	return c.guard.Validate(ErrReceiveLotCommandIsNotConstructed)
}

func (c ReceiveLotCommand) LotID() kernel.UUID        { return c.lotID }
func (c ReceiveLotCommand) StockItemID() kernel.UUID  { return c.stockItemID }
func (c ReceiveLotCommand) CertificateNumber() string { return c.certificateNumber }
func (c ReceiveLotCommand) Supplier() string          { return c.supplier }
func (c ReceiveLotCommand) LengthMm() float64         { return c.lengthMm }
func (c ReceiveLotCommand) GrossWeightKg() float64    { return c.grossWeightKg }
func (c ReceiveLotCommand) ReceivedDate() time.Time   { return c.receivedDate }
