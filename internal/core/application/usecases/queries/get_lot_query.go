package queries

import (
	"errors"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrGetLotQueryIsNotConstructed = errors.New("GetLotQuery must be created via NewGetLotQuery constructor")

// GetLotQuery retrieves a bar stock lot with its remaining quantity and every movement
// drawn from it.
type GetLotQuery struct {
	lotID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLotQuery(lotID kernel.UUID) (GetLotQuery, error) {
	if err := lotID.Validate(); err != nil {
		return GetLotQuery{}, err
	}
	return GetLotQuery{lotID: lotID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLotQuery) Validate() error {
	return q.guard.Validate(ErrGetLotQueryIsNotConstructed)
}

func (q GetLotQuery) LotID() kernel.UUID { return q.lotID }

// GetLotQueryResponse is the lot read model. Movements are ordered oldest first.
type GetLotQueryResponse struct {
	ID                kernel.UUID
	StockItemID       kernel.UUID
	Alloy             string
	DiameterMm        int
	CertificateNumber string
	Supplier          string
	LengthMm          float64
	GrossWeightKg     float64
	RemainingKg       float64
	ReceivedDate      time.Time
	Movements         []StockMovementView
}

// StockMovementView is one debit against a lot.
type StockMovementView struct {
	ID              kernel.UUID
	WorkOrderID     kernel.UUID
	WorkOrderNumber string
	QuantityKg      float64
	Notes           string
	CreatedAt       time.Time
}
