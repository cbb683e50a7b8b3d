package queries

import (
	"context"
	"fmt"

	"dietrack/internal/core/domain/model/operator"
	"dietrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoginOperatorQueryHandler struct {
	db *gorm.DB
}

func NewLoginOperatorQueryHandler(db *gorm.DB) LoginOperatorQueryHandler {
	return LoginOperatorQueryHandler{db: db}
}

func (h LoginOperatorQueryHandler) Handle(ctx context.Context, query LoginOperatorQuery) (*OperatorSession, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var row struct {
		ID             uuid.UUID
		Name           string
		EmployeeNumber string
		IsActive       bool
	}
	tx := db.Raw(`
		SELECT id, name, COALESCE(employee_number, '') AS employee_number, is_active
		FROM operators
		WHERE rfid_code = ?
	`, query.RFIDCode()).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("operator", query.RFIDCode())
	}
	if !row.IsActive {
		return nil, fmt.Errorf("%w: %s", operator.ErrOperatorInactive, row.Name)
	}

	session := OperatorSession{
		Name:           row.Name,
		EmployeeNumber: row.EmployeeNumber,
		WorkCenters:    make([]WorkCenterRef, 0),
	}
	var err error
	if session.OperatorID, err = toUUID(row.ID); err != nil {
		return nil, err
	}

	rows, err := db.Raw(`
		SELECT wc.id, wc.name
		FROM operator_work_centers owc
		JOIN work_centers wc ON wc.id = owc.work_center_id
		WHERE owc.operator_id = ?
		ORDER BY wc.name
	`, row.ID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ref  WorkCenterRef
			wcID uuid.UUID
		)
		if err = rows.Scan(&wcID, &ref.Name); err != nil {
			return nil, err
		}
		if ref.ID, err = toUUID(wcID); err != nil {
			return nil, err
		}
		session.WorkCenters = append(session.WorkCenters, ref)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return &session, nil
}
