package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDieTypesQueryHandler struct {
	db *gorm.DB
}

func NewListDieTypesQueryHandler(db *gorm.DB) ListDieTypesQueryHandler {
	return ListDieTypesQueryHandler{db: db}
}

func (h ListDieTypesQueryHandler) Handle(ctx context.Context, query ListDieTypesQuery) ([]DieTypeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dt.id,
			dt.code,
			dt.name,
			COALESCE(dt.description, ''),
			dt.is_active,
			ct.id,
			COALESCE(ct.code, ''),
			COALESCE(ct.name, '')
		FROM die_types dt
		LEFT JOIN die_type_components dtc ON dtc.die_type_id = dt.id
		LEFT JOIN component_types ct ON ct.id = dtc.component_type_id
		WHERE ? OR dt.is_active
		ORDER BY dt.code, dtc.position
	`, query.IncludeInactive()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dieTypes := make([]DieTypeView, 0)
	for rows.Next() {
		var (
			view   DieTypeView
			ref    ComponentTypeRef
			id     uuid.UUID
			typeID uuid.NullUUID
		)
		err = rows.Scan(
			&id,
			&view.Code,
			&view.Name,
			&view.Description,
			&view.IsActive,
			&typeID,
			&ref.Code,
			&ref.Name,
		)
		if err != nil {
			return nil, err
		}
		if view.ID, err = toUUID(id); err != nil {
			return nil, err
		}

		// rows arrive grouped by die type
		if n := len(dieTypes); n == 0 || !dieTypes[n-1].ID.IsEqual(view.ID) {
			view.ComponentTypes = make([]ComponentTypeRef, 0)
			dieTypes = append(dieTypes, view)
		}
		if !typeID.Valid {
			continue
		}
		if ref.ID, err = toUUID(typeID.UUID); err != nil {
			return nil, err
		}
		last := &dieTypes[len(dieTypes)-1]
		last.ComponentTypes = append(last.ComponentTypes, ref)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return dieTypes, nil
}
