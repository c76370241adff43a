package queries

import (
	"context"

	"gorm.io/gorm"

	"servicedesk/internal/core/domain/model/order"
)

// ListOpenOrdersQueryHandler retrieves the open orders a specialist may claim.
// The capability filter runs inside the query so the result and the
// specialist's stored capability set come from one consistent snapshot.
type ListOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOpenOrdersQueryHandler creates a handler for the open order feed.
func NewListOpenOrdersQueryHandler(db *gorm.DB) ListOpenOrdersQueryHandler {
	return ListOpenOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first; a specialist with
// no declared capabilities gets an empty slice, not an error.
func (h ListOpenOrdersQueryHandler) Handle(ctx context.Context, query ListOpenOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders o`+orderViewJoins+`
		JOIN accounts me ON me.id = ?
		WHERE o.status = ?
		  AND o.specialty_id = ANY(me.specialties)
		ORDER BY o.created_at DESC
	`, query.SpecialistID().String(), order.Open).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
