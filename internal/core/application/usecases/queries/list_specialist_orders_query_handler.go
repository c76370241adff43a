package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListSpecialistOrdersQueryHandler retrieves the orders assigned to a specialist.
type ListSpecialistOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListSpecialistOrdersQueryHandler creates a handler for a specialist's assignments.
func NewListSpecialistOrdersQueryHandler(db *gorm.DB) ListSpecialistOrdersQueryHandler {
	return ListSpecialistOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
func (h ListSpecialistOrdersQueryHandler) Handle(ctx context.Context, query ListSpecialistOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders o`+orderViewJoins+`
		WHERE o.specialist_id = ?
		ORDER BY o.created_at DESC
	`, query.SpecialistID().String()).Rows()
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
