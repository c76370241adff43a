package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListCustomerOrdersQueryHandler retrieves a customer's order history.
type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomerOrdersQueryHandler creates a handler for customer order history.
func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
func (h ListCustomerOrdersQueryHandler) Handle(ctx context.Context, query ListCustomerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders o`+orderViewJoins+`
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC
	`, query.CustomerID().String()).Rows()
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
