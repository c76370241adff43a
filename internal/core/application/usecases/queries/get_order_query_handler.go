package queries

import (
	"context"

	"gorm.io/gorm"

	"servicedesk/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order projection from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns an object-not-found error when no order matches the id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders o`+orderViewJoins+`
		WHERE o.id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	view, err := scanOrderView(rows)
	if err != nil {
		return OrderView{}, err
	}

	return view, nil
}
