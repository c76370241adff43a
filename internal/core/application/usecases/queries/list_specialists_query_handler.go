package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListSpecialistsQueryHandler retrieves the specialist directory: every
// account with specialist mode on, best rated first.
type ListSpecialistsQueryHandler struct {
	db *gorm.DB
}

// NewListSpecialistsQueryHandler creates a handler for the specialist directory.
func NewListSpecialistsQueryHandler(db *gorm.DB) ListSpecialistsQueryHandler {
	return ListSpecialistsQueryHandler{db: db}
}

// Handle executes the query. A city filter matches exactly; no matches yield
// an empty slice, not an error.
func (h ListSpecialistsQueryHandler) Handle(ctx context.Context, query ListSpecialistsQuery) ([]AccountView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + accountViewColumns + `
		FROM accounts
		WHERE is_specialist = TRUE`
	args := make([]any, 0, 1)

	if query.City() != "" {
		sql += `
		  AND city = ?`
		args = append(args, query.City())
	}

	sql += `
		ORDER BY rating DESC, created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]AccountView, 0)
	for rows.Next() {
		view, scanErr := scanAccountView(rows)
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
