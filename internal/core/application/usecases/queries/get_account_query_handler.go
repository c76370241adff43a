package queries

import (
	"context"

	"gorm.io/gorm"

	"servicedesk/internal/pkg/errs"
)

// GetAccountQueryHandler retrieves an account profile from the database.
type GetAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountQueryHandler creates a handler for account profile lookups.
func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns an object-not-found error when no account matches the id.
func (h GetAccountQueryHandler) Handle(ctx context.Context, query GetAccountQuery) (AccountView, error) {
	if err := query.Validate(); err != nil {
		return AccountView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+accountViewColumns+`
		FROM accounts
		WHERE id = ?
	`, query.AccountID().String()).Rows()
	if err != nil {
		return AccountView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AccountView{}, err
		}
		return AccountView{}, errs.NewObjectNotFoundError("accountId", query.AccountID())
	}

	return scanAccountView(rows)
}
