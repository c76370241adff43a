package postgres

import (
	"gorm.io/gorm"

	"servicedesk/internal/adapters/out/postgres/accountrepo"
	"servicedesk/internal/adapters/out/postgres/orderrepo"
	"servicedesk/internal/adapters/out/postgres/tokenrepo"
)

// Migrate creates the schema for every aggregate plus the partial unique
// index that holds the one-open-order-per-customer rule at the database
// level. AutoMigrate cannot express a partial index, so it is issued as raw
// DDL.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&accountrepo.AccountDTO{},
		&tokenrepo.TokenDTO{},
	); err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uidx_orders_open_per_customer
		 ON orders (customer_id) WHERE status = 'open'`,
	).Error
}
