package queries

import (
	"database/sql"

	"github.com/lib/pq"

	"servicedesk/internal/core/domain/model/kernel"
)

// accountViewColumns is the SELECT list shared by the account queries. Keep
// in sync with scanAccountView.
const accountViewColumns = `
	id,
	email,
	first_name,
	last_name,
	phone,
	city,
	bio,
	rating,
	is_specialist,
	specialties,
	created_at`

// scanAccountView reads one account projection row.
func scanAccountView(rows *sql.Rows) (AccountView, error) {
	var (
		view AccountView

		id          string
		lastName    sql.NullString
		phone       sql.NullString
		city        sql.NullString
		bio         sql.NullString
		specialties pq.StringArray
	)

	err := rows.Scan(
		&id,
		&view.Email,
		&view.FirstName,
		&lastName,
		&phone,
		&city,
		&bio,
		&view.Rating,
		&view.IsSpecialist,
		&specialties,
		&view.CreatedAt,
	)
	if err != nil {
		return AccountView{}, err
	}

	if view.ID, err = kernel.UUIDFromString(id); err != nil {
		return AccountView{}, err
	}
	view.LastName = lastName.String
	view.Phone = phone.String
	view.City = city.String
	view.Bio = bio.String
	view.Specialties = specialties

	return view, nil
}
