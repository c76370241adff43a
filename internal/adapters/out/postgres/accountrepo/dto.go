// Package accountrepo provides data transfer objects and mapping functions
// for account persistence. Specialties are stored as a native text[] column
// so the open-order feed can filter on them inside the database.
package accountrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"servicedesk/internal/core/domain/model/account"
	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/specialty"
)

// AccountDTO represents the database structure for persisting account aggregates.
type AccountDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"type:varchar(255);uniqueIndex;not null"`

	FirstName string  `gorm:"type:varchar(255);not null"`
	LastName  *string `gorm:"type:varchar(255)"`
	Phone     *string `gorm:"type:varchar(32)"`
	City      *string `gorm:"type:varchar(255)"`
	Bio       *string `gorm:"type:text"`

	Rating       float64        `gorm:"type:numeric(3,2);not null;default:0"`
	IsSpecialist bool           `gorm:"not null;default:false"`
	Specialties  pq.StringArray `gorm:"type:text[];not null;default:'{}'"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	profile := aggregate.Profile()

	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		FirstName:    profile.FirstName,
		LastName:     optionalString(profile.LastName),
		Phone:        optionalString(profile.Phone),
		City:         optionalString(profile.City),
		Bio:          optionalString(profile.Bio),
		Rating:       aggregate.Rating(),
		IsSpecialist: aggregate.IsSpecialist(),
		Specialties:  aggregate.Capabilities().Strings(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to an account aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Email,
		account.Profile{
			FirstName: dto.FirstName,
			LastName:  stringValue(dto.LastName),
			Phone:     stringValue(dto.Phone),
			City:      stringValue(dto.City),
			Bio:       stringValue(dto.Bio),
		},
		dto.Rating,
		dto.IsSpecialist,
		specialty.NewSet(dto.Specialties),
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
