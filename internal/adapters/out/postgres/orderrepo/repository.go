package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/order"
	"servicedesk/internal/core/domain/model/specialty"
	"servicedesk/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. A second open order for the same
// customer trips the partial unique index and surfaces as a conflict, closing
// the race two concurrent creates would otherwise win together.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("customer already has an open order", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateIfStatus saves an existing order only when the stored row still holds
// the expected status. The status predicate rides in the UPDATE itself, so
// two racing writers are serialized by the database: the first one flips the
// status, the second matches zero rows and observes a conflict. Select("*")
// forces nil pointer columns to be written as NULL, which is what clears the
// assignment on release.
func (r *GormOrderRepository) UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		// Releasing back to open while the customer holds another open
		// order violates the partial unique index.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("customer already has an open order", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order status changed concurrently")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpenBySpecialties retrieves open orders matching the capability set,
// newest first. An empty set short-circuits to an empty result.
func (r *GormOrderRepository) GetAllOpenBySpecialties(ctx context.Context, specialties specialty.Set) ([]*order.Order, error) {
	if specialties.IsEmpty() {
		return []*order.Order{}, nil
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND specialty_id IN ?", order.Open.String(), specialties.Strings()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByCustomer retrieves every order created by the customer, newest first.
func (r *GormOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllBySpecialist retrieves every order assigned to the specialist, newest first.
func (r *GormOrderRepository) GetAllBySpecialist(ctx context.Context, specialistID kernel.UUID) ([]*order.Order, error) {
	if err := specialistID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("specialist_id = ?", specialistID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// HasOpenByCustomer reports whether the customer already owns an open order.
func (r *GormOrderRepository) HasOpenByCustomer(ctx context.Context, customerID kernel.UUID) (bool, error) {
	if err := customerID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("customer_id = ? AND status = ?", customerID.Bytes(), order.Open.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
