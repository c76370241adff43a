package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "servicedesk/internal/adapters/out/postgres"
	"servicedesk/internal/adapters/out/postgres/accountrepo"
	"servicedesk/internal/adapters/out/postgres/orderrepo"
	"servicedesk/internal/core/application/usecases/queries"
	"servicedesk/internal/core/domain/model/account"
	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/order"
	"servicedesk/internal/core/domain/model/specialty"
	"servicedesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracking without a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// OrderQueriesHandlerTestSuite runs the read-side handlers against a real
// PostgreSQL database seeded through the write-side repositories, so the raw
// SQL projections are verified against the schema the repositories produce.
type OrderQueriesHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	accountRepo *accountrepo.GormAccountRepository
}

func (suite *OrderQueriesHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = postgres_adapter.Migrate(db)
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.accountRepo = accountrepo.NewGormAccountRepository(db, noopTracker{})
}

func (suite *OrderQueriesHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueriesHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, accounts, access_tokens").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueriesHandlerTestSuite) TestGetOrder_ReturnsFullProjection() {
	ctx := context.Background()

	customer := suite.seedAccount("Анна", "Иванова", "")
	specialist := suite.seedSpecialist("Пётр", "Сидоров", "+79991234567", "santehnik")

	price := 2500.0
	o := suite.seedOrder(customer.ID(), specialty.Plumber, func(o *order.Order) {
		suite.Require().NoError(o.Claim(specialist.ID(), specialist.Capabilities()))
		point, err := kernel.NewGeoPoint(55.75, 37.61)
		suite.Require().NoError(err)
		suite.Require().NoError(o.ReportSpecialistLocation(specialist.ID(), point))
	}, order.Details{Description: "замена смесителя", ProposedPrice: &price, AddressText: "ул. Ленина, 10"})

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), view.ID)
	suite.Equal(customer.ID(), view.CustomerID)
	suite.Equal("Анна Иванова", view.CustomerName)
	suite.Equal("santehnik", view.SpecialtyID)
	suite.Equal("замена смесителя", view.Description)
	suite.Require().NotNil(view.ProposedPrice)
	suite.InDelta(price, *view.ProposedPrice, 0.001)
	suite.Equal("ул. Ленина, 10", view.AddressText)
	suite.Equal("accepted", view.Status)

	suite.Require().NotNil(view.SpecialistID)
	suite.Equal(specialist.ID(), *view.SpecialistID)
	suite.Require().NotNil(view.SpecialistName)
	suite.Equal("Пётр Сидоров", *view.SpecialistName)
	suite.Require().NotNil(view.SpecialistPhone)
	suite.Equal("+79991234567", *view.SpecialistPhone)

	suite.Nil(view.CustomerLocation)
	suite.Require().NotNil(view.SpecialistLocation)
	suite.InDelta(55.75, view.SpecialistLocation.Latitude, 0.000001)
	suite.InDelta(37.61, view.SpecialistLocation.Longitude, 0.000001)
}

func (suite *OrderQueriesHandlerTestSuite) TestGetOrder_OpenOrder_HasNoSpecialistFields() {
	ctx := context.Background()

	customer := suite.seedAccount("Анна", "", "")
	o := suite.seedOrder(customer.ID(), specialty.Electrician, nil, order.Details{})

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("open", view.Status)
	suite.Equal("Анна", view.CustomerName)
	suite.Nil(view.SpecialistID)
	suite.Nil(view.SpecialistName)
	suite.Nil(view.SpecialistPhone)
	suite.Nil(view.ProposedPrice)
	suite.Nil(view.PreferredAt)
}

func (suite *OrderQueriesHandlerTestSuite) TestGetOrder_NonExistent_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderQueriesHandlerTestSuite) TestListOpenOrders_FiltersBySpecialistCapabilities() {
	ctx := context.Background()

	customer := suite.seedAccount("Анна", "Иванова", "")
	second := suite.seedAccount("Борис", "Петров", "")
	third := suite.seedAccount("Вера", "Кузнецова", "")
	specialist := suite.seedSpecialist("Пётр", "Сидоров", "", "santehnik", "elektrik")

	suite.seedOrder(customer.ID(), specialty.Plumber, nil, order.Details{Description: "plumbing"})
	suite.seedOrder(second.ID(), specialty.Electrician, nil, order.Details{Description: "electrics"})
	suite.seedOrder(third.ID(), specialty.Cleaning, nil, order.Details{Description: "cleaning"})

	claimed := suite.seedOrder(customer.ID(), specialty.Plumber, func(o *order.Order) {
		suite.Require().NoError(o.Claim(kernel.NewUUID(), specialty.NewSet([]string{"santehnik"})))
	}, order.Details{Description: "already taken"})

	query, err := queries.NewListOpenOrdersQuery(specialist.ID())
	suite.Require().NoError(err)

	views, err := queries.NewListOpenOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Len(views, 2)
	for _, view := range views {
		suite.Equal("open", view.Status)
		suite.Contains([]string{"santehnik", "elektrik"}, view.SpecialtyID)
		suite.NotEqual(claimed.ID(), view.ID)
	}
}

func (suite *OrderQueriesHandlerTestSuite) TestListOpenOrders_NoCapabilities_ReturnsEmptySlice() {
	ctx := context.Background()

	customer := suite.seedAccount("Анна", "", "")
	plain := suite.seedAccount("Борис", "", "")
	suite.seedOrder(customer.ID(), specialty.Plumber, nil, order.Details{})

	query, err := queries.NewListOpenOrdersQuery(plain.ID())
	suite.Require().NoError(err)

	views, err := queries.NewListOpenOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(views)
}

func (suite *OrderQueriesHandlerTestSuite) TestListCustomerOrders_NewestFirst() {
	ctx := context.Background()

	customer := suite.seedAccount("Анна", "", "")
	other := suite.seedAccount("Борис", "", "")

	first := suite.seedOrder(customer.ID(), specialty.Plumber, nil, order.Details{})
	second := suite.seedOrder(customer.ID(), specialty.Cleaning, func(o *order.Order) {
		suite.Require().NoError(o.Cancel(customer.ID()))
	}, order.Details{})
	suite.seedOrder(other.ID(), specialty.Plumber, nil, order.Details{})

	// Force distinct created_at values so the ordering is deterministic.
	err := suite.db.Exec("UPDATE orders SET created_at = created_at - interval '1 hour' WHERE id = ?",
		first.ID().String()).Error
	suite.Require().NoError(err)

	query, err := queries.NewListCustomerOrdersQuery(customer.ID())
	suite.Require().NoError(err)

	views, err := queries.NewListCustomerOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(views, 2)
	suite.Equal(second.ID(), views[0].ID)
	suite.Equal("cancelled", views[0].Status)
	suite.Equal(first.ID(), views[1].ID)
}

func (suite *OrderQueriesHandlerTestSuite) TestListSpecialistOrders_ReturnsOnlyAssigned() {
	ctx := context.Background()

	customer := suite.seedAccount("Анна", "", "")
	specialist := suite.seedSpecialist("Пётр", "", "", "santehnik")

	claimed := suite.seedOrder(customer.ID(), specialty.Plumber, func(o *order.Order) {
		suite.Require().NoError(o.Claim(specialist.ID(), specialist.Capabilities()))
	}, order.Details{})
	suite.seedOrder(customer.ID(), specialty.Plumber, nil, order.Details{})

	query, err := queries.NewListSpecialistOrdersQuery(specialist.ID())
	suite.Require().NoError(err)

	views, err := queries.NewListSpecialistOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(views, 1)
	suite.Equal(claimed.ID(), views[0].ID)
	suite.Equal("accepted", views[0].Status)
}

func (suite *OrderQueriesHandlerTestSuite) TestGetAccount_ReturnsProfileWithSpecialties() {
	ctx := context.Background()

	specialist := suite.seedSpecialist("Пётр", "Сидоров", "+79991234567", "santehnik", "elektrik")

	query, err := queries.NewGetAccountQuery(specialist.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetAccountQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(specialist.ID(), view.ID)
	suite.Equal(specialist.Email(), view.Email)
	suite.Equal("Пётр", view.FirstName)
	suite.Equal("Сидоров", view.LastName)
	suite.Equal("+79991234567", view.Phone)
	suite.True(view.IsSpecialist)
	suite.ElementsMatch([]string{"santehnik", "elektrik"}, view.Specialties)
}

func (suite *OrderQueriesHandlerTestSuite) TestListSpecialists_BestRatedFirst() {
	ctx := context.Background()

	suite.seedAccount("Анна", "", "")
	plumber := suite.seedSpecialist("Пётр", "Сидоров", "", "santehnik")
	electrician := suite.seedSpecialist("Олег", "Смирнов", "", "elektrik")
	suite.setRating(plumber.ID(), 4.2)
	suite.setRating(electrician.ID(), 4.9)

	views, err := queries.NewListSpecialistsQueryHandler(suite.db).
		Handle(ctx, queries.NewListSpecialistsQuery(""))
	suite.Require().NoError(err)

	// Plain accounts stay out of the directory.
	suite.Require().Len(views, 2)
	suite.Equal(electrician.ID(), views[0].ID)
	suite.InDelta(4.9, views[0].Rating, 0.001)
	suite.Equal(plumber.ID(), views[1].ID)
	suite.ElementsMatch([]string{"santehnik"}, views[1].Specialties)
}

func (suite *OrderQueriesHandlerTestSuite) TestListSpecialists_FiltersByCity() {
	ctx := context.Background()

	local := suite.seedSpecialist("Пётр", "", "", "santehnik")
	remote := suite.seedSpecialist("Олег", "", "", "elektrik")
	suite.setCity(local.ID(), "Алматы")
	suite.setCity(remote.ID(), "Астана")

	views, err := queries.NewListSpecialistsQueryHandler(suite.db).
		Handle(ctx, queries.NewListSpecialistsQuery("Алматы"))
	suite.Require().NoError(err)

	suite.Require().Len(views, 1)
	suite.Equal(local.ID(), views[0].ID)
	suite.Equal("Алматы", views[0].City)
}

func (suite *OrderQueriesHandlerTestSuite) TestListSpecialists_NoMatches_ReturnsEmptySlice() {
	views, err := queries.NewListSpecialistsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewListSpecialistsQuery("Караганда"))

	suite.Require().NoError(err)
	suite.Empty(views)
}

func (suite *OrderQueriesHandlerTestSuite) TestGetAccount_NonExistent_ReturnsNotFoundError() {
	query, err := queries.NewGetAccountQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetAccountQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// seedAccount persists a plain account and returns the aggregate.
func (suite *OrderQueriesHandlerTestSuite) seedAccount(firstName, lastName, phone string) *account.Account {
	id := kernel.NewUUID()
	email := fmt.Sprintf("user-%s@example.com", id.String()[:8])
	acc, err := account.NewAccount(id, email, account.Profile{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.accountRepo.Add(context.Background(), acc))
	return acc
}

// seedSpecialist persists an account with specialist mode and capabilities.
func (suite *OrderQueriesHandlerTestSuite) seedSpecialist(
	firstName, lastName, phone string, capabilities ...string,
) *account.Account {
	id := kernel.NewUUID()
	email := fmt.Sprintf("spec-%s@example.com", id.String()[:8])
	acc, err := account.NewAccount(id, email, account.Profile{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
	suite.Require().NoError(err)
	acc.SetSpecialistMode(true, specialty.NewSet(capabilities))
	suite.Require().NoError(suite.accountRepo.Add(context.Background(), acc))
	return acc
}

// setRating writes the aggregated rating directly; rating computation itself
// lives outside this service.
func (suite *OrderQueriesHandlerTestSuite) setRating(id kernel.UUID, rating float64) {
	err := suite.db.Exec("UPDATE accounts SET rating = ? WHERE id = ?", rating, id.String()).Error
	suite.Require().NoError(err)
}

// setCity writes the account's city column directly.
func (suite *OrderQueriesHandlerTestSuite) setCity(id kernel.UUID, city string) {
	err := suite.db.Exec("UPDATE accounts SET city = ? WHERE id = ?", city, id.String()).Error
	suite.Require().NoError(err)
}

// seedOrder persists an order for the customer, applying mutate before the insert.
func (suite *OrderQueriesHandlerTestSuite) seedOrder(
	customerID kernel.UUID, id specialty.ID, mutate func(*order.Order), details order.Details,
) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), customerID, id, details)
	suite.Require().NoError(err)
	if mutate != nil {
		mutate(o)
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestOrderQueriesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesHandlerTestSuite))
}
