package cmd

import (
	"time"

	"gorm.io/gorm"

	httpin "servicedesk/internal/adapters/in/http"
	"servicedesk/internal/adapters/out/postgres"
	"servicedesk/internal/core/application/usecases/commands"
	"servicedesk/internal/core/application/usecases/queries"
	"servicedesk/internal/core/ports"
)

// CompositionRoot wires the unit of work factory, the identity provider and
// the use case handlers together. Each Create method returns a fresh handler
// over the shared factory.
type CompositionRoot struct {
	gormDB           *gorm.DB
	uowFactory       postgres.GormUnitOfWorkFactory
	identityProvider ports.IdentityProvider
	tokenTTL         time.Duration
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	identityProvider ports.IdentityProvider,
	tokenTTL time.Duration,
) CompositionRoot {
	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		identityProvider: identityProvider,
		tokenTTL:         tokenTTL,
	}
}

// UnitOfWorkFactory exposes the factory for consumers outside the use case
// layer, such as the auth middleware.
func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return &c.uowFactory
}

// IdentityProvider exposes the OAuth provider so the HTTP server can build
// the consent page redirect.
func (c *CompositionRoot) IdentityProvider() ports.IdentityProvider {
	return c.identityProvider
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseOrderCommandHandler() commands.ReleaseOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReportLocationCommandHandler() commands.ReportLocationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateSetSpecialistProfileCommandHandler() commands.SetSpecialistProfileCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetSpecialistProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateSignInCommandHandler() commands.SignInCommandHandler {
	var f commands.AuthUoWFactory = FuncAuthUoWFactory(func() commands.AuthUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignInCommandHandler(f, c.identityProvider, c.tokenTTL)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	var f commands.TokenUoWFactory = FuncTokenUoWFactory(func() commands.TokenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogoutCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeExpiredTokensCommandHandler() commands.PurgeExpiredTokensCommandHandler {
	var f commands.TokenUoWFactory = FuncTokenUoWFactory(func() commands.TokenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeExpiredTokensCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOpenOrdersQueryHandler() queries.ListOpenOrdersQueryHandler {
	return queries.NewListOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListSpecialistOrdersQueryHandler() queries.ListSpecialistOrdersQueryHandler {
	return queries.NewListSpecialistOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListSpecialistsQueryHandler() queries.ListSpecialistsQueryHandler {
	return queries.NewListSpecialistsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every handler the HTTP server dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		ClaimOrder:           c.CreateClaimOrderCommandHandler(),
		ReleaseOrder:         c.CreateReleaseOrderCommandHandler(),
		StartOrder:           c.CreateStartOrderCommandHandler(),
		CompleteOrder:        c.CreateCompleteOrderCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		ReportLocation:       c.CreateReportLocationCommandHandler(),
		UpdateProfile:        c.CreateUpdateProfileCommandHandler(),
		SetSpecialistProfile: c.CreateSetSpecialistProfileCommandHandler(),
		SignIn:               c.CreateSignInCommandHandler(),
		Logout:               c.CreateLogoutCommandHandler(),

		GetOrder:             c.CreateGetOrderQueryHandler(),
		ListOpenOrders:       c.CreateListOpenOrdersQueryHandler(),
		ListCustomerOrders:   c.CreateListCustomerOrdersQueryHandler(),
		ListSpecialistOrders: c.CreateListSpecialistOrdersQueryHandler(),
		GetAccount:           c.CreateGetAccountQueryHandler(),
		ListSpecialists:      c.CreateListSpecialistsQueryHandler(),
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncTokenUoWFactory func() commands.TokenUoW

func (f FuncTokenUoWFactory) Create() commands.TokenUoW {
	return f()
}

type FuncClaimUoWFactory func() commands.ClaimUoW

func (f FuncClaimUoWFactory) Create() commands.ClaimUoW {
	return f()
}

type FuncAuthUoWFactory func() commands.AuthUoW

func (f FuncAuthUoWFactory) Create() commands.AuthUoW {
	return f()
}
