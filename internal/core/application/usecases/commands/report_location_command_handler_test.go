package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"servicedesk/internal/core/application/usecases/commands"
	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/order"
	"servicedesk/internal/pkg/errs"
)

func TestReportLocationCommandHandler_Handle_SpecialistChannel(t *testing.T) {
	ctx := t.Context()

	specialistID := kernel.NewUUID()
	testOrder := newClaimedTestOrder(t, specialistID)
	cmd, err := commands.NewReportLocationCommand(testOrder.ID(), specialistID, commands.SpecialistRole, 55.75, 37.61)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateIfStatus", ctx, mock.AnythingOfType("*order.Order"), order.Accepted).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportLocationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testOrder.SpecialistLocation())
	assert.InDelta(t, 55.75, testOrder.SpecialistLocation().Point().Latitude(), 0.001)
	assert.Nil(t, testOrder.CustomerLocation())
	orderRepo.AssertExpectations(t)
}

func TestReportLocationCommandHandler_Handle_OpenOrderInvalidState(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t)
	cmd, err := commands.NewReportLocationCommand(testOrder.ID(), testOrder.Customer(), commands.CustomerRole, 43.23, 76.88)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportLocationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportLocationCommandHandler_Handle_WrongActorForbidden(t *testing.T) {
	ctx := t.Context()

	specialistID := kernel.NewUUID()
	testOrder := newClaimedTestOrder(t, specialistID)

	// Customer may not write to the specialist channel.
	cmd, err := commands.NewReportLocationCommand(testOrder.ID(), testOrder.Customer(), commands.SpecialistRole, 55.75, 37.61)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportLocationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrActorIsForbidden)
	assert.Nil(t, testOrder.SpecialistLocation())
}
