package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/ports"
)

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand("Acme Logistics", "Jane Smith", 12.5, 3, "")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	barcode, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.NoError(t, barcode.Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_RetriesOnBarcodeConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand("Acme Logistics", "Jane Smith", 12.5, 3, "")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Times(2)
	uow.On("ShipmentRepository").Return(repo).Times(2)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
		Return(ports.ErrBarcodeConflict).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(2)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	h := commands.NewCreateShipmentCommandHandler(factory)
	barcode, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.NoError(t, barcode.Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_AttemptsExhausted(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand("Acme Logistics", "Jane Smith", 12.5, 3, "")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Times(7)
	uow.On("ShipmentRepository").Return(repo).Times(7)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
		Return(ports.ErrBarcodeConflict).Times(7)
	uow.On("Rollback", ctx).Return(nil).Times(7)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Times(7)

	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrBarcodeAttemptsExhausted)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockShipmentUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory)

	_, err := h.Handle(ctx, commands.CreateShipmentCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand("Acme Logistics", "Jane Smith", 12.5, 3, "")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.NotErrorIs(t, err, commands.ErrBarcodeAttemptsExhausted)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
