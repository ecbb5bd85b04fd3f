package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/assignment"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// openSession seeds the store with a pending assignment for the shipment.
func openSession(
	t *testing.T,
	sessions *assignment.SessionStore,
	shp *shipment.Shipment,
	operator kernel.UUID,
) assignment.PendingAssignment {
	t.Helper()

	pending, err := assignment.NewPendingAssignment(
		shp.ID(), shp.Barcode(), shp.PieceOrdinals(), 1, operator, time.Now())
	require.NoError(t, err)
	require.NoError(t, sessions.Put(pending))
	return pending
}

func TestScanRackCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shp := confirmedShipment(t, 3)
	operator := kernel.NewUUID()
	cmd, err := commands.NewScanRackCommand(operator, "RACK_A_01_02")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once(),
		repo.On("FindActiveOccupant", mock.Anything, cmd.RackID()).
			Return(nil, errs.NewObjectNotFoundError("rackId", cmd.RackID())).Once(),
		repo.On("Update", mock.Anything, shp).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	sessions := assignment.NewSessionStore(5 * time.Minute)
	openSession(t, sessions, shp, operator)

	h := commands.NewScanRackCommandHandler(factory, sessions, testRackMap(t))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Len(t, shp.Locations(), 3, "every piece placed")
	require.NotNil(t, shp.PrimaryRack())
	assert.True(t, shp.PrimaryRack().IsEqual(cmd.RackID()))

	_, ok := sessions.Get(operator, time.Now())
	assert.False(t, ok, "session cleared after commit")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestScanRackCommandHandler_Handle_NoPendingAssignment(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewScanRackCommand(kernel.NewUUID(), "RACK_A_01_02")
	require.NoError(t, err)

	factory := new(MockShipmentUoWFactory)
	sessions := assignment.NewSessionStore(5 * time.Minute)

	h := commands.NewScanRackCommandHandler(factory, sessions, testRackMap(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNoPendingAssignment)
	factory.AssertNotCalled(t, "Create")
}

func TestScanRackCommandHandler_Handle_UnknownRackPreservesSession(t *testing.T) {
	ctx := t.Context()
	shp := confirmedShipment(t, 3)
	operator := kernel.NewUUID()
	cmd, err := commands.NewScanRackCommand(operator, "RACK_Z_09_09")
	require.NoError(t, err)

	factory := new(MockShipmentUoWFactory)
	sessions := assignment.NewSessionStore(5 * time.Minute)
	openSession(t, sessions, shp, operator)

	h := commands.NewScanRackCommandHandler(factory, sessions, testRackMap(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, ok := sessions.Get(operator, time.Now())
	assert.True(t, ok, "session survives an unknown rack")
	factory.AssertNotCalled(t, "Create")
}

func TestScanRackCommandHandler_Handle_RackOccupiedPreservesSession(t *testing.T) {
	ctx := t.Context()
	shp := confirmedShipment(t, 3)
	occupant := confirmedShipment(t, 1)
	operator := kernel.NewUUID()
	cmd, err := commands.NewScanRackCommand(operator, "RACK_A_01_02")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once(),
		repo.On("FindActiveOccupant", mock.Anything, cmd.RackID()).Return(occupant, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	sessions := assignment.NewSessionStore(5 * time.Minute)
	openSession(t, sessions, shp, operator)

	h := commands.NewScanRackCommandHandler(factory, sessions, testRackMap(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrRackOccupied)

	assert.Empty(t, shp.Locations(), "no slot mutation")

	_, ok := sessions.Get(operator, time.Now())
	assert.True(t, ok, "session survives for a retry on another rack")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestScanRackCommandHandler_Handle_LostRaceMapsToRackOccupied(t *testing.T) {
	ctx := t.Context()
	shp := confirmedShipment(t, 2)
	operator := kernel.NewUUID()
	cmd, err := commands.NewScanRackCommand(operator, "RACK_A_01_02")
	require.NoError(t, err)

	// The occupancy read sees a free rack, but a concurrent commit wins it
	// before the write lands.
	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once(),
		repo.On("FindActiveOccupant", mock.Anything, cmd.RackID()).
			Return(nil, errs.NewObjectNotFoundError("rackId", cmd.RackID())).Once(),
		repo.On("Update", mock.Anything, shp).Return(ports.ErrRackConflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	sessions := assignment.NewSessionStore(5 * time.Minute)
	openSession(t, sessions, shp, operator)

	h := commands.NewScanRackCommandHandler(factory, sessions, testRackMap(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrRackOccupied)

	_, ok := sessions.Get(operator, time.Now())
	assert.True(t, ok, "session survives for a retry on another rack")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestScanRackCommandHandler_Handle_SameShipmentOccupantCommits(t *testing.T) {
	ctx := t.Context()
	shp := confirmedShipment(t, 2)
	operator := kernel.NewUUID()
	cmd, err := commands.NewScanRackCommand(operator, "RACK_A_01_02")
	require.NoError(t, err)

	// Shipment already holds the rack from an earlier scan; re-committing
	// the same pair is idempotent.
	require.NoError(t, shp.AssignPieces(cmd.RackID(), []int{1, 2}, operator, time.Now()))

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once(),
		repo.On("FindActiveOccupant", mock.Anything, cmd.RackID()).Return(shp, nil).Once(),
		repo.On("Update", mock.Anything, shp).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	sessions := assignment.NewSessionStore(5 * time.Minute)
	openSession(t, sessions, shp, operator)

	h := commands.NewScanRackCommandHandler(factory, sessions, testRackMap(t))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Len(t, shp.Locations(), 2, "one entry per ordinal")
	repo.AssertExpectations(t)
}

func TestScanRackCommandHandler_Handle_ReleasedSinceScanClearsSession(t *testing.T) {
	ctx := t.Context()
	shp := confirmedShipment(t, 3)
	operator := kernel.NewUUID()
	cmd, err := commands.NewScanRackCommand(operator, "RACK_A_01_02")
	require.NoError(t, err)

	sessions := assignment.NewSessionStore(5 * time.Minute)
	openSession(t, sessions, shp, operator)

	require.NoError(t, shp.Release(time.Now(), kernel.NewMoneyFromCents(0)))

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, shp.ID()).Return(shp, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScanRackCommandHandler(factory, sessions, testRackMap(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, shipment.ErrShipmentNotAssignable)

	_, ok := sessions.Get(operator, time.Now())
	assert.False(t, ok, "stale session ends with the shipment")
	repo.AssertExpectations(t)
}
