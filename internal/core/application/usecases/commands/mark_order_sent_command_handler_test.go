package commands_test

import (
	"testing"

	"ceaseletter/internal/core/application/usecases/commands"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewMarkOrderSentCommand_RequiresTracking(t *testing.T) {
	_, err := commands.NewMarkOrderSentCommand(kernel.NewUUID(), "", "ltr-1", "mail-1")
	require.ErrorIs(t, err, commands.ErrTrackingNumberIsRequired)
}

func TestMarkOrderSentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Queued)
	cmd, err := commands.NewMarkOrderSentCommand(stored.ID(), "TRK-9", "ltr-9", "mail-9")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderSentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Sent, stored.Status())
	assert.Equal(t, "TRK-9", stored.TrackingNumber())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOrderSentCommandHandler_Handle_RepeatKeepsOriginalTracking(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Sent) // already carries TRK-1
	cmd, err := commands.NewMarkOrderSentCommand(stored.ID(), "TRK-OTHER", "ltr-2", "mail-2")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderSentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, "TRK-1", stored.TrackingNumber())
}

func TestMarkOrderSentCommandHandler_Handle_FromCreatedRejected(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Created)
	cmd, err := commands.NewMarkOrderSentCommand(stored.ID(), "TRK-9", "", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderSentCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrIllegalTransition)
	assert.Empty(t, stored.TrackingNumber())
}
