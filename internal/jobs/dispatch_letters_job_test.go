package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ceaseletter/internal/core/application/usecases/commands"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/letter"
	"ceaseletter/internal/core/domain/model/order"
	"ceaseletter/internal/core/ports"
	"ceaseletter/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockMailCarrier struct{ mock.Mock }

func (m *MockMailCarrier) SendLetter(ctx context.Context, req ports.DispatchRequest) (ports.LetterDispatch, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.LetterDispatch), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func queuedOrder(t *testing.T) *order.Order {
	t.Helper()
	form, msgs := letter.ParseForm(letter.RawForm{
		FullName:      "Jane Roe",
		AddressLine1:  "1 Main St",
		City:          "Austin",
		State:         "TX",
		Zip:           "78701",
		Email:         "jane@example.com",
		PhoneNumber:   "555-0100",
		CollectorName: "Acme Recovery",
	})
	require.Empty(t, msgs)

	o, err := order.NewOrder(kernel.NewUUID(), form, "letter body")
	require.NoError(t, err)
	require.NoError(t, o.MarkPaid())
	require.NoError(t, o.MarkQueued())
	return o
}

// writeChain wires a mock unit of work that loads stored and accepts the
// update. Context matchers are loose: the job runs handlers on a derived
// errgroup context.
func writeChain(stored *order.Order) (*MockOrderUoWFactory, *MockOrderUoW, *MockOrderRepository) {
	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, stored).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatchLettersJob_DispatchPending_MarksOrderSent(t *testing.T) {
	stored := queuedOrder(t)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAllInStatus", mock.Anything, order.Queued).
		Return([]*order.Order{stored}, nil).Once()

	carrier := new(MockMailCarrier)
	carrier.On("SendLetter", mock.Anything, mock.MatchedBy(func(req ports.DispatchRequest) bool {
		return req.OrderID.IsEqual(stored.ID()) && req.LetterText == "letter body"
	})).Return(ports.LetterDispatch{
		TrackingNumber: "TRK-5",
		LetterID:       "ltr-5",
		MailingID:      "mail-5",
	}, nil).Once()

	sentFactory, uow, repo := writeChain(stored)
	failFactory := new(MockOrderUoWFactory)

	job := jobs.NewDispatchLettersJob(
		orderRepo,
		carrier,
		commands.NewMarkOrderSentCommandHandler(sentFactory),
		commands.NewFailOrderCommandHandler(failFactory),
		discardLogger(),
	)

	require.NoError(t, job.DispatchPending(t.Context()))
	assert.Equal(t, order.Sent, stored.Status())
	assert.Equal(t, "TRK-5", stored.TrackingNumber())
	carrier.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	failFactory.AssertNotCalled(t, "Create")
}

func TestDispatchLettersJob_DispatchPending_CarrierFailureFailsOrder(t *testing.T) {
	stored := queuedOrder(t)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAllInStatus", mock.Anything, order.Queued).
		Return([]*order.Order{stored}, nil).Once()

	carrier := new(MockMailCarrier)
	carrier.On("SendLetter", mock.Anything, mock.Anything).
		Return(ports.LetterDispatch{}, errors.New("address is undeliverable")).Once()

	failFactory, uow, repo := writeChain(stored)
	sentFactory := new(MockOrderUoWFactory)

	job := jobs.NewDispatchLettersJob(
		orderRepo,
		carrier,
		commands.NewMarkOrderSentCommandHandler(sentFactory),
		commands.NewFailOrderCommandHandler(failFactory),
		discardLogger(),
	)

	require.NoError(t, job.DispatchPending(t.Context()))
	assert.Equal(t, order.Failed, stored.Status())
	assert.Equal(t, "address is undeliverable", stored.LastError())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	sentFactory.AssertNotCalled(t, "Create")
}

func TestDispatchLettersJob_DispatchPending_EmptyQueue(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAllInStatus", mock.Anything, order.Queued).
		Return([]*order.Order{}, nil).Once()

	carrier := new(MockMailCarrier)

	job := jobs.NewDispatchLettersJob(
		orderRepo,
		carrier,
		commands.NewMarkOrderSentCommandHandler(new(MockOrderUoWFactory)),
		commands.NewFailOrderCommandHandler(new(MockOrderUoWFactory)),
		discardLogger(),
	)

	require.NoError(t, job.DispatchPending(t.Context()))
	carrier.AssertNotCalled(t, "SendLetter")
}

func TestDispatchLettersJob_DispatchPending_RepoError(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAllInStatus", mock.Anything, order.Queued).
		Return(nil, errors.New("connection refused")).Once()

	job := jobs.NewDispatchLettersJob(
		orderRepo,
		new(MockMailCarrier),
		commands.NewMarkOrderSentCommandHandler(new(MockOrderUoWFactory)),
		commands.NewFailOrderCommandHandler(new(MockOrderUoWFactory)),
		discardLogger(),
	)

	require.Error(t, job.DispatchPending(t.Context()))
}
