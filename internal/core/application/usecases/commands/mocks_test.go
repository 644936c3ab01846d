package commands_test

import (
	"context"
	"testing"

	"ceaseletter/internal/core/application/usecases/commands"
	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/letter"
	"ceaseletter/internal/core/domain/model/order"
	"ceaseletter/internal/core/ports"

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

type MockBlogPostRepository struct{ mock.Mock }

func (m *MockBlogPostRepository) Add(ctx context.Context, p *blogpost.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockBlogPostRepository) Update(ctx context.Context, p *blogpost.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockBlogPostRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogPostRepository) Get(ctx context.Context, id kernel.UUID) (*blogpost.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blogpost.Post), args.Error(1)
}

func (m *MockBlogPostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*blogpost.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blogpost.Post), args.Error(1)
}

func (m *MockBlogPostRepository) IsSlugTaken(ctx context.Context, slug string, excludeID kernel.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockBlogUoW struct{ mock.Mock }

func (m *MockBlogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBlogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBlogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBlogUoW) BlogPostRepository() ports.BlogPostRepository {
	args := m.Called()
	return args.Get(0).(ports.BlogPostRepository)
}

type MockBlogUoWFactory struct{ mock.Mock }

func (m *MockBlogUoWFactory) Create() commands.BlogUoW {
	args := m.Called()
	return args.Get(0).(commands.BlogUoW)
}

func testForm(t *testing.T) letter.Form {
	t.Helper()
	form, msgs := letter.ParseForm(letter.RawForm{
		FullName:      "Jane Roe",
		AddressLine1:  "1 Main St",
		City:          "Austin",
		State:         "tx",
		Zip:           "78701",
		Email:         "jane@example.com",
		PhoneNumber:   "555-0100",
		CollectorName: "Acme Recovery",
	})
	require.Empty(t, msgs)
	return form
}

// storedOrder builds an order that has already been walked to the given
// status, as it would come back from the repository.
func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), testForm(t), "letter body")
	require.NoError(t, err)

	walk := map[order.Status][]func() error{
		order.Created: {},
		order.Paid:    {o.MarkPaid},
		order.Queued:  {o.MarkPaid, o.MarkQueued},
		order.Sent: {o.MarkPaid, o.MarkQueued, func() error {
			return o.MarkSent("TRK-1", "ltr-1", "mail-1")
		}},
		order.Delivered: {o.MarkPaid, o.MarkQueued, func() error {
			return o.MarkSent("TRK-1", "ltr-1", "mail-1")
		}, o.MarkDelivered},
		order.Canceled: {func() error { return o.Cancel("test") }},
		order.Failed: {o.MarkPaid, o.MarkQueued, func() error {
			return o.Fail("carrier rejected")
		}},
	}

	steps, ok := walk[status]
	require.True(t, ok, "unsupported status %s", status)
	for _, step := range steps {
		require.NoError(t, step())
	}
	require.Equal(t, status, o.Status())
	return o
}
