package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ceaseletter/internal/adapters/out/postgres/orderrepo"
	"ceaseletter/internal/core/application/usecases/queries"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/letter"
	"ceaseletter/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	orderRepo      *orderrepo.GormOrderRepository
	listHandler    queries.ListOrdersQueryHandler
	exportHandler  queries.ExportOrdersQueryHandler
	metricsHandler queries.GetMetricsQueryHandler
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, nil)
	suite.listHandler = queries.NewListOrdersQueryHandler(db)
	suite.exportHandler = queries.NewExportOrdersQueryHandler(db)
	suite.metricsHandler = queries.NewGetMetricsQueryHandler(db, nil)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) seedOrder(collector string, walk func(o *order.Order)) *order.Order {
	form, msgs := letter.ParseForm(letter.RawForm{
		FullName:      "Jane Roe",
		AddressLine1:  "1 Main St",
		City:          "Austin",
		State:         "TX",
		Zip:           "78701",
		Email:         "jane@example.com",
		PhoneNumber:   "555-0100",
		CollectorName: collector,
	})
	suite.Require().Empty(msgs)

	o, err := order.NewOrder(kernel.NewUUID(), form, "letter body")
	suite.Require().NoError(err)
	if walk != nil {
		walk(o)
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *OrderQueriesTestSuite) TestHandle_DefaultPagination() {
	for i := range 30 {
		suite.seedOrder(fmt.Sprintf("Collector %02d", i), nil)
	}

	query := queries.NewListOrdersQuery("", order.Unknown, 0, 0)
	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Items, queries.DefaultListOrdersLimit)
	suite.Equal(30, result.Total)
	suite.True(result.HasMore)

	query = queries.NewListOrdersQuery("", order.Unknown, 25, 25)
	result, err = suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Items, 5)
	suite.False(result.HasMore)
}

func (suite *OrderQueriesTestSuite) TestHandle_SearchMatchesCollectorCaseInsensitively() {
	suite.seedOrder("Acme Recovery", nil)
	suite.seedOrder("Northstar Collections", nil)

	query := queries.NewListOrdersQuery("acme", order.Unknown, 0, 0)
	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal("Acme Recovery", result.Items[0].CollectorName)
}

func (suite *OrderQueriesTestSuite) TestHandle_SearchTreatsWildcardsAsLiterals() {
	suite.seedOrder("Acme Recovery", nil)
	suite.seedOrder("100% Collections", nil)
	suite.seedOrder("A_B Recovery", nil)
	suite.seedOrder("AcB Recovery", nil)

	// A bare % must match the literal character, not every row.
	query := queries.NewListOrdersQuery("%", order.Unknown, 0, 0)
	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal("100% Collections", result.Items[0].CollectorName)

	// An underscore must not act as a single-character wildcard.
	query = queries.NewListOrdersQuery("A_B", order.Unknown, 0, 0)
	result, err = suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal("A_B Recovery", result.Items[0].CollectorName)
}

func (suite *OrderQueriesTestSuite) TestHandle_StatusFilter() {
	suite.seedOrder("Acme Recovery", nil)
	suite.seedOrder("Acme Recovery", func(o *order.Order) {
		suite.Require().NoError(o.MarkPaid())
	})

	query := queries.NewListOrdersQuery("", order.Paid, 0, 0)
	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal(order.Paid, result.Items[0].Status)
}

func (suite *OrderQueriesTestSuite) TestHandle_NewestFirst() {
	first := suite.seedOrder("Acme Recovery", nil)
	time.Sleep(10 * time.Millisecond)
	second := suite.seedOrder("Acme Recovery", nil)

	query := queries.NewListOrdersQuery("", order.Unknown, 0, 0)
	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 2)
	suite.True(result.Items[0].ID.IsEqual(second.ID()))
	suite.True(result.Items[1].ID.IsEqual(first.ID()))
}

func (suite *OrderQueriesTestSuite) TestExport_RowsMatchHeader() {
	o := suite.seedOrder("Acme Recovery", func(o *order.Order) {
		suite.Require().NoError(o.MarkPaid())
		suite.Require().NoError(o.MarkQueued())
		suite.Require().NoError(o.MarkSent("TRK-7", "ltr-7", "mail-7"))
	})

	records, err := suite.exportHandler.Handle(context.Background(), queries.NewExportOrdersQuery("", order.Unknown))

	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Require().Len(records[0], len(queries.ExportOrdersHeader))
	suite.Equal(o.ID().String(), records[0][0])
	suite.Equal("sent", records[0][1])
	suite.Equal("jane@example.com", records[0][4])
	suite.Equal("Acme Recovery", records[0][5])
	suite.Equal("TRK-7", records[0][6])
}

func (suite *OrderQueriesTestSuite) TestMetrics_CountsByStatus() {
	suite.seedOrder("Acme Recovery", nil)
	suite.seedOrder("Acme Recovery", func(o *order.Order) {
		suite.Require().NoError(o.MarkPaid())
	})
	suite.seedOrder("Acme Recovery", func(o *order.Order) {
		suite.Require().NoError(o.MarkPaid())
	})

	resp, err := suite.metricsHandler.Handle(context.Background(), queries.NewGetMetricsQuery())

	suite.Require().NoError(err)
	suite.Equal(3, resp.Total)
	suite.Equal(3, resp.Today)
	suite.Equal(3, resp.Last7Days)
	suite.Equal(1, resp.ByStatus["created"])
	suite.Equal(2, resp.ByStatus["paid"])
	suite.NotContains(resp.ByStatus, "sent")
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
