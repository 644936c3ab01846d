package cmd

import (
	adapterhttp "ceaseletter/internal/adapters/in/http"
	"ceaseletter/internal/adapters/out/lob"
	"ceaseletter/internal/adapters/out/postgres"
	"ceaseletter/internal/adapters/out/postgres/blogrepo"
	"ceaseletter/internal/adapters/out/postgres/orderrepo"
	"ceaseletter/internal/core/application/usecases/commands"
	"ceaseletter/internal/core/application/usecases/queries"
	"ceaseletter/internal/core/domain/services"
	"ceaseletter/internal/core/ports"
	"ceaseletter/internal/jobs"

	"log/slog"
	"os"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use cases. In dev mode the Lob client
// is replaced with the instant-success dev carrier so the full lifecycle
// works without a Lob account.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	carrier    ports.MailCarrier
	verifier   ports.AddressVerifier
	sessions   *adapterhttp.SessionManager
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	var carrier ports.MailCarrier
	var verifier ports.AddressVerifier
	if config.DevMode {
		dev := lob.NewDevCarrier()
		carrier, verifier = dev, dev
	} else {
		client := lob.NewClient(config.LobAPIKey)
		carrier, verifier = client, client
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		carrier:    carrier,
		verifier:   verifier,
		sessions:   adapterhttp.NewSessionManager(config.AdminSessionSecret, config.AdminPassword, nil),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) blogUoWFactory() commands.BlogUoWFactory {
	return FuncBlogUoWFactory(func() commands.BlogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, nil)
}

func (c *CompositionRoot) blogPostRepository() ports.BlogPostRepository {
	return blogrepo.NewGormBlogPostRepository(c.gormDB, nil)
}

// CreateServer assembles the HTTP server with every command and query
// handler wired to the shared unit of work factory.
func (c *CompositionRoot) CreateServer() *adapterhttp.Server {
	return adapterhttp.NewServer(adapterhttp.ServerDeps{
		CreateOrderHandler:       commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		ChangeOrderStatusHandler: commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory()),
		MarkOrderSentHandler:     commands.NewMarkOrderSentCommandHandler(c.orderUoWFactory()),
		FailOrderHandler:         commands.NewFailOrderCommandHandler(c.orderUoWFactory()),
		CancelOrderHandler:       commands.NewCancelOrderCommandHandler(c.orderUoWFactory()),
		UpdateOrderHandler:       commands.NewUpdateOrderCommandHandler(c.orderUoWFactory()),
		ResendOrderHandler:       commands.NewResendOrderCommandHandler(c.orderUoWFactory()),
		CreateBlogPostHandler:    commands.NewCreateBlogPostCommandHandler(c.blogUoWFactory()),
		UpdateBlogPostHandler:    commands.NewUpdateBlogPostCommandHandler(c.blogUoWFactory()),
		SetBlogPostStatusHandler: commands.NewSetBlogPostStatusCommandHandler(c.blogUoWFactory()),
		DeleteBlogPostHandler:    commands.NewDeleteBlogPostCommandHandler(c.blogUoWFactory()),

		ListOrdersHandler:         queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrderHandler:           queries.NewGetOrderQueryHandler(c.orderRepository()),
		ExportOrdersHandler:       queries.NewExportOrdersQueryHandler(c.gormDB),
		GetMetricsHandler:         queries.NewGetMetricsQueryHandler(c.gormDB, nil),
		ListBlogPostsHandler:      queries.NewListBlogPostsQueryHandler(c.gormDB),
		ListPublishedPostsHandler: queries.NewListPublishedPostsQueryHandler(c.gormDB),
		GetBlogPostHandler:        queries.NewGetBlogPostQueryHandler(c.blogPostRepository()),

		Renderer: services.NewLetterRenderer(nil),
		Carrier:  c.carrier,
		Verifier: c.verifier,
		Sessions: c.sessions,
	})
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.orderRepository(),
		c.carrier,
		commands.NewMarkOrderSentCommandHandler(c.orderUoWFactory()),
		commands.NewFailOrderCommandHandler(c.orderUoWFactory()),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBlogUoWFactory func() commands.BlogUoW

func (f FuncBlogUoWFactory) Create() commands.BlogUoW {
	return f()
}
