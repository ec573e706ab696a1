package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "campuseats/internal/adapters/in/http"
	"campuseats/internal/adapters/out/jsonfile"
	"campuseats/internal/adapters/out/postgres"
	"campuseats/internal/adapters/out/postgres/orderrepo"
	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/ports"
	"campuseats/internal/jobs"
	"campuseats/internal/pkg/errs"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the configured storage driver into the application's
// command and query handlers.
type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory
	orderRepo  ports.OrderRepository
}

// NewCompositionRoot builds the object graph for the configured store driver.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	switch config.StoreDriver {
	case StoreDriverFile:
		store, err := jsonfile.NewStore(config.OrdersFile)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("create snapshot store: %w", err)
		}

		return CompositionRoot{
			uowFactory: jsonfile.NewFileUnitOfWorkFactory(store),
			orderRepo:  store,
		}, nil

	case StoreDriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser,
			config.DBPassword, config.DBName, config.DBSslMode)

		gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("connect to postgres: %w", err)
		}

		if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
			return CompositionRoot{}, fmt.Errorf("migrate orders schema: %w", err)
		}

		factory := postgres.NewGormUnitOfWorkFactory(gormDB)
		return CompositionRoot{
			uowFactory: factory,
			orderRepo:  factory.Create().OrderRepository(),
		}, nil

	default:
		return CompositionRoot{}, errs.NewValueIsInvalidErrorWithCause("STORE_DRIVER",
			fmt.Errorf("%q is not a known store driver", config.StoreDriver))
	}
}

// CreateServer builds the HTTP server with every handler wired.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateAcceptOrderByCodeCommandHandler(),
		c.CreateSetOrderStatusCommandHandler(),
		c.CreatePickupOrderCommandHandler(),
		c.CreatePickupOrderByCodeCommandHandler(),
		c.CreateEnsurePickupCodeCommandHandler(),
		c.CreatePurgeOrdersCommandHandler(),
		c.CreateListOrdersQueryHandler(),
	)
}

// CreateJobManager builds the background job manager over the configured
// store's read path.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.orderRepo, logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderByCodeCommandHandler() commands.AcceptOrderByCodeCommandHandler {
	return commands.NewAcceptOrderByCodeCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePickupOrderCommandHandler() commands.PickupOrderCommandHandler {
	return commands.NewPickupOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePickupOrderByCodeCommandHandler() commands.PickupOrderByCodeCommandHandler {
	return commands.NewPickupOrderByCodeCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateEnsurePickupCodeCommandHandler() commands.EnsurePickupCodeCommandHandler {
	return commands.NewEnsurePickupCodeCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePurgeOrdersCommandHandler() commands.PurgeOrdersCommandHandler {
	return commands.NewPurgeOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// FuncOrderUoWFactory adapts a closure to the commands.OrderUoWFactory
// interface, bridging the storage driver's factory into the commands package.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
