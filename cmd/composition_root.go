package cmd

import (
	"log/slog"

	"orders/internal/adapters/out/notifier"
	"orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"
	"orders/internal/workers"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
// All dependency construction happens here so the rest of the
// application stays free of wiring concerns.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pubSub     *gochannel.GoChannel
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, pubSub *gochannel.GoChannel, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pubSub:     pubSub,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateOrderCommandHandler(f, c.logger)
	return &handler
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewUpdateOrderStatusCommandHandler(f, c.CreateNotificationPublisher(), c.logger)
	return &handler
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateNotificationPublisher() ports.NotificationPublisher {
	return notifier.NewWatermillNotificationPublisher(c.pubSub)
}

func (c *CompositionRoot) CreateWorkerManager() *workers.WorkerManager {
	return workers.NewWorkerManager(c.pubSub, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
