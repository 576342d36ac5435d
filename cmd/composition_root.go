package cmd

import (
	"log/slog"

	httpadapter "farmfreight/internal/adapters/in/http"
	"farmfreight/internal/adapters/out/postgres"
	"farmfreight/internal/core/application/usecases/commands"
	"farmfreight/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

// CreateHTTPServer wires every command and query handler into the HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.Commands{
			RegisterAccount:         c.CreateRegisterAccountCommandHandler(),
			AddVehicle:              c.CreateAddVehicleCommandHandler(),
			UpdateVehicle:           c.CreateUpdateVehicleCommandHandler(),
			AssignDriver:            c.CreateAssignDriverCommandHandler(),
			RemoveVehicle:           c.CreateRemoveVehicleCommandHandler(),
			CreateBooking:           c.CreateCreateBookingCommandHandler(),
			CancelBooking:           c.CreateCancelBookingCommandHandler(),
			TransitionBookingStatus: c.CreateTransitionBookingStatusCommandHandler(),
			UploadBill:              c.CreateUploadBillCommandHandler(),
			ConfirmPayment:          c.CreateConfirmPaymentCommandHandler(),
			RateBooking:             c.CreateRateBookingCommandHandler(),
		},
		httpadapter.Queries{
			ListBookings:         c.CreateListBookingsQueryHandler(),
			ListVehicles:         c.CreateListVehiclesQueryHandler(),
			SearchVehicles:       c.CreateSearchVehiclesQueryHandler(),
			GetVehicle:           c.CreateGetVehicleQueryHandler(),
			ListDrivers:          c.CreateListDriversQueryHandler(),
			GetDriverReviews:     c.CreateGetDriverReviewsQueryHandler(),
			GetAccountByUsername: c.CreateGetAccountByUsernameQueryHandler(),
			GetProfile:           c.CreateGetProfileQueryHandler(),
			GetBookingHistory:    c.CreateGetBookingHistoryQueryHandler(),
		},
		c.config.JWTSecret,
	)
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateAddVehicleCommandHandler() commands.AddVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateVehicleCommandHandler() commands.UpdateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRemoveVehicleCommandHandler() commands.RemoveVehicleCommandHandler {
	return commands.NewRemoveVehicleCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCancelBookingCommandHandler() commands.CancelBookingCommandHandler {
	return commands.NewCancelBookingCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateTransitionBookingStatusCommandHandler() commands.TransitionBookingStatusCommandHandler {
	return commands.NewTransitionBookingStatusCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUploadBillCommandHandler() commands.UploadBillCommandHandler {
	return commands.NewUploadBillCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRateBookingCommandHandler() commands.RateBookingCommandHandler {
	return commands.NewRateBookingCommandHandler(c.createUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchVehiclesQueryHandler() queries.SearchVehiclesQueryHandler {
	return queries.NewSearchVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverReviewsQueryHandler() queries.GetDriverReviewsQueryHandler {
	return queries.NewGetDriverReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountByUsernameQueryHandler() queries.GetAccountByUsernameQueryHandler {
	return queries.NewGetAccountByUsernameQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleQueryHandler() queries.GetVehicleQueryHandler {
	return queries.NewGetVehicleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBookingHistoryQueryHandler() queries.GetBookingHistoryQueryHandler {
	return queries.NewGetBookingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
