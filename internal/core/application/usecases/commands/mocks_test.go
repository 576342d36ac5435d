package commands_test

import (
	"context"
	"time"

	"farmfreight/internal/core/application/usecases/commands"
	"farmfreight/internal/core/domain/model/account"
	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/core/domain/model/vehicle"
	"farmfreight/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetActiveByVehicle(
	ctx context.Context, vehicleID kernel.UUID,
) ([]*booking.Booking, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockVehicleUoW struct{ mock.Mock }

func (m *MockVehicleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

// Test fixtures shared by the handler tests.

func newPrincipal(role auth.Role) auth.Principal {
	p, err := auth.NewPrincipal(kernel.NewUUID(), role)
	if err != nil {
		panic(err)
	}
	return p
}

func newTestVehicle(ownerID kernel.UUID, driverID *kernel.UUID) *vehicle.Vehicle {
	capacity, err := vehicle.NewCapacity(1000, 8)
	if err != nil {
		panic(err)
	}
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(), ownerID, "KA01AB1234", vehicle.TypeTruck,
		capacity, []string{"Hosur", "Bengaluru"}, "10 per kg", 200)
	if err != nil {
		panic(err)
	}
	if driverID != nil {
		if err = v.AssignDriver(*driverID); err != nil {
			panic(err)
		}
	}
	return v
}

func newPendingBooking(farmerID kernel.UUID, vehicleID kernel.UUID, ownerID kernel.UUID) *booking.Booking {
	b, err := booking.NewBooking(
		kernel.NewUUID(), farmerID, vehicleID, "tomatoes", 600, 0,
		"Hosur farm", "KR Market", time.Now(), 200, ownerID)
	if err != nil {
		panic(err)
	}
	return b
}

func newPendingMarketBooking(farmerID kernel.UUID, vehicleID kernel.UUID) *booking.Booking {
	b, err := booking.RestoreBooking(
		kernel.NewUUID(), farmerID, vehicleID, "tomatoes", 600, 0,
		"Hosur farm", "KR Market", time.Now(), nil, booking.StatusPendingMarket, nil,
		false, false, false, nil, nil, nil)
	if err != nil {
		panic(err)
	}
	return b
}

func newCompletedBooking(farmerID kernel.UUID, vehicleID kernel.UUID, driverID kernel.UUID) *booking.Booking {
	settlement, err := booking.NewSettlement(1790, 0, "Owner/driver pays farmer ₹1790")
	if err != nil {
		panic(err)
	}
	bill, err := booking.NewBill(2000, "bills/2000.jpg", driverID, time.Now(), 200, "10 per kg", settlement)
	if err != nil {
		panic(err)
	}
	deliveredAt := time.Now()
	b, err := booking.RestoreBooking(
		kernel.NewUUID(), farmerID, vehicleID, "tomatoes", 600, 0,
		"Hosur farm", "KR Market", time.Now(), nil, booking.StatusCompleted, &bill,
		true, true, true, nil, &deliveredAt, nil)
	if err != nil {
		panic(err)
	}
	return b
}

func newPendingPaymentBooking(
	farmerID kernel.UUID, vehicleID kernel.UUID, driverID kernel.UUID, driverConfirmed bool,
) *booking.Booking {
	settlement, err := booking.NewSettlement(1790, 0, "Owner/driver pays farmer ₹1790")
	if err != nil {
		panic(err)
	}
	bill, err := booking.NewBill(2000, "bills/2000.jpg", driverID, time.Now(), 200, "10 per kg", settlement)
	if err != nil {
		panic(err)
	}
	b, err := booking.RestoreBooking(
		kernel.NewUUID(), farmerID, vehicleID, "tomatoes", 600, 0,
		"Hosur farm", "KR Market", time.Now(), nil, booking.StatusPendingPayment, &bill,
		driverConfirmed, false, false, nil, nil, nil)
	if err != nil {
		panic(err)
	}
	return b
}
