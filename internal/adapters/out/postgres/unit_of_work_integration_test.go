package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "farmfreight/internal/adapters/out/postgres"
	"farmfreight/internal/adapters/out/postgres/accountrepo"
	"farmfreight/internal/adapters/out/postgres/bookingrepo"
	"farmfreight/internal/adapters/out/postgres/vehiclerepo"
	"farmfreight/internal/core/domain/model/account"
	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/core/domain/model/vehicle"
	"farmfreight/internal/core/domain/services"
	"farmfreight/internal/core/ports"
	"farmfreight/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&accountrepo.AccountDTO{}, &accountrepo.ReviewDTO{},
		&vehiclerepo.VehicleDTO{}, &vehiclerepo.BookingRefDTO{},
		&bookingrepo.BookingDTO{}, &bookingrepo.HistoryEntryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE accounts, reviews, vehicles, booking_refs, bookings, booking_history").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.AccountRepository())
	suite.NotNil(uow1.VehicleRepository())
	suite.NotNil(uow1.BookingRepository())
	suite.NotNil(uow2.BookingRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// repeated Begin must not open a nested transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	owner := createTestAccount(auth.RoleOwner, "rollback-owner")
	testVehicle := createTestVehicle(owner.ID(), "KA05RB0001")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.AccountRepository().Add(ctx, owner)
	suite.Require().NoError(err)
	err = uow.VehicleRepository().Add(ctx, testVehicle)
	suite.Require().NoError(err)

	_, err = uow.VehicleRepository().Get(ctx, testVehicle.ID())
	suite.Require().NoError(err, "Vehicle should be visible inside the transaction")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.VehicleRepository().Get(ctx, testVehicle.ID())
	suite.Require().Error(err, "Vehicle should not exist after rollback")
	_, err = newUow.AccountRepository().Get(ctx, owner.ID())
	suite.Require().Error(err, "Account should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateUsernameSurfacesAsDuplicateKey() {
	ctx := context.Background()
	uow := suite.factory.Create()

	first := createTestAccount(auth.RoleFarmer, "ravi")
	err := uow.AccountRepository().Add(ctx, first)
	suite.Require().NoError(err)

	second := createTestAccount(auth.RoleFarmer, "ravi")
	err = uow.AccountRepository().Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrDuplicateKey)
}

// TestUnitOfWork_BookingWorkflow runs the full lifecycle in transactional
// steps: reserve capacity, move through transit, upload the bill, confirm
// payments from both sides, rate, and fan the reviews out.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_BookingWorkflow() {
	ctx := context.Background()
	now := time.Now()

	farmer := createTestAccount(auth.RoleFarmer, "wf-farmer")
	owner := createTestAccount(auth.RoleOwner, "wf-owner")
	driver := createTestAccount(auth.RoleDriver, "wf-driver")

	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.AccountRepository().Add(ctx, farmer))
	suite.Require().NoError(setupUow.AccountRepository().Add(ctx, owner))
	suite.Require().NoError(setupUow.AccountRepository().Add(ctx, driver))

	testVehicle := createTestVehicle(owner.ID(), "KA05WF0001")
	suite.Require().NoError(testVehicle.AssignDriver(driver.ID()))
	suite.Require().NoError(setupUow.VehicleRepository().Add(ctx, testVehicle))

	// Step 1: booking creation reserves 600 of 1000 kg
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	bookedVehicle, err := uow.VehicleRepository().GetForUpdate(ctx, testVehicle.ID())
	suite.Require().NoError(err)

	newBooking, err := booking.NewBooking(
		kernel.NewUUID(), farmer.ID(), bookedVehicle.ID(), "tomatoes", 600, 0,
		"Hosur farm", "KR Market", now, bookedVehicle.Advance(), bookedVehicle.OwnerID())
	suite.Require().NoError(err)
	suite.Require().NoError(bookedVehicle.Reserve(newBooking.ID(), newBooking.RequiredWeight()))

	suite.Require().NoError(uow.BookingRepository().Add(ctx, newBooking))
	suite.Require().NoError(uow.VehicleRepository().Update(ctx, bookedVehicle))
	suite.Require().NoError(uow.Commit(ctx))

	checkVehicle, err := suite.factory.Create().VehicleRepository().Get(ctx, testVehicle.ID())
	suite.Require().NoError(err)
	suite.InDelta(400, checkVehicle.Remaining(), 0.001)
	suite.True(checkVehicle.HasBooking(newBooking.ID()))

	// Step 2: driver moves the booking through transit
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	inTransit, err := uow.BookingRepository().GetForUpdate(ctx, newBooking.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(inTransit.RequestTransition(booking.StatusBringing, driver.ID(), now))
	suite.Require().NoError(inTransit.RequestTransition(booking.StatusPendingMarket, driver.ID(), now))
	suite.Require().NoError(uow.BookingRepository().Update(ctx, inTransit))
	suite.Require().NoError(uow.Commit(ctx))

	// Step 3: bill upload computes the settlement once
	calculator := services.NewSettlementCalculator()
	settlement, err := calculator.Calculate(2000, checkVehicle.Advance(), checkVehicle.Rent())
	suite.Require().NoError(err)
	suite.InDelta(1790, settlement.FarmerGets(), 0.001)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	billed, err := uow.BookingRepository().GetForUpdate(ctx, newBooking.ID())
	suite.Require().NoError(err)

	bill, err := booking.NewBill(
		2000, "bills/wf.jpg", driver.ID(), now, checkVehicle.Advance(), checkVehicle.Rent(), settlement)
	suite.Require().NoError(err)
	suite.Require().NoError(billed.AttachBill(bill, now))
	suite.Require().NoError(uow.BookingRepository().Update(ctx, billed))
	suite.Require().NoError(uow.Commit(ctx))

	// Step 4: both parties confirm, booking completes
	for _, confirmer := range []struct {
		role auth.Role
		id   kernel.UUID
	}{
		{auth.RoleDriver, driver.ID()},
		{auth.RoleOwner, owner.ID()},
	} {
		uow = suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))
		confirming, getErr := uow.BookingRepository().GetForUpdate(ctx, newBooking.ID())
		suite.Require().NoError(getErr)
		_, confirmErr := confirming.ConfirmPayment(confirmer.role, confirmer.id, now)
		suite.Require().NoError(confirmErr)
		suite.Require().NoError(uow.BookingRepository().Update(ctx, confirming))
		suite.Require().NoError(uow.Commit(ctx))
	}

	completed, err := suite.factory.Create().BookingRepository().Get(ctx, newBooking.ID())
	suite.Require().NoError(err)
	suite.Equal(booking.StatusCompleted, completed.Status())
	suite.True(completed.ReadyForRating())
	suite.NotNil(completed.DeliveryDate())
	suite.Require().NotNil(completed.Bill())
	suite.InDelta(1790, completed.Bill().Settlement().FarmerGets(), 0.001)
	suite.Equal("Owner/driver pays farmer ₹1790", completed.Bill().Settlement().Message())

	// history carries the full trail in order
	actions := make([]string, 0, len(completed.History()))
	for _, entry := range completed.History() {
		actions = append(actions, entry.Action())
	}
	suite.Equal([]string{
		booking.ActionBookingCreated,
		"status updated to bringing",
		"status updated to pending_market",
		booking.ActionBillUploaded,
		booking.ActionDriverConfirmed,
		booking.ActionOwnerConfirmed,
		booking.ActionBookingCompleted,
	}, actions)

	// Step 5: rating and review fan-out
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	rated, err := uow.BookingRepository().GetForUpdate(ctx, newBooking.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(rated.Rate(5, 4, "smooth trip", now))
	suite.Require().NoError(uow.BookingRepository().Update(ctx, rated))

	driverAccount, err := uow.AccountRepository().Get(ctx, driver.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(driverAccount.AddReview(farmer.ID(), 5, "smooth trip", now))
	suite.Require().NoError(uow.AccountRepository().Update(ctx, driverAccount))
	suite.Require().NoError(uow.Commit(ctx))

	reviewed, err := suite.factory.Create().AccountRepository().Get(ctx, driver.ID())
	suite.Require().NoError(err)
	suite.Equal(1, reviewed.ReviewCount())
	suite.InDelta(5, reviewed.AverageRating(), 0.001)

	finalBooking, err := suite.factory.Create().BookingRepository().Get(ctx, newBooking.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(finalBooking.Rating())
	suite.Equal(5, finalBooking.Rating().DriverRating())
	suite.Equal(4, finalBooking.Rating().OwnerRating())
	suite.False(finalBooking.ReadyForRating())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CancellationReleasesCapacity() {
	ctx := context.Background()
	now := time.Now()

	owner := createTestAccount(auth.RoleOwner, "cancel-owner")
	farmer := createTestAccount(auth.RoleFarmer, "cancel-farmer")
	testVehicle := createTestVehicle(owner.ID(), "KA05CN0001")

	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.AccountRepository().Add(ctx, owner))
	suite.Require().NoError(setupUow.AccountRepository().Add(ctx, farmer))

	pending, err := booking.NewBooking(
		kernel.NewUUID(), farmer.ID(), testVehicle.ID(), "onions", 600, 0,
		"Hosur farm", "KR Market", now, testVehicle.Advance(), testVehicle.OwnerID())
	suite.Require().NoError(err)
	suite.Require().NoError(testVehicle.Reserve(pending.ID(), 600))
	suite.Require().NoError(setupUow.VehicleRepository().Add(ctx, testVehicle))
	suite.Require().NoError(setupUow.BookingRepository().Add(ctx, pending))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	cancelled, err := uow.BookingRepository().GetForUpdate(ctx, pending.ID())
	suite.Require().NoError(err)
	lockedVehicle, err := uow.VehicleRepository().GetForUpdate(ctx, testVehicle.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(cancelled.Cancel(now))
	suite.Require().NoError(lockedVehicle.Release(cancelled.ID(), cancelled.RequiredWeight()))
	suite.Require().NoError(uow.BookingRepository().Update(ctx, cancelled))
	suite.Require().NoError(uow.VehicleRepository().Update(ctx, lockedVehicle))
	suite.Require().NoError(uow.Commit(ctx))

	finalVehicle, err := suite.factory.Create().VehicleRepository().Get(ctx, testVehicle.ID())
	suite.Require().NoError(err)
	suite.InDelta(1000, finalVehicle.Remaining(), 0.001)
	suite.False(finalVehicle.HasBooking(pending.ID()))
	suite.Equal(vehicle.StatusAvailable, finalVehicle.Status())

	finalBooking, err := suite.factory.Create().BookingRepository().Get(ctx, pending.ID())
	suite.Require().NoError(err)
	suite.Equal(booking.StatusCancelled, finalBooking.Status())

	active, err := suite.factory.Create().BookingRepository().GetActiveByVehicle(ctx, testVehicle.ID())
	suite.Require().NoError(err)
	suite.Empty(active, "Cancelled bookings are not active")
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func createTestAccount(role auth.Role, username string) *account.Account {
	a, err := account.NewAccount(
		kernel.NewUUID(), "Test "+username, username,
		"$2a$10$abcdefghijklmnopqrstuv", "9876543210", role)
	if err != nil {
		panic(err)
	}
	return a
}

func createTestVehicle(ownerID kernel.UUID, number string) *vehicle.Vehicle {
	capacity, err := vehicle.NewCapacity(1000, 8)
	if err != nil {
		panic(err)
	}
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(), ownerID, number, vehicle.TypeTruck, capacity,
		[]string{"Hosur", "Bengaluru"}, "10 per kg", 200)
	if err != nil {
		panic(err)
	}
	return v
}
