package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"farmfreight/internal/core/application/usecases/commands"
	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/core/domain/model/vehicle"
	"farmfreight/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory unit of work for driving handlers through real command handlers
// without a database.

type stubVehicleRepository struct {
	vehicle *vehicle.Vehicle
}

func (r *stubVehicleRepository) Add(_ context.Context, _ *vehicle.Vehicle) error    { return nil }
func (r *stubVehicleRepository) Update(_ context.Context, _ *vehicle.Vehicle) error { return nil }
func (r *stubVehicleRepository) Delete(_ context.Context, _ kernel.UUID) error      { return nil }

func (r *stubVehicleRepository) Get(_ context.Context, _ kernel.UUID) (*vehicle.Vehicle, error) {
	return r.vehicle, nil
}

func (r *stubVehicleRepository) GetForUpdate(_ context.Context, _ kernel.UUID) (*vehicle.Vehicle, error) {
	return r.vehicle, nil
}

type stubBookingRepository struct {
	added *booking.Booking
}

func (r *stubBookingRepository) Add(_ context.Context, aggregate *booking.Booking) error {
	r.added = aggregate
	return nil
}

func (r *stubBookingRepository) Update(_ context.Context, _ *booking.Booking) error { return nil }

func (r *stubBookingRepository) Get(_ context.Context, _ kernel.UUID) (*booking.Booking, error) {
	return r.added, nil
}

func (r *stubBookingRepository) GetForUpdate(_ context.Context, _ kernel.UUID) (*booking.Booking, error) {
	return r.added, nil
}

func (r *stubBookingRepository) GetActiveByVehicle(
	_ context.Context, _ kernel.UUID,
) ([]*booking.Booking, error) {
	return nil, nil
}

type stubUoW struct {
	vehicles *stubVehicleRepository
	bookings *stubBookingRepository
}

func (u *stubUoW) Begin(_ context.Context) error              { return nil }
func (u *stubUoW) Commit(_ context.Context) error             { return nil }
func (u *stubUoW) Rollback(_ context.Context) error           { return nil }
func (u *stubUoW) AccountRepository() ports.AccountRepository { return nil }
func (u *stubUoW) VehicleRepository() ports.VehicleRepository { return u.vehicles }
func (u *stubUoW) BookingRepository() ports.BookingRepository { return u.bookings }

type stubUoWFactory struct {
	uow *stubUoW
}

func (f stubUoWFactory) Create() commands.UoW { return f.uow }

func newBookingServer(t *testing.T) (*Server, *stubBookingRepository, kernel.UUID) {
	t.Helper()

	capacity, err := vehicle.NewCapacity(1000, 8)
	require.NoError(t, err)
	bookedVehicle, err := vehicle.NewVehicle(
		kernel.NewUUID(), kernel.NewUUID(), "KA01AB1234", vehicle.TypeTruck,
		capacity, []string{"Hosur", "Bengaluru"}, "10 per kg", 200)
	require.NoError(t, err)

	bookings := &stubBookingRepository{}
	factory := stubUoWFactory{uow: &stubUoW{
		vehicles: &stubVehicleRepository{vehicle: bookedVehicle},
		bookings: bookings,
	}}

	server := NewServer(Commands{
		CreateBooking: commands.NewCreateBookingCommandHandler(factory),
	}, Queries{}, "test-secret")

	return server, bookings, bookedVehicle.ID()
}

func postBooking(t *testing.T, server *Server, body string) *httptest.ResponseRecorder {
	t.Helper()

	farmer, err := auth.NewPrincipal(kernel.NewUUID(), auth.RoleFarmer)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(principalContextKey, farmer)

	require.NoError(t, server.CreateBooking(ctx))
	return rec
}

func TestServer_CreateBooking_UsesRequestedBookingDate(t *testing.T) {
	server, bookings, vehicleID := newBookingServer(t)
	bookingDate := time.Date(2026, time.September, 5, 6, 30, 0, 0, time.UTC)

	body := fmt.Sprintf(
		`{"vehicleId":%q,"cropName":"tomatoes","requiredWeight":600,`+
			`"pickupLocation":"Hosur farm","deliveryLocation":"KR Market","bookingDate":%q}`,
		vehicleID.String(), bookingDate.Format(time.RFC3339))

	rec := postBooking(t, server, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, bookings.added)
	assert.True(t, bookings.added.BookingDate().Equal(bookingDate),
		"farmer's chosen booking date reaches the aggregate")
	assert.Contains(t, rec.Body.String(), "2026-09-05T06:30:00Z")
}

func TestServer_CreateBooking_DefaultsBookingDateToNow(t *testing.T) {
	server, bookings, vehicleID := newBookingServer(t)

	body := fmt.Sprintf(
		`{"vehicleId":%q,"cropName":"tomatoes","requiredWeight":600,`+
			`"pickupLocation":"Hosur farm","deliveryLocation":"KR Market"}`,
		vehicleID.String())

	rec := postBooking(t, server, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, bookings.added)
	assert.WithinDuration(t, time.Now(), bookings.added.BookingDate(), time.Minute)
}
