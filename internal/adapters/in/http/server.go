// Package http exposes the booking engine over a JSON API. Handlers translate
// requests into commands and queries, leaving all business rules to the
// application layer; the JWT middleware reduces authentication to a validated
// principal before any handler runs.
package http

import (
	"net/http"
	"time"

	"farmfreight/internal/core/application/usecases/commands"
	"farmfreight/internal/core/application/usecases/queries"
	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// Commands bundles the write-side handlers the server dispatches to.
type Commands struct {
	RegisterAccount         commands.RegisterAccountCommandHandler
	AddVehicle              commands.AddVehicleCommandHandler
	UpdateVehicle           commands.UpdateVehicleCommandHandler
	AssignDriver            commands.AssignDriverCommandHandler
	RemoveVehicle           commands.RemoveVehicleCommandHandler
	CreateBooking           commands.CreateBookingCommandHandler
	CancelBooking           commands.CancelBookingCommandHandler
	TransitionBookingStatus commands.TransitionBookingStatusCommandHandler
	UploadBill              commands.UploadBillCommandHandler
	ConfirmPayment          commands.ConfirmPaymentCommandHandler
	RateBooking             commands.RateBookingCommandHandler
}

// Queries bundles the read-side handlers.
type Queries struct {
	ListBookings         queries.ListBookingsQueryHandler
	ListVehicles         queries.ListVehiclesQueryHandler
	SearchVehicles       queries.SearchVehiclesQueryHandler
	GetVehicle           queries.GetVehicleQueryHandler
	ListDrivers          queries.ListDriversQueryHandler
	GetDriverReviews     queries.GetDriverReviewsQueryHandler
	GetAccountByUsername queries.GetAccountByUsernameQueryHandler
	GetProfile           queries.GetProfileQueryHandler
	GetBookingHistory    queries.GetBookingHistoryQueryHandler
}

// Server handles HTTP requests by coordinating command and query handlers.
type Server struct {
	commands  Commands
	queries   Queries
	jwtSecret []byte
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(cmds Commands, qrys Queries, jwtSecret string) *Server {
	return &Server{
		commands:  cmds,
		queries:   qrys,
		jwtSecret: []byte(jwtSecret),
	}
}

// RegisterRoutes mounts all endpoints on the echo instance. Everything except
// registration and login sits behind the JWT middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	protected := api.Group("", s.authenticate)
	protected.GET("/auth/profile", s.GetProfile)
	protected.GET("/vehicles", s.ListVehicles)
	protected.GET("/vehicles/search", s.SearchVehicles)
	protected.GET("/vehicles/drivers", s.ListDrivers)
	protected.GET("/vehicles/:id", s.GetVehicle)
	protected.POST("/vehicles", s.AddVehicle)
	protected.PUT("/vehicles/:id", s.UpdateVehicle)
	protected.POST("/vehicles/:id/driver", s.AssignDriver)
	protected.DELETE("/vehicles/:id", s.RemoveVehicle)
	protected.GET("/bookings", s.ListBookings)
	protected.POST("/bookings", s.CreateBooking)
	protected.GET("/bookings/:id/history", s.GetBookingHistory)
	protected.POST("/bookings/:id/cancel", s.CancelBooking)
	protected.POST("/bookings/:id/status", s.TransitionBookingStatus)
	protected.POST("/bookings/:id/bill", s.UploadBill)
	protected.POST("/bookings/:id/confirm-payment", s.ConfirmPayment)
	protected.POST("/bookings/:id/rate", s.RateBooking)
	protected.GET("/reviews/driver/:id", s.GetDriverReviews)
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var request RegisterRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := auth.NewRoleFromString(request.Role)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if request.Password == "" {
		return badRequest(ctx, "Password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return errorResponse(ctx, err)
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(
		accountID, request.Name, request.Username, string(hash), request.Mobile, role)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.RegisterAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{ID: accountID.String()})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewGetAccountByUsernameQuery(request.Username)
	if err != nil {
		return errorResponse(ctx, err)
	}

	account, err := s.queries.GetAccountByUsername.Handle(ctx.Request().Context(), query)
	if err != nil {
		// not found and wrong password look identical to the caller
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid username or password",
		})
	}
	if bcrypt.CompareHashAndPassword(
		[]byte(account.PasswordHash), []byte(request.Password)) != nil {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid username or password",
		})
	}

	role, err := auth.NewRoleFromString(account.Role)
	if err != nil {
		return errorResponse(ctx, err)
	}
	token, err := s.issueToken(account.ID, role)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		AccountID: account.ID.String(),
		Name:      account.Name,
		Role:      account.Role,
	})
}

// ListVehicles handles GET /api/v1/vehicles. Owners see their fleet, drivers
// their assigned vehicles, farmers everything.
func (s *Server) ListVehicles(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	query, err := queries.NewListVehiclesQuery(principal)
	if err != nil {
		return errorResponse(ctx, err)
	}

	vehicles, err := s.queries.ListVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleResponses(vehicles))
}

// SearchVehicles handles GET /api/v1/vehicles/search?destination=X.
func (s *Server) SearchVehicles(ctx echo.Context) error {
	query, err := queries.NewSearchVehiclesQuery(ctx.QueryParam("destination"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	vehicles, err := s.queries.SearchVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleResponses(vehicles))
}

// AddVehicle handles POST /api/v1/vehicles.
func (s *Server) AddVehicle(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	var request AddVehicleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleType, err := vehicle.NewTypeFromString(request.VehicleType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewAddVehicleCommand(
		principal, vehicleID, request.VehicleNumber, vehicleType,
		request.CapacityWeight, request.CapacityHeight,
		request.Route, request.Rent, request.Advance)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.AddVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": vehicleID.String()})
}

// GetVehicle handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	query, err := queries.NewGetVehicleQuery(vehicleID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	found, err := s.queries.GetVehicle.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleResponses([]queries.ListVehiclesQueryResponse{found})[0])
}

// ListDrivers handles GET /api/v1/vehicles/drivers. Owners use the roster to
// pick a driver for assignment.
func (s *Server) ListDrivers(ctx echo.Context) error {
	query, err := queries.NewListDriversQuery()
	if err != nil {
		return errorResponse(ctx, err)
	}

	drivers, err := s.queries.ListDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]DriverSummaryResponse, len(drivers))
	for i, driver := range drivers {
		response[i] = DriverSummaryResponse{
			ID:            driver.ID.String(),
			Name:          driver.Name,
			Mobile:        driver.Mobile,
			AverageRating: driver.AverageRating,
			ReviewCount:   driver.ReviewCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateVehicle handles PUT /api/v1/vehicles/:id. Fields absent from the body
// stay unchanged.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	vehicleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	var request UpdateVehicleRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *vehicle.Status
	if request.Status != "" {
		parsed, statusErr := vehicle.NewStatusFromString(request.Status)
		if statusErr != nil {
			return errorResponse(ctx, statusErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateVehicleCommand(
		principal, vehicleID, status, request.Rent, request.Route)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.UpdateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/vehicles/:id/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	vehicleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	var request AssignDriverRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(principal, vehicleID, driverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveVehicle handles DELETE /api/v1/vehicles/:id.
func (s *Server) RemoveVehicle(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	vehicleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	cmd, err := commands.NewRemoveVehicleCommand(principal, vehicleID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.RemoveVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListBookings handles GET /api/v1/bookings, scoped to the caller's role.
func (s *Server) ListBookings(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	query, err := queries.NewListBookingsQuery(principal)
	if err != nil {
		return errorResponse(ctx, err)
	}

	bookings, err := s.queries.ListBookings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		response[i] = BookingResponse{
			ID:                b.ID.String(),
			VehicleID:         b.VehicleID.String(),
			FarmerID:          b.FarmerID.String(),
			CropName:          b.CropName,
			RequiredWeight:    b.RequiredWeight,
			Status:            b.Status,
			PickupLocation:    b.PickupLocation,
			DeliveryLocation:  b.DeliveryLocation,
			BookingDate:       b.BookingDate,
			DispatchDate:      b.DispatchDate,
			DeliveryDate:      b.DeliveryDate,
			BillAmount:        b.BillAmount,
			SettlementMessage: b.SettlementMessage,
			ReadyForRating:    b.ReadyForRating,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateBooking handles POST /api/v1/bookings.
func (s *Server) CreateBooking(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	var request CreateBookingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(request.VehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	// the farmer may book for a future date; absent a date, book for now
	bookingDate := request.BookingDate
	if bookingDate.IsZero() {
		bookingDate = time.Now()
	}

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		principal, bookingID, vehicleID, request.CropName,
		request.RequiredWeight, request.RequiredHeight,
		request.PickupLocation, request.DeliveryLocation, bookingDate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.commands.CreateBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created := result.Booking
	return ctx.JSON(http.StatusCreated, BookingResponse{
		ID:               created.ID().String(),
		VehicleID:        created.VehicleID().String(),
		FarmerID:         created.FarmerID().String(),
		CropName:         created.CropName(),
		RequiredWeight:   created.RequiredWeight(),
		Status:           created.Status().String(),
		PickupLocation:   created.PickupLocation(),
		DeliveryLocation: created.DeliveryLocation(),
		BookingDate:      created.BookingDate(),
	})
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel.
func (s *Server) CancelBooking(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	bookingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid booking id")
	}

	cmd, err := commands.NewCancelBookingCommand(principal, bookingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.CancelBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionBookingStatus handles POST /api/v1/bookings/:id/status.
func (s *Server) TransitionBookingStatus(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	bookingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid booking id")
	}

	var request TransitionBookingStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	target, err := booking.NewStatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewTransitionBookingStatusCommand(principal, bookingID, target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.TransitionBookingStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UploadBill handles POST /api/v1/bookings/:id/bill.
func (s *Server) UploadBill(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	bookingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid booking id")
	}

	var request UploadBillRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUploadBillCommand(principal, bookingID, request.Amount, request.FileRef)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.UploadBill.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/bookings/:id/confirm-payment. The
// response says whether this confirmation completed the booking.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	bookingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid booking id")
	}

	cmd, err := commands.NewConfirmPaymentCommand(principal, bookingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	completed, err := s.commands.ConfirmPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ConfirmPaymentResponse{Completed: completed})
}

// RateBooking handles POST /api/v1/bookings/:id/rate.
func (s *Server) RateBooking(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	bookingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid booking id")
	}

	var request RateBookingRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateBookingCommand(
		principal, bookingID, request.DriverRating, request.OwnerRating, request.Comment)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.RateBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBookingHistory handles GET /api/v1/bookings/:id/history.
func (s *Server) GetBookingHistory(ctx echo.Context) error {
	bookingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid booking id")
	}

	query, err := queries.NewGetBookingHistoryQuery(bookingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	history, err := s.queries.GetBookingHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]BookingHistoryEntryResponse, len(history))
	for i, entry := range history {
		var counterpartyID *string
		if entry.CounterpartyID != nil {
			id := entry.CounterpartyID.String()
			counterpartyID = &id
		}
		response[i] = BookingHistoryEntryResponse{
			Action:         entry.Action,
			ActorID:        entry.ActorID.String(),
			Role:           entry.Role,
			Amount:         entry.Amount,
			CounterpartyID: counterpartyID,
			Timestamp:      entry.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProfile handles GET /api/v1/auth/profile, the caller's own profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	query, err := queries.NewGetProfileQuery(principal.ID())
	if err != nil {
		return errorResponse(ctx, err)
	}

	profile, err := s.queries.GetProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	reviews := make([]ReviewResponse, len(profile.Reviews))
	for i, review := range profile.Reviews {
		reviews[i] = ReviewResponse{
			ReviewerID: review.ReviewerID.String(),
			Rating:     review.Rating,
			Comment:    review.Comment,
			CreatedAt:  review.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, ProfileResponse{
		ID:            profile.ID.String(),
		Name:          profile.Name,
		Username:      profile.Username,
		Mobile:        profile.Mobile,
		Role:          profile.Role,
		AverageRating: profile.AverageRating,
		ReviewCount:   profile.ReviewCount,
		Reviews:       reviews,
	})
}

// GetDriverReviews handles GET /api/v1/reviews/driver/:id.
func (s *Server) GetDriverReviews(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	query, err := queries.NewGetDriverReviewsQuery(driverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	profile, err := s.queries.GetDriverReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	reviews := make([]ReviewResponse, len(profile.Reviews))
	for i, review := range profile.Reviews {
		reviews[i] = ReviewResponse{
			ReviewerID: review.ReviewerID.String(),
			Rating:     review.Rating,
			Comment:    review.Comment,
			CreatedAt:  review.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, DriverReviewsResponse{
		DriverID:      profile.DriverID.String(),
		Name:          profile.Name,
		AverageRating: profile.AverageRating,
		ReviewCount:   profile.ReviewCount,
		Reviews:       reviews,
	})
}

func vehicleResponses(vehicles []queries.ListVehiclesQueryResponse) []VehicleResponse {
	response := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		var driverID *string
		if v.DriverID != nil {
			id := v.DriverID.String()
			driverID = &id
		}
		response[i] = VehicleResponse{
			ID:             v.ID.String(),
			OwnerID:        v.OwnerID.String(),
			DriverID:       driverID,
			VehicleNumber:  v.VehicleNumber,
			VehicleType:    v.VehicleType,
			CapacityWeight: v.CapacityWeight,
			CapacityHeight: v.CapacityHeight,
			Remaining:      v.Remaining,
			Route:          v.Route,
			Status:         v.Status,
			Rent:           v.Rent,
			Advance:        v.Advance,
		}
	}
	return response
}
