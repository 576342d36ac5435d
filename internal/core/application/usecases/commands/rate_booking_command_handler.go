package commands

import (
	"context"
	"log/slog"
	"time"

	"farmfreight/internal/core/domain/model/kernel"
)

// RateBookingCommandHandler records the farmer's rating on a completed
// booking, then fans the two scores out to the driver's and the owner's
// review profiles. The rating itself commits in its own transaction; each
// profile update runs in a separate transaction afterwards, so one profile
// failing to update never blocks the other and never rolls back the rating.
type RateBookingCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewRateBookingCommandHandler creates a handler for booking ratings.
func NewRateBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) RateBookingCommandHandler {
	return RateBookingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the rating command.
func (h RateBookingCommandHandler) Handle(ctx context.Context, command RateBookingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	driverID, ownerID, err := h.rateBooking(ctx, command)
	if err != nil {
		return err
	}

	now := time.Now()
	if driverID != nil {
		if err = h.addReview(ctx, *driverID, command.Actor().ID(),
			command.DriverRating(), command.Comment(), now); err != nil {
			h.logger.Warn("driver review update failed",
				"bookingId", command.BookingID().String(), "error", err)
		}
	}
	if err = h.addReview(ctx, *ownerID, command.Actor().ID(),
		command.OwnerRating(), command.Comment(), now); err != nil {
		h.logger.Warn("owner review update failed",
			"bookingId", command.BookingID().String(), "error", err)
	}

	return nil
}

// rateBooking stamps the rating on the booking aggregate and commits it. It
// returns the driver and owner IDs for the review fan-out; the driver ID is
// nil when the vehicle has no assigned driver.
func (h RateBookingCommandHandler) rateBooking(
	ctx context.Context, command RateBookingCommand,
) (*kernel.UUID, *kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rated, err := uow.BookingRepository().GetForUpdate(ctx, command.BookingID())
	if err != nil {
		return nil, nil, err
	}
	if err = command.Actor().RequireActor(rated.FarmerID(), "booking farmer"); err != nil {
		return nil, nil, err
	}

	ratedVehicle, err := uow.VehicleRepository().Get(ctx, rated.VehicleID())
	if err != nil {
		return nil, nil, err
	}

	if err = rated.Rate(command.DriverRating(), command.OwnerRating(), command.Comment(), time.Now()); err != nil {
		return nil, nil, err
	}
	if err = uow.BookingRepository().Update(ctx, rated); err != nil {
		return nil, nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	ownerID := ratedVehicle.OwnerID()

	return ratedVehicle.DriverID(), &ownerID, nil
}

// addReview appends one review to the account's profile in its own
// transaction.
func (h RateBookingCommandHandler) addReview(
	ctx context.Context, accountID kernel.UUID, reviewerID kernel.UUID, rating int, comment string, at time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewed, err := uow.AccountRepository().Get(ctx, accountID)
	if err != nil {
		return err
	}
	if err = reviewed.AddReview(reviewerID, rating, comment, at); err != nil {
		return err
	}
	if err = uow.AccountRepository().Update(ctx, reviewed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
