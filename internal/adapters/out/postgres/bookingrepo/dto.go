// Package bookingrepo provides data transfer objects and mapping functions
// for booking persistence: lifecycle state, the embedded bill and settlement,
// the one-time rating and the append-only history.
package bookingrepo

import (
	"time"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO represents the database structure for persisting booking
// aggregates. Bill, settlement and rating live in nullable column groups on
// the booking row; they are written once and never modified afterwards.
type BookingDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FarmerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	VehicleID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	CropName         string     `gorm:"type:varchar(255);not null"`
	RequiredWeight   float64    `gorm:"type:numeric;not null"`
	RequiredHeight   float64    `gorm:"type:numeric;not null"`
	PickupLocation   string     `gorm:"type:varchar(255);not null"`
	DeliveryLocation string     `gorm:"type:varchar(255);not null"`
	BookingDate      time.Time  `gorm:"not null"`
	DispatchDate     *time.Time `gorm:""`
	Status           string     `gorm:"type:varchar(32);not null;index"`

	BillAmount           *float64   `gorm:"type:numeric"`
	BillFileRef          *string    `gorm:"type:varchar(512)"`
	BillUploaderID       *uuid.UUID `gorm:"type:uuid"`
	BillUploadedAt       *time.Time `gorm:""`
	BillAdvance          *float64   `gorm:"type:numeric"`
	BillRent             *string    `gorm:"type:varchar(255)"`
	SettlementFarmerGets *float64   `gorm:"type:numeric"`
	SettlementFarmerPays *float64   `gorm:"type:numeric"`
	SettlementMessage    *string    `gorm:"type:varchar(255)"`

	DriverConfirmed bool `gorm:"not null"`
	OwnerConfirmed  bool `gorm:"not null"`
	ReadyForRating  bool `gorm:"not null"`

	RatingDriver  *int       `gorm:"type:int"`
	RatingOwner   *int       `gorm:"type:int"`
	RatingComment *string    `gorm:"type:text"`
	RatedAt       *time.Time `gorm:""`

	DeliveryDate *time.Time `gorm:""`

	History []HistoryEntryDTO `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "bookings".
func (BookingDTO) TableName() string {
	return "bookings"
}

// HistoryEntryDTO represents one audit trail row. The sequence number fixes
// the order and makes upserts on update idempotent; history rows are never
// modified once written.
type HistoryEntryDTO struct {
	BookingID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq            int        `gorm:"primaryKey;autoIncrement:false"`
	Action         string     `gorm:"type:varchar(64);not null"`
	ActorID        uuid.UUID  `gorm:"type:uuid;not null"`
	Role           string     `gorm:"type:varchar(16);not null"`
	Amount         *float64   `gorm:"type:numeric"`
	CounterpartyID *uuid.UUID `gorm:"type:uuid"`
	Timestamp      time.Time  `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "booking_history".
func (HistoryEntryDTO) TableName() string {
	return "booking_history"
}

func fromDomain(aggregate *booking.Booking) BookingDTO {
	bookingID := aggregate.ID().Bytes()

	dto := BookingDTO{
		ID:               bookingID,
		FarmerID:         aggregate.FarmerID().Bytes(),
		VehicleID:        aggregate.VehicleID().Bytes(),
		CropName:         aggregate.CropName(),
		RequiredWeight:   aggregate.RequiredWeight(),
		RequiredHeight:   aggregate.RequiredHeight(),
		PickupLocation:   aggregate.PickupLocation(),
		DeliveryLocation: aggregate.DeliveryLocation(),
		BookingDate:      aggregate.BookingDate(),
		DispatchDate:     aggregate.DispatchDate(),
		Status:           aggregate.Status().String(),
		DriverConfirmed:  aggregate.DriverConfirmed(),
		OwnerConfirmed:   aggregate.OwnerConfirmed(),
		ReadyForRating:   aggregate.ReadyForRating(),
		DeliveryDate:     aggregate.DeliveryDate(),
	}

	if bill := aggregate.Bill(); bill != nil {
		amount := bill.Amount()
		fileRef := bill.FileRef()
		uploaderID := bill.UploaderID().Bytes()
		uploadedAt := bill.UploadedAt()
		advance := bill.Advance()
		rent := bill.Rent()
		farmerGets := bill.Settlement().FarmerGets()
		farmerPays := bill.Settlement().FarmerPays()
		message := bill.Settlement().Message()

		dto.BillAmount = &amount
		dto.BillFileRef = &fileRef
		dto.BillUploaderID = &uploaderID
		dto.BillUploadedAt = &uploadedAt
		dto.BillAdvance = &advance
		dto.BillRent = &rent
		dto.SettlementFarmerGets = &farmerGets
		dto.SettlementFarmerPays = &farmerPays
		dto.SettlementMessage = &message
	}

	if rating := aggregate.Rating(); rating != nil {
		driverRating := rating.DriverRating()
		ownerRating := rating.OwnerRating()
		comment := rating.Comment()
		ratedAt := rating.RatedAt()

		dto.RatingDriver = &driverRating
		dto.RatingOwner = &ownerRating
		dto.RatingComment = &comment
		dto.RatedAt = &ratedAt
	}

	history := make([]HistoryEntryDTO, 0, len(aggregate.History()))
	for i, entry := range aggregate.History() {
		var counterpartyID *uuid.UUID
		if entry.CounterpartyID() != nil {
			raw := entry.CounterpartyID().Bytes()
			counterpartyID = &raw
		}
		history = append(history, HistoryEntryDTO{
			BookingID:      bookingID,
			Seq:            i,
			Action:         entry.Action(),
			ActorID:        entry.ActorID().Bytes(),
			Role:           entry.Role().String(),
			Amount:         entry.Amount(),
			CounterpartyID: counterpartyID,
			Timestamp:      entry.Timestamp(),
		})
	}
	dto.History = history

	return dto
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	bill, err := billToDomain(dto)
	if err != nil {
		return nil, err
	}
	rating, err := ratingToDomain(dto)
	if err != nil {
		return nil, err
	}
	history, err := historyToDomain(dto.History)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		id, farmerID, vehicleID, dto.CropName, dto.RequiredWeight, dto.RequiredHeight,
		dto.PickupLocation, dto.DeliveryLocation, dto.BookingDate,
		dto.DispatchDate, status, bill,
		dto.DriverConfirmed, dto.OwnerConfirmed, dto.ReadyForRating,
		rating, dto.DeliveryDate, history)
}

func billToDomain(dto BookingDTO) (*booking.Bill, error) {
	if dto.BillAmount == nil {
		return nil, nil
	}

	uploaderID, err := kernel.UUIDFromBytes((*dto.BillUploaderID)[:])
	if err != nil {
		return nil, err
	}
	settlement, err := booking.NewSettlement(
		*dto.SettlementFarmerGets, *dto.SettlementFarmerPays, *dto.SettlementMessage)
	if err != nil {
		return nil, err
	}
	bill, err := booking.NewBill(
		*dto.BillAmount, *dto.BillFileRef, uploaderID, *dto.BillUploadedAt,
		*dto.BillAdvance, *dto.BillRent, settlement)
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

func ratingToDomain(dto BookingDTO) (*booking.Rating, error) {
	if dto.RatingDriver == nil {
		return nil, nil
	}

	rating, err := booking.NewRating(*dto.RatingDriver, *dto.RatingOwner, *dto.RatingComment, *dto.RatedAt)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func historyToDomain(dtos []HistoryEntryDTO) ([]booking.HistoryEntry, error) {
	history := make([]booking.HistoryEntry, 0, len(dtos))
	for _, entryDTO := range dtos {
		actorID, err := kernel.UUIDFromBytes(entryDTO.ActorID[:])
		if err != nil {
			return nil, err
		}
		role, err := auth.NewRoleFromString(entryDTO.Role)
		if err != nil {
			return nil, err
		}

		var counterpartyID *kernel.UUID
		if entryDTO.CounterpartyID != nil {
			counterparty, idErr := kernel.UUIDFromBytes((*entryDTO.CounterpartyID)[:])
			if idErr != nil {
				return nil, idErr
			}
			counterpartyID = &counterparty
		}

		history = append(history, booking.RestoreHistoryEntry(
			entryDTO.Action, actorID, role, entryDTO.Amount, counterpartyID, entryDTO.Timestamp))
	}

	return history, nil
}
