// Package accountrepo provides data transfer objects and mapping functions
// for account persistence. It implements the repository pattern for the
// account aggregate, converting between domain entities and database rows.
package accountrepo

import (
	"time"

	"farmfreight/internal/core/domain/model/account"
	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account
// aggregates. The derived rating columns are stored for read-side queries;
// the domain recomputes them from the reviews on restore.
type AccountDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name          string      `gorm:"type:varchar(255);not null"`
	Username      string      `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash  string      `gorm:"type:varchar(255);not null"`
	Mobile        string      `gorm:"type:varchar(32);not null"`
	Role          string      `gorm:"type:varchar(16);not null"`
	AverageRating float64     `gorm:"type:numeric;not null"`
	ReviewCount   int         `gorm:"type:int;not null"`
	Reviews       []ReviewDTO `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

// ReviewDTO represents one review row on an account's profile. Reviews are
// append-only; the sequence number fixes their order and makes upserts on
// update idempotent.
type ReviewDTO struct {
	AccountID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey;autoIncrement:false"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null"`
	Rating     int       `gorm:"type:int;not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	accountID := aggregate.ID().Bytes()
	reviews := make([]ReviewDTO, 0, len(aggregate.Reviews()))
	for i, review := range aggregate.Reviews() {
		reviews = append(reviews, ReviewDTO{
			AccountID:  accountID,
			Seq:        i,
			ReviewerID: review.ReviewerID().Bytes(),
			Rating:     review.Rating(),
			Comment:    review.Comment(),
			CreatedAt:  review.CreatedAt(),
		})
	}

	return AccountDTO{
		ID:            accountID,
		Name:          aggregate.Name(),
		Username:      aggregate.Username(),
		PasswordHash:  aggregate.PasswordHash(),
		Mobile:        aggregate.Mobile(),
		Role:          aggregate.Role().String(),
		AverageRating: aggregate.AverageRating(),
		ReviewCount:   aggregate.ReviewCount(),
		Reviews:       reviews,
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := auth.NewRoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	reviews := make([]account.Review, 0, len(dto.Reviews))
	for _, reviewDTO := range dto.Reviews {
		reviewerID, idErr := kernel.UUIDFromBytes(reviewDTO.ReviewerID[:])
		if idErr != nil {
			return nil, idErr
		}
		review, reviewErr := account.NewReview(
			reviewerID, reviewDTO.Rating, reviewDTO.Comment, reviewDTO.CreatedAt)
		if reviewErr != nil {
			return nil, reviewErr
		}
		reviews = append(reviews, review)
	}

	return account.RestoreAccount(
		id, dto.Name, dto.Username, dto.PasswordHash, dto.Mobile, role, reviews)
}
