package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	ID string `json:"id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

type AddVehicleRequest struct {
	VehicleNumber  string   `json:"vehicleNumber"`
	VehicleType    string   `json:"vehicleType"`
	CapacityWeight float64  `json:"capacityWeight"`
	CapacityHeight float64  `json:"capacityHeight"`
	Route          []string `json:"route"`
	Rent           string   `json:"rent"`
	Advance        float64  `json:"advance"`
}

type AssignDriverRequest struct {
	DriverID string `json:"driverId"`
}

type UpdateVehicleRequest struct {
	Status string   `json:"status,omitempty"`
	Rent   string   `json:"rent,omitempty"`
	Route  []string `json:"route,omitempty"`
}

type DriverSummaryResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Mobile        string  `json:"mobile"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

type VehicleResponse struct {
	ID             string   `json:"id"`
	OwnerID        string   `json:"ownerId"`
	DriverID       *string  `json:"driverId,omitempty"`
	VehicleNumber  string   `json:"vehicleNumber"`
	VehicleType    string   `json:"vehicleType"`
	CapacityWeight float64  `json:"capacityWeight"`
	CapacityHeight float64  `json:"capacityHeight"`
	Remaining      float64  `json:"remaining"`
	Route          []string `json:"route"`
	Status         string   `json:"status"`
	Rent           string   `json:"rent"`
	Advance        float64  `json:"advance"`
}

type CreateBookingRequest struct {
	VehicleID        string    `json:"vehicleId"`
	CropName         string    `json:"cropName"`
	RequiredWeight   float64   `json:"requiredWeight"`
	RequiredHeight   float64   `json:"requiredHeight"`
	PickupLocation   string    `json:"pickupLocation"`
	DeliveryLocation string    `json:"deliveryLocation"`
	BookingDate      time.Time `json:"bookingDate"`
}

type BookingResponse struct {
	ID                string     `json:"id"`
	VehicleID         string     `json:"vehicleId"`
	FarmerID          string     `json:"farmerId"`
	CropName          string     `json:"cropName"`
	RequiredWeight    float64    `json:"requiredWeight"`
	Status            string     `json:"status"`
	PickupLocation    string     `json:"pickupLocation"`
	DeliveryLocation  string     `json:"deliveryLocation"`
	BookingDate       time.Time  `json:"bookingDate"`
	DispatchDate      *time.Time `json:"dispatchDate,omitempty"`
	DeliveryDate      *time.Time `json:"deliveryDate,omitempty"`
	BillAmount        *float64   `json:"billAmount,omitempty"`
	SettlementMessage string     `json:"settlementMessage,omitempty"`
	ReadyForRating    bool       `json:"readyForRating"`
}

type TransitionBookingStatusRequest struct {
	Status string `json:"status"`
}

type UploadBillRequest struct {
	Amount  float64 `json:"amount"`
	FileRef string  `json:"fileRef"`
}

type ConfirmPaymentResponse struct {
	Completed bool `json:"completed"`
}

type RateBookingRequest struct {
	DriverRating int    `json:"driverRating"`
	OwnerRating  int    `json:"ownerRating"`
	Comment      string `json:"comment"`
}

type ReviewResponse struct {
	ReviewerID string    `json:"reviewerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ProfileResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Username      string           `json:"username"`
	Mobile        string           `json:"mobile"`
	Role          string           `json:"role"`
	AverageRating float64          `json:"averageRating"`
	ReviewCount   int              `json:"reviewCount"`
	Reviews       []ReviewResponse `json:"reviews"`
}

type BookingHistoryEntryResponse struct {
	Action         string    `json:"action"`
	ActorID        string    `json:"actorId"`
	Role           string    `json:"role"`
	Amount         *float64  `json:"amount,omitempty"`
	CounterpartyID *string   `json:"counterpartyId,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

type DriverReviewsResponse struct {
	DriverID      string           `json:"driverId"`
	Name          string           `json:"name"`
	AverageRating float64          `json:"averageRating"`
	ReviewCount   int              `json:"reviewCount"`
	Reviews       []ReviewResponse `json:"reviews"`
}
