package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// DeleteCustomerResponse reports the cascade outcome: the customer plus all
// of their bookings are removed together.
type DeleteCustomerResponse struct {
	Message         string `json:"message" example:"Customer deleted"`
	RemovedBookings int    `json:"removed_bookings" example:"2"`
}
