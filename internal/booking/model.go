package booking

import (
	"sportcenter/internal/customer"
	"sportcenter/internal/sport"
)

type Booking struct {
	ID         int         `json:"id"`
	CustomerID int         `json:"customer_id"`
	Sport      sport.Sport `json:"sport"`
	TimeSlot   int         `json:"time_slot"`
}

// View is a booking rendered for display, with the derived sport name and
// time range.
type View struct {
	ID        int    `json:"id"`
	Sport     string `json:"sport"`
	TimeSlot  int    `json:"time_slot"`
	TimeRange string `json:"time_range"`
}

func (b Booking) View() View {
	return View{
		ID:        b.ID,
		Sport:     b.Sport.String(),
		TimeSlot:  b.TimeSlot,
		TimeRange: sport.SlotLabel(b.TimeSlot),
	}
}

type Confirmation struct {
	Booking   Booking `json:"booking"`
	SportName string  `json:"sport_name"`
	TimeRange string  `json:"time_range"`
}

type BookRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Sport        int    `json:"sport" binding:"required"`
	TimeSlot     int    `json:"time_slot" binding:"required"`
}

type CancelRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
}

// CustomerDetail is the search result: the customer plus every booking they
// hold, in booking-collection order.
type CustomerDetail struct {
	Customer customer.Customer `json:"customer"`
	Bookings []View            `json:"bookings"`
}

type SlotAvailability struct {
	Slot        int    `json:"slot"`
	TimeRange   string `json:"time_range"`
	Available   int    `json:"available"`
	FullyBooked bool   `json:"fully_booked"`
}

type SportAvailability struct {
	Sport int                `json:"sport"`
	Name  string             `json:"name"`
	Slots []SlotAvailability `json:"slots"`
}

// SportOccupancy lists the occupied slots of one sport; sports and slots
// without bookings are omitted from the summary.
type SportOccupancy struct {
	Sport string         `json:"sport"`
	Slots []OccupiedSlot `json:"slots"`
}

type OccupiedSlot struct {
	Slot      int    `json:"slot"`
	TimeRange string `json:"time_range"`
	Bookings  int    `json:"bookings"`
}
