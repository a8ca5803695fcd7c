package booking

import (
	"context"
	"errors"
	"sync"

	"sportcenter/internal/customer"
	"sportcenter/internal/logger"
	"sportcenter/internal/metrics"
	"sportcenter/internal/sport"
)

var (
	ErrInvalidSelection      = errors.New("sport and time slot must be between 1 and 6")
	ErrSlotFull              = errors.New("time slot is fully booked")
	ErrDuplicateSportBooking = errors.New("customer already has a booking in this sport")
	ErrNoBookingsForCustomer = errors.New("customer has no bookings")
	ErrBookingNotFound       = errors.New("booking not found for customer")
)

// Service orchestrates the booking workflow, cancellation, cascade deletion
// and search over the two record stores.
type Service struct {
	// mu serializes the check-then-act sequences (capacity and
	// one-per-sport checks followed by insert, and the two-store cascade),
	// which span both repositories and are not atomic on their own.
	mu        sync.Mutex
	bookings  *Repository
	customers *customer.Repository
}

func NewService(bookings *Repository, customers *customer.Repository) *Service {
	return &Service{bookings: bookings, customers: customers}
}

// BookSlot runs the booking workflow: resolve customer, validate the
// selection, check capacity, check the one-per-sport rule, then insert.
// Every step before the insert is a pure check; a failure at any step
// leaves the stores untouched.
func (s *Service) BookSlot(ctx context.Context, customerName string, sportNum, slot int) (*Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cust, err := s.customers.FindByName(customerName)
	if err != nil {
		return nil, err
	}

	sp := sport.Sport(sportNum)
	if !sp.Valid() || !sport.ValidSlot(slot) {
		return nil, ErrInvalidSelection
	}

	occ := s.bookings.Occupancy()
	if occ.Full(sp, slot) {
		return nil, ErrSlotFull
	}

	if s.bookings.HasBookingInSport(cust.ID, sp) {
		return nil, ErrDuplicateSportBooking
	}

	b := s.bookings.Create(cust.ID, sp, slot)
	metrics.RecordBooking(sp.String())
	logger.Info("slot booked",
		"booking_id", b.ID,
		"customer_id", cust.ID,
		"sport", sp.String(),
		"time_slot", slot,
	)

	return &Confirmation{
		Booking:   *b,
		SportName: sp.String(),
		TimeRange: sport.SlotLabel(slot),
	}, nil
}

// CancelBooking removes the one booking matching both the id and the
// resolved customer. The customer record is never touched.
func (s *Service) CancelBooking(ctx context.Context, customerName string, bookingID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cust, err := s.customers.FindByName(customerName)
	if err != nil {
		return err
	}

	if len(s.bookings.ListByCustomer(cust.ID)) == 0 {
		return ErrNoBookingsForCustomer
	}

	removed := s.bookings.Remove(func(b *Booking) bool {
		return b.ID == bookingID && b.CustomerID == cust.ID
	})
	if removed == 0 {
		return ErrBookingNotFound
	}

	metrics.RecordCancellation()
	logger.Info("booking cancelled", "booking_id", bookingID, "customer_id", cust.ID)
	return nil
}

// DeleteCustomer removes the customer and all of their bookings as one
// logical unit, and returns the number of bookings removed.
func (s *Service) DeleteCustomer(ctx context.Context, customerName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cust, err := s.customers.FindByName(customerName)
	if err != nil {
		return 0, err
	}

	removedBookings := s.bookings.Remove(func(b *Booking) bool {
		return b.CustomerID == cust.ID
	})
	s.customers.Remove(func(c *customer.Customer) bool {
		return c.ID == cust.ID
	})

	metrics.RecordCustomerDeletion(removedBookings)
	logger.Info("customer deleted",
		"customer_id", cust.ID,
		"removed_bookings", removedBookings,
	)
	return removedBookings, nil
}

// CustomerBookings enumerates a customer's bookings for display and for the
// cancellation flow. A customer without bookings yields an empty list, not
// an error.
func (s *Service) CustomerBookings(ctx context.Context, customerName string) ([]View, error) {
	cust, err := s.customers.FindByName(customerName)
	if err != nil {
		return nil, err
	}
	return s.views(cust.ID), nil
}

// SearchByName returns full customer detail plus every booking they hold.
func (s *Service) SearchByName(ctx context.Context, name string) (*CustomerDetail, error) {
	cust, err := s.customers.FindByName(name)
	if err != nil {
		return nil, err
	}
	return &CustomerDetail{Customer: *cust, Bookings: s.views(cust.ID)}, nil
}

// SearchByID is SearchByName with an exact id match instead of a name.
func (s *Service) SearchByID(ctx context.Context, id int) (*CustomerDetail, error) {
	cust, err := s.customers.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &CustomerDetail{Customer: *cust, Bookings: s.views(cust.ID)}, nil
}

func (s *Service) views(customerID int) []View {
	bookings := s.bookings.ListByCustomer(customerID)
	views := make([]View, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, b.View())
	}
	return views
}

// SlotAvailability reports, for one sport, every slot with its remaining
// capacity, so a caller can present the choices before asking for a
// selection.
func (s *Service) SlotAvailability(ctx context.Context, sportNum int) (*SportAvailability, error) {
	sp := sport.Sport(sportNum)
	if !sp.Valid() {
		return nil, ErrInvalidSelection
	}
	av := s.availability(sp)
	return &av, nil
}

// AllAvailability reports the slot availability of every sport.
func (s *Service) AllAvailability(ctx context.Context) []SportAvailability {
	out := make([]SportAvailability, 0, sport.Count)
	for _, sp := range sport.All() {
		out = append(out, s.availability(sp))
	}
	return out
}

func (s *Service) availability(sp sport.Sport) SportAvailability {
	occ := s.bookings.Occupancy()
	out := SportAvailability{Sport: int(sp), Name: sp.String()}
	for slot := 1; slot <= sport.SlotsPerDay; slot++ {
		available := occ.Available(sp, slot)
		out.Slots = append(out.Slots, SlotAvailability{
			Slot:        slot,
			TimeRange:   sport.SlotLabel(slot),
			Available:   available,
			FullyBooked: available <= 0,
		})
	}
	return out
}

// OccupancySummary reports the booked cells of the grid, grouped per sport.
// Sports and slots with no bookings are omitted.
func (s *Service) OccupancySummary(ctx context.Context) []SportOccupancy {
	occ := s.bookings.Occupancy()

	var out []SportOccupancy
	for _, sp := range sport.All() {
		var slots []OccupiedSlot
		for slot := 1; slot <= sport.SlotsPerDay; slot++ {
			if n := occ.Count(sp, slot); n > 0 {
				slots = append(slots, OccupiedSlot{
					Slot:      slot,
					TimeRange: sport.SlotLabel(slot),
					Bookings:  n,
				})
			}
		}
		if len(slots) > 0 {
			out = append(out, SportOccupancy{Sport: sp.String(), Slots: slots})
		}
	}
	return out
}
