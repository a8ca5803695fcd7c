package booking

import (
	"sync"

	"sportcenter/internal/sport"
)

// Repository is the in-memory booking store. Records are kept in insertion
// order. Booking ids come from their own monotonic counter, independent of
// customer ids, and are never reused.
type Repository struct {
	mu       sync.RWMutex
	bookings []*Booking
	lastID   int
}

func NewRepository() *Repository {
	return &Repository{}
}

// Create assigns the next booking id and appends the record. The caller is
// responsible for having checked capacity and the one-per-sport rule.
func (r *Repository) Create(customerID int, sp sport.Sport, slot int) *Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	b := &Booking{
		ID:         r.lastID,
		CustomerID: customerID,
		Sport:      sp,
		TimeSlot:   slot,
	}
	r.bookings = append(r.bookings, b)

	out := *b
	return &out
}

// List returns all bookings in insertion order.
func (r *Repository) List() []Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out
}

// ListByCustomer returns the customer's bookings in insertion order.
func (r *Repository) ListByCustomer(customerID int) []Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out
}

// HasBookingInSport reports whether the customer already holds a booking in
// the given sport, in any time slot.
func (r *Repository) HasBookingInSport(customerID int, sp sport.Sport) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.CustomerID == customerID && b.Sport == sp {
			return true
		}
	}
	return false
}

// Remove deletes every booking matching the predicate and returns the
// number removed.
func (r *Repository) Remove(match func(*Booking) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.bookings[:0]
	removed := 0
	for _, b := range r.bookings {
		if match(b) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(r.bookings); i++ {
		r.bookings[i] = nil
	}
	r.bookings = kept
	return removed
}

func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}
