package booking

import "sportcenter/internal/sport"

// Occupancy is the per-(sport, slot) booking count, indexed by
// (sport-1, slot-1). It is a derived view: recomputed from the full booking
// collection on every query, never stored or incrementally maintained, so
// it is always consistent with the current booking set.
type Occupancy [sport.Count][sport.SlotsPerDay]int

// Occupancy scans the booking collection and tallies each cell. Records
// with out-of-range fields are skipped rather than counted.
func (r *Repository) Occupancy() Occupancy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var occ Occupancy
	for _, b := range r.bookings {
		if b.Sport.Valid() && sport.ValidSlot(b.TimeSlot) {
			occ[b.Sport-1][b.TimeSlot-1]++
		}
	}
	return occ
}

// Count returns the number of bookings in the cell.
func (o Occupancy) Count(sp sport.Sport, slot int) int {
	return o[sp-1][slot-1]
}

// Available returns the remaining capacity of the cell. It cannot go
// negative while the capacity invariant is enforced at booking time.
func (o Occupancy) Available(sp sport.Sport, slot int) int {
	return sport.SlotCapacity - o.Count(sp, slot)
}

// Full reports whether the cell has reached capacity.
func (o Occupancy) Full(sp sport.Sport, slot int) bool {
	return o.Available(sp, slot) <= 0
}
