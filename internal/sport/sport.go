// Package sport defines the fixed facility grid: six sports, six two-hour
// slots per day between 08:00 and 20:00, three customers per slot.
package sport

import "fmt"

type Sport int

const (
	Tennis Sport = iota + 1
	Basketball
	Swimming
	Football
	Badminton
	TableTennis
)

const (
	Count        = 6
	SlotsPerDay  = 6
	SlotCapacity = 3

	OpeningHour  = 8
	SlotDuration = 2
)

var names = [...]string{
	Tennis:      "Tennis",
	Basketball:  "Basketball",
	Swimming:    "Swimming",
	Football:    "Football",
	Badminton:   "Badminton",
	TableTennis: "Table Tennis",
}

func (s Sport) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return names[s]
}

func (s Sport) Valid() bool {
	return s >= 1 && s <= Count
}

// ValidSlot reports whether n is one of the six 1-indexed slot numbers.
func ValidSlot(n int) bool {
	return n >= 1 && n <= SlotsPerDay
}

// SlotWindow returns the start and end hours of a 1-indexed slot on a
// 24-hour clock. Slot times are derived, never stored.
func SlotWindow(slot int) (start, end int) {
	start = OpeningHour + (slot-1)*SlotDuration
	return start, start + SlotDuration
}

// SlotLabel renders the slot window the way the booking sheet shows it,
// e.g. "08:00 - 10:00".
func SlotLabel(slot int) string {
	start, end := SlotWindow(slot)
	return fmt.Sprintf("%02d:00 - %02d:00", start, end)
}

// All lists every sport in fixture order.
func All() []Sport {
	sports := make([]Sport, 0, Count)
	for s := Sport(1); s <= Count; s++ {
		sports = append(sports, s)
	}
	return sports
}
