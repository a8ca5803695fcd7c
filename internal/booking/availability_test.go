package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sportcenter/internal/sport"
)

func TestOccupancyEmptyCollection(t *testing.T) {
	repo := NewRepository()
	occ := repo.Occupancy()

	for _, sp := range sport.All() {
		for slot := 1; slot <= sport.SlotsPerDay; slot++ {
			assert.Equal(t, 0, occ.Count(sp, slot))
			assert.Equal(t, sport.SlotCapacity, occ.Available(sp, slot))
			assert.False(t, occ.Full(sp, slot))
		}
	}
}

func TestOccupancyCountsCells(t *testing.T) {
	repo := NewRepository()
	repo.Create(1, sport.Tennis, 1)
	repo.Create(2, sport.Tennis, 1)
	repo.Create(3, sport.Swimming, 4)

	occ := repo.Occupancy()
	assert.Equal(t, 2, occ.Count(sport.Tennis, 1))
	assert.Equal(t, 1, occ.Available(sport.Tennis, 1))
	assert.Equal(t, 1, occ.Count(sport.Swimming, 4))
	assert.Equal(t, 0, occ.Count(sport.Tennis, 2))
}

func TestOccupancyFullAtCapacity(t *testing.T) {
	repo := NewRepository()
	for id := 1; id <= sport.SlotCapacity; id++ {
		repo.Create(id, sport.Badminton, 6)
	}

	occ := repo.Occupancy()
	assert.True(t, occ.Full(sport.Badminton, 6))
	assert.Equal(t, 0, occ.Available(sport.Badminton, 6))
}

func TestOccupancyIsRecomputedFresh(t *testing.T) {
	repo := NewRepository()
	repo.Create(1, sport.Tennis, 1)

	before := repo.Occupancy()
	repo.Remove(func(b *Booking) bool { return true })
	after := repo.Occupancy()

	assert.Equal(t, 1, before.Count(sport.Tennis, 1))
	assert.Equal(t, 0, after.Count(sport.Tennis, 1))
}
