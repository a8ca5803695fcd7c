package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewRepository()

	a := repo.Create("Alice", "a@b.com", "1234567890", "12 Main St", 30)
	b := repo.Create("Bob", "b@c.com", "0987654321", "34 Side St", 25)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
}

func TestIDsNeverReusedAfterRemoval(t *testing.T) {
	repo := NewRepository()

	a := repo.Create("Alice", "a@b.com", "1234567890", "12 Main St", 30)
	repo.Remove(func(c *Customer) bool { return c.ID == a.ID })

	b := repo.Create("Bob", "b@c.com", "0987654321", "34 Side St", 25)
	assert.Equal(t, 2, b.ID)
}

func TestFindByNameIsCaseInsensitive(t *testing.T) {
	repo := NewRepository()
	repo.Create("Alice", "a@b.com", "1234567890", "12 Main St", 30)

	found, err := repo.FindByName("aLiCe")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name) // stored case is preserved

	_, err = repo.FindByName("Carol")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestFindByID(t *testing.T) {
	repo := NewRepository()
	created := repo.Create("Alice", "a@b.com", "1234567890", "12 Main St", 30)

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)

	_, err = repo.FindByID(999)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo := NewRepository()
	repo.Create("Carol", "c@d.com", "1111111111", "1 First St", 20)
	repo.Create("Alice", "a@b.com", "2222222222", "2 Second St", 30)
	repo.Create("Bob", "b@c.com", "3333333333", "3 Third St", 40)

	list := repo.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Carol", list[0].Name)
	assert.Equal(t, "Alice", list[1].Name)
	assert.Equal(t, "Bob", list[2].Name)
}

func TestRemoveReturnsCount(t *testing.T) {
	repo := NewRepository()
	repo.Create("Alice", "a@b.com", "1234567890", "12 Main St", 30)
	repo.Create("Bob", "b@c.com", "0987654321", "34 Side St", 25)

	removed := repo.Remove(func(c *Customer) bool { return c.Name == "Alice" })
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, repo.Count())

	removed = repo.Remove(func(c *Customer) bool { return true })
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, repo.Count())
}
