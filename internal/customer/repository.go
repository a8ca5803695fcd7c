package customer

import (
	"errors"
	"strings"
	"sync"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Repository is the in-memory customer store. Records are kept in insertion
// order, which is the enumeration order of every listing operation. Ids come
// from a monotonic counter that is never decremented, so an id is never
// reused within a process lifetime.
type Repository struct {
	mu        sync.RWMutex
	customers []*Customer
	lastID    int
}

func NewRepository() *Repository {
	return &Repository{}
}

// Create assigns the next customer id and appends the record.
func (r *Repository) Create(name, email, phone, address string, age int) *Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	c := &Customer{
		ID:      r.lastID,
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
		Age:     age,
	}
	r.customers = append(r.customers, c)

	out := *c
	return &out
}

// FindByName returns the first customer whose name matches case-insensitively.
// Names are unique among active customers, so first match and unique match
// coincide.
func (r *Repository) FindByName(name string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if strings.EqualFold(c.Name, name) {
			out := *c
			return &out, nil
		}
	}
	return nil, ErrCustomerNotFound
}

func (r *Repository) FindByID(id int) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.ID == id {
			out := *c
			return &out, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// List returns all customers in insertion order.
func (r *Repository) List() []Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out
}

// Remove deletes every customer matching the predicate and returns the
// number removed.
func (r *Repository) Remove(match func(*Customer) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.customers[:0]
	removed := 0
	for _, c := range r.customers {
		if match(c) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(r.customers); i++ {
		r.customers[i] = nil
	}
	r.customers = kept
	return removed
}

func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.customers)
}
