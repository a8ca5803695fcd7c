package customer

import (
	"context"
	"errors"
	"sync"

	"sportcenter/internal/logger"
	"sportcenter/internal/metrics"
	"sportcenter/internal/validation"
)

var (
	ErrDuplicateCustomerName = errors.New("customer name already registered")
	ErrInvalidEmail          = errors.New("email must contain '@' and '.'")
	ErrInvalidPhone          = errors.New("phone number must contain exactly 10 digits")
	ErrInvalidAddress        = errors.New("address must contain both letters and numbers")
)

type Service struct {
	// mu serializes the duplicate-name check and the insert that follows,
	// which are separate repository calls and not atomic on their own.
	mu   sync.Mutex
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Register validates the contact fields, enforces case-insensitive name
// uniqueness and creates the customer. Age is stored unchecked.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Customer, error) {
	if !validation.Email(req.Email) {
		return nil, ErrInvalidEmail
	}
	if !validation.Phone(req.Phone) {
		return nil, ErrInvalidPhone
	}
	if !validation.Address(req.Address) {
		return nil, ErrInvalidAddress
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.FindByName(req.Name); err == nil {
		return nil, ErrDuplicateCustomerName
	}

	c := s.repo.Create(req.Name, req.Email, req.Phone, req.Address, req.Age)
	metrics.RecordRegistration()
	logger.Info("customer registered", "customer_id", c.ID, "name", c.Name)

	return c, nil
}

// List returns all registered customers in registration order.
func (s *Service) List(ctx context.Context) []Customer {
	return s.repo.List()
}
