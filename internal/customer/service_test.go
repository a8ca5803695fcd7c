package customer

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportcenter/internal/logger"
)

func init() {
	logger.Init()
}

func validRequest() RegisterRequest {
	return RegisterRequest{
		Name:    "Alice",
		Email:   "a@b.com",
		Phone:   "1234567890",
		Address: "12 Main St",
		Age:     30,
	}
}

func TestRegister(t *testing.T) {
	service := NewService(NewRepository())

	created, err := service.Register(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Alice", created.Name)
}

func TestRegisterFieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr error
	}{
		{
			name:    "email without at sign",
			mutate:  func(r *RegisterRequest) { r.Email = "ab.com" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email without dot",
			mutate:  func(r *RegisterRequest) { r.Email = "a@bcom" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "phone with too few digits",
			mutate:  func(r *RegisterRequest) { r.Phone = "12345" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "phone with too many digits",
			mutate:  func(r *RegisterRequest) { r.Phone = "123456789012" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "address without digits",
			mutate:  func(r *RegisterRequest) { r.Address = "Main Street" },
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "address without letters",
			mutate:  func(r *RegisterRequest) { r.Address = "12345" },
			wantErr: ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(NewRepository())
			req := validRequest()
			tt.mutate(&req)

			_, err := service.Register(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterPhoneSeparatorsIgnored(t *testing.T) {
	service := NewService(NewRepository())
	req := validRequest()
	req.Phone = "123-456-7890"

	_, err := service.Register(context.Background(), req)
	assert.NoError(t, err)
}

func TestRegisterRejectsDuplicateNameCaseInsensitively(t *testing.T) {
	service := NewService(NewRepository())

	_, err := service.Register(context.Background(), validRequest())
	require.NoError(t, err)

	dup := validRequest()
	dup.Name = "ALICE"
	_, err = service.Register(context.Background(), dup)
	assert.ErrorIs(t, err, ErrDuplicateCustomerName)
}

func TestRegisterNoPartialMutationOnFailure(t *testing.T) {
	repo := NewRepository()
	service := NewService(repo)

	bad := validRequest()
	bad.Email = "nope"
	_, err := service.Register(context.Background(), bad)
	require.Error(t, err)
	assert.Equal(t, 0, repo.Count())

	// The failed attempt must not have consumed an id.
	created, err := service.Register(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestRegisterConcurrentSameName(t *testing.T) {
	repo := NewRepository()
	service := NewService(repo)

	const racers = 16
	var wg sync.WaitGroup
	errs := make(chan error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Register(context.Background(), validRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won int
	for err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateCustomerName)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, repo.Count())
}
