package ports

import (
	"context"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
)

// CreateCustomerInput carries the draft aggregate plus the optional
// Idempotency-Key sent by the client.
type CreateCustomerInput struct {
	Customer       *domain.Customer
	IdempotencyKey string
}

// CreateCustomerResult is returned by Create.
type CreateCustomerResult struct {
	Customer *domain.Customer
	// AlreadyExisted is true when the Idempotency-Key matched an earlier create.
	AlreadyExisted bool
}

// CustomerService defines use-case operations for the customer aggregate.
type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*CreateCustomerResult, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, id int64, draft *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
