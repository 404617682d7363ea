package ports

import (
	"context"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
)

// CustomerStore exposes the customer tables. Reads run standalone; every write
// goes through InTx so that a whole aggregate change commits or rolls back as
// one unit.
type CustomerStore interface {
	// List returns every customer ordered by id, persons and gadgets loaded.
	List(ctx context.Context) ([]*domain.Customer, error)
	// FindByID returns domain.ErrNotFound when the customer does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	// InTx runs fn inside a transaction. fn returning an error rolls back.
	InTx(ctx context.Context, fn func(ctx context.Context, tx CustomerTx) error) error
}

// CustomerTx holds row-level operations. It knows nothing about cascades or
// the shared person key; those rules are applied by the caller.
type CustomerTx interface {
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	InsertCustomer(ctx context.Context, c *domain.Customer) (int64, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error

	InsertPerson(ctx context.Context, p *domain.Person) error
	UpdatePersonGender(ctx context.Context, personID int64, gender string) error
	DeletePerson(ctx context.Context, personID int64) error

	InsertGadgets(ctx context.Context, customerID int64, gadgets []domain.Gadget) error
	DeleteGadgets(ctx context.Context, customerID int64) error
}

// IdempotencyStore remembers which customer a client-supplied key produced.
// A key is claimed before the create runs so that concurrent requests with
// the same key cannot both write.
type IdempotencyStore interface {
	// Claim reserves key. When it is already taken, claimed is false and
	// customerID is the recorded customer, or 0 while the first request is
	// still running.
	Claim(ctx context.Context, key string) (claimed bool, customerID int64, err error)
	// Remember records the customer produced under a claimed key.
	Remember(ctx context.Context, key string, customerID int64) error
	// Release drops a claim whose create failed.
	Release(ctx context.Context, key string) error
}
