package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
)

// CustomerService owns the customer/person/gadget aggregate. The store only
// offers row operations inside a transaction; the shared person key and the
// cascades are applied here.
type CustomerService struct {
	store  ports.CustomerStore
	keys   ports.IdempotencyStore
	newID  func() string
	logger zerolog.Logger
}

// NewCustomerService wires the service. keys may be nil, in which case
// Idempotency-Key headers are ignored.
func NewCustomerService(store ports.CustomerStore, keys ports.IdempotencyStore, logger zerolog.Logger) *CustomerService {
	return &CustomerService{
		store:  store,
		keys:   keys,
		newID:  uuid.NewString,
		logger: logger,
	}
}

// Create persists a new aggregate. The person is required and receives the id
// the store assigned to the customer before it is written.
func (s *CustomerService) Create(ctx context.Context, input ports.CreateCustomerInput) (*ports.CreateCustomerResult, error) {
	draft := input.Customer
	if draft == nil || draft.Person == nil {
		return nil, fmt.Errorf("%w: person is required", domain.ErrValidation)
	}

	key, existing, err := s.claim(ctx, input.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &ports.CreateCustomerResult{Customer: existing, AlreadyExisted: true}, nil
	}

	customer := draft.Clone()
	customer.ID = 0
	customer.Gadgets = s.withFreshIDs(draft.Gadgets)

	err = s.store.InTx(ctx, func(ctx context.Context, tx ports.CustomerTx) error {
		id, err := tx.InsertCustomer(ctx, customer)
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}
		customer.ID = id
		customer.Person.ID = id

		if err := tx.InsertPerson(ctx, customer.Person); err != nil {
			return fmt.Errorf("insert person: %w", err)
		}
		if err := tx.InsertGadgets(ctx, id, customer.Gadgets); err != nil {
			return fmt.Errorf("insert gadgets: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create customer")
		if key != "" {
			if err := s.keys.Release(ctx, key); err != nil {
				s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to release idempotency key")
			}
		}
		return nil, fmt.Errorf("%w: create customer", domain.ErrPersistence)
	}

	if key != "" {
		if err := s.keys.Remember(ctx, key, customer.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to record idempotency key")
		}
	}

	s.logger.Info().Int64("customer_id", customer.ID).Int("gadgets", len(customer.Gadgets)).Msg("customer created")
	return &ports.CreateCustomerResult{Customer: customer}, nil
}

// claim reserves the Idempotency-Key for this create. It returns the key to
// record the result under (empty when idempotency is off for this request),
// or the customer an earlier create produced. A key held by a request that is
// still running yields ErrInProgress. Key store failures are logged and the
// create goes ahead without idempotency.
func (s *CustomerService) claim(ctx context.Context, key string) (string, *domain.Customer, error) {
	if key == "" || s.keys == nil {
		return "", nil, nil
	}
	claimed, id, err := s.keys.Claim(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency claim failed, creating anyway")
		return "", nil, nil
	}
	if claimed {
		return key, nil, nil
	}
	if id == 0 {
		return "", nil, fmt.Errorf("%w: idempotency key %q", domain.ErrInProgress, key)
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		// The earlier customer is gone; create a new one and repoint the key.
		s.logger.Warn().Err(err).Str("idempotency_key", key).Int64("customer_id", id).Msg("idempotency key points at missing customer")
		return key, nil, nil
	}
	s.logger.Info().Str("idempotency_key", key).Int64("customer_id", id).Msg("idempotent replay")
	return "", existing, nil
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list customers")
		return nil, fmt.Errorf("%w: list customers", domain.ErrPersistence)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.classify(err, "get customer", id)
	}
	return customer, nil
}

// Update replaces name, phone number and gadgets wholesale and changes only
// the gender of the existing person. The person keeps its id.
func (s *CustomerService) Update(ctx context.Context, id int64, draft *domain.Customer) (*domain.Customer, error) {
	if draft == nil || draft.Person == nil {
		return nil, fmt.Errorf("%w: person is required", domain.ErrValidation)
	}

	var updated *domain.Customer
	err := s.store.InTx(ctx, func(ctx context.Context, tx ports.CustomerTx) error {
		current, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		current.Name = draft.Name
		current.PhoneNumber = draft.PhoneNumber
		if err := tx.UpdateCustomer(ctx, current); err != nil {
			return fmt.Errorf("update customer: %w", err)
		}

		if err := tx.DeleteGadgets(ctx, id); err != nil {
			return fmt.Errorf("delete gadgets: %w", err)
		}
		current.Gadgets = s.withFreshIDs(draft.Gadgets)
		if err := tx.InsertGadgets(ctx, id, current.Gadgets); err != nil {
			return fmt.Errorf("insert gadgets: %w", err)
		}

		if current.Person == nil {
			// Aggregates written by this service always carry a person.
			current.Person = &domain.Person{ID: id, Gender: draft.Person.Gender}
			if err := tx.InsertPerson(ctx, current.Person); err != nil {
				return fmt.Errorf("insert person: %w", err)
			}
		} else {
			current.Person.Gender = draft.Person.Gender
			if err := tx.UpdatePersonGender(ctx, current.Person.ID, current.Person.Gender); err != nil {
				return fmt.Errorf("update person: %w", err)
			}
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, s.classify(err, "update customer", id)
	}

	s.logger.Info().Int64("customer_id", id).Msg("customer updated")
	return updated, nil
}

// Delete removes the customer, its person and all its gadgets. Existence is
// checked inside the same transaction before anything is deleted.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	err := s.store.InTx(ctx, func(ctx context.Context, tx ports.CustomerTx) error {
		if _, err := tx.FindByID(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteGadgets(ctx, id); err != nil {
			return fmt.Errorf("delete gadgets: %w", err)
		}
		if err := tx.DeletePerson(ctx, id); err != nil {
			return fmt.Errorf("delete person: %w", err)
		}
		if err := tx.DeleteCustomer(ctx, id); err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return s.classify(err, "delete customer", id)
	}

	s.logger.Info().Int64("customer_id", id).Msg("customer deleted")
	return nil
}

// classify keeps ErrNotFound as is and turns anything else into a logged
// ErrPersistence without the raw store error attached.
func (s *CustomerService) classify(err error, op string, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	s.logger.Error().Err(err).Int64("customer_id", id).Msg(op + " failed")
	return fmt.Errorf("%w: %s", domain.ErrPersistence, op)
}

func (s *CustomerService) withFreshIDs(gadgets []domain.Gadget) []domain.Gadget {
	out := make([]domain.Gadget, len(gadgets))
	for i, g := range gadgets {
		g.ID = s.newID()
		out[i] = g
	}
	return out
}
