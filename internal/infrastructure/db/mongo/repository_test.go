package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
)

func counterResponse(seq int64) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
		{Key: "_id", Value: "x"},
		{Key: "seq", Value: seq},
	}})
}

func TestIdentityRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("save assigns sequence id", func(mt *mtest.T) {
		repo := NewIdentityRepository(mt.DB)
		repo.now = func() time.Time { return time.Unix(1700000000, 0) }
		mt.AddMockResponses(counterResponse(5), mtest.CreateSuccessResponse())

		saved, err := repo.Save(context.Background(), &domain.Identity{Email: "a@x.com", PasswordHash: "digest", Role: domain.RoleUser})
		if err != nil {
			mt.Fatalf("Save: %v", err)
		}
		if saved.ID != 5 || saved.CreatedAt.Unix() != 1700000000 {
			mt.Fatalf("unexpected identity: %+v", saved)
		}
	})

	mt.Run("duplicate email conflicts", func(mt *mtest.T) {
		repo := NewIdentityRepository(mt.DB)
		mt.AddMockResponses(counterResponse(6), mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		if _, err := repo.Save(context.Background(), &domain.Identity{Email: "a@x.com"}); !errors.Is(err, domain.ErrConflict) {
			mt.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	mt.Run("find by login id", func(mt *mtest.T) {
		repo := NewIdentityRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.identities", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: int64(5)},
			{Key: "email", Value: "a@x.com"},
			{Key: "password_hash", Value: "digest"},
			{Key: "role", Value: "ROLE_USER,ROLE_ADMIN"},
		}))

		got, err := repo.FindByLoginID(context.Background(), "a@x.com")
		if err != nil {
			mt.Fatalf("FindByLoginID: %v", err)
		}
		if got.ID != 5 || got.PasswordHash != "digest" || got.Role != "ROLE_USER,ROLE_ADMIN" {
			mt.Fatalf("unexpected identity: %+v", got)
		}
		if !got.CreatedAt.IsZero() {
			mt.Fatalf("expected zero created_at, got %v", got.CreatedAt)
		}
	})

	mt.Run("unknown login id", func(mt *mtest.T) {
		repo := NewIdentityRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.identities", mtest.FirstBatch))

		if _, err := repo.FindByLoginID(context.Background(), "nobody@x.com"); !errors.Is(err, domain.ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCustomerRepository_Reads(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list maps embedded documents", func(mt *mtest.T) {
		repo := NewCustomerRepository(mt.Client, mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.customers", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: int64(1)},
				{Key: "name", Value: "Bob"},
				{Key: "phone_number", Value: "555-0100"},
				{Key: "person", Value: bson.D{{Key: "gender", Value: "M"}}},
				{Key: "gadgets", Value: bson.A{
					bson.D{{Key: "id", Value: "g-1"}, {Key: "name", Value: "Phone"}, {Key: "years", Value: 2.0}},
				}},
			},
			bson.D{
				{Key: "_id", Value: int64(2)},
				{Key: "name", Value: "Ann"},
				{Key: "gadgets", Value: bson.A{}},
			},
		))

		all, err := repo.List(context.Background())
		if err != nil {
			mt.Fatalf("List: %v", err)
		}
		if len(all) != 2 {
			mt.Fatalf("expected 2 customers, got %d", len(all))
		}
		bob := all[0]
		if bob.Person == nil || bob.Person.ID != 1 || bob.Person.Gender != "M" {
			mt.Fatalf("person must share the customer id: %+v", bob.Person)
		}
		if len(bob.Gadgets) != 1 || bob.Gadgets[0].ID != "g-1" || bob.Gadgets[0].Years != 2.0 {
			mt.Fatalf("unexpected gadgets: %+v", bob.Gadgets)
		}
		if all[1].Person != nil || all[1].Gadgets == nil {
			mt.Fatalf("unexpected second customer: %+v", all[1])
		}
	})

	mt.Run("find missing customer", func(mt *mtest.T) {
		repo := NewCustomerRepository(mt.Client, mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.customers", mtest.FirstBatch))

		if _, err := repo.FindByID(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCustomerTx_Writes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	matched := func(n int) bson.D {
		return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: n}, bson.E{Key: "nModified", Value: n})
	}

	mt.Run("insert customer uses counter", func(mt *mtest.T) {
		tx := &customerTx{db: mt.DB, col: mt.Coll}
		mt.AddMockResponses(counterResponse(9), mtest.CreateSuccessResponse())

		id, err := tx.InsertCustomer(context.Background(), &domain.Customer{Name: "Bob"})
		if err != nil || id != 9 {
			mt.Fatalf("InsertCustomer = (%d, %v), want (9, nil)", id, err)
		}
	})

	mt.Run("update missing customer", func(mt *mtest.T) {
		tx := &customerTx{db: mt.DB, col: mt.Coll}
		mt.AddMockResponses(matched(0))

		if err := tx.UpdateCustomer(context.Background(), &domain.Customer{ID: 3}); !errors.Is(err, domain.ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	mt.Run("insert person twice fails", func(mt *mtest.T) {
		tx := &customerTx{db: mt.DB, col: mt.Coll}
		mt.AddMockResponses(matched(1), matched(0))

		if err := tx.InsertPerson(context.Background(), &domain.Person{ID: 3, Gender: "F"}); err != nil {
			mt.Fatalf("first InsertPerson: %v", err)
		}
		err := tx.InsertPerson(context.Background(), &domain.Person{ID: 3, Gender: "F"})
		if err == nil || errors.Is(err, domain.ErrNotFound) {
			mt.Fatalf("expected a plain failure, got %v", err)
		}
	})

	mt.Run("insert no gadgets is a no-op", func(mt *mtest.T) {
		tx := &customerTx{db: mt.DB, col: mt.Coll}
		if err := tx.InsertGadgets(context.Background(), 3, nil); err != nil {
			mt.Fatalf("InsertGadgets: %v", err)
		}
	})

	mt.Run("delete missing customer", func(mt *mtest.T) {
		tx := &customerTx{db: mt.DB, col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		if err := tx.DeleteCustomer(context.Background(), 3); !errors.Is(err, domain.ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
