package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestIdentityStore_Save(t *testing.T) {
	db, mock := newMock(t)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("insert into identities").
		WithArgs("Alice", "a@x.com", "digest", domain.RoleUser).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

	saved, err := NewIdentityStore(db).Save(context.Background(), &domain.Identity{
		Name: "Alice", Email: "a@x.com", PasswordHash: "digest", Role: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID != 7 || !saved.CreatedAt.Equal(created) {
		t.Fatalf("unexpected identity: %+v", saved)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIdentityStore_SaveDuplicate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("insert into identities").
		WillReturnError(&pgconn.PgError{Code: pgErrUniqueViolation})

	_, err := NewIdentityStore(db).Save(context.Background(), &domain.Identity{Email: "a@x.com"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestIdentityStore_FindByLoginID(t *testing.T) {
	db, mock := newMock(t)
	store := NewIdentityStore(db)

	mock.ExpectQuery("select id, name, email, password_hash, role, created_at").
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at"}).
			AddRow(int64(1), "Alice", "a@x.com", "digest", "ROLE_USER", time.Now()))
	mock.ExpectQuery("select id, name, email, password_hash, role, created_at").
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	got, err := store.FindByLoginID(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("FindByLoginID: %v", err)
	}
	if got.PasswordHash != "digest" || got.Role != "ROLE_USER" {
		t.Fatalf("unexpected identity: %+v", got)
	}

	if _, err := store.FindByLoginID(context.Background(), "nobody@x.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerStore_FindByID(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("from customers c").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number", "customer_id", "gender"}).
			AddRow(int64(3), "Bob", "555-0100", int64(3), "M"))
	mock.ExpectQuery("from gadgets").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "years"}).
			AddRow("g-1", "Phone", 2.0))

	c, err := NewCustomerStore(db).FindByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if c.Person == nil || c.Person.ID != 3 || c.Person.Gender != "M" {
		t.Fatalf("unexpected person: %+v", c.Person)
	}
	if len(c.Gadgets) != 1 || c.Gadgets[0].Name != "Phone" {
		t.Fatalf("unexpected gadgets: %+v", c.Gadgets)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerStore_FindByIDWithoutPerson(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("from customers c").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number", "customer_id", "gender"}).
			AddRow(int64(4), "Legacy", "", nil, nil))
	mock.ExpectQuery("from gadgets").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "years"}))

	c, err := NewCustomerStore(db).FindByID(context.Background(), 4)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if c.Person != nil {
		t.Fatalf("expected no person, got %+v", c.Person)
	}
	if c.Gadgets == nil || len(c.Gadgets) != 0 {
		t.Fatalf("expected empty gadget list, got %#v", c.Gadgets)
	}
}

func TestCustomerStore_FindByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("from customers c").WillReturnError(sql.ErrNoRows)

	if _, err := NewCustomerStore(db).FindByID(context.Background(), 9); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomerStore_List(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("from customers c").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number", "customer_id", "gender"}).
			AddRow(int64(1), "Bob", "1", int64(1), "M").
			AddRow(int64(2), "Ann", "2", int64(2), "F"))
	mock.ExpectQuery("from gadgets").
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "id", "name", "years"}).
			AddRow(int64(1), "g-1", "Phone", 2.0).
			AddRow(int64(1), "g-2", "Laptop", 4.0).
			AddRow(int64(2), "g-3", "Watch", 1.0))

	all, err := NewCustomerStore(db).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(all))
	}
	if len(all[0].Gadgets) != 2 || all[0].Gadgets[1].Name != "Laptop" {
		t.Fatalf("unexpected gadgets for first customer: %+v", all[0].Gadgets)
	}
	if len(all[1].Gadgets) != 1 || all[1].Person.Gender != "F" {
		t.Fatalf("unexpected second customer: %+v", all[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerStore_InTxCommits(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("insert into customers").
		WithArgs("Bob", "555-0100").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec("insert into persons").
		WithArgs(int64(11), "M").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("insert into gadgets").
		WithArgs("g-1", int64(11), "Phone", 2.0, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewCustomerStore(db).InTx(context.Background(), func(ctx context.Context, tx ports.CustomerTx) error {
		id, err := tx.InsertCustomer(ctx, &domain.Customer{Name: "Bob", PhoneNumber: "555-0100"})
		if err != nil {
			return err
		}
		if err := tx.InsertPerson(ctx, &domain.Person{ID: id, Gender: "M"}); err != nil {
			return err
		}
		return tx.InsertGadgets(ctx, id, []domain.Gadget{{ID: "g-1", Name: "Phone", Years: 2.0}})
	})
	if err != nil {
		t.Fatalf("InTx: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerStore_InTxRollsBack(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("insert into customers").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec("insert into persons").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := NewCustomerStore(db).InTx(context.Background(), func(ctx context.Context, tx ports.CustomerTx) error {
		id, err := tx.InsertCustomer(ctx, &domain.Customer{Name: "Bob"})
		if err != nil {
			return err
		}
		return tx.InsertPerson(ctx, &domain.Person{ID: id})
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerTx_DeleteMissingCustomer(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("delete from customers").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := NewCustomerStore(db).InTx(context.Background(), func(ctx context.Context, tx ports.CustomerTx) error {
		return tx.DeleteCustomer(ctx, 99)
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomerTx_FindByIDLocksRow(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("for update of c").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number", "customer_id", "gender"}).
			AddRow(int64(5), "Bob", "", int64(5), "M"))
	mock.ExpectQuery("from gadgets").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "years"}))
	mock.ExpectCommit()

	err := NewCustomerStore(db).InTx(context.Background(), func(ctx context.Context, tx ports.CustomerTx) error {
		_, err := tx.FindByID(ctx, 5)
		return err
	})
	if err != nil {
		t.Fatalf("InTx: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
