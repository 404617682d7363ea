package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
)

var _ ports.CustomerStore = (*CustomerStore)(nil)

// CustomerStore maps the aggregate onto the customers, persons and gadgets
// tables. Persons are keyed by customer_id.
type CustomerStore struct {
	db *sql.DB
}

func NewCustomerStore(db *sql.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

func (s *CustomerStore) List(ctx context.Context) ([]*domain.Customer, error) {
	rows, err := s.db.QueryContext(ctx, `
		select c.id, c.name, c.phone_number, p.customer_id, p.gender
		from customers c
		left join persons p on p.customer_id = c.id
		order by c.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		result []*domain.Customer
		byID   = map[int64]*domain.Customer{}
	)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		c.Gadgets = []domain.Gadget{}
		result = append(result, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	grows, err := s.db.QueryContext(ctx, `
		select customer_id, id, name, years
		from gadgets
		order by customer_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer grows.Close()

	for grows.Next() {
		var (
			owner int64
			g     domain.Gadget
		)
		if err := grows.Scan(&owner, &g.ID, &g.Name, &g.Years); err != nil {
			return nil, err
		}
		if c, ok := byID[owner]; ok {
			c.Gadgets = append(c.Gadgets, g)
		}
	}
	if err := grows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CustomerStore) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return findCustomer(ctx, s.db, id, false)
}

func (s *CustomerStore) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.CustomerTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(ctx, &customerTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var (
		c        domain.Customer
		personID sql.NullInt64
		gender   sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &c.PhoneNumber, &personID, &gender); err != nil {
		return nil, err
	}
	if personID.Valid {
		c.Person = &domain.Person{ID: personID.Int64, Gender: gender.String}
	}
	return &c, nil
}

// findCustomer loads one aggregate. With lock set the customer row is held
// until the surrounding transaction ends.
func findCustomer(ctx context.Context, q querier, id int64, lock bool) (*domain.Customer, error) {
	query := `
		select c.id, c.name, c.phone_number, p.customer_id, p.gender
		from customers c
		left join persons p on p.customer_id = c.id
		where c.id = $1`
	if lock {
		query += ` for update of c`
	}

	c, err := scanCustomer(q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, `
		select id, name, years
		from gadgets
		where customer_id = $1
		order by position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	c.Gadgets = []domain.Gadget{}
	for rows.Next() {
		var g domain.Gadget
		if err := rows.Scan(&g.ID, &g.Name, &g.Years); err != nil {
			return nil, err
		}
		c.Gadgets = append(c.Gadgets, g)
	}
	return c, rows.Err()
}

type customerTx struct {
	tx *sql.Tx
}

func (t *customerTx) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return findCustomer(ctx, t.tx, id, true)
}

func (t *customerTx) InsertCustomer(ctx context.Context, c *domain.Customer) (int64, error) {
	var id int64
	err := t.tx.QueryRowContext(ctx, `
		insert into customers (name, phone_number)
		values ($1, $2)
		returning id
	`, c.Name, c.PhoneNumber).Scan(&id)
	return id, err
}

func (t *customerTx) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	res, err := t.tx.ExecContext(ctx, `update customers set name = $1, phone_number = $2 where id = $3`, c.Name, c.PhoneNumber, c.ID)
	if err != nil {
		return err
	}
	return expectRow(res)
}

func (t *customerTx) DeleteCustomer(ctx context.Context, id int64) error {
	res, err := t.tx.ExecContext(ctx, `delete from customers where id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(res)
}

func (t *customerTx) InsertPerson(ctx context.Context, p *domain.Person) error {
	_, err := t.tx.ExecContext(ctx, `insert into persons (customer_id, gender) values ($1, $2)`, p.ID, p.Gender)
	return err
}

func (t *customerTx) UpdatePersonGender(ctx context.Context, personID int64, gender string) error {
	res, err := t.tx.ExecContext(ctx, `update persons set gender = $1 where customer_id = $2`, gender, personID)
	if err != nil {
		return err
	}
	return expectRow(res)
}

func (t *customerTx) DeletePerson(ctx context.Context, personID int64) error {
	_, err := t.tx.ExecContext(ctx, `delete from persons where customer_id = $1`, personID)
	return err
}

func (t *customerTx) InsertGadgets(ctx context.Context, customerID int64, gadgets []domain.Gadget) error {
	for i, g := range gadgets {
		if _, err := t.tx.ExecContext(ctx, `
			insert into gadgets (id, customer_id, name, years, position)
			values ($1, $2, $3, $4, $5)
		`, g.ID, customerID, g.Name, g.Years, i); err != nil {
			return fmt.Errorf("gadget %d: %w", i, err)
		}
	}
	return nil
}

func (t *customerTx) DeleteGadgets(ctx context.Context, customerID int64) error {
	_, err := t.tx.ExecContext(ctx, `delete from gadgets where customer_id = $1`, customerID)
	return err
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
