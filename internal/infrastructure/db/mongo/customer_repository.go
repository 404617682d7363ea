package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
)

const customersCollection = "customers"

var _ ports.CustomerStore = (*CustomerRepository)(nil)

// CustomerRepository keeps each aggregate in a single document: the person is
// embedded and gadgets are an array. Row-level operations become field
// updates on that document.
type CustomerRepository struct {
	client *mongo.Client
	db     *mongo.Database
	col    *mongo.Collection
}

func NewCustomerRepository(client *mongo.Client, db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{
		client: client,
		db:     db,
		col:    db.Collection(customersCollection),
	}
}

type customerDoc struct {
	ID          int64       `bson:"_id"`
	Name        string      `bson:"name"`
	PhoneNumber string      `bson:"phone_number"`
	Person      *personDoc  `bson:"person,omitempty"`
	Gadgets     []gadgetDoc `bson:"gadgets"`
}

type personDoc struct {
	Gender string `bson:"gender"`
}

type gadgetDoc struct {
	ID    string  `bson:"id"`
	Name  string  `bson:"name"`
	Years float64 `bson:"years"`
}

func (d *customerDoc) toDomain() *domain.Customer {
	c := &domain.Customer{
		ID:          d.ID,
		Name:        d.Name,
		PhoneNumber: d.PhoneNumber,
		Gadgets:     make([]domain.Gadget, 0, len(d.Gadgets)),
	}
	if d.Person != nil {
		c.Person = &domain.Person{ID: d.ID, Gender: d.Person.Gender}
	}
	for _, g := range d.Gadgets {
		c.Gadgets = append(c.Gadgets, domain.Gadget{ID: g.ID, Name: g.Name, Years: g.Years})
	}
	return c
}

func toGadgetDocs(gadgets []domain.Gadget) []gadgetDoc {
	out := make([]gadgetDoc, 0, len(gadgets))
	for _, g := range gadgets {
		out = append(out, gadgetDoc{ID: g.ID, Name: g.Name, Years: g.Years})
	}
	return out
}

func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find customers: %w", err)
	}
	var docs []customerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}

	out := make([]*domain.Customer, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return findCustomer(ctx, r.col, id)
}

// InTx runs fn inside a session transaction. The driver retries fn on
// transient transaction errors, so fn must not keep state across attempts
// other than what it rebuilds.
func (r *CustomerRepository) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.CustomerTx) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	tx := &customerTx{db: r.db, col: r.col}
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx, tx)
	})
	return err
}

func findCustomer(ctx context.Context, col *mongo.Collection, id int64) (*domain.Customer, error) {
	var doc customerDoc
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return doc.toDomain(), nil
}

type customerTx struct {
	db  *mongo.Database
	col *mongo.Collection
}

func (t *customerTx) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return findCustomer(ctx, t.col, id)
}

func (t *customerTx) InsertCustomer(ctx context.Context, c *domain.Customer) (int64, error) {
	id, err := nextSequence(ctx, t.db, customersCollection)
	if err != nil {
		return 0, err
	}
	doc := customerDoc{ID: id, Name: c.Name, PhoneNumber: c.PhoneNumber, Gadgets: []gadgetDoc{}}
	if _, err := t.col.InsertOne(ctx, doc); err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

func (t *customerTx) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	return t.updateOne(ctx, bson.M{"_id": c.ID}, bson.M{"$set": bson.M{
		"name":         c.Name,
		"phone_number": c.PhoneNumber,
	}})
}

func (t *customerTx) DeleteCustomer(ctx context.Context, id int64) error {
	res, err := t.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// InsertPerson embeds the person into the customer sharing its id. It fails
// if the customer is missing or already has a person.
func (t *customerTx) InsertPerson(ctx context.Context, p *domain.Person) error {
	filter := bson.M{"_id": p.ID, "person": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{"person": personDoc{Gender: p.Gender}}}
	if err := t.updateOne(ctx, filter, update); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("customer %d missing or already has a person", p.ID)
		}
		return err
	}
	return nil
}

func (t *customerTx) UpdatePersonGender(ctx context.Context, personID int64, gender string) error {
	filter := bson.M{"_id": personID, "person": bson.M{"$exists": true}}
	return t.updateOne(ctx, filter, bson.M{"$set": bson.M{"person.gender": gender}})
}

func (t *customerTx) DeletePerson(ctx context.Context, personID int64) error {
	_, err := t.col.UpdateOne(ctx, bson.M{"_id": personID}, bson.M{"$unset": bson.M{"person": ""}})
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return nil
}

func (t *customerTx) InsertGadgets(ctx context.Context, customerID int64, gadgets []domain.Gadget) error {
	if len(gadgets) == 0 {
		return nil
	}
	update := bson.M{"$push": bson.M{"gadgets": bson.M{"$each": toGadgetDocs(gadgets)}}}
	return t.updateOne(ctx, bson.M{"_id": customerID}, update)
}

func (t *customerTx) DeleteGadgets(ctx context.Context, customerID int64) error {
	_, err := t.col.UpdateOne(ctx, bson.M{"_id": customerID}, bson.M{"$set": bson.M{"gadgets": []gadgetDoc{}}})
	if err != nil {
		return fmt.Errorf("delete gadgets: %w", err)
	}
	return nil
}

func (t *customerTx) updateOne(ctx context.Context, filter, update bson.M) error {
	res, err := t.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update customer document: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
