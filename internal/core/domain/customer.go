package domain

// Customer is the aggregate root. It owns exactly one Person and any number
// of Gadgets; both live and die with it.
type Customer struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	PhoneNumber string   `json:"phonenumber"`
	Person      *Person  `json:"person"`
	Gadgets     []Gadget `json:"gadgets"`
}

// Person shares its primary key with the owning Customer.
type Person struct {
	ID     int64  `json:"id"`
	Gender string `json:"gender"`
}

// CustomerID returns the id of the owning customer. It is the same value as
// the person id once the aggregate has been saved.
func (p *Person) CustomerID() int64 {
	return p.ID
}

// Gadget is owned by one Customer but carries its own generated id.
type Gadget struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Years float64 `json:"years"`
}

// Clone returns a deep copy so stores and callers never share slices.
func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	out := *c
	if c.Person != nil {
		p := *c.Person
		out.Person = &p
	}
	if c.Gadgets != nil {
		out.Gadgets = append([]Gadget(nil), c.Gadgets...)
	}
	return &out
}
