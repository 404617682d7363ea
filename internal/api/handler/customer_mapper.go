package handler

import "github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"

func toDomainCustomer(req customerRequest) *domain.Customer {
	c := &domain.Customer{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Gadgets:     make([]domain.Gadget, 0, len(req.Gadgets)),
	}
	if req.Person != nil {
		c.Person = &domain.Person{Gender: req.Person.Gender}
	}
	for _, g := range req.Gadgets {
		c.Gadgets = append(c.Gadgets, domain.Gadget{Name: g.Name, Years: g.Years})
	}
	return c
}

// toCustomerResponse flattens the person back-reference into a plain
// customer_id field.
func toCustomerResponse(c *domain.Customer) customerResponse {
	resp := customerResponse{
		ID:          c.ID,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Gadgets:     make([]gadgetResponse, 0, len(c.Gadgets)),
	}
	if c.Person != nil {
		resp.Person = &personResponse{
			ID:         c.Person.ID,
			CustomerID: c.Person.CustomerID(),
			Gender:     c.Person.Gender,
		}
	}
	for _, g := range c.Gadgets {
		resp.Gadgets = append(resp.Gadgets, gadgetResponse{ID: g.ID, Name: g.Name, Years: g.Years})
	}
	return resp
}

func toCustomerResponses(customers []*domain.Customer) []customerResponse {
	out := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out
}
