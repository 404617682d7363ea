package handler

// --- Request types ---

type personRequest struct {
	Gender string `json:"gender" validate:"max=32"`
}

type gadgetRequest struct {
	Name  string  `json:"name"`
	Years float64 `json:"years" validate:"gte=0"`
}

// customerRequest is the body of POST /addCustomer and PUT /updateCustomer/:id.
// Ids in the body are ignored; the store and the service assign them.
type customerRequest struct {
	Name        string          `json:"name"`
	PhoneNumber string          `json:"phonenumber"`
	Person      *personRequest  `json:"person" validate:"required"`
	Gadgets     []gadgetRequest `json:"gadgets" validate:"dive"`
}

// --- Response types ---

type personResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	Gender     string `json:"gender"`
}

type gadgetResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Years float64 `json:"years"`
}

type customerResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	PhoneNumber string           `json:"phonenumber"`
	Person      *personResponse  `json:"person"`
	Gadgets     []gadgetResponse `json:"gadgets"`
}
